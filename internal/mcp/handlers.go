package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/codealpha/showcase/internal/calc"
	"github.com/codealpha/showcase/internal/gallery"
)

// handleEvaluateExpression evaluates a single expression statelessly.
func (s *Server) handleEvaluateExpression(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr, err := request.RequireString("expression")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: expression"), nil
	}

	v, err := calc.Evaluate(expr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot evaluate %q: %v", expr, err)), nil
	}
	v = calc.Round(v, s.precision)
	return mcp.NewToolResultText(calc.FormatNumber(v)), nil
}

// handlePressKeys feeds keys to the server's calculator.
func (s *Server) handlePressKeys(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys, err := request.RequireString("keys")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: keys"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.keypad.State()
	for _, k := range strings.Fields(keys) {
		st = s.keypad.Press(k)
	}
	return mcp.NewToolResultText(formatCalculator(st, s.keypad.History())), nil
}

// handleSearchGallery filters the catalog.
func (s *Server) handleSearchGallery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := gallery.Filter{
		Category: request.GetString("category", gallery.CategoryAll),
		Search:   request.GetString("query", ""),
	}
	limit := request.GetInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}

	view := s.catalog.Apply(filter)
	if view.Len() == 0 {
		return mcp.NewToolResultText("No images match. Run `showcase gallery import` to load a catalog."), nil
	}
	return mcp.NewToolResultText(formatItems(s.catalog, view, limit)), nil
}

// handleListCategories lists filter categories.
func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cats := append([]string{gallery.CategoryAll}, s.catalog.Categories()...)
	return mcp.NewToolResultText(strings.Join(cats, "\n")), nil
}

func formatCalculator(st calc.State, history []calc.Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Display: %s\n", st.Display)
	if st.Expression != "" {
		fmt.Fprintf(&sb, "Expression: %s\n", st.Expression)
	}
	if len(history) > 0 {
		sb.WriteString("\nHistory (most recent first):\n")
		for _, e := range history {
			fmt.Fprintf(&sb, "  %s\n", e)
		}
	}
	return sb.String()
}

// formatItems renders the first limit items of view for agent consumption.
func formatItems(c *gallery.Catalog, view gallery.View, limit int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d image(s):\n", view.Len())

	for i := 0; i < view.Len() && i < limit; i++ {
		it, _ := c.Item(view.At(i))
		fmt.Fprintf(&sb, "\n%d. %s\n", i+1, it.Title)
		fmt.Fprintf(&sb, "   Category: %s\n", it.Category)
		fmt.Fprintf(&sb, "   Image: %s\n", it.Image.Src)
		if it.Image.Alt != "" && it.Image.Alt != it.Title {
			fmt.Fprintf(&sb, "   Alt: %s\n", it.Image.Alt)
		}
	}
	if view.Len() > limit {
		fmt.Fprintf(&sb, "\n(%d more not shown)\n", view.Len()-limit)
	}
	return sb.String()
}
