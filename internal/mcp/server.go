// Package mcp exposes the calculator and gallery engines as MCP tools over
// stdio.
package mcp

import (
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/codealpha/showcase/internal/calc"
	"github.com/codealpha/showcase/internal/gallery"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes calculator and gallery tools.
type Server struct {
	catalog   *gallery.Catalog
	precision int
	mcp       *server.MCPServer

	// The keypad tool drives one calculator per server, which is one client
	// on stdio.
	mu     sync.Mutex
	keypad *calc.Calculator
}

// NewServer creates a new MCP server over catalog. opts configure the
// calculators the tools create.
func NewServer(catalog *gallery.Catalog, opts ...calc.Option) *Server {
	keypad := calc.New(opts...)
	s := &Server{
		catalog:   catalog,
		precision: keypad.Precision(),
		keypad:    keypad,
	}

	s.mcp = server.NewMCPServer(
		"showcase",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(evaluateExpressionTool, s.handleEvaluateExpression)
	s.mcp.AddTool(pressKeysTool, s.handlePressKeys)
	s.mcp.AddTool(searchGalleryTool, s.handleSearchGallery)
	s.mcp.AddTool(listCategoriesTool, s.handleListCategories)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
