package mcp

import "github.com/mark3labs/mcp-go/mcp"

// evaluateExpressionTool defines the evaluate_expression MCP tool.
var evaluateExpressionTool = mcp.NewTool("evaluate_expression",
	mcp.WithDescription("Evaluate an arithmetic expression. Supports + - * / % ^, parentheses, sin cos tan (degrees), log, ln, sqrt, π and e."),
	mcp.WithString("expression",
		mcp.Required(),
		mcp.Description("Expression to evaluate, e.g. \"sqrt(9) + 2^3\""),
	),
)

// pressKeysTool defines the press_calculator_keys MCP tool.
var pressKeysTool = mcp.NewTool("press_calculator_keys",
	mcp.WithDescription("Press keys on a persistent calculator and return its display, expression and history."),
	mcp.WithString("keys",
		mcp.Required(),
		mcp.Description("Space-separated keys, e.g. \"2 + 3 Enter\". Named keys: Enter, Backspace, Delete, Escape."),
	),
)

// searchGalleryTool defines the search_gallery MCP tool.
var searchGalleryTool = mcp.NewTool("search_gallery",
	mcp.WithDescription("Find gallery images whose title contains the query, case-insensitively."),
	mcp.WithString("query",
		mcp.Description("Title substring to match (empty matches everything)"),
	),
	mcp.WithString("category",
		mcp.Description("Category to restrict to (default \"all\")"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 20)"),
	),
)

// listCategoriesTool defines the list_categories MCP tool.
var listCategoriesTool = mcp.NewTool("list_categories",
	mcp.WithDescription("List the gallery's filter categories, starting with \"all\"."),
)
