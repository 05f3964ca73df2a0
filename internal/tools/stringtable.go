package tools

import (
	"context"
	"fmt"

	"github.com/goliatone/go-enfgen/internal/ctxlog"
	"github.com/goliatone/go-enfgen/pkg/stringtable"
	"github.com/mark3labs/mcp-go/mcp"
)

// StringtableTool generates localization stringtable XML documents.
type StringtableTool struct{}

// NewStringtableTool returns the tool backing generate_stringtable.
func NewStringtableTool() *StringtableTool {
	return &StringtableTool{}
}

// Definition describes the tool schema advertised to MCP clients.
func (t *StringtableTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_stringtable",
		mcp.WithDescription("Generate a localization stringtable XML document. "+
			"Translation languages must use engine names such as English, French or Chinesesimp."),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project name on the root element."),
		),
		mcp.WithString("package",
			mcp.Description("Package name. Defaults to the project name."),
		),
		mcp.WithArray("keys",
			mcp.Required(),
			mcp.Description("Localization keys, each {id, original, translations: [{language, text}]}."),
			mcp.Items(map[string]any{"type": "object"}),
		),
	)
}

// Handle renders the stringtable document and returns it as text.
func (t *StringtableTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var table stringtable.Table
	if err := req.BindArguments(&table); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	out, err := stringtable.Generate(table)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generate stringtable: %v", err)), nil
	}

	ctxlog.FromContext(ctx).Debug("generated stringtable document",
		"project", table.ProjectName, "keys", len(table.Keys))
	return mcp.NewToolResultText(out), nil
}
