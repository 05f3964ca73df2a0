package tools

import (
	"context"
	"fmt"

	"github.com/goliatone/go-enfgen/internal/ctxlog"
	"github.com/goliatone/go-enfgen/pkg/gen"
	"github.com/mark3labs/mcp-go/mcp"
)

// ProjectTool generates complete .gproj project definition documents.
type ProjectTool struct{}

// NewProjectTool returns the tool backing generate_project.
func NewProjectTool() *ProjectTool {
	return &ProjectTool{}
}

// Definition describes the tool schema advertised to MCP clients.
func (t *ProjectTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_project",
		mcp.WithDescription("Generate an Enfusion .gproj project definition. "+
			"The base game dependency and the PC and HEADLESS configurations are included automatically."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Project identifier, for example MyAddon."),
		),
		mcp.WithString("title",
			mcp.Description("Human readable title. Defaults to the project name."),
		),
		mcp.WithString("guid",
			mcp.Description("Project GUID, 16 uppercase hex characters. Generated when omitted."),
		),
		mcp.WithArray("dependencies",
			mcp.Description("Extra dependency GUIDs, listed after the base game dependency."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("configurations",
			mcp.Description("Configuration block names. Defaults to PC and HEADLESS."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle renders the project document and returns it as text.
func (t *ProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	project := gen.Project{
		Name:           name,
		Title:          req.GetString("title", ""),
		GUID:           req.GetString("guid", ""),
		Dependencies:   req.GetStringSlice("dependencies", nil),
		Configurations: req.GetStringSlice("configurations", nil),
	}

	out, err := gen.GenerateProject(project)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generate project: %v", err)), nil
	}

	ctxlog.FromContext(ctx).Debug("generated project document", "name", name, "bytes", len(out))
	return mcp.NewToolResultText(out), nil
}
