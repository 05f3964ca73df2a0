package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-enfgen/pkg/guid"
	"github.com/mark3labs/mcp-go/mcp"
)

const maxGUIDCount = 100

// GUIDTool generates engine compatible GUIDs on demand.
type GUIDTool struct{}

// NewGUIDTool returns the tool backing generate_guid.
func NewGUIDTool() *GUIDTool {
	return &GUIDTool{}
}

// Definition describes the tool schema advertised to MCP clients.
func (t *GUIDTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_guid",
		mcp.WithDescription("Generate Enfusion compatible GUIDs, 16 uppercase hex characters each, one per line."),
		mcp.WithNumber("count",
			mcp.Description("How many GUIDs to generate, between 1 and 100. Defaults to 1."),
		),
	)
}

// Handle returns freshly generated GUIDs, one per line.
func (t *GUIDTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count := req.GetInt("count", 1)
	if count < 1 || count > maxGUIDCount {
		return mcp.NewToolResultError(fmt.Sprintf("count must be between 1 and %d", maxGUIDCount)), nil
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := guid.New()
		if err != nil {
			return nil, fmt.Errorf("tools: generate guid: %w", err)
		}
		ids = append(ids, id)
	}

	return mcp.NewToolResultText(strings.Join(ids, "\n")), nil
}
