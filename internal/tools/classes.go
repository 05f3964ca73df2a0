package tools

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-enfgen/internal/ctxlog"
	"github.com/goliatone/go-enfgen/pkg/index"
	"github.com/mark3labs/mcp-go/mcp"
)

const defaultClassLimit = 10

// ClassesTool searches the class reference table.
type ClassesTool struct {
	store *index.Store
}

// NewClassesTool returns the tool backing search_classes.
func NewClassesTool(store *index.Store) *ClassesTool {
	return &ClassesTool{store: store}
}

type classResults struct {
	Query   string        `json:"query"`
	Count   int           `json:"count"`
	Classes []index.Class `json:"classes"`
}

// Definition describes the tool schema advertised to MCP clients.
func (t *ClassesTool) Definition() mcp.Tool {
	return mcp.NewTool("search_classes",
		mcp.WithDescription("Search the Enfusion class reference by name fragment. "+
			"Useful for finding the right class or component to reference in a config."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Class name fragment, for example Weapon or SCR_."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results. Defaults to 10."),
		),
	)
}

// Handle returns matching classes as a JSON document.
func (t *ClassesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := req.GetInt("limit", defaultClassLimit)

	matches := t.store.SearchClasses(query, limit)
	ctxlog.FromContext(ctx).Debug("class search", "query", query, "matches", len(matches))
	if len(matches) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("no classes match %q", query)), nil
	}

	payload, err := json.MarshalIndent(classResults{Query: query, Count: len(matches), Classes: matches}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tools: encode class results: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}
