package tools

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-enfgen/internal/ctxlog"
	"github.com/goliatone/go-enfgen/pkg/index"
	"github.com/mark3labs/mcp-go/mcp"
)

const defaultWikiLimit = 5

// WikiTool searches the modding wiki page table.
type WikiTool struct {
	store *index.Store
}

// NewWikiTool returns the tool backing search_wiki.
func NewWikiTool(store *index.Store) *WikiTool {
	return &WikiTool{store: store}
}

type wikiResults struct {
	Query string       `json:"query"`
	Count int          `json:"count"`
	Pages []wikiResult `json:"pages"`
}

type wikiResult struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	URL      string `json:"url"`
}

// Definition describes the tool schema advertised to MCP clients.
func (t *WikiTool) Definition() mcp.Tool {
	return mcp.NewTool("search_wiki",
		mcp.WithDescription("Search the modding wiki page table and return titles with links."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Page title fragment, for example weapon or localization."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results. Defaults to 5."),
		),
	)
}

// Handle returns matching wiki pages as a JSON document.
func (t *WikiTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := req.GetInt("limit", defaultWikiLimit)

	matches := t.store.SearchWiki(query, limit)
	ctxlog.FromContext(ctx).Debug("wiki search", "query", query, "matches", len(matches))
	if len(matches) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("no wiki pages match %q", query)), nil
	}

	results := wikiResults{Query: query, Count: len(matches)}
	for _, p := range matches {
		results.Pages = append(results.Pages, wikiResult{
			Title:    p.Title,
			Category: p.Category,
			URL:      t.store.PageURL(p),
		})
	}

	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tools: encode wiki results: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}
