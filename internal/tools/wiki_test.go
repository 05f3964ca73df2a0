package tools_test

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-enfgen/internal/tools"
	"github.com/goliatone/go-enfgen/pkg/index"
)

func TestWikiToolReturnsLinks(t *testing.T) {
	t.Parallel()

	tool := tools.NewWikiTool(index.Load())
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{"query": "weapon"}))
	require.NoError(t, err)

	var parsed struct {
		Pages []struct {
			Title string `json:"title"`
			URL   string `json:"url"`
		} `json:"pages"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &parsed))

	require.NotEmpty(t, parsed.Pages)
	assert.Equal(t, "Weapon Creation", parsed.Pages[0].Title)
	assert.Equal(t, "https://community.bistudio.com/wiki/Arma_Reforger:Weapon_Creation", parsed.Pages[0].URL)
}

func TestWikiToolNoMatches(t *testing.T) {
	t.Parallel()

	tool := tools.NewWikiTool(index.Load())
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{"query": "zzzz"}))
	require.NoError(t, err)
	assert.Equal(t, `no wiki pages match "zzzz"`, textContent(t, res))
}

func TestWikiToolRequiresQuery(t *testing.T) {
	t.Parallel()

	tool := tools.NewWikiTool(index.Load())
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)
	assert.Contains(t, errorText(t, res), "query")
}
