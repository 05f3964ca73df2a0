package tools_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-enfgen/internal/tools"
)

func TestStringtableToolGeneratesDocument(t *testing.T) {
	t.Parallel()

	tool := tools.NewStringtableTool()
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"project": "MyAddon",
		"keys": []any{
			map[string]any{
				"id":       "STR_myaddon_greeting",
				"original": "Welcome to Everon",
				"translations": []any{
					map[string]any{"language": "French", "text": "Bienvenue"},
				},
			},
		},
	}))
	require.NoError(t, err)

	out := textContent(t, res)
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="utf-8" ?>`), "missing xml declaration: %q", out)
	assert.Contains(t, out, `<Project name="MyAddon">`)
	assert.Contains(t, out, `<Key ID="STR_myaddon_greeting">`)
	assert.Contains(t, out, "<French>Bienvenue</French>")
}

func TestStringtableToolRequiresProject(t *testing.T) {
	t.Parallel()

	tool := tools.NewStringtableTool()
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"keys": []any{map[string]any{"id": "STR_a", "original": "A"}},
	}))
	require.NoError(t, err)
	assert.Contains(t, errorText(t, res), "project name is required")
}

func TestStringtableToolRejectsUnknownLanguage(t *testing.T) {
	t.Parallel()

	tool := tools.NewStringtableTool()
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"project": "MyAddon",
		"keys": []any{
			map[string]any{
				"id":       "STR_a",
				"original": "A",
				"translations": []any{
					map[string]any{"language": "Klingon", "text": "nuqneH"},
				},
			},
		},
	}))
	require.NoError(t, err)
	assert.Contains(t, errorText(t, res), "unknown language")
}
