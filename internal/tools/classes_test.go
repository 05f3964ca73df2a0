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

func TestClassesToolReturnsMatches(t *testing.T) {
	t.Parallel()

	tool := tools.NewClassesTool(index.Load())
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{"query": "Weapon"}))
	require.NoError(t, err)

	var parsed struct {
		Query   string        `json:"query"`
		Count   int           `json:"count"`
		Classes []index.Class `json:"classes"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &parsed))

	assert.Equal(t, "Weapon", parsed.Query)
	require.NotEmpty(t, parsed.Classes)
	assert.Equal(t, len(parsed.Classes), parsed.Count)
	assert.Equal(t, "BaseWeaponComponent", parsed.Classes[0].Name)
}

func TestClassesToolHonorsLimit(t *testing.T) {
	t.Parallel()

	tool := tools.NewClassesTool(index.Load())
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{"query": "SCR_", "limit": 2}))
	require.NoError(t, err)

	var parsed struct {
		Classes []index.Class `json:"classes"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &parsed))
	assert.Len(t, parsed.Classes, 2)
}

func TestClassesToolNoMatches(t *testing.T) {
	t.Parallel()

	tool := tools.NewClassesTool(index.Load())
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{"query": "zzzz"}))
	require.NoError(t, err)
	assert.Equal(t, `no classes match "zzzz"`, textContent(t, res))
}

func TestClassesToolRequiresQuery(t *testing.T) {
	t.Parallel()

	tool := tools.NewClassesTool(index.Load())
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)
	assert.Contains(t, errorText(t, res), "query")
}
