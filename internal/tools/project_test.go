package tools_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-enfgen/internal/tools"
)

func TestProjectToolGeneratesDocument(t *testing.T) {
	t.Parallel()

	tool := tools.NewProjectTool()
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"name":  "MyAddon",
		"title": "My Addon",
		"guid":  "6156F2F771D5D73D",
	}))
	require.NoError(t, err)

	want := "GameProject\n{\n" +
		"\tID \"MyAddon\"\n" +
		"\tGUID \"6156F2F771D5D73D\"\n" +
		"\tTITLE \"My Addon\"\n" +
		"\tDependencies\n\t{\n" +
		"\t\t\"58D0FB3206B6F859\"\n" +
		"\t}\n" +
		"\tConfigurations\n\t{\n" +
		"\t\tGameProjectConfig PC\n\t\t{\n\t\t}\n" +
		"\t\tGameProjectConfig HEADLESS\n\t\t{\n\t\t}\n" +
		"\t}\n}\n"
	assert.Equal(t, want, textContent(t, res))
}

func TestProjectToolExtraDependencies(t *testing.T) {
	t.Parallel()

	tool := tools.NewProjectTool()
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"name":         "MyAddon",
		"guid":         "6156F2F771D5D73D",
		"dependencies": []any{"BBBBBBBBBBBBBBBB"},
	}))
	require.NoError(t, err)

	out := textContent(t, res)
	assert.Contains(t, out, "\t\t\"58D0FB3206B6F859\"\n\t\t\"BBBBBBBBBBBBBBBB\"\n")
}

func TestProjectToolRequiresName(t *testing.T) {
	t.Parallel()

	tool := tools.NewProjectTool()
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)
	assert.Contains(t, errorText(t, res), "name")
}

func TestProjectToolRejectsBadGUID(t *testing.T) {
	t.Parallel()

	tool := tools.NewProjectTool()
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"name": "MyAddon",
		"guid": "not-a-guid",
	}))
	require.NoError(t, err)
	assert.Contains(t, errorText(t, res), "invalid project guid")
}
