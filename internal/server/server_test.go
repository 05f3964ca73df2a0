package server_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-enfgen/internal/config"
	"github.com/goliatone/go-enfgen/internal/server"
)

func TestNewRegistersAllTools(t *testing.T) {
	s, logger := server.New(config.Default())
	require.NotNil(t, s)
	require.NotNil(t, logger)

	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	payload, err := json.Marshal(resp)
	require.NoError(t, err)

	for _, name := range []string{
		"generate_project",
		"generate_config",
		"generate_stringtable",
		"generate_guid",
		"search_classes",
		"search_wiki",
	} {
		assert.Contains(t, string(payload), name)
	}
}

func TestToolCallThroughServer(t *testing.T) {
	s, _ := server.New(config.Default())

	req := `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"generate_config","arguments":{"class_name":"SCR_WeaponStatsConfig"}}}`
	resp := s.HandleMessage(context.Background(), json.RawMessage(req))

	payload, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `SCR_WeaponStatsConfig\n{\n}\n`)
}

func TestToolCallReportsDomainErrors(t *testing.T) {
	s, _ := server.New(config.Default())

	req := `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"generate_project","arguments":{"name":"MyAddon","guid":"nope"}}}`
	resp := s.HandleMessage(context.Background(), json.RawMessage(req))

	payload, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "invalid project guid")
	assert.Contains(t, string(payload), `"isError":true`)
}
