package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/peerscore/peerscore/internal/contract"
	mcp_internal "github.com/peerscore/peerscore/internal/mcp"
	"github.com/peerscore/peerscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "peers.csv")
	content := "symbol,current_ratio,price_to_earnings\n" +
		"AAPL,1.8,20\n" +
		"MSFT,1.1,30\n" +
		"KO,1.4,25\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func TestMCPServerGetScorecard(t *testing.T) {
	dataPath := writeDataset(t)
	baseCfg := &contract.Config{DataPath: dataPath, DataFormat: schema.CSVOut, ResultLimit: 25}
	s := mcp_internal.NewMCPServer(baseCfg)

	res := callTool(t, s, "get_scorecard", map[string]any{"symbol": "AAPL"})
	require.False(t, res.IsError)

	var card schema.Scorecard
	text := res.Content[0].(mcp.TextContent).Text
	require.NoError(t, json.Unmarshal([]byte(text), &card))
	assert.Equal(t, "AAPL", card.Symbol)
	assert.NotEmpty(t, card.Sections)
}

func TestMCPServerGetScorecardErrors(t *testing.T) {
	dataPath := writeDataset(t)
	baseCfg := &contract.Config{DataPath: dataPath, DataFormat: schema.CSVOut, ResultLimit: 25}
	s := mcp_internal.NewMCPServer(baseCfg)

	t.Run("missing symbol", func(t *testing.T) {
		res := callTool(t, s, "get_scorecard", map[string]any{})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "symbol is required")
	})

	t.Run("unknown symbol", func(t *testing.T) {
		res := callTool(t, s, "get_scorecard", map[string]any{"symbol": "TSLA"})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "not found")
	})

	t.Run("missing dataset", func(t *testing.T) {
		res := callTool(t, s, "get_scorecard", map[string]any{
			"symbol": "AAPL",
			"data":   filepath.Join(t.TempDir(), "nope.csv"),
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "failed to load dataset")
	})
}

func TestMCPServerScreenCompanies(t *testing.T) {
	dataPath := writeDataset(t)
	baseCfg := &contract.Config{DataPath: dataPath, DataFormat: schema.CSVOut, ResultLimit: 25}
	s := mcp_internal.NewMCPServer(baseCfg)

	res := callTool(t, s, "screen_companies", map[string]any{"limit": 2.0})
	require.False(t, res.IsError)

	var rows []schema.ScreenRow
	text := res.Content[0].(mcp.TextContent).Text
	require.NoError(t, json.Unmarshal([]byte(text), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Rank)
}

func TestMCPServerGetMedians(t *testing.T) {
	dataPath := writeDataset(t)
	baseCfg := &contract.Config{DataPath: dataPath, DataFormat: schema.CSVOut, ResultLimit: 25}
	s := mcp_internal.NewMCPServer(baseCfg)

	res := callTool(t, s, "get_medians", map[string]any{})
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	var entries []struct {
		Field  schema.Field `json:"field"`
		Median *float64     `json:"median"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &entries))
	require.Len(t, entries, len(schema.DefaultRuleset().Order))

	byField := make(map[schema.Field]*float64)
	for _, e := range entries {
		byField[e.Field] = e.Median
	}
	require.NotNil(t, byField[schema.FieldCurrentRatio])
	assert.Equal(t, 1.4, *byField[schema.FieldCurrentRatio])
	assert.Nil(t, byField[schema.FieldPeg]) // no usable values in dataset
}
