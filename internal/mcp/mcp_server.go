// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/peerscore/peerscore/internal/contract"
)

// NewMCPServer initializes and configures the peerscore MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Peer Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: get_scorecard ---
	s.AddTool(mcp.NewTool("get_scorecard",
		mcp.WithDescription("Score one company's financial metrics against its peer medians, section by section."),
		mcp.WithString("symbol", mcp.Description("Ticker symbol to score (e.g. AAPL or AAPL:US)."), mcp.Required()),
		mcp.WithString("data", mcp.Description("Path to the peer dataset (defaults to the configured dataset).")),
		mcp.WithString("format", mcp.Description("Dataset format (csv, json, parquet or auto)."), mcp.Enum("csv", "json", "parquet", "auto")),
	), h.handleGetScorecard)

	// --- 2. Tool: get_medians ---
	s.AddTool(mcp.NewTool("get_medians",
		mcp.WithDescription("Compute the peer median for every tracked metric across the dataset."),
		mcp.WithString("data", mcp.Description("Path to the peer dataset.")),
		mcp.WithString("format", mcp.Description("Dataset format (csv, json, parquet or auto)."), mcp.Enum("csv", "json", "parquet", "auto")),
	), h.handleGetMedians)

	// --- 3. Tool: screen_companies ---
	s.AddTool(mcp.NewTool("screen_companies",
		mcp.WithDescription("Rank every company in the dataset by the share of metrics beating the peer median."),
		mcp.WithString("data", mcp.Description("Path to the peer dataset.")),
		mcp.WithString("format", mcp.Description("Dataset format (csv, json, parquet or auto)."), mcp.Enum("csv", "json", "parquet", "auto")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleScreenCompanies)

	return s
}

// StartMCPServer starts the peerscore MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
