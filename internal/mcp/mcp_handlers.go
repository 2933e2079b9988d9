package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/peerscore/peerscore/core"
	"github.com/peerscore/peerscore/internal/contract"
	"github.com/peerscore/peerscore/internal/dataset"
	"github.com/peerscore/peerscore/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// loadForRequest resolves the dataset path/format overrides and loads records.
func (h *toolHandler) loadForRequest(request mcp.CallToolRequest) ([]schema.Record, *schema.Ruleset, error) {
	cfg := h.baseCfg.Clone()
	dataOverride := request.GetString("data", "")
	if dataOverride != "" {
		cfg.DataPath = dataOverride
	}

	formatOverride := request.GetString("format", "")
	if formatOverride != "" || dataOverride != "" || cfg.DataFormat == "" {
		format, err := contract.ResolveDataFormat(formatOverride, cfg.DataPath)
		if err != nil {
			return nil, nil, err
		}
		cfg.DataFormat = format
	}

	rs := schema.DefaultRuleset()
	records, err := dataset.Load(cfg.DataPath, cfg.DataFormat, rs)
	if err != nil {
		return nil, nil, err
	}
	return records, rs, nil
}

func (h *toolHandler) handleGetScorecard(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol := request.GetString("symbol", "")
	if symbol == "" {
		return mcp.NewToolResultError("symbol is required"), nil
	}

	records, rs, err := h.loadForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load dataset: %v", err)), nil
	}

	rec, ok := dataset.FindRecord(records, symbol)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("symbol %q not found in dataset", symbol)), nil
	}

	medians := core.ComputeMedians(rs, records)
	card := core.BuildScorecard(rs, rec, medians)

	jsonData, _ := json.MarshalIndent(card, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetMedians(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, rs, err := h.loadForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load dataset: %v", err)), nil
	}

	medians := core.ComputeMedians(rs, records)

	type medianEntry struct {
		Field  schema.Field `json:"field"`
		Median *float64     `json:"median,omitempty"`
	}
	entries := make([]medianEntry, 0, len(rs.Order))
	for _, field := range rs.Order {
		entry := medianEntry{Field: field}
		if m, ok := medians.Median(field); ok {
			v := m
			entry.Median = &v
		}
		entries = append(entries, entry)
	}

	jsonData, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScreenCompanies(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, rs, err := h.loadForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load dataset: %v", err)), nil
	}

	limit := h.baseCfg.ResultLimit
	if l := request.GetInt("limit", 0); l > 0 {
		limit = l
	}

	medians := core.ComputeMedians(rs, records)
	rows := core.Screen(rs, records, medians, limit)

	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
