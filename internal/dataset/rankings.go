package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// rankingEntry is one row of a rankings JSON export. Only the symbol is
// consumed; the rest of the row travels with whatever produced the file.
type rankingEntry struct {
	Symbol string `json:"symbol"`
	Ticker string `json:"ticker"`
}

func (e rankingEntry) symbol() string {
	if e.Symbol != "" {
		return e.Symbol
	}
	return e.Ticker
}

// LoadRankingSymbols reads the symbols from a rankings JSON file, preserving
// file order, dropping blanks and duplicates. A limit of 0 means unlimited.
func LoadRankingSymbols(path string, limit int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rankings %s: %w", path, err)
	}

	var entries []rankingEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse rankings JSON: %w", err)
	}

	seen := make(map[string]struct{}, len(entries))
	symbols := make([]string, 0, len(entries))
	for _, entry := range entries {
		symbol := strings.ToUpper(strings.TrimSpace(entry.symbol()))
		if symbol == "" {
			continue
		}
		if _, dup := seen[symbol]; dup {
			continue
		}
		seen[symbol] = struct{}{}
		symbols = append(symbols, symbol)
		if limit > 0 && len(symbols) >= limit {
			break
		}
	}
	return symbols, nil
}
