// Package dataset loads peer datasets from tabular sources into records the
// scorer consumes. Cells that are empty, non-numeric or NaN degrade to
// missing values; rows are never rejected for shape.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/peerscore/peerscore/schema"
)

// Load reads the peer dataset at path in the given format.
func Load(path string, format schema.OutputMode, rs *schema.Ruleset) ([]schema.Record, error) {
	if path == "" {
		return nil, fmt.Errorf("dataset path is required")
	}
	switch format {
	case schema.JSONOut:
		return loadJSON(path, rs)
	case schema.ParquetOut:
		return loadParquet(path, rs)
	default:
		return loadCSV(path, rs)
	}
}

// symbolColumns lists the header spellings accepted for the ticker column.
var symbolColumns = map[string]struct{}{
	"symbol": {},
	"ticker": {},
	"tick":   {},
	"tic":    {},
}

func isSymbolColumn(header string) bool {
	_, ok := symbolColumns[strings.ToLower(strings.TrimSpace(header))]
	return ok
}

func loadCSV(path string, rs *schema.Ruleset) ([]schema.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	var records []schema.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row: %w", err)
		}

		rec := schema.Record{Values: make(map[schema.Field]float64)}
		empty := true
		for i, header := range headers {
			if i >= len(row) {
				break
			}
			cell := row[i]
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
			if isSymbolColumn(header) {
				rec.Symbol = strings.ToUpper(strings.TrimSpace(cell))
				continue
			}
			f := schema.Field(strings.TrimSpace(header))
			if _, known := rs.Specs[f]; !known {
				continue
			}
			if v, ok := ParseCell(cell); ok {
				rec.Values[f] = v
			}
		}
		if empty {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func loadJSON(path string, rs *schema.Ruleset) ([]schema.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse dataset JSON: %w", err)
	}

	records := make([]schema.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromMap(row, rs))
	}
	return records, nil
}

func recordFromMap(row map[string]any, rs *schema.Ruleset) schema.Record {
	rec := schema.Record{Values: make(map[schema.Field]float64)}
	for key, raw := range row {
		if isSymbolColumn(key) {
			if s, ok := raw.(string); ok {
				rec.Symbol = strings.ToUpper(strings.TrimSpace(s))
			}
			continue
		}
		f := schema.Field(strings.TrimSpace(key))
		if _, known := rs.Specs[f]; !known {
			continue
		}
		if v, ok := CoerceValue(raw); ok {
			rec.Values[f] = v
		}
	}
	return rec
}

func loadParquet(path string, rs *schema.Ruleset) ([]schema.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat dataset %s: %w", path, err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet dataset: %w", err)
	}

	reader := parquet.NewGenericReader[peerRow](pf)
	defer func() { _ = reader.Close() }()

	var records []schema.Record
	buf := make([]peerRow, 64)
	for {
		n, err := reader.Read(buf)
		for i := range n {
			records = append(records, buf[i].toRecord(rs))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}
	return records, nil
}
