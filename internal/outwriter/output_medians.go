package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/peerscore/peerscore/internal/contract"
	"github.com/peerscore/peerscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// medianRow pairs one ruleset field with its computed peer median.
type medianRow struct {
	Field     schema.Field `json:"field"`
	Direction string       `json:"direction"`
	Median    *float64     `json:"median,omitempty"`
	Display   string       `json:"display"`
}

// collectMedianRows flattens a median table into ruleset order.
func collectMedianRows(rs *schema.Ruleset, medians schema.MedianTable) []medianRow {
	rows := make([]medianRow, 0, len(rs.Order))
	for _, field := range rs.Order {
		spec := rs.Spec(field)
		row := medianRow{
			Field:     field,
			Direction: string(spec.Direction),
			Display:   schema.NASentinel,
		}
		if m, ok := medians.Median(field); ok {
			v := m
			row.Median = &v
			row.Display = schema.FormatMetric(&v, spec.Format)
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteMedianResults outputs the peer median table, dispatching based on the output format configured.
func WriteMedianResults(rs *schema.Ruleset, medians schema.MedianTable, cfg *contract.Config) error {
	rows := collectMedianRows(rs, medians)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, "median JSON", func(w io.Writer) error {
			return writeJSON(w, rows)
		})
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, "median CSV", func(w io.Writer) error {
			return writeMedianCSV(w, rows)
		})
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, "median Parquet", func(w io.Writer) error {
			return writeMedianParquet(w, rows)
		})
	default:
		return writeWithFile(cfg.OutputFile, "median table", func(w io.Writer) error {
			return writeMedianTable(w, rows)
		})
	}
}

func writeMedianTable(w io.Writer, rows []medianRow) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Direction", "Median"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range rows {
		data = append(data, []string{string(r.Field), r.Direction, r.Display})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeMedianCSV(w io.Writer, rows []medianRow) error {
	header := []string{"metric", "direction", "median", "display"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range rows {
			raw := ""
			if r.Median != nil {
				raw = strconv.FormatFloat(*r.Median, 'f', -1, 64)
			}
			rec := []string{string(r.Field), r.Direction, raw, r.Display}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
