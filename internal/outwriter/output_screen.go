package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/peerscore/peerscore/internal/contract"
	"github.com/peerscore/peerscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteScreenResults outputs ranked screen rows, dispatching based on the output format configured.
func WriteScreenResults(rows []schema.ScreenRow, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := ratioFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, "screen JSON", func(w io.Writer) error {
			return writeJSON(w, rows)
		})
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, "screen CSV", func(w io.Writer) error {
			return writeScreenCSV(w, rows, fmtFloat)
		})
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, "screen Parquet", func(w io.Writer) error {
			return writeScreenParquet(w, rows)
		})
	default:
		return writeWithFile(cfg.OutputFile, "screen table", func(w io.Writer) error {
			return writeScreenTable(rows, cfg, fmtFloat, duration, w)
		})
	}
}

// writeScreenTable generates and writes the human-readable screen table.
func writeScreenTable(rows []schema.ScreenRow, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Symbol", "Better", "Evaluable", "Grade"}
	if cfg.Explain {
		headers = append(headers, "Ratio")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxSymbol := GetMaxTableSymbolWidth(cfg)
	var data [][]string
	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Rank),
			contract.TruncateSymbol(r.Symbol, maxSymbol),
			strconv.Itoa(r.Better),
			strconv.Itoa(r.Evaluable),
			contract.GradeDisplay(r.Grade, cfg.UseColors),
		}
		if cfg.Explain {
			row = append(row, fmtFloat(r.Ratio))
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing top %d companies\n", len(rows)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Screen completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeScreenCSV writes screen rows in CSV format.
func writeScreenCSV(w io.Writer, rows []schema.ScreenRow, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"symbol",
		"better",
		"evaluable",
		"ratio",
		"grade",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range rows {
			rec := []string{
				strconv.Itoa(r.Rank),
				r.Symbol,
				strconv.Itoa(r.Better),
				strconv.Itoa(r.Evaluable),
				fmtFloat(r.Ratio),
				string(r.Grade),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
