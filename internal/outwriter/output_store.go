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

// WriteStoreStatusResults outputs run-store status, dispatching based on the output format configured.
func WriteStoreStatusResults(status schema.StoreStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, "store status JSON", func(w io.Writer) error {
			return writeJSON(w, status)
		})
	default:
		return writeWithFile(cfg.OutputFile, "store status", func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "Backend: %s\nLocation: %s\nRuns: %d\nScores: %d\n",
				status.Backend, status.Location, status.Runs, status.Scores)
			return err
		})
	}
}

// WriteStoredScores outputs exported run-store rows, dispatching based on the output format configured.
func WriteStoredScores(rows []schema.StoredScore, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, "score export JSON", func(w io.Writer) error {
			return writeJSON(w, rows)
		})
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, "score export CSV", func(w io.Writer) error {
			return writeStoredScoreCSV(w, rows)
		})
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, "score export Parquet", func(w io.Writer) error {
			return writeParquetRows(w, rows)
		})
	default:
		return writeWithFile(cfg.OutputFile, "score export table", func(w io.Writer) error {
			return writeStoredScoreTable(w, rows)
		})
	}
}

func writeStoredScoreTable(w io.Writer, rows []schema.StoredScore) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Run", "Symbol", "Section", "Better", "Evaluable", "Grade", "Recorded"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range rows {
		data = append(data, []string{
			strconv.FormatInt(r.RunID, 10),
			r.Symbol,
			r.Section,
			strconv.Itoa(int(r.Better)),
			strconv.Itoa(int(r.Evaluable)),
			r.Grade,
			r.RecordedAt.Format(time.RFC3339),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeStoredScoreCSV(w io.Writer, rows []schema.StoredScore) error {
	header := []string{"run_id", "symbol", "section", "better", "evaluable", "grade", "recorded_at"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range rows {
			rec := []string{
				strconv.FormatInt(r.RunID, 10),
				r.Symbol,
				r.Section,
				strconv.Itoa(int(r.Better)),
				strconv.Itoa(int(r.Evaluable)),
				r.Grade,
				r.RecordedAt.Format(time.RFC3339),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
