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

// WriteScorecardResults outputs one scorecard, dispatching based on the output format configured.
func WriteScorecardResults(card schema.Scorecard, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, "scorecard JSON", func(w io.Writer) error {
			return writeJSON(w, card)
		})
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, "scorecard CSV", func(w io.Writer) error {
			return writeScorecardCSV(w, card)
		})
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, "scorecard Parquet", func(w io.Writer) error {
			return writeScorecardParquet(w, card)
		})
	default:
		return writeWithFile(cfg.OutputFile, "scorecard table", func(w io.Writer) error {
			return writeScorecardTable(card, cfg, duration, w)
		})
	}
}

// writeScorecardTable generates and writes the human-readable scorecard.
func writeScorecardTable(card schema.Scorecard, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Scorecard for %s\n", card.Symbol); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Section", "Metric", "Value", "Median", "Verdict"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, section := range card.Sections {
		for _, m := range section.Metrics {
			data = append(data, []string{
				section.Title,
				string(m.Field),
				m.Display,
				m.MedianDisplay,
				contract.GlyphLabel(m.Verdict, cfg.UseColors),
			})
		}
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Section summary lines
	for _, section := range card.Sections {
		grade := contract.GradeDisplay(section.Grade, cfg.UseColors)
		if cfg.Explain {
			if _, err := fmt.Fprintf(writer, "%s: %d/%d beat the median -> %s\n",
				section.Title, section.Score.Better, section.Score.Evaluable, grade); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(writer, "%s: %s\n", section.Title, grade); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(writer, "Overall: %d/%d beat the median -> %s\n",
		card.Overall.Better, card.Overall.Evaluable,
		contract.GradeDisplay(card.OverallGrade, cfg.UseColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scored in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeScorecardCSV writes a scorecard flattened to one metric per row.
func writeScorecardCSV(w io.Writer, card schema.Scorecard) error {
	header := []string{
		"symbol",
		"section",
		"metric",
		"value",
		"median",
		"verdict",
		"section_better",
		"section_evaluable",
		"section_grade",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, section := range card.Sections {
			for _, m := range section.Metrics {
				rec := []string{
					card.Symbol,
					section.ID,
					string(m.Field),
					m.Display,
					m.MedianDisplay,
					string(m.Verdict.Class),
					strconv.Itoa(section.Score.Better),
					strconv.Itoa(section.Score.Evaluable),
					string(section.Grade),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
