package outwriter

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
	"github.com/peerscore/peerscore/schema"
)

// scorecardParquetRow flattens a scorecard to one metric per row for export.
type scorecardParquetRow struct {
	Symbol           string   `parquet:"symbol,snappy"`
	Section          string   `parquet:"section,snappy"`
	Metric           string   `parquet:"metric,snappy"`
	Value            *float64 `parquet:"value,optional,snappy"`
	Median           *float64 `parquet:"median,optional,snappy"`
	Verdict          string   `parquet:"verdict,snappy"`
	SectionBetter    int32    `parquet:"section_better,snappy"`
	SectionEvaluable int32    `parquet:"section_evaluable,snappy"`
	SectionGrade     string   `parquet:"section_grade,snappy"`
}

// screenParquetRow is one ranked screen entry for export.
type screenParquetRow struct {
	Rank      int32   `parquet:"rank,snappy"`
	Symbol    string  `parquet:"symbol,snappy"`
	Better    int32   `parquet:"better,snappy"`
	Evaluable int32   `parquet:"evaluable,snappy"`
	Ratio     float64 `parquet:"ratio,snappy"`
	Grade     string  `parquet:"grade,snappy"`
}

// medianParquetRow is one field median for export.
type medianParquetRow struct {
	Metric    string   `parquet:"metric,snappy"`
	Direction string   `parquet:"direction,snappy"`
	Median    *float64 `parquet:"median,optional,snappy"`
}

// writeParquetRows writes rows to w using struct schema inference.
func writeParquetRows[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

func writeScorecardParquet(w io.Writer, card schema.Scorecard) error {
	var rows []scorecardParquetRow
	for _, section := range card.Sections {
		for _, m := range section.Metrics {
			rows = append(rows, scorecardParquetRow{
				Symbol:           card.Symbol,
				Section:          section.ID,
				Metric:           string(m.Field),
				Value:            m.Value,
				Median:           m.Median,
				Verdict:          string(m.Verdict.Class),
				SectionBetter:    int32(section.Score.Better),
				SectionEvaluable: int32(section.Score.Evaluable),
				SectionGrade:     string(section.Grade),
			})
		}
	}
	return writeParquetRows(w, rows)
}

func writeScreenParquet(w io.Writer, screen []schema.ScreenRow) error {
	rows := make([]screenParquetRow, len(screen))
	for i, r := range screen {
		rows[i] = screenParquetRow{
			Rank:      int32(r.Rank),
			Symbol:    r.Symbol,
			Better:    int32(r.Better),
			Evaluable: int32(r.Evaluable),
			Ratio:     r.Ratio,
			Grade:     string(r.Grade),
		}
	}
	return writeParquetRows(w, rows)
}

func writeMedianParquet(w io.Writer, medians []medianRow) error {
	rows := make([]medianParquetRow, len(medians))
	for i, r := range medians {
		rows[i] = medianParquetRow{
			Metric:    string(r.Field),
			Direction: r.Direction,
			Median:    r.Median,
		}
	}
	return writeParquetRows(w, rows)
}
