package core

import (
	"sort"

	"github.com/peerscore/peerscore/schema"
)

// Screen scores every company in the dataset and ranks them by overall
// better/evaluable ratio in descending order, ties broken by symbol. If limit
// is greater than the number of companies, all companies are returned in
// sorted order.
func Screen(rs *schema.Ruleset, records []schema.Record, medians schema.MedianTable, limit int) []schema.ScreenRow {
	rows := make([]schema.ScreenRow, 0, len(records))
	for _, rec := range records {
		var overall schema.SectionScore
		for _, section := range rs.Sections {
			score := ScoreSection(rs, section, rec, medians)
			overall.Better += score.Better
			overall.Evaluable += score.Evaluable
		}
		rows = append(rows, schema.ScreenRow{
			Symbol:    rec.Symbol,
			Better:    overall.Better,
			Evaluable: overall.Evaluable,
			Ratio:     overall.Ratio(),
			Grade:     schema.GradeFor(overall),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Ratio != rows[j].Ratio {
			return rows[i].Ratio > rows[j].Ratio
		}
		return rows[i].Symbol < rows[j].Symbol
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
