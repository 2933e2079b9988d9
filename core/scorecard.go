package core

import (
	"github.com/peerscore/peerscore/schema"
)

// ScoreSection tallies one section for a company. A threshold field counts as
// evaluable when its value is usable; a median field needs both a usable
// value and a usable peer median. Fields with no basis for judgment are
// skipped, not counted as worse.
func ScoreSection(rs *schema.Ruleset, section schema.Section, rec schema.Record, medians schema.MedianTable) schema.SectionScore {
	var score schema.SectionScore
	for _, f := range section.Fields {
		spec := rs.Spec(f)
		value, hasValue := rec.Value(f)
		median, hasMedian := medians.Median(f)

		if spec.Threshold != nil {
			if !hasValue {
				continue
			}
		} else if !hasValue || !hasMedian {
			continue
		}

		score.Evaluable++
		verdict := Classify(spec, optional(value, hasValue), optional(median, hasMedian))
		if verdict.Class == schema.BetterClass {
			score.Better++
		}
	}
	return score
}

// BuildScorecard assembles the full scored view of one company: per-metric
// verdicts and formatted values for every section, section scores with
// grades, and the overall tally across sections.
func BuildScorecard(rs *schema.Ruleset, rec schema.Record, medians schema.MedianTable) schema.Scorecard {
	card := schema.Scorecard{
		Symbol:   rec.Symbol,
		Sections: make([]schema.SectionResult, 0, len(rs.Sections)),
	}

	for _, section := range rs.Sections {
		result := schema.SectionResult{
			ID:      section.ID,
			Title:   section.Title,
			Score:   ScoreSection(rs, section, rec, medians),
			Metrics: make([]schema.MetricResult, 0, len(section.Fields)),
		}
		result.Grade = schema.GradeFor(result.Score)

		for _, f := range section.Fields {
			spec := rs.Spec(f)
			value := optional(rec.Value(f))
			median := optional(medians.Median(f))
			result.Metrics = append(result.Metrics, schema.MetricResult{
				Field:         f,
				Value:         value,
				Median:        median,
				Verdict:       Classify(spec, value, median),
				Display:       schema.FormatMetric(value, spec.Format),
				MedianDisplay: schema.FormatMetric(median, spec.Format),
			})
		}

		card.Overall.Better += result.Score.Better
		card.Overall.Evaluable += result.Score.Evaluable
		card.Sections = append(card.Sections, result)
	}

	card.OverallGrade = schema.GradeFor(card.Overall)
	return card
}

func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
