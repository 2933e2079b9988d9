// Package core has core logic for scoring, grading and screening companies
// against their peer medians.
package core

import (
	"math"
	"sort"

	"github.com/peerscore/peerscore/schema"
)

// Median returns the arithmetic median of the finite values in the input, or
// false when no finite value exists. The input slice is never reordered.
func Median(values []float64) (float64, bool) {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		clean = append(clean, v)
	}
	if len(clean) == 0 {
		return 0, false
	}
	sort.Float64s(clean)
	mid := len(clean) / 2
	if len(clean)%2 == 0 {
		return (clean[mid-1] + clean[mid]) / 2, true
	}
	return clean[mid], true
}

// ComputeMedians builds the peer median table for every field in the ruleset
// from the full dataset. Fields with no usable value across all peers are
// absent from the table.
func ComputeMedians(rs *schema.Ruleset, records []schema.Record) schema.MedianTable {
	medians := make(schema.MedianTable, len(rs.Order))
	values := make([]float64, 0, len(records))
	for _, f := range rs.Order {
		values = values[:0]
		for _, rec := range records {
			if v, ok := rec.Value(f); ok {
				values = append(values, v)
			}
		}
		if m, ok := Median(values); ok {
			medians[f] = m
		}
	}
	return medians
}

// Classify determines the verdict for one metric value against its peer
// median. Threshold rules take precedence and ignore the median entirely;
// missing data on either side of a median comparison is indeterminate and
// lands on equal, never worse.
func Classify(spec schema.FieldSpec, value, median *float64) schema.Verdict {
	if spec.Threshold != nil {
		if !usable(value) {
			return schema.VerdictFor(schema.EqualClass)
		}
		return schema.VerdictFor(spec.Threshold(*value))
	}

	if !usable(value) || !usable(median) {
		return schema.VerdictFor(schema.EqualClass)
	}
	v, m := *value, *median

	// Near-zero medians make percentage bands meaningless; fall back to
	// strict comparison.
	if math.Abs(m) < schema.MedianEpsilon {
		switch spec.Direction {
		case schema.HigherBetter:
			return strictVerdict(v > m, v < m)
		case schema.LowerBetter:
			return strictVerdict(v < m, v > m)
		default:
			return schema.VerdictFor(schema.EqualClass)
		}
	}

	upper := m * (1 + schema.MedianBand)
	lower := m * (1 - schema.MedianBand)

	switch spec.Direction {
	case schema.HigherBetter:
		return strictVerdict(v >= upper, v <= lower)
	case schema.LowerBetter:
		return strictVerdict(v <= lower, v >= upper)
	default:
		return schema.VerdictFor(schema.EqualClass)
	}
}

func strictVerdict(better, worse bool) schema.Verdict {
	switch {
	case better:
		return schema.VerdictFor(schema.BetterClass)
	case worse:
		return schema.VerdictFor(schema.WorseClass)
	default:
		return schema.VerdictFor(schema.EqualClass)
	}
}

func usable(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
