package core

import (
	"math"
	"testing"

	"github.com/peerscore/peerscore/schema"
	"github.com/stretchr/testify/assert"
)

// TestMedian tests the median calculation.
func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
		ok       bool
	}{
		{name: "empty slice", values: []float64{}, ok: false},
		{name: "all NaN", values: []float64{math.NaN(), math.NaN()}, ok: false},
		{name: "single value", values: []float64{5}, expected: 5, ok: true},
		{name: "odd count", values: []float64{3, 1, 2}, expected: 2, ok: true},
		{name: "even count averages center", values: []float64{4, 1, 3, 2}, expected: 2.5, ok: true},
		{name: "NaN excluded", values: []float64{1, math.NaN(), 3}, expected: 2, ok: true},
		{name: "Inf excluded", values: []float64{1, math.Inf(1), 3}, expected: 2, ok: true},
		{name: "negative values", values: []float64{-5, -1, -3}, expected: -3, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Median(tt.values)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, m, 1e-9)
			}
		})
	}
}

// TestMedianDoesNotMutateInput guards the caller-visible ordering contract.
func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{9, 1, 5, 3}
	_, _ = Median(values)
	assert.Equal(t, []float64{9, 1, 5, 3}, values)
}

// TestMedianBoundedByMinMax checks the result lands inside [min, max] for
// any set with at least one numeric entry.
func TestMedianBoundedByMinMax(t *testing.T) {
	sets := [][]float64{
		{1, 2, 3, 4, 5},
		{-10, 100, 0.5},
		{42},
		{0.001, 0.002, math.NaN(), 0.003},
	}
	for _, values := range sets {
		m, ok := Median(values)
		assert.True(t, ok)
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range values {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		assert.GreaterOrEqual(t, m, lo)
		assert.LessOrEqual(t, m, hi)
	}
}

// TestClassifyHigherBetter covers the ±15% band for higher-is-better fields.
func TestClassifyHigherBetter(t *testing.T) {
	spec := schema.FieldSpec{ID: "m", Direction: schema.HigherBetter}
	median := schema.Float64Ptr(100)

	tests := []struct {
		name     string
		value    float64
		expected schema.VerdictClass
	}{
		{name: "equal to median", value: 100, expected: schema.EqualClass},
		{name: "at upper band edge", value: 115, expected: schema.BetterClass},
		{name: "above upper band", value: 140, expected: schema.BetterClass},
		{name: "at lower band edge", value: 85, expected: schema.WorseClass},
		{name: "below lower band", value: 10, expected: schema.WorseClass},
		{name: "inside band high", value: 114.9, expected: schema.EqualClass},
		{name: "inside band low", value: 85.1, expected: schema.EqualClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(spec, schema.Float64Ptr(tt.value), median)
			assert.Equal(t, tt.expected, v.Class)
		})
	}
}

// TestClassifyLowerBetter mirrors the band for lower-is-better fields.
func TestClassifyLowerBetter(t *testing.T) {
	spec := schema.FieldSpec{ID: "m", Direction: schema.LowerBetter}
	median := schema.Float64Ptr(100)

	tests := []struct {
		name     string
		value    float64
		expected schema.VerdictClass
	}{
		{name: "equal to median", value: 100, expected: schema.EqualClass},
		{name: "at lower band edge", value: 85, expected: schema.BetterClass},
		{name: "well below", value: 10, expected: schema.BetterClass},
		{name: "at upper band edge", value: 115, expected: schema.WorseClass},
		{name: "inside band", value: 105, expected: schema.EqualClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(spec, schema.Float64Ptr(tt.value), median)
			assert.Equal(t, tt.expected, v.Class)
		})
	}
}

// TestClassifyZeroMedianFallback checks strict comparison when the median is
// effectively zero and percentage bands break down.
func TestClassifyZeroMedianFallback(t *testing.T) {
	higher := schema.FieldSpec{ID: "h", Direction: schema.HigherBetter}
	lower := schema.FieldSpec{ID: "l", Direction: schema.LowerBetter}
	zero := schema.Float64Ptr(0)

	assert.Equal(t, schema.BetterClass, Classify(higher, schema.Float64Ptr(5), zero).Class)
	assert.Equal(t, schema.WorseClass, Classify(higher, schema.Float64Ptr(-5), zero).Class)
	assert.Equal(t, schema.EqualClass, Classify(higher, schema.Float64Ptr(0), zero).Class)
	assert.Equal(t, schema.BetterClass, Classify(lower, schema.Float64Ptr(-5), zero).Class)
	assert.Equal(t, schema.WorseClass, Classify(lower, schema.Float64Ptr(5), zero).Class)

	// Medians inside the epsilon window count as zero too.
	tiny := schema.Float64Ptr(1e-13)
	assert.Equal(t, schema.BetterClass, Classify(higher, schema.Float64Ptr(5), tiny).Class)
}

// TestClassifyMissingData ensures absent values are indeterminate, never
// judged.
func TestClassifyMissingData(t *testing.T) {
	spec := schema.FieldSpec{ID: "m", Direction: schema.HigherBetter}

	assert.Equal(t, schema.EqualClass, Classify(spec, nil, schema.Float64Ptr(10)).Class)
	assert.Equal(t, schema.EqualClass, Classify(spec, schema.Float64Ptr(10), nil).Class)
	assert.Equal(t, schema.EqualClass, Classify(spec, nil, nil).Class)
	assert.Equal(t, schema.EqualClass, Classify(spec, schema.Float64Ptr(math.NaN()), schema.Float64Ptr(10)).Class)
}

// TestClassifyNeutralDirection always lands on equal via median comparison.
func TestClassifyNeutralDirection(t *testing.T) {
	spec := schema.FieldSpec{ID: "m", Direction: schema.Neutral}
	assert.Equal(t, schema.EqualClass, Classify(spec, schema.Float64Ptr(500), schema.Float64Ptr(1)).Class)
	assert.Equal(t, schema.EqualClass, Classify(spec, schema.Float64Ptr(500), schema.Float64Ptr(0)).Class)
}

// TestClassifyThresholdIgnoresMedian checks threshold verdicts are invariant
// to whatever median is supplied.
func TestClassifyThresholdIgnoresMedian(t *testing.T) {
	rs := schema.DefaultRuleset()
	spec := rs.Spec(schema.FieldCurrentRatio)

	medians := []*float64{nil, schema.Float64Ptr(0), schema.Float64Ptr(1.2), schema.Float64Ptr(-50), schema.Float64Ptr(math.NaN())}
	for _, m := range medians {
		assert.Equal(t, schema.WorseClass, Classify(spec, schema.Float64Ptr(1.2), m).Class)
		assert.Equal(t, schema.BetterClass, Classify(spec, schema.Float64Ptr(1.5), m).Class)
	}

	// Missing value on a threshold field is indeterminate.
	assert.Equal(t, schema.EqualClass, Classify(spec, nil, schema.Float64Ptr(2)).Class)
}

// TestClassifyGlyphs checks the display glyph travels with the class.
func TestClassifyGlyphs(t *testing.T) {
	spec := schema.FieldSpec{ID: "m", Direction: schema.HigherBetter}
	median := schema.Float64Ptr(100)

	assert.Equal(t, schema.BetterGlyph, Classify(spec, schema.Float64Ptr(120), median).Glyph)
	assert.Equal(t, schema.WorseGlyph, Classify(spec, schema.Float64Ptr(80), median).Glyph)
	assert.Equal(t, schema.EqualGlyph, Classify(spec, schema.Float64Ptr(100), median).Glyph)
}

// TestComputeMedians builds the table across a small peer set.
func TestComputeMedians(t *testing.T) {
	rs := schema.DefaultRuleset()
	records := []schema.Record{
		{Symbol: "A", Values: map[schema.Field]float64{schema.FieldPriceToEarnings: 10}},
		{Symbol: "B", Values: map[schema.Field]float64{schema.FieldPriceToEarnings: 20}},
		{Symbol: "C", Values: map[schema.Field]float64{schema.FieldPriceToEarnings: 30, schema.FieldPeg: 1.5}},
	}

	medians := ComputeMedians(rs, records)

	pe, ok := medians.Median(schema.FieldPriceToEarnings)
	assert.True(t, ok)
	assert.InDelta(t, 20.0, pe, 1e-9)

	peg, ok := medians.Median(schema.FieldPeg)
	assert.True(t, ok)
	assert.InDelta(t, 1.5, peg, 1e-9)

	_, ok = medians.Median(schema.FieldRuleOf40)
	assert.False(t, ok, "field with no usable values stays undefined")
}
