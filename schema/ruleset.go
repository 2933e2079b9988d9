package schema

// ThresholdRule maps a usable metric value to an absolute verdict class,
// ignoring the peer median entirely. The classifier only invokes a rule with
// a finite value; missing values land on equal before the rule runs.
type ThresholdRule func(value float64) VerdictClass

// FieldSpec carries the metadata attached to one metric field.
type FieldSpec struct {
	ID        Field
	Direction Direction
	Format    FormatKind
	Threshold ThresholdRule // nil for median-compared fields
}

// Section is a named, ordered group of fields scored together.
type Section struct {
	ID     string
	Title  string
	Fields []Field
}

// Ruleset bundles the full field inventory, section layout and rule tables
// the scorer runs against. Callers pass a Ruleset explicitly so tests can
// score against alternate tables; DefaultRuleset reproduces the dashboard's
// production tables.
type Ruleset struct {
	Order    []Field
	Specs    map[Field]FieldSpec
	Sections []Section
}

// Spec returns the metadata for a field. Unknown fields report a neutral,
// locale-formatted spec so malformed lookups degrade instead of panicking.
func (r *Ruleset) Spec(f Field) FieldSpec {
	if spec, ok := r.Specs[f]; ok {
		return spec
	}
	return FieldSpec{ID: f, Direction: Neutral, Format: LocaleFormat}
}

// SectionByID returns the section with the given ID, if present.
func (r *Ruleset) SectionByID(id string) (Section, bool) {
	for _, s := range r.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Threshold rules for the absolute-verdict fields. Each ignores peer data by
// construction.
func currentRatioRule(v float64) VerdictClass {
	if v >= 1.5 {
		return BetterClass
	}
	return WorseClass
}

func negativeEpsRule(v float64) VerdictClass {
	if v == 0 {
		return BetterClass
	}
	return WorseClass
}

func epsGrowthRule(v float64) VerdictClass {
	if v > 1 {
		return BetterClass
	}
	return WorseClass
}

func peTimesPbRule(v float64) VerdictClass {
	if v < 30 {
		return BetterClass
	}
	return WorseClass
}

// DefaultRuleset returns the production rule tables: 30 fields across six
// sections, two disjoint directionality sets, four threshold overrides and
// the per-field display formats.
func DefaultRuleset() *Ruleset {
	specs := []FieldSpec{
		{ID: FieldTangEquityOverTotLiab, Direction: HigherBetter, Format: Ratio2Format},
		{ID: FieldCapitalIntensityReverse, Direction: HigherBetter, Format: Ratio2Format},
		{ID: FieldCagrTangibleBook, Direction: HigherBetter, Format: PercentFormat},
		{ID: FieldCagrCashAndEquiv, Direction: HigherBetter, Format: PercentFormat},
		{ID: FieldGoodwillToAssets, Direction: LowerBetter, Format: PercentFormat},
		{ID: FieldLeverageRatio, Direction: LowerBetter, Format: Ratio2Format},
		{ID: FieldInterestCoverage, Direction: HigherBetter, Format: Ratio2Format},
		{ID: FieldRoeTangibleEquity, Direction: HigherBetter, Format: PercentFormat},
		{ID: FieldRoicOverWacc, Direction: HigherBetter, Format: Ratio2Format},
		{ID: FieldRuleOf40, Direction: HigherBetter, Format: HundredFormat},
		{ID: FieldCashConversion, Direction: HigherBetter, Format: PercentFormat},
		{ID: FieldEarningsYield, Direction: HigherBetter, Format: PercentFormat},
		{ID: FieldPriceToEarnings, Direction: LowerBetter, Format: Ratio2Format},
		{ID: FieldFcfYield, Direction: HigherBetter, Format: PercentFormat},
		{ID: FieldPeg, Direction: LowerBetter, Format: Ratio2Format},
		{ID: FieldPriceToTangibleBook, Direction: LowerBetter, Format: Ratio2Format},
		{ID: FieldRelativePEVsHistory, Direction: LowerBetter, Format: Ratio2Format},
		{ID: FieldAvgEpsGrowth5y, Direction: HigherBetter, Format: PercentFormat},
		{ID: FieldAvgRevenueGrowth5y, Direction: HigherBetter, Format: PercentFormat},
		{ID: FieldRevenueGrowthAccel, Direction: HigherBetter, Format: PercentFormat},
		{ID: FieldCagrSharesDiluted, Direction: LowerBetter, Format: PercentFormat},
		{ID: FieldExpectedGrowth10Y, Direction: HigherBetter, Format: PercentFormat},
		{ID: FieldFinalEarnings10Perc, Direction: LowerBetter, Format: BillionsFormat},
		{ID: FieldFinalEarnings15Perc, Direction: LowerBetter, Format: BillionsFormat},
		{ID: FieldAvgRoeGrowth5y, Direction: HigherBetter, Format: PercentFormat},
		{ID: FieldImpliedPerpetualGrowth, Direction: LowerBetter, Format: PercentFormat},
		{ID: FieldCurrentRatio, Direction: HigherBetter, Format: Ratio2Format, Threshold: currentRatioRule},
		{ID: FieldNegativeEpsCount5y, Direction: LowerBetter, Format: CountFormat, Threshold: negativeEpsRule},
		{ID: FieldEpsGrowth5yTotal, Direction: HigherBetter, Format: PercentFormat, Threshold: epsGrowthRule},
		{ID: FieldPeTimesPb, Direction: LowerBetter, Format: Ratio2Format, Threshold: peTimesPbRule},
	}

	rs := &Ruleset{
		Order: make([]Field, 0, len(specs)),
		Specs: make(map[Field]FieldSpec, len(specs)),
		Sections: []Section{
			{
				ID:    "balance-sheet-strength",
				Title: "Balance Sheet Strength",
				Fields: []Field{
					FieldTangEquityOverTotLiab,
					FieldCapitalIntensityReverse,
					FieldCagrTangibleBook,
					FieldCagrCashAndEquiv,
					FieldGoodwillToAssets,
				},
			},
			{
				ID:     "debt-service",
				Title:  "Debt Service",
				Fields: []Field{FieldLeverageRatio, FieldInterestCoverage},
			},
			{
				ID:    "profitability",
				Title: "Profitability",
				Fields: []Field{
					FieldRoeTangibleEquity,
					FieldRoicOverWacc,
					FieldRuleOf40,
					FieldCashConversion,
					FieldAvgRoeGrowth5y,
				},
			},
			{
				ID:    "valuation",
				Title: "Valuation",
				Fields: []Field{
					FieldEarningsYield,
					FieldPriceToEarnings,
					FieldFcfYield,
					FieldPeg,
					FieldPriceToTangibleBook,
					FieldRelativePEVsHistory,
				},
			},
			{
				ID:    "growth",
				Title: "Growth",
				Fields: []Field{
					FieldAvgEpsGrowth5y,
					FieldAvgRevenueGrowth5y,
					FieldRevenueGrowthAccel,
					FieldCagrSharesDiluted,
					FieldExpectedGrowth10Y,
					FieldFinalEarnings10Perc,
					FieldFinalEarnings15Perc,
					FieldImpliedPerpetualGrowth,
				},
			},
			{
				ID:    "graham-value-investor-indicator",
				Title: "Graham Value Investor Indicator",
				Fields: []Field{
					FieldCurrentRatio,
					FieldNegativeEpsCount5y,
					FieldEpsGrowth5yTotal,
					FieldPeTimesPb,
				},
			},
		},
	}

	for _, spec := range specs {
		rs.Order = append(rs.Order, spec.ID)
		rs.Specs[spec.ID] = spec
	}
	return rs
}
