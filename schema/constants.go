package schema

// Custom string types for type safety.
type (
	// Field identifies one tracked financial metric.
	Field string

	// Direction tags which way a metric is favorable.
	Direction string

	// VerdictClass represents the better/worse/equal classification.
	VerdictClass string

	// Grade represents a section-level grade derived from a SectionScore.
	Grade string

	// FormatKind represents the display format rule of a field.
	FormatKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// All metric fields tracked per company.
const (
	FieldTangEquityOverTotLiab   Field = "tang_equity_over_tot_liab"
	FieldCapitalIntensityReverse Field = "capital_intensity_reverse"
	FieldCagrTangibleBook        Field = "cagr_tangible_book_per_share"
	FieldCagrCashAndEquiv        Field = "cagr_cash_and_equiv"
	FieldGoodwillToAssets        Field = "goodwill_to_assets"
	FieldLeverageRatio           Field = "leverage_ratio"
	FieldInterestCoverage        Field = "interest_coverage_ratio"
	FieldRoeTangibleEquity       Field = "roe_tangible_equity"
	FieldRoicOverWacc            Field = "roic_over_wacc"
	FieldRuleOf40                Field = "rule_of_40"
	FieldCashConversion          Field = "cash_conversion_ratio"
	FieldEarningsYield           Field = "earnings_yield"
	FieldPriceToEarnings         Field = "price_to_earnings"
	FieldFcfYield                Field = "fcf_yield"
	FieldPeg                     Field = "peg"
	FieldPriceToTangibleBook     Field = "price_to_tangible_book"
	FieldRelativePEVsHistory     Field = "relative_PE_vs_history"
	FieldAvgEpsGrowth5y          Field = "avg_5years_eps_growth"
	FieldAvgRevenueGrowth5y      Field = "avg_5years_revenue_growth"
	FieldRevenueGrowthAccel      Field = "revenue_growth_acceleration"
	FieldCagrSharesDiluted       Field = "cagr_shares_diluted"
	FieldExpectedGrowth10Y       Field = "expected_growth_market_cap_10Y"
	FieldFinalEarnings10Perc     Field = "final_earnings_for_10y_growth_10perc"
	FieldFinalEarnings15Perc     Field = "final_earnings_for_10y_growth_15perc"
	FieldAvgRoeGrowth5y          Field = "avg_5years_roe_growth"
	FieldImpliedPerpetualGrowth  Field = "implied_perpetual_growth_curr_market_cap"
	FieldCurrentRatio            Field = "current_ratio"
	FieldNegativeEpsCount5y      Field = "negative_eps_count_5y"
	FieldEpsGrowth5yTotal        Field = "eps_growth_5y_total"
	FieldPeTimesPb               Field = "pe_times_pb"
)

// All directionality tags. A field belongs to exactly one.
const (
	HigherBetter Direction = "higher" // Larger values beat the peer median
	LowerBetter  Direction = "lower"  // Smaller values beat the peer median
	Neutral      Direction = "neutral" // Median comparison always lands on equal
)

// All verdict classes.
const (
	BetterClass VerdictClass = "better"
	WorseClass  VerdictClass = "worse"
	EqualClass  VerdictClass = "equal"
)

// Display glyphs for each verdict class.
const (
	BetterGlyph = "▲"
	WorseGlyph  = "▼"
	EqualGlyph  = "▬"
)

// All section grades.
const (
	GoodGrade  Grade = "good"
	MixedGrade Grade = "mixed"
	PoorGrade  Grade = "poor"
)

// All display format rules.
const (
	Ratio2Format   FormatKind = "ratio2"   // Two-decimal ratio
	PercentFormat  FormatKind = "percent"  // ×100 with two decimals plus "%"
	BillionsFormat FormatKind = "billions" // Scaled to billions with "B" suffix
	CountFormat    FormatKind = "count"    // Integer count
	HundredFormat  FormatKind = "hundred"  // ×100 with two decimals, no suffix
	LocaleFormat   FormatKind = "locale"   // Grouped two-decimal default
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Behavioral constants of the classifier. Existing scorecard pages treat
// these as contracts; do not tune them.
const (
	// MedianBand is the symmetric tolerance applied around the peer median.
	MedianBand = 0.15

	// MedianEpsilon is the cutoff below which a median counts as zero and
	// percentage bands give way to strict comparison.
	MedianEpsilon = 1e-12

	// GoodCutoff and MixedCutoff are the grade boundaries on better/evaluable.
	GoodCutoff  = 0.70
	MixedCutoff = 0.40
)

// NASentinel is how absent or non-numeric values always format.
const NASentinel = "N/A"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// VerdictFor returns the verdict with the display glyph for a class.
func VerdictFor(class VerdictClass) Verdict {
	switch class {
	case BetterClass:
		return Verdict{Class: BetterClass, Glyph: BetterGlyph}
	case WorseClass:
		return Verdict{Class: WorseClass, Glyph: WorseGlyph}
	default:
		return Verdict{Class: EqualClass, Glyph: EqualGlyph}
	}
}

// GradeFor derives a grade from a section score. A section with nothing
// evaluable grades mixed; absence of data is not penalized.
func GradeFor(score SectionScore) Grade {
	if score.Evaluable == 0 {
		return MixedGrade
	}
	ratio := score.Ratio()
	switch {
	case ratio >= GoodCutoff:
		return GoodGrade
	case ratio >= MixedCutoff:
		return MixedGrade
	default:
		return PoorGrade
	}
}

// GradeLabel maps a grade to its scorecard display label.
func GradeLabel(g Grade) string {
	switch g {
	case GoodGrade:
		return "Strong"
	case PoorGrade:
		return "Weak"
	default:
		return "Mixed"
	}
}
