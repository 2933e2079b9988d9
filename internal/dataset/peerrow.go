package dataset

import (
	"strings"

	"github.com/peerscore/peerscore/schema"
)

// peerRow is the parquet shape of one dataset row. Every metric column is
// optional so partial rows survive the read.
type peerRow struct {
	Symbol string `parquet:"symbol,snappy,optional"`

	TangEquityOverTotLiab   *float64 `parquet:"tang_equity_over_tot_liab,snappy,optional"`
	CapitalIntensityReverse *float64 `parquet:"capital_intensity_reverse,snappy,optional"`
	CagrTangibleBook        *float64 `parquet:"cagr_tangible_book_per_share,snappy,optional"`
	CagrCashAndEquiv        *float64 `parquet:"cagr_cash_and_equiv,snappy,optional"`
	GoodwillToAssets        *float64 `parquet:"goodwill_to_assets,snappy,optional"`
	LeverageRatio           *float64 `parquet:"leverage_ratio,snappy,optional"`
	InterestCoverage        *float64 `parquet:"interest_coverage_ratio,snappy,optional"`
	RoeTangibleEquity       *float64 `parquet:"roe_tangible_equity,snappy,optional"`
	RoicOverWacc            *float64 `parquet:"roic_over_wacc,snappy,optional"`
	RuleOf40                *float64 `parquet:"rule_of_40,snappy,optional"`
	CashConversion          *float64 `parquet:"cash_conversion_ratio,snappy,optional"`
	EarningsYield           *float64 `parquet:"earnings_yield,snappy,optional"`
	PriceToEarnings         *float64 `parquet:"price_to_earnings,snappy,optional"`
	FcfYield                *float64 `parquet:"fcf_yield,snappy,optional"`
	Peg                     *float64 `parquet:"peg,snappy,optional"`
	PriceToTangibleBook     *float64 `parquet:"price_to_tangible_book,snappy,optional"`
	RelativePEVsHistory     *float64 `parquet:"relative_PE_vs_history,snappy,optional"`
	AvgEpsGrowth5y          *float64 `parquet:"avg_5years_eps_growth,snappy,optional"`
	AvgRevenueGrowth5y      *float64 `parquet:"avg_5years_revenue_growth,snappy,optional"`
	RevenueGrowthAccel      *float64 `parquet:"revenue_growth_acceleration,snappy,optional"`
	CagrSharesDiluted       *float64 `parquet:"cagr_shares_diluted,snappy,optional"`
	ExpectedGrowth10Y       *float64 `parquet:"expected_growth_market_cap_10Y,snappy,optional"`
	FinalEarnings10Perc     *float64 `parquet:"final_earnings_for_10y_growth_10perc,snappy,optional"`
	FinalEarnings15Perc     *float64 `parquet:"final_earnings_for_10y_growth_15perc,snappy,optional"`
	AvgRoeGrowth5y          *float64 `parquet:"avg_5years_roe_growth,snappy,optional"`
	ImpliedPerpetualGrowth  *float64 `parquet:"implied_perpetual_growth_curr_market_cap,snappy,optional"`
	CurrentRatio            *float64 `parquet:"current_ratio,snappy,optional"`
	NegativeEpsCount5y      *float64 `parquet:"negative_eps_count_5y,snappy,optional"`
	EpsGrowth5yTotal        *float64 `parquet:"eps_growth_5y_total,snappy,optional"`
	PeTimesPb               *float64 `parquet:"pe_times_pb,snappy,optional"`
}

func (r peerRow) columns() map[schema.Field]*float64 {
	return map[schema.Field]*float64{
		schema.FieldTangEquityOverTotLiab:   r.TangEquityOverTotLiab,
		schema.FieldCapitalIntensityReverse: r.CapitalIntensityReverse,
		schema.FieldCagrTangibleBook:        r.CagrTangibleBook,
		schema.FieldCagrCashAndEquiv:        r.CagrCashAndEquiv,
		schema.FieldGoodwillToAssets:        r.GoodwillToAssets,
		schema.FieldLeverageRatio:           r.LeverageRatio,
		schema.FieldInterestCoverage:        r.InterestCoverage,
		schema.FieldRoeTangibleEquity:       r.RoeTangibleEquity,
		schema.FieldRoicOverWacc:            r.RoicOverWacc,
		schema.FieldRuleOf40:                r.RuleOf40,
		schema.FieldCashConversion:          r.CashConversion,
		schema.FieldEarningsYield:           r.EarningsYield,
		schema.FieldPriceToEarnings:         r.PriceToEarnings,
		schema.FieldFcfYield:                r.FcfYield,
		schema.FieldPeg:                     r.Peg,
		schema.FieldPriceToTangibleBook:     r.PriceToTangibleBook,
		schema.FieldRelativePEVsHistory:     r.RelativePEVsHistory,
		schema.FieldAvgEpsGrowth5y:          r.AvgEpsGrowth5y,
		schema.FieldAvgRevenueGrowth5y:      r.AvgRevenueGrowth5y,
		schema.FieldRevenueGrowthAccel:      r.RevenueGrowthAccel,
		schema.FieldCagrSharesDiluted:       r.CagrSharesDiluted,
		schema.FieldExpectedGrowth10Y:       r.ExpectedGrowth10Y,
		schema.FieldFinalEarnings10Perc:     r.FinalEarnings10Perc,
		schema.FieldFinalEarnings15Perc:     r.FinalEarnings15Perc,
		schema.FieldAvgRoeGrowth5y:          r.AvgRoeGrowth5y,
		schema.FieldImpliedPerpetualGrowth:  r.ImpliedPerpetualGrowth,
		schema.FieldCurrentRatio:            r.CurrentRatio,
		schema.FieldNegativeEpsCount5y:      r.NegativeEpsCount5y,
		schema.FieldEpsGrowth5yTotal:        r.EpsGrowth5yTotal,
		schema.FieldPeTimesPb:               r.PeTimesPb,
	}
}

func (r peerRow) toRecord(rs *schema.Ruleset) schema.Record {
	rec := schema.Record{
		Symbol: strings.ToUpper(strings.TrimSpace(r.Symbol)),
		Values: make(map[schema.Field]float64),
	}
	for field, ptr := range r.columns() {
		if ptr == nil {
			continue
		}
		if _, known := rs.Specs[field]; !known {
			continue
		}
		if v, ok := CoerceValue(*ptr); ok {
			rec.Values[field] = v
		}
	}
	return rec
}
