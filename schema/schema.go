// Package schema has rulesets, models and constants for all parts of peerscore.
package schema

// Record is one company's row in the peer dataset. Values holds only the
// metrics that carried a usable numeric cell; a missing key means the source
// cell was empty, non-numeric or NaN.
type Record struct {
	Symbol string            // Ticker symbol as it appeared in the source, uppercased
	Values map[Field]float64 // Usable numeric metric values keyed by field
}

// Value returns the numeric value for a field and whether it is usable.
func (r Record) Value(f Field) (float64, bool) {
	v, ok := r.Values[f]
	return v, ok
}

// MedianTable maps each field to the median of its usable values across the
// peer dataset. A missing key means no peer carried a usable value.
type MedianTable map[Field]float64

// Median returns the peer median for a field and whether one exists.
func (t MedianTable) Median(f Field) (float64, bool) {
	v, ok := t[f]
	return v, ok
}

// Verdict is the classification of one metric value against its peers.
type Verdict struct {
	Class VerdictClass `json:"class"` // better, worse or equal
	Glyph string       `json:"glyph"` // Display glyph (▲ ▼ ▬)
}

// MetricResult is one scored metric row of a scorecard.
type MetricResult struct {
	Field         Field    `json:"field"`
	Value         *float64 `json:"value,omitempty"`
	Median        *float64 `json:"median,omitempty"`
	Verdict       Verdict  `json:"verdict"`
	Display       string   `json:"display"`        // Formatted value ("N/A" when missing)
	MedianDisplay string   `json:"median_display"` // Formatted peer median
}

// SectionScore counts better verdicts against evaluable fields for a section.
// Better never exceeds Evaluable, and Evaluable never exceeds the number of
// fields in the section.
type SectionScore struct {
	Better    int `json:"better"`
	Evaluable int `json:"evaluable"`
}

// Ratio returns Better/Evaluable, or 0 when nothing was evaluable.
func (s SectionScore) Ratio() float64 {
	if s.Evaluable == 0 {
		return 0
	}
	return float64(s.Better) / float64(s.Evaluable)
}

// SectionResult is one scored section of a scorecard.
type SectionResult struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Score   SectionScore   `json:"score"`
	Grade   Grade          `json:"grade"`
	Metrics []MetricResult `json:"metrics"`
}

// Scorecard is the full scored view of one company against its peers.
type Scorecard struct {
	Symbol       string          `json:"symbol"`
	Sections     []SectionResult `json:"sections"`
	Overall      SectionScore    `json:"overall"`
	OverallGrade Grade           `json:"overall_grade"`
}

// ScreenRow is one entry of a ranked company screen.
type ScreenRow struct {
	Rank      int     `json:"rank"`
	Symbol    string  `json:"symbol"`
	Better    int     `json:"better"`
	Evaluable int     `json:"evaluable"`
	Ratio     float64 `json:"ratio"`
	Grade     Grade   `json:"grade"`
}
