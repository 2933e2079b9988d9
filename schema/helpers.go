package schema

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatMetric renders a metric value per its display format rule. Absent and
// NaN values always render the N/A sentinel, never zero or blank.
func FormatMetric(value *float64, kind FormatKind) string {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return NASentinel
	}
	v := *value
	switch kind {
	case Ratio2Format:
		return fmt.Sprintf("%.2f", v)
	case PercentFormat:
		return fmt.Sprintf("%.2f%%", v*100)
	case BillionsFormat:
		return fmt.Sprintf("%.2fB", v/1e9)
	case CountFormat:
		return fmt.Sprintf("%.0f", v)
	case HundredFormat:
		return fmt.Sprintf("%.2f", v*100)
	default:
		// Fixed two decimals; CommafWithDigits would trim "2.50" to "2.5".
		return humanize.FormatFloat("#,###.##", v)
	}
}

// Float64Ptr returns a pointer to v. Handy for building optional metric
// values in results and tests.
func Float64Ptr(v float64) *float64 {
	return &v
}
