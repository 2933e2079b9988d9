package dataset

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// missingMarkers are cell spellings that mean "no value" rather than zero.
var missingMarkers = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
}

// ParseCell converts one textual cell into a usable float. The second return
// is false for empty cells, missing markers and anything non-numeric.
func ParseCell(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if _, missing := missingMarkers[strings.ToLower(s)]; missing {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// CoerceValue converts a decoded JSON value into a usable float.
func CoerceValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		return ParseCell(v)
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
