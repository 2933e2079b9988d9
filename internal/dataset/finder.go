package dataset

import (
	"regexp"
	"strings"

	"github.com/peerscore/peerscore/schema"
)

var symbolCleanup = regexp.MustCompile(`[^A-Z0-9\-._]`)

// SanitizeSymbol normalizes a user-supplied ticker into a safe identifier
// usable in file names and URLs. An input with nothing salvageable becomes
// the literal "SYMBOL".
func SanitizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	s = strings.NewReplacer(":", "-", "/", "-", "\\", "-").Replace(s)
	s = strings.Join(strings.Fields(s), "-")
	s = symbolCleanup.ReplaceAllString(s, "")
	if s == "" {
		return "SYMBOL"
	}
	return s
}

// baseTicker strips a listing qualifier, so "AAPL:US" matches "AAPL".
func baseTicker(symbol string) string {
	if i := strings.Index(symbol, ":"); i >= 0 {
		return symbol[:i]
	}
	return symbol
}

// FindRecord locates the record for a symbol. Exact matches win; otherwise
// the base ticker before any listing suffix is compared on both sides.
func FindRecord(records []schema.Record, symbol string) (schema.Record, bool) {
	want := strings.ToUpper(strings.TrimSpace(symbol))
	if want == "" {
		return schema.Record{}, false
	}
	for _, rec := range records {
		if rec.Symbol == want {
			return rec, true
		}
	}
	wantBase := baseTicker(want)
	for _, rec := range records {
		if baseTicker(rec.Symbol) == wantBase {
			return rec, true
		}
	}
	return schema.Record{}, false
}
