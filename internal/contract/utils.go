package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/peerscore/peerscore/schema"
)

// Color variables for console output.
var (
	BetterColor = color.New(color.FgGreen, color.Bold) // better beats the peer median
	WorseColor  = color.New(color.FgRed, color.Bold)   // worse trails the peer median
	EqualColor  = color.New(color.FgYellow)            // equal / indeterminate

	StrongColor = color.New(color.FgGreen, color.Bold)
	MixedColor  = color.New(color.FgYellow)
	WeakColor   = color.New(color.FgRed, color.Bold)
)

// GlyphLabel returns the verdict glyph, colored when enabled.
func GlyphLabel(v schema.Verdict, useColors bool) string {
	if !useColors {
		return v.Glyph
	}
	switch v.Class {
	case schema.BetterClass:
		return BetterColor.Sprint(v.Glyph)
	case schema.WorseClass:
		return WorseColor.Sprint(v.Glyph)
	default:
		return EqualColor.Sprint(v.Glyph)
	}
}

// GradeDisplay returns the grade's display label, colored when enabled.
func GradeDisplay(g schema.Grade, useColors bool) string {
	text := schema.GradeLabel(g)
	if !useColors {
		return text
	}
	switch g {
	case schema.GoodGrade:
		return StrongColor.Sprint(text)
	case schema.PoorGrade:
		return WeakColor.Sprint(text)
	default:
		return MixedColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateSymbol truncates a symbol to a maximum width with ellipsis suffix.
func TruncateSymbol(symbol string, maxWidth int) string {
	runes := []rune(symbol)
	if maxWidth > 3 && len(runes) > maxWidth {
		return string(runes[:maxWidth-3]) + "..."
	}
	return symbol
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
}
