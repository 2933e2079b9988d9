// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/peerscore/peerscore/internal/contract"
	"github.com/peerscore/peerscore/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScorecard prints one company's scorecard using the configured output format.
func (ow *OutWriter) WriteScorecard(card schema.Scorecard, cfg *contract.Config, duration time.Duration) error {
	return WriteScorecardResults(card, cfg, duration)
}

// WriteScreen prints ranked screen results using the configured output format.
func (ow *OutWriter) WriteScreen(rows []schema.ScreenRow, cfg *contract.Config, duration time.Duration) error {
	return WriteScreenResults(rows, cfg, duration)
}

// WriteMedians prints the peer median table using the configured output format.
func (ow *OutWriter) WriteMedians(rs *schema.Ruleset, medians schema.MedianTable, cfg *contract.Config) error {
	return WriteMedianResults(rs, medians, cfg)
}

// WriteStoreStatus prints run-store status using the configured output format.
func (ow *OutWriter) WriteStoreStatus(status schema.StoreStatus, cfg *contract.Config) error {
	return WriteStoreStatusResults(status, cfg)
}

// GetMaxTableSymbolWidth calculates the maximum width for symbols in table
// output based on terminal width and table configuration.
func GetMaxTableSymbolWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 30 // Rank + tallies + grade with borders/padding

	if cfg.Explain {
		baseWidth += 15 // Ratio column with formatting
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 15

	available := termWidth - baseWidth
	if available < 8 {
		// Minimum reasonable symbol width
		return 8
	}
	if available > 30 {
		// Symbols never need more than this
		return 30
	}
	return available
}
