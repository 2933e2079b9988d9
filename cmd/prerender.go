package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/peerscore/peerscore/internal/contract"
	"github.com/peerscore/peerscore/internal/dataset"
	"github.com/peerscore/peerscore/internal/sitegen"
	"github.com/spf13/cobra"
)

// assetPrefixFor points page-relative asset links back at the site root.
func assetPrefixFor(outDir string) string {
	clean := filepath.ToSlash(filepath.Clean(outDir))
	if clean == "." || clean == "" {
		return ""
	}
	depth := strings.Count(clean, "/") + 1
	return strings.Repeat("../", depth)
}

// prerenderCmd renders static scorecard pages.
var prerenderCmd = &cobra.Command{
	Use:   "prerender [symbols...]",
	Short: "Render static scorecard pages for a set of symbols.",
	Long: `Prerender one HTML scorecard page per symbol into the output directory.

Symbols come from the command line, or from a rankings JSON file when none
are given. Stale pages from symbols no longer in the list are removed
unless --no-clean is set. Symbols without a dataset row are skipped.

Examples:
  # Render two specific pages
  peerscore prerender AAPL MSFT --data peers.csv

  # Batch render from a rankings export
  peerscore prerender --data peers.csv --rankings rankings.json

  # Keep stale pages around
  peerscore prerender --data peers.csv --rankings rankings.json --no-clean`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		symbols := args
		if len(symbols) == 0 && cfg.RankingsPath != "" {
			loaded, err := dataset.LoadRankingSymbols(cfg.RankingsPath, 0)
			if err != nil {
				contract.LogFatal("Cannot load rankings", err)
			}
			symbols = loaded
		}
		if len(symbols) == 0 {
			contract.LogFatal("Cannot prerender", fmt.Errorf("no symbols given; pass symbols or --rankings"))
		}

		inputs, err := loadScoringInputs()
		if err != nil {
			contract.LogFatal("Cannot load dataset", err)
		}

		result, err := sitegen.PrerenderBatch(
			inputs.ruleset, inputs.records, inputs.medians,
			symbols, cfg.OutDir, assetPrefixFor(cfg.OutDir), cfg.NoClean,
		)
		if err != nil {
			contract.LogFatal("Cannot prerender pages", err)
		}

		fmt.Printf("Batch prerender: %d page(s) -> %s\n", result.Written, cfg.OutDir)
		if result.Skipped > 0 {
			fmt.Printf("Skipped %d symbol(s) with no dataset row\n", result.Skipped)
		}
		if result.Cleaned > 0 {
			fmt.Printf("Cleaned: removed %d stale HTML file(s) from %s\n", result.Cleaned, cfg.OutDir)
		}
	},
}
