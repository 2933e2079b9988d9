package cmd

import (
	"time"

	"github.com/peerscore/peerscore/core"
	"github.com/peerscore/peerscore/internal/contract"
	"github.com/peerscore/peerscore/internal/outwriter"
	"github.com/peerscore/peerscore/schema"
	"github.com/spf13/cobra"
)

// screenCmd ranks every company in the dataset.
var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Rank all companies by share of metrics beating the peer median.",
	Long: `Screen the whole dataset and rank companies by overall strength.

Every company is scored against the same peer medians, then ranked by the
share of evaluable metrics that beat the median. Ties break alphabetically
so output is stable across runs.

Examples:
  # Top 25 companies (default limit)
  peerscore screen --data peers.csv

  # Top 10 with ratios shown
  peerscore screen --data peers.csv --limit 10 --explain

  # Export the full ranking for a spreadsheet
  peerscore screen --data peers.csv --limit 1000 --output csv --output-file screen.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()

		inputs, err := loadScoringInputs()
		if err != nil {
			contract.LogFatal("Cannot load dataset", err)
		}

		rows := core.Screen(inputs.ruleset, inputs.records, inputs.medians, cfg.ResultLimit)

		if cfg.StoreBackend != schema.NoneBackend {
			bySymbol := make(map[string]schema.Record, len(inputs.records))
			for _, rec := range inputs.records {
				bySymbol[rec.Symbol] = rec
			}
			cards := make([]schema.Scorecard, 0, len(rows))
			for _, row := range rows {
				if rec, ok := bySymbol[row.Symbol]; ok {
					cards = append(cards, core.BuildScorecard(inputs.ruleset, rec, inputs.medians))
				}
			}
			recordRun(start, cards, len(inputs.records))
		}

		ow := outwriter.NewOutWriter()
		if err := ow.WriteScreen(rows, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write screen results", err)
		}
	},
}
