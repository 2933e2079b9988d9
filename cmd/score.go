package cmd

import (
	"fmt"
	"time"

	"github.com/peerscore/peerscore/core"
	"github.com/peerscore/peerscore/internal/contract"
	"github.com/peerscore/peerscore/internal/dataset"
	"github.com/peerscore/peerscore/internal/outwriter"
	"github.com/peerscore/peerscore/schema"
	"github.com/spf13/cobra"
)

// scoreCmd scores one company against its peer medians.
var scoreCmd = &cobra.Command{
	Use:   "score <symbol>",
	Short: "Score one company's metrics against the peer medians.",
	Long: `Build a full scorecard for one company.

Each tracked metric is compared to the median of its peers, with a 15%
tolerance band around the median. Absolute threshold rules override the
median comparison for a few fields (e.g. current ratio, EPS history).
Sections are then graded Strong, Mixed or Weak from the share of metrics
beating the median.

Examples:
  # Score Apple against the peer dataset
  peerscore score AAPL --data peers.csv

  # Listing-qualified symbols match on the base ticker too
  peerscore score AAPL:US --data peers.csv

  # Show per-section tallies and export as JSON
  peerscore score AAPL --data peers.csv --explain --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		start := time.Now()

		inputs, err := loadScoringInputs()
		if err != nil {
			contract.LogFatal("Cannot load dataset", err)
		}

		symbol := args[0]
		rec, ok := dataset.FindRecord(inputs.records, symbol)
		if !ok {
			contract.LogFatal("Cannot score symbol", fmt.Errorf("symbol %q not found in dataset", symbol))
		}

		card := core.BuildScorecard(inputs.ruleset, rec, inputs.medians)
		recordRun(start, []schema.Scorecard{card}, len(inputs.records))

		ow := outwriter.NewOutWriter()
		if err := ow.WriteScorecard(card, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write scorecard", err)
		}
	},
}
