package cmd

import (
	"github.com/peerscore/peerscore/internal/contract"
	"github.com/peerscore/peerscore/internal/outwriter"
	"github.com/spf13/cobra"
)

// mediansCmd prints the peer median for every tracked metric.
var mediansCmd = &cobra.Command{
	Use:   "medians",
	Short: "Show the peer median for every tracked metric.",
	Long: `Compute and display the peer medians the scorer compares against.

Only usable numeric values feed each median; missing cells are ignored
rather than treated as zero. A metric with no usable values across the
dataset shows as N/A.

Examples:
  # Inspect the medians behind a scorecard
  peerscore medians --data peers.csv

  # Machine-readable medians
  peerscore medians --data peers.csv --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		inputs, err := loadScoringInputs()
		if err != nil {
			contract.LogFatal("Cannot load dataset", err)
		}

		ow := outwriter.NewOutWriter()
		if err := ow.WriteMedians(inputs.ruleset, inputs.medians, cfg); err != nil {
			contract.LogFatal("Cannot write medians", err)
		}
	},
}
