package cmd

import (
	"fmt"
	"time"

	"github.com/peerscore/peerscore/core"
	"github.com/peerscore/peerscore/internal/contract"
	"github.com/peerscore/peerscore/internal/dataset"
	"github.com/peerscore/peerscore/internal/scorestore"
	"github.com/peerscore/peerscore/schema"
)

// scoringInputs bundles everything a scoring command needs from the dataset.
type scoringInputs struct {
	ruleset *schema.Ruleset
	records []schema.Record
	medians schema.MedianTable
}

// loadScoringInputs loads the configured dataset and computes peer medians.
func loadScoringInputs() (*scoringInputs, error) {
	rs := schema.DefaultRuleset()
	records, err := dataset.Load(cfg.DataPath, cfg.DataFormat, rs)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s has no rows", cfg.DataPath)
	}
	return &scoringInputs{
		ruleset: rs,
		records: records,
		medians: core.ComputeMedians(rs, records),
	}, nil
}

// recordRun persists scorecards when run tracking is enabled. Store failures
// warn instead of aborting; the scoring output still matters more.
func recordRun(start time.Time, cards []schema.Scorecard, rowCount int) {
	if cfg.StoreBackend == schema.NoneBackend {
		return
	}

	store, err := scorestore.NewScoreStore(cfg.StoreBackend, cfg.StoreDBConnect)
	if err != nil {
		contract.LogWarn("run tracking disabled", err)
		return
	}
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(start, cfg.DataPath, rowCount)
	if err != nil {
		contract.LogWarn("failed to begin run", err)
		return
	}
	for _, card := range cards {
		if err := store.RecordScorecard(runID, card); err != nil {
			contract.LogWarn("failed to record scorecard", err)
			return
		}
	}
	if err := store.EndRun(runID, time.Now(), len(cards)); err != nil {
		contract.LogWarn("failed to end run", err)
	}
}
