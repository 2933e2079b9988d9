// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/peerscore/peerscore/schema"
)

// RunStore defines the interface for tracking scoring runs and storing
// per-company section scores. This allows the store layer to be mocked for
// testing and disabled with a no-op backend.
type RunStore interface {
	// BeginRun creates a new scoring run and returns its unique ID.
	BeginRun(startTime time.Time, datasetPath string, rowCount int) (int64, error)

	// RecordScorecard stores the section tallies for one company in a run.
	RecordScorecard(runID int64, card schema.Scorecard) error

	// EndRun updates the run with completion data.
	EndRun(runID int64, endTime time.Time, companies int) error

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Clear removes all recorded runs and scores.
	Clear() error

	// ExportRows returns every recorded score row for Parquet export.
	ExportRows() ([]schema.StoredScore, error)

	// Close closes the underlying connection.
	Close() error
}
