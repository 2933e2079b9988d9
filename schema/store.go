package schema

import "time"

// StoreStatus holds status information about the run-tracking store.
type StoreStatus struct {
	Backend  DatabaseBackend `json:"backend"`
	Location string          `json:"location"` // File path for sqlite, DSN host for servers
	Runs     int             `json:"runs"`
	Scores   int             `json:"scores"`
}

// StoredScore is one persisted section tally, flattened for export.
type StoredScore struct {
	RunID      int64     `json:"run_id" parquet:"run_id,snappy"`
	Symbol     string    `json:"symbol" parquet:"symbol,snappy"`
	Section    string    `json:"section" parquet:"section,snappy"`
	Better     int32     `json:"better" parquet:"better,snappy"`
	Evaluable  int32     `json:"evaluable" parquet:"evaluable,snappy"`
	Grade      string    `json:"grade" parquet:"grade,snappy"`
	RecordedAt time.Time `json:"recorded_at" parquet:"recorded_at,snappy"`
}
