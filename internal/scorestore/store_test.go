package scorestore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/peerscore/peerscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScorecard(symbol string) schema.Scorecard {
	return schema.Scorecard{
		Symbol: symbol,
		Sections: []schema.SectionResult{
			{
				ID:    "balance-sheet-strength",
				Score: schema.SectionScore{Better: 3, Evaluable: 5},
				Grade: schema.MixedGrade,
			},
			{
				ID:    "valuation",
				Score: schema.SectionScore{Better: 5, Evaluable: 6},
				Grade: schema.GoodGrade,
			},
		},
	}
}

func TestScoreStoreSQLiteLifecycle(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewScoreStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	start := time.Now().UTC()
	runID, err := store.BeginRun(start, "peers.csv", 40)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	require.NoError(t, store.RecordScorecard(runID, testScorecard("AAPL")))
	require.NoError(t, store.RecordScorecard(runID, testScorecard("MSFT")))
	require.NoError(t, store.EndRun(runID, start.Add(time.Second), 2))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.Equal(t, dbPath, status.Location)
	assert.Equal(t, 1, status.Runs)
	assert.Equal(t, 4, status.Scores)

	rows, err := store.ExportRows()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, runID, rows[0].RunID)
	assert.Equal(t, "AAPL", rows[0].Symbol)
	assert.Equal(t, "balance-sheet-strength", rows[0].Section)
	assert.Equal(t, int32(3), rows[0].Better)
	assert.Equal(t, int32(5), rows[0].Evaluable)
	assert.False(t, rows[0].RecordedAt.IsZero())

	require.NoError(t, store.Clear())
	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 0, status.Runs)
	assert.Equal(t, 0, status.Scores)
}

func TestScoreStoreSecondRunGetsNewID(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewScoreStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	first, err := store.BeginRun(time.Now(), "peers.csv", 10)
	require.NoError(t, err)
	second, err := store.BeginRun(time.Now(), "peers.csv", 10)
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestScoreStoreNoneBackendIsNoop(t *testing.T) {
	store, err := NewScoreStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(time.Now(), "peers.csv", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	require.NoError(t, store.RecordScorecard(runID, testScorecard("AAPL")))
	require.NoError(t, store.EndRun(runID, time.Now(), 1))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.NoneBackend, status.Backend)
	assert.Equal(t, 0, status.Runs)

	rows, err := store.ExportRows()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestScoreStoreRejectsUnknownBackend(t *testing.T) {
	_, err := NewScoreStore(schema.DatabaseBackend("redis"), "")
	assert.Error(t, err)
}

func TestMigrateSQLiteUpAndDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	require.NoError(t, Migrate(schema.SQLiteBackend, dbPath, -1))

	// Migrated tables accept writes through the store
	store, err := NewScoreStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	_, err = store.BeginRun(time.Now(), "peers.csv", 1)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	require.NoError(t, Migrate(schema.SQLiteBackend, dbPath, 0))
}

func TestMigrateRejectsNoneBackend(t *testing.T) {
	assert.Error(t, Migrate(schema.NoneBackend, "", -1))
}
