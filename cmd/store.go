package cmd

import (
	"fmt"
	"strings"

	"github.com/peerscore/peerscore/internal/contract"
	"github.com/peerscore/peerscore/internal/outwriter"
	"github.com/peerscore/peerscore/internal/scorestore"
	"github.com/peerscore/peerscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values. Store commands address the store
	// directly, so an unset backend means the SQLite default, not none.
	backendStr := strings.ToLower(viper.GetString("store-backend"))
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.SQLiteBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend %q: must be sqlite, mysql, postgresql or none", backendStr)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = viper.GetString("store-db-connect")

	// Output-related config values (used by status and export)
	output := schema.OutputMode(strings.ToLower(viper.GetString("output")))
	if output == "" {
		output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q: must be text, csv, json or parquet", viper.GetString("output"))
	}
	cfg.Output = output
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeCmd focused on run tracking data management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by scoring commands. This avoids dataset loading
// and config validation for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage scoring run tracking and exports",
	Long: `Manage the historical run store used for trend tracking and reporting.

When enabled, peerscore tracks every scoring run, storing:
- Run metadata (timestamp, dataset path, duration)
- Per-company section tallies and grades

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run tracking statistics
  export  - Export score rows for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  peerscore store status

  # Export for analysis in pandas/DuckDB
  peerscore store export --output parquet --output-file scores.parquet`,
}

// storeStatusCmd shows run store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about the run store.

Displays the backend type, database location, the number of recorded
runs and the number of stored section scores.

Examples:
  # Check run tracking status
  peerscore store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := scorestore.NewScoreStore(cfg.StoreBackend, cfg.StoreDBConnect)
		if err != nil {
			contract.LogFatal("Failed to open run store", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		if err := outwriter.WriteStoreStatusResults(status, cfg); err != nil {
			contract.LogFatal("Failed to write store status", err)
		}
	},
}

// storeClearCmd clears the run tracking data.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical run tracking data",
	Long: `Delete all stored scoring runs and section score history.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  peerscore store export --output parquet --output-file backup.parquet
  peerscore store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := scorestore.NewScoreStore(cfg.StoreBackend, cfg.StoreDBConnect)
		if err != nil {
			contract.LogFatal("Failed to open run store", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear run store", err)
		}
		fmt.Println("Run tracking data cleared successfully.")
	},
}

// storeExportCmd exports stored score rows.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored score rows for BI tools and analytics",
	Long: `Export every recorded section score row from the run store.

Parquet output enables fast querying with DuckDB, Apache Spark and
pandas; CSV and JSON work for spreadsheets and scripts.

Examples:
  # Export all score rows to Parquet
  peerscore store export --output parquet --output-file scores.parquet

  # Quick look at recent rows
  peerscore store export`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := scorestore.NewScoreStore(cfg.StoreBackend, cfg.StoreDBConnect)
		if err != nil {
			contract.LogFatal("Failed to open run store", err)
		}
		defer func() { _ = store.Close() }()

		rows, err := store.ExportRows()
		if err != nil {
			contract.LogFatal("Failed to export run store", err)
		}
		if err := outwriter.WriteStoredScores(rows, cfg); err != nil {
			contract.LogFatal("Failed to write export", err)
		}
	},
}

// storeMigrateCmd runs database migrations for the run store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  peerscore store migrate

  # Rollback to initial state
  peerscore store migrate --target-version 0`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := scorestore.Migrate(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
