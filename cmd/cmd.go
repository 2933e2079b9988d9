// Package cmd defines the command-line interface for peerscore.
package cmd

import (
	"github.com/peerscore/peerscore/internal/contract"
	"github.com/peerscore/peerscore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(mediansCmd)
	rootCmd.AddCommand(prerenderCmd)
	rootCmd.AddCommand(sitemapCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("data", "d", "", "Path to the peer dataset (csv, json or parquet)")
	rootCmd.PersistentFlags().String("format", "auto", "Dataset format: csv or json or parquet or auto")
	rootCmd.PersistentFlags().String("rankings", "", "Path to a rankings JSON file for batch symbol lists")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Bool("explain", false, "Print per-section tallies alongside grades")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored verdicts in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("store-backend", "", "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of prerenderCmd to Viper
	prerenderCmd.Flags().String("out-dir", "stocks", "Output directory for prerendered pages")
	prerenderCmd.Flags().Bool("no-clean", false, "Do not delete stale HTML files in the output directory")
	if err := viper.BindPFlags(prerenderCmd.Flags()); err != nil {
		contract.LogFatal("Error binding prerender flags", err)
	}

	// Bind all flags of sitemapCmd to Viper
	sitemapCmd.Flags().String("site-root", ".", "Root directory scanned for HTML pages")
	sitemapCmd.Flags().String("base-url", "", "Absolute site base URL (e.g. https://example.com)")
	sitemapCmd.Flags().Bool("no-lastmod", false, "Do not include <lastmod> tags")
	if err := viper.BindPFlags(sitemapCmd.Flags()); err != nil {
		contract.LogFatal("Error binding sitemap flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
