package contract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/peerscore/peerscore/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
)

// Config holds the runtime configuration for a peerscore invocation.
// This struct remains the "final, validated" config.
type Config struct {
	DataPath   string            // Path to the peer dataset (csv, json or parquet)
	DataFormat schema.OutputMode // Dataset format; resolved from the extension when "auto"

	RankingsPath string // Optional rankings JSON driving batch symbol lists

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Explain     bool // Print per-section tallies alongside scorecards
	Width       int  // Terminal width override (0 = auto-detect)
	UseColors   bool // Enable colored glyphs and grade labels in table output

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	// Prerender / sitemap settings.
	OutDir    string // Output directory for prerendered pages
	NoClean   bool   // Keep stale pages during batch prerender
	SiteRoot  string // Root scanned for sitemap entries
	BaseURL   string // Absolute site base URL for sitemap locs
	NoLastmod bool   // Omit <lastmod> tags from the sitemap
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Data        string `mapstructure:"data"`
	Format      string `mapstructure:"format"`
	Rankings    string `mapstructure:"rankings"`
	Limit       int    `mapstructure:"limit"`
	Precision   int    `mapstructure:"precision"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Explain     bool   `mapstructure:"explain"`
	Width       int    `mapstructure:"width"`
	Color       string `mapstructure:"color"`
	StoreBack   string `mapstructure:"store-backend"`
	StoreDB     string `mapstructure:"store-db-connect"`
	OutDir      string `mapstructure:"out-dir"`
	NoClean     bool   `mapstructure:"no-clean"`
	SiteRoot    string `mapstructure:"site-root"`
	BaseURL     string `mapstructure:"base-url"`
	NoLastmod   bool   `mapstructure:"no-lastmod"`
}

// Clone returns a copy of the config for per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate turns the raw input into a validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.DataPath = input.Data
	cfg.RankingsPath = input.Rankings
	cfg.OutputFile = input.OutputFile
	cfg.Explain = input.Explain
	cfg.Width = input.Width
	cfg.StoreDBConnect = input.StoreDB
	cfg.OutDir = input.OutDir
	cfg.NoClean = input.NoClean
	cfg.SiteRoot = input.SiteRoot
	cfg.BaseURL = input.BaseURL
	cfg.NoLastmod = input.NoLastmod

	if input.Limit <= 0 {
		cfg.ResultLimit = DefaultResultLimit
	} else if input.Limit > MaxResultLimit {
		return fmt.Errorf("limit cannot exceed %d", MaxResultLimit)
	} else {
		cfg.ResultLimit = input.Limit
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 4 {
		cfg.Precision = 4
	}

	output := schema.OutputMode(strings.ToLower(input.Output))
	if output == "" {
		output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q: must be text, csv, json or parquet", input.Output)
	}
	cfg.Output = output

	format, err := ResolveDataFormat(input.Format, input.Data)
	if err != nil {
		return err
	}
	cfg.DataFormat = format

	backend := schema.DatabaseBackend(strings.ToLower(input.StoreBack))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend %q: must be sqlite, mysql, postgresql or none", input.StoreBack)
	}
	cfg.StoreBackend = backend

	cfg.UseColors = parseToggle(input.Color, true)
	return nil
}

// ResolveDataFormat maps an explicit format string (or "auto"/empty plus the
// data path's extension) onto a dataset format.
func ResolveDataFormat(format, dataPath string) (schema.OutputMode, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "csv":
		return schema.CSVOut, nil
	case "json":
		return schema.JSONOut, nil
	case "parquet":
		return schema.ParquetOut, nil
	case "", "auto":
		switch strings.ToLower(filepath.Ext(dataPath)) {
		case ".json":
			return schema.JSONOut, nil
		case ".parquet":
			return schema.ParquetOut, nil
		default:
			return schema.CSVOut, nil
		}
	default:
		return "", fmt.Errorf("invalid data format %q: must be csv, json, parquet or auto", format)
	}
}

// parseToggle interprets yes/no style flag values.
func parseToggle(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
