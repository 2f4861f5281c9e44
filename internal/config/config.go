// =============================================================================
// GL Toolbox - Configuration Module
// =============================================================================
//
// The toolbox runs fine with no configuration file at all: every setting has
// a default and every column name can be overridden per invocation with a
// flag. The YAML file exists so a team working with one GL system can record
// its column names once instead of repeating flags.
//
// RESOLUTION ORDER (highest wins):
//   1. Command-line flags
//   2. config.yaml (or the file named by --config)
//   3. Built-in defaults
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds all toolbox settings.
type Config struct {
	// Columns holds the default column names used when the corresponding
	// flag is not given.
	Columns ColumnDefaults `yaml:"columns"`

	// Dates configures posting-date parsing for dedupacct.
	Dates DateSettings `yaml:"dates"`

	// Progress configures incremental progress reporting on long scans.
	Progress ProgressSettings `yaml:"progress"`
}

// ColumnDefaults names the well-known GL export columns.
type ColumnDefaults struct {
	// Amount is the numeric column with debits (-) and credits (+).
	// Default: "Amount"
	Amount string `yaml:"amount"`

	// TxID is the transaction identifier column.
	// Default: "TxID"
	TxID string `yaml:"tx_id"`

	// Account is the account number column.
	// Default: "Account"
	Account string `yaml:"account"`

	// Date is the posting date column.
	// Default: "Date"
	Date string `yaml:"date"`
}

// DateSettings configures date parsing.
type DateSettings struct {
	// Layouts are Go time layouts tried in order when parsing posting
	// dates and the --start/--end flags.
	Layouts []string `yaml:"layouts"`
}

// ProgressSettings configures progress reporting.
type ProgressSettings struct {
	// Interval is the number of rows between progress updates on long
	// matching scans. Default: 50000.
	Interval int `yaml:"interval"`
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - path: The configuration file path.
//   - explicit: Whether the user named the file with --config. A missing
//     default file falls back to the built-in defaults; a missing explicit
//     file is an error.
//
// RETURNS:
//   - The configuration with defaults applied and validated.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.Columns.Amount == "" {
		cfg.Columns.Amount = "Amount"
	}
	if cfg.Columns.TxID == "" {
		cfg.Columns.TxID = "TxID"
	}
	if cfg.Columns.Account == "" {
		cfg.Columns.Account = "Account"
	}
	if cfg.Columns.Date == "" {
		cfg.Columns.Date = "Date"
	}
	if len(cfg.Dates.Layouts) == 0 {
		cfg.Dates.Layouts = []string{
			"2006-01-02",
			"2006-01-02 15:04:05",
			"01/02/2006",
			time.RFC3339,
		}
	}
	if cfg.Progress.Interval == 0 {
		cfg.Progress.Interval = 50000
	}
}

// validate checks the configuration for values defaults cannot fix.
func validate(cfg *Config) error {
	if cfg.Progress.Interval < 0 {
		return fmt.Errorf("progress.interval must be positive, got %d", cfg.Progress.Interval)
	}
	for _, layout := range cfg.Dates.Layouts {
		if layout == "" {
			return fmt.Errorf("dates.layouts must not contain empty layouts")
		}
	}
	return nil
}
