package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ngmaloney/velib-terminal/internal/database"
	"github.com/ngmaloney/velib-terminal/internal/query"
	"github.com/ngmaloney/velib-terminal/internal/velib"
)

// Config holds runtime settings for the velib commands
type Config struct {
	APIURL   string
	Dataset  string
	Rows     int
	PageSize int
	Timeout  time.Duration // 0 means no timeout
	LogFile  string        // "" discards logs
	LogLevel string
	DBPath   string // snapshot export target
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		APIURL:   velib.DefaultBaseURL,
		Dataset:  velib.DefaultDataset,
		Rows:     velib.DefaultRows,
		PageSize: query.DefaultPageSize,
		LogLevel: "info",
		DBPath:   database.DBPath(),
	}
}

// SnapshotCommand is the only command that takes -db / VELIB_DB
const SnapshotCommand = "velib-snapshot"

// Load parses args for the named command. Flags win over VELIB_* environment
// variables, which win over defaults.
func Load(name string, args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.APIURL, "url", cfg.APIURL, "OpenData Paris records search endpoint")
	fs.StringVar(&cfg.Dataset, "dataset", cfg.Dataset, "Dataset to query")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "Number of station records to request")
	fs.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "Stations per page")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP timeout (0 disables)")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Write logs to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if name == SnapshotCommand {
		fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite file for snapshot export")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables for anything not given on the command line
	env := func(flagName, key string, apply func(string) error) error {
		if set[flagName] {
			return nil
		}
		v := os.Getenv(key)
		if v == "" {
			return nil
		}
		if err := apply(v); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		return nil
	}

	stringEnv := func(dst *string) func(string) error {
		return func(v string) error { *dst = v; return nil }
	}
	intEnv := func(dst *int) func(string) error {
		return func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		}
	}

	if err := errors.Join(
		env("url", "VELIB_API_URL", stringEnv(&cfg.APIURL)),
		env("dataset", "VELIB_DATASET", stringEnv(&cfg.Dataset)),
		env("rows", "VELIB_ROWS", intEnv(&cfg.Rows)),
		env("page-size", "VELIB_PAGE_SIZE", intEnv(&cfg.PageSize)),
		env("timeout", "VELIB_TIMEOUT", func(v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return err
			}
			cfg.Timeout = d
			return nil
		}),
		env("log", "VELIB_LOG_FILE", stringEnv(&cfg.LogFile)),
		env("log-level", "VELIB_LOG_LEVEL", stringEnv(&cfg.LogLevel)),
	); err != nil {
		return Config{}, err
	}

	if name == SnapshotCommand {
		if err := env("db", "VELIB_DB", stringEnv(&cfg.DBPath)); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that settings are usable
func (c Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("API URL required (use -url or VELIB_API_URL)")
	}
	if c.Dataset == "" {
		return errors.New("dataset required (use -dataset or VELIB_DATASET)")
	}
	if c.Rows <= 0 {
		return fmt.Errorf("rows must be positive, got %d", c.Rows)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
