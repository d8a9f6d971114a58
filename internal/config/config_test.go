package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("velib-terminal", []string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.Rows != 200 {
		t.Errorf("Rows = %d, want 200", cfg.Rows)
	}
	if cfg.PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", cfg.PageSize)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout = %v, want no timeout", cfg.Timeout)
	}
}

func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("VELIB_API_URL", "http://localhost:9000/search")
	t.Setenv("VELIB_ROWS", "50")
	t.Setenv("VELIB_PAGE_SIZE", "10")
	t.Setenv("VELIB_TIMEOUT", "15s")
	t.Setenv("VELIB_LOG_LEVEL", "debug")

	cfg, err := Load("velib-terminal", []string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.APIURL != "http://localhost:9000/search" {
		t.Errorf("APIURL = %s", cfg.APIURL)
	}
	if cfg.Rows != 50 {
		t.Errorf("Rows = %d, want 50", cfg.Rows)
	}
	if cfg.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", cfg.PageSize)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v, want 15s", cfg.Timeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
}

func TestLoad_CLIOverridesEnv(t *testing.T) {
	t.Setenv("VELIB_ROWS", "50")
	t.Setenv("VELIB_DB", "env.db")

	cfg, err := Load("velib-snapshot", []string{"-rows", "120", "-db", "flag.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Rows != 120 {
		t.Errorf("CLI should override env: expected 120, got %d", cfg.Rows)
	}
	if cfg.DBPath != "flag.db" {
		t.Errorf("CLI should override env: expected flag.db, got %s", cfg.DBPath)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad env rows", map[string]string{"VELIB_ROWS": "lots"}, nil},
		{"bad env timeout", map[string]string{"VELIB_TIMEOUT": "soon"}, nil},
		{"zero rows", nil, []string{"-rows", "0"}},
		{"negative page size", nil, []string{"-page-size", "-3"}},
		{"empty url", nil, []string{"-url", ""}},
		{"unknown flag", nil, []string{"-colour"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load("velib-terminal", tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad_DBOnlyForSnapshot(t *testing.T) {
	t.Setenv("VELIB_DB", "env.db")

	cfg, err := Load("velib-terminal", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != Default().DBPath {
		t.Errorf("velib-terminal should ignore VELIB_DB, got %s", cfg.DBPath)
	}

	if _, err := Load("velib-terminal", []string{"-db", "flag.db"}); err == nil {
		t.Error("velib-terminal should reject -db")
	}

	cfg, err = Load(SnapshotCommand, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "env.db" {
		t.Errorf("DBPath = %s, want env.db", cfg.DBPath)
	}
}
