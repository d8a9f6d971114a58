package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "velib.log")

	logger, closer, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("stations fetched", "count", 42)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "stations fetched") || !strings.Contains(out, "count=42") {
		t.Errorf("log output = %q, missing message or fields", out)
	}
	if !strings.Contains(out, "velib") {
		t.Errorf("log output = %q, missing prefix", out)
	}
}

func TestNew_Discard(t *testing.T) {
	logger, closer, err := New("", "info")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("nothing to see")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, _, err := New("", "chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, log.WarnLevel)

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn message missing")
	}
}
