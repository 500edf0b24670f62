package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output.Dir != "." || cfg.Output.Format != "markdown" || cfg.Output.Copy {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Preview.Debounce != 500*time.Millisecond {
		t.Fatalf("unexpected debounce %s", cfg.Preview.Debounce)
	}
	if cfg.Assets.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.Assets.Timeout)
	}
	if !cfg.Render.Prune {
		t.Fatalf("pruning should default to enabled")
	}
	if diff := cmp.Diff([]string{"Project Structure"}, cfg.Render.Exempt); diff != "" {
		t.Fatalf("exempt mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	t.Setenv("AGENTSGEN_OUTPUT_FORMAT", "markdown")
	t.Setenv("AGENTSGEN_OUTPUT_COPY", "true")

	cfg, err := Load(filepath.Join("testdata", "agentsgen.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output.Dir != "docs" {
		t.Fatalf("expected dir from file, got %q", cfg.Output.Dir)
	}
	if cfg.Output.Format != "markdown" || !cfg.Output.Copy {
		t.Fatalf("expected environment overrides, got %+v", cfg.Output)
	}
	if cfg.Preview.Debounce != 250*time.Millisecond {
		t.Fatalf("unexpected debounce %s", cfg.Preview.Debounce)
	}
	if diff := cmp.Diff([]string{"Project Structure", "Key Commands"}, cfg.Render.Exempt); diff != "" {
		t.Fatalf("exempt mismatch (-want +got):\n%s", diff)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level %q", cfg.Log.Level)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AGENTSGEN_LOG_LEVEL", "loud")

	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), "log level") {
		t.Fatalf("expected log level error, got %v", err)
	}
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := Init(path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := Init(path); err == nil {
		t.Fatalf("expected error when file exists")
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if cfg.Preview.Debounce != 500*time.Millisecond {
		t.Fatalf("sample debounce mismatch: %s", cfg.Preview.Debounce)
	}
}
