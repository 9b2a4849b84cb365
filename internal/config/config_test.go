package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"simcheck/internal/config"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(tempHome); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(prevDir) })

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantCache := filepath.Join(tempHome, ".cache", "simcheck")
	if cfg.Paths.CacheDir != wantCache {
		t.Fatalf("unexpected cache dir: got %q want %q", cfg.Paths.CacheDir, wantCache)
	}
	if !cfg.Cache.Enabled {
		t.Fatal("expected cache enabled by default")
	}
	if cfg.Compare.OnParseError != config.ParseErrorFallback {
		t.Fatalf("unexpected parse error policy: %q", cfg.Compare.OnParseError)
	}
	if got := cfg.SpinnerInterval(); got != 100*time.Millisecond {
		t.Fatalf("unexpected spinner interval: %v", got)
	}
	if len(cfg.Compare.CodeExtensions) != 1 || cfg.Compare.CodeExtensions[0] != ".go" {
		t.Fatalf("unexpected code extensions: %v", cfg.Compare.CodeExtensions)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadAppliesFileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
cache_dir = "` + filepath.Join(dir, "cache") + `"

[compare]
code_extensions = ["GO", ".py"]
on_parse_error = "Fail"
spinner_interval_ms = 250

[cache]
enabled = false

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Cache.Enabled {
		t.Fatal("expected cache disabled")
	}
	if !cfg.FailOnParseError() {
		t.Fatal("expected fail policy after normalization")
	}
	if got := cfg.SpinnerInterval(); got != 250*time.Millisecond {
		t.Fatalf("spinner interval: %v", got)
	}
	want := []string{".go", ".py"}
	if len(cfg.Compare.CodeExtensions) != len(want) {
		t.Fatalf("extensions: %v", cfg.Compare.CodeExtensions)
	}
	for i, ext := range want {
		if cfg.Compare.CodeExtensions[i] != ext {
			t.Fatalf("extension %d = %q, want %q", i, cfg.Compare.CodeExtensions[i], ext)
		}
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad parse error policy",
			content: "[compare]\non_parse_error = \"explode\"\n",
			wantErr: "compare.on_parse_error",
		},
		{
			name:    "bad spinner interval",
			content: "[compare]\nspinner_interval_ms = -5\n",
			wantErr: "spinner_interval_ms",
		},
		{
			name:    "bad log level",
			content: "[logging]\nlevel = \"verbose\"\n",
			wantErr: "logging.level",
		},
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample config should exist")
	}
	if cfg.Compare.OnParseError != config.ParseErrorFallback {
		t.Fatalf("sample parse policy: %q", cfg.Compare.OnParseError)
	}
}

func TestEnsureDirectoriesCreatesCacheDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	cfg := config.Default()
	cfg.Paths.CacheDir = dir
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("cache dir not created: %v", err)
	}
}
