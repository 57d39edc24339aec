package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Calculator.HistoryLimit != 20 {
		t.Errorf("expected default history_limit 20, got %d", cfg.Calculator.HistoryLimit)
	}
	if cfg.Calculator.Precision != 10 {
		t.Errorf("expected default precision 10, got %d", cfg.Calculator.Precision)
	}
	if cfg.Portfolio.RevealThreshold != 0.1 {
		t.Errorf("expected default reveal_threshold 0.1, got %f", cfg.Portfolio.RevealThreshold)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if got := cfg.DBPath(); got != filepath.Join(".showcase", "showcase.db") {
		t.Errorf("unexpected db path %q", got)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.showcase.yml")

	original := DefaultConfig()
	original.Log.Format = LogJSON
	original.Gallery.Source = "photos"
	original.Gallery.Include = []string{"**/*.jpg", "**/*.png"}
	original.Calculator.HistoryLimit = 50
	original.Portfolio.RevealThreshold = 0.25
	original.Server.SessionTTL = 5 * time.Minute

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Log.Format != LogJSON {
		t.Errorf("log.format: got %q, want %q", loaded.Log.Format, LogJSON)
	}
	if loaded.Gallery.Source != "photos" {
		t.Errorf("gallery.source: got %q", loaded.Gallery.Source)
	}
	if loaded.Calculator.HistoryLimit != 50 {
		t.Errorf("history_limit: got %d, want 50", loaded.Calculator.HistoryLimit)
	}
	if loaded.Portfolio.RevealThreshold != 0.25 {
		t.Errorf("reveal_threshold: got %f, want 0.25", loaded.Portfolio.RevealThreshold)
	}
	if loaded.Server.SessionTTL != 5*time.Minute {
		t.Errorf("session_ttl: got %s, want 5m", loaded.Server.SessionTTL)
	}
	if len(loaded.Gallery.Include) != 2 || loaded.Gallery.Include[1] != "**/*.png" {
		t.Errorf("include: got %v", loaded.Gallery.Include)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("SHOWCASE_SERVER__PORT", "9090")
	t.Setenv("SHOWCASE_LOG__LEVEL", "debug")
	t.Setenv("SHOWCASE_DATA_DIR", "/tmp/showcase")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("env override failed: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("env override failed: got %q, want debug", loaded.Log.Level)
	}
	if loaded.DataDir != "/tmp/showcase" {
		t.Errorf("env override failed: got %q", loaded.DataDir)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("server: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"data dir", func(c *Config) { c.DataDir = "" }},
		{"default category", func(c *Config) { c.Gallery.DefaultCategory = "" }},
		{"history limit zero", func(c *Config) { c.Calculator.HistoryLimit = 0 }},
		{"history limit huge", func(c *Config) { c.Calculator.HistoryLimit = 5000 }},
		{"precision", func(c *Config) { c.Calculator.Precision = 16 }},
		{"threshold zero", func(c *Config) { c.Portfolio.RevealThreshold = 0 }},
		{"threshold above one", func(c *Config) { c.Portfolio.RevealThreshold = 1.5 }},
		{"port", func(c *Config) { c.Server.Port = 0 }},
		{"ttl", func(c *Config) { c.Server.SessionTTL = -time.Second }},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig should be valid, got: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.jpg", []string{"**/*.jpg"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

func TestValidatePort(t *testing.T) {
	if err := validatePort("8080"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "abc", "0", "70000"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(func() {
		os.Unsetenv("SHOWCASE_SERVER__PORT")
		os.Unsetenv("SHOWCASE_LOG__LEVEL")
	})

	os.WriteFile(".env", []byte("SHOWCASE_SERVER__PORT=7000\nSHOWCASE_LOG__LEVEL=warn\n"), 0644)
	os.WriteFile(".env.local", []byte("SHOWCASE_SERVER__PORT=7001\n"), 0644)

	files, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv() error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("loaded %v, want both files", files)
	}

	cfg, err := Load(filepath.Join(dir, "missing.yml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("Server.Port = %d, want 7001 from .env.local", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoadDotEnvNone(t *testing.T) {
	t.Chdir(t.TempDir())
	files, err := LoadDotEnv()
	if err != nil || files != nil {
		t.Errorf("LoadDotEnv() = %v, %v; want nil, nil", files, err)
	}
}
