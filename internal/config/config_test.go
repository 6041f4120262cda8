package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Workers != 0 {
		t.Errorf("default Workers = %d, want 0 (auto)", cfg.Workers)
	}
	if cfg.ProgressInterval() != 20*time.Second {
		t.Errorf("default progress interval = %s, want 20s", cfg.ProgressInterval())
	}
	if cfg.StallTimeout() != time.Minute {
		t.Errorf("default stall timeout = %s, want 1m", cfg.StallTimeout())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_OverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cracker.yaml")
	payload := "workers: 8\nmetricsLog: /tmp/run.jsonl\n"
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.MetricsLog != "/tmp/run.jsonl" {
		t.Errorf("MetricsLog = %q, want /tmp/run.jsonl", cfg.MetricsLog)
	}
	// Untouched keys keep their defaults.
	if cfg.ProgressIntervalSeconds != 20 {
		t.Errorf("ProgressIntervalSeconds = %d, want default 20", cfg.ProgressIntervalSeconds)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load on a missing file succeeded, want error")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("workers: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load on broken YAML succeeded, want error")
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"negative workers", "workers: -1\n"},
		{"zero progress interval", "progressIntervalSeconds: 0\n"},
		{"zero stall timeout", "stallTimeoutSeconds: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cracker.yaml")
			if err := os.WriteFile(path, []byte(tt.payload), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load accepted an invalid config, want error")
			}
		})
	}
}
