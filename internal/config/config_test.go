package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Expected defaults for a missing file, got %+v", cfg)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
tick_rate_ms = 100
harvest_rate_ms = 2000
retention_sec = 120
process_limit = 50
no_battery = true
record_path = " /tmp/sysdash.db "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TickRate != 100*time.Millisecond {
		t.Errorf("TickRate = %v, want 100ms", cfg.TickRate)
	}
	if cfg.HarvestRate != 2*time.Second {
		t.Errorf("HarvestRate = %v, want 2s", cfg.HarvestRate)
	}
	if cfg.Retention != 2*time.Minute {
		t.Errorf("Retention = %v, want 2m", cfg.Retention)
	}
	if cfg.ProcessLimit != 50 {
		t.Errorf("ProcessLimit = %d, want 50", cfg.ProcessLimit)
	}
	if cfg.CollectBattery {
		t.Error("Expected battery collection disabled")
	}
	if !cfg.CollectTemperature {
		t.Error("Expected temperature collection still enabled")
	}
	if cfg.RecordPath != "/tmp/sysdash.db" {
		t.Errorf("RecordPath = %q, want trimmed path", cfg.RecordPath)
	}
}

func TestLoadRejectsInvalidRates(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"tick below floor", "tick_rate_ms = 5"},
		{"harvest faster than tick", "tick_rate_ms = 500\nharvest_rate_ms = 100"},
		{"retention below harvest", "harvest_rate_ms = 2000\nretention_sec = 1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(c.body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tick_rate_ms = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error for malformed TOML")
	}
}
