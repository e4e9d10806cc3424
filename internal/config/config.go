// Package config loads the dashboard's TOML configuration, falling back to
// defaults for anything the file leaves unset.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds every tunable of the dashboard.
type Config struct {
	// TickRate is the UI frame interval.
	TickRate time.Duration
	// HarvestRate is how often the collector samples the system.
	HarvestRate time.Duration
	// Retention bounds graph history and recorded metrics.
	Retention time.Duration

	ProcessLimit       int
	CollectTemperature bool
	CollectBattery     bool

	// RecordPath is the DuckDB file metrics are recorded into. Empty keeps
	// recording in memory only.
	RecordPath string
	RecordOff  bool
}

const (
	defaultConfigPath = "~/.config/sysdash/config.toml"

	defaultTickRate     = 200 * time.Millisecond
	defaultHarvestRate  = time.Second
	defaultRetention    = time.Minute
	defaultProcessLimit = 128
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate:           defaultTickRate,
		HarvestRate:        defaultHarvestRate,
		Retention:          defaultRetention,
		ProcessLimit:       defaultProcessLimit,
		CollectTemperature: true,
		CollectBattery:     true,
	}
}

// rawConfig is the on-disk shape. Durations are millisecond counts.
type rawConfig struct {
	TickRateMs    int    `toml:"tick_rate_ms"`
	HarvestRateMs int    `toml:"harvest_rate_ms"`
	RetentionSec  int    `toml:"retention_sec"`
	ProcessLimit  int    `toml:"process_limit"`
	NoTemperature bool   `toml:"no_temperature"`
	NoBattery     bool   `toml:"no_battery"`
	RecordPath    string `toml:"record_path"`
	RecordOff     bool   `toml:"record_off"`
}

// Load locates and parses the config file, falling back to defaults when it
// does not exist. An explicit path that fails to parse is an error; a missing
// default path is not.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.TickRateMs > 0 {
		cfg.TickRate = time.Duration(raw.TickRateMs) * time.Millisecond
	}
	if raw.HarvestRateMs > 0 {
		cfg.HarvestRate = time.Duration(raw.HarvestRateMs) * time.Millisecond
	}
	if raw.RetentionSec > 0 {
		cfg.Retention = time.Duration(raw.RetentionSec) * time.Second
	}
	if raw.ProcessLimit > 0 {
		cfg.ProcessLimit = raw.ProcessLimit
	}
	cfg.CollectTemperature = !raw.NoTemperature
	cfg.CollectBattery = !raw.NoBattery
	cfg.RecordPath = strings.TrimSpace(raw.RecordPath)
	cfg.RecordOff = raw.RecordOff

	return cfg.validate()
}

func (c Config) validate() (Config, error) {
	if c.TickRate < 10*time.Millisecond {
		return Config{}, fmt.Errorf("tick rate %v is below the 10ms floor", c.TickRate)
	}
	if c.HarvestRate < c.TickRate {
		return Config{}, fmt.Errorf("harvest rate %v must not be faster than the tick rate %v",
			c.HarvestRate, c.TickRate)
	}
	if c.Retention < c.HarvestRate {
		return Config{}, fmt.Errorf("retention %v must cover at least one harvest interval", c.Retention)
	}
	return c, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
