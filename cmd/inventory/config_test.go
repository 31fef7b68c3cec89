package main

import (
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/inventory/internal/app"
)

func TestReadConfigFromEnv_Defaults(t *testing.T) {
	cfg, warnings := readConfigFromEnv(mapLookup(nil))

	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %d", len(warnings))
	}
	if cfg != app.DefaultConfig() {
		t.Fatalf("expected default config, got %#v", cfg)
	}
}

func TestReadConfigFromEnv_NilLookup(t *testing.T) {
	cfg, warnings := readConfigFromEnv(nil)

	if len(warnings) != 0 || cfg != app.DefaultConfig() {
		t.Fatalf("nil lookup must yield defaults, got %#v %v", cfg, warnings)
	}
}

func TestReadConfigFromEnv_ValidOverrides(t *testing.T) {
	cfg, warnings := readConfigFromEnv(mapLookup(map[string]string{
		envFile:         " /var/lib/stock.json ",
		envLowThreshold: "10",
		envLogLevel:     "DEBUG",
		envMetricsFile:  "/tmp/inventory.prom",
	}))

	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if cfg.FilePath != "/var/lib/stock.json" {
		t.Fatalf("unexpected file path: %s", cfg.FilePath)
	}
	if cfg.LowThreshold != 10 {
		t.Fatalf("unexpected threshold: %d", cfg.LowThreshold)
	}
	if cfg.LogLevel != log.DebugLevel {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
	if cfg.MetricsFile != "/tmp/inventory.prom" {
		t.Fatalf("unexpected metrics file: %s", cfg.MetricsFile)
	}
}

func TestReadConfigFromEnv_InvalidValuesFallbackToDefaults(t *testing.T) {
	defaultCfg := app.DefaultConfig()

	cfg, warnings := readConfigFromEnv(mapLookup(map[string]string{
		envFile:         "   ",
		envLowThreshold: "-1",
		envLogLevel:     "loud",
	}))

	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	if cfg != defaultCfg {
		t.Fatalf("expected defaults on invalid values, got %#v", cfg)
	}
}

func TestParseInt64(t *testing.T) {
	value, err := parseInt64(" 12 ", func(v int64) bool { return v > 0 }, "must be > 0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 12 {
		t.Fatalf("unexpected value: %d", value)
	}

	if _, err := parseInt64("0", func(v int64) bool { return v > 0 }, "must be > 0"); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := parseInt64("five", nil, ""); err == nil {
		t.Fatal("expected parse error")
	}
}

func mapLookup(values map[string]string) envLookup {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}
