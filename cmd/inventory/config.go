package main

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/inventory/internal/app"
)

const (
	envFile         = "INVENTORY_FILE"
	envLowThreshold = "INVENTORY_LOW_THRESHOLD"
	envLogLevel     = "INVENTORY_LOG_LEVEL"
	envMetricsFile  = "INVENTORY_METRICS_FILE"
)

type envLookup func(key string) (string, bool)

// readConfigFromEnv накладывает переменные окружения на DefaultConfig.
// Некорректные значения не прерывают запуск: остаётся значение по умолчанию,
// а в warnings добавляется описание проблемы.
func readConfigFromEnv(lookup envLookup) (app.Config, []string) {
	cfg := app.DefaultConfig()
	var warnings []string

	if v, ok := lookupTrimmed(lookup, envFile); ok {
		cfg.FilePath = v
	}
	if v, ok := lookupTrimmed(lookup, envLowThreshold); ok {
		threshold, err := parseInt64(v, func(n int64) bool { return n >= 0 }, "must be >= 0")
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envLowThreshold, err))
		} else {
			cfg.LowThreshold = threshold
		}
	}
	if v, ok := lookupTrimmed(lookup, envLogLevel); ok {
		level, err := log.ParseLevel(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envLogLevel, err))
		} else {
			cfg.LogLevel = level
		}
	}
	if v, ok := lookupTrimmed(lookup, envMetricsFile); ok {
		cfg.MetricsFile = v
	}

	return cfg, warnings
}

func lookupTrimmed(lookup envLookup, key string) (string, bool) {
	if lookup == nil {
		return "", false
	}
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func parseInt64(raw string, valid func(int64) bool, rule string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	if valid != nil && !valid(n) {
		return 0, fmt.Errorf("value %d %s", n, rule)
	}
	return n, nil
}
