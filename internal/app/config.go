package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/inventory/internal/service/inventory"
)

// Config описывает настройки запуска утилиты.
type Config struct {
	// FilePath — JSON-файл с остатками.
	FilePath string
	// LowThreshold — порог для списка «мало на складе».
	LowThreshold int64
	// LogLevel — уровень логирования диагностик.
	LogLevel log.Level
	// MetricsFile — если задан, метрики запуска пишутся в файл в текстовом формате Prometheus.
	MetricsFile string
}

// DefaultConfig возвращает настройки по умолчанию.
func DefaultConfig() Config {
	return Config{
		FilePath:     inventory.DefaultFilePath,
		LowThreshold: inventory.DefaultLowThreshold,
		LogLevel:     log.InfoLevel,
	}
}
