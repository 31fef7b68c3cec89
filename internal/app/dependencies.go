package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/inventory/internal/domain"
	"github.com/vladislavdragonenkov/inventory/internal/metrics"
	"github.com/vladislavdragonenkov/inventory/internal/service/inventory"
	"github.com/vladislavdragonenkov/inventory/internal/storage/memory"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Config   Config
	Store    *inventory.Store
	OpLog    domain.OperationLog
	Metrics  *metrics.InventoryMetrics
	Registry *prometheus.Registry
	Logger   *log.Entry
}

// NewDependencies создаёт склад, журнал операций и метрики.
// Метрики регистрируются в собственном registry, чтобы не зависеть от глобального состояния.
func NewDependencies(cfg Config, logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	registry := prometheus.NewRegistry()
	m := metrics.NewInventoryMetricsWithRegisterer(registry)

	store := inventory.NewStore(
		inventory.WithLogger(logger.WithField("layer", "store")),
		inventory.WithRepository(memory.NewStockRepository()),
		inventory.WithMetrics(m),
	)

	return &Dependencies{
		Config:   cfg,
		Store:    store,
		OpLog:    memory.NewOperationLog(),
		Metrics:  m,
		Registry: registry,
		Logger:   logger,
	}
}

// WriteMetrics сохраняет метрики в файл (формат textfile collector).
func (d *Dependencies) WriteMetrics(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, d.Registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
