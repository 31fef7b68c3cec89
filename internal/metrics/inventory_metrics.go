package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Значения метки result.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// InventoryMetrics содержит метрики операций склада.
type InventoryMetrics struct {
	// Счётчик операций по типу и результату
	operations *prometheus.CounterVec

	// Время чтения/записи файла остатков
	fileIODuration *prometheus.HistogramVec

	// Текущее состояние склада
	itemsTracked  prometheus.Gauge
	unitsInStock  prometheus.Gauge
	lowStockItems prometheus.Gauge
}

// NewInventoryMetricsWithRegisterer регистрирует метрики в переданном registerer.
// Повторная регистрация возвращает уже существующие коллекторы;
// nil означает prometheus.DefaultRegisterer.
func NewInventoryMetricsWithRegisterer(registerer prometheus.Registerer) *InventoryMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &InventoryMetrics{
		operations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "inventory_operations_total",
			Help: "Total number of inventory operations grouped by operation and result",
		}, []string{"operation", "result"}),
		fileIODuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "inventory_file_io_duration_seconds",
			Help:    "Duration of inventory file load/save in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		}, []string{"operation"}),
		itemsTracked: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "inventory_items",
			Help: "Number of distinct items currently in stock",
		}),
		unitsInStock: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "inventory_units",
			Help: "Total number of units currently in stock",
		}),
		lowStockItems: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "inventory_low_stock_items",
			Help: "Number of items below the low-stock threshold at the last check",
		}),
	}
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOperation учитывает операцию; любая ошибка считается как result="error".
func (m *InventoryMetrics) RecordOperation(operation string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

// RecordFileIO записывает длительность загрузки или сохранения файла.
func (m *InventoryMetrics) RecordFileIO(operation string, duration time.Duration) {
	m.fileIODuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetStockLevels обновляет число позиций и общее количество единиц.
func (m *InventoryMetrics) SetStockLevels(items int, units int64) {
	m.itemsTracked.Set(float64(items))
	m.unitsInStock.Set(float64(units))
}

// SetLowStockItems обновляет число позиций ниже порога.
func (m *InventoryMetrics) SetLowStockItems(n int) {
	m.lowStockItems.Set(float64(n))
}
