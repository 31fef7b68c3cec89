package inventory

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/inventory/internal/domain"
	"github.com/vladislavdragonenkov/inventory/internal/metrics"
	"github.com/vladislavdragonenkov/inventory/internal/storage/jsonfile"
	"github.com/vladislavdragonenkov/inventory/internal/storage/memory"
)

const (
	// DefaultFilePath — файл остатков, если путь не задан.
	DefaultFilePath = jsonfile.DefaultPath
	// DefaultLowThreshold — порог «мало на складе» по умолчанию.
	DefaultLowThreshold int64 = 5
)

// Имена операций для логов и метрик.
const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpLoad   = "load"
	OpSave   = "save"
)

// StoreOptions задаёт зависимости склада.
type StoreOptions struct {
	Logger     *log.Entry
	Repository domain.StockRepository
	Metrics    *metrics.InventoryMetrics
	Clock      func() time.Time
}

// Option настраивает Store.
type Option func(*StoreOptions)

// WithLogger задаёт logger для диагностики склада.
func WithLogger(logger *log.Entry) Option {
	return func(opts *StoreOptions) {
		opts.Logger = logger
	}
}

// WithRepository подменяет хранилище остатков.
func WithRepository(repo domain.StockRepository) Option {
	return func(opts *StoreOptions) {
		opts.Repository = repo
	}
}

// WithMetrics включает prometheus-метрики.
func WithMetrics(m *metrics.InventoryMetrics) Option {
	return func(opts *StoreOptions) {
		opts.Metrics = m
	}
}

// WithClock задаёт источник времени для журнала операций.
func WithClock(clock func() time.Time) Option {
	return func(opts *StoreOptions) {
		opts.Clock = clock
	}
}

// Store — склад: остатки товаров, операции над ними и сохранение в JSON-файл.
type Store struct {
	repo    domain.StockRepository
	logger  *log.Entry
	metrics *metrics.InventoryMetrics
	now     func() time.Time
}

// NewStore создаёт пустой склад.
func NewStore(options ...Option) *Store {
	var opts StoreOptions
	for _, option := range options {
		option(&opts)
	}

	s := &Store{
		repo:    opts.Repository,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		now:     opts.Clock,
	}
	if s.repo == nil {
		s.repo = memory.NewStockRepository()
	}
	if s.logger == nil {
		s.logger = log.WithField("component", "inventory")
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Add прибавляет qty к остатку товара. Отрицательное qty уменьшает остаток;
// итог <= 0 удаляет позицию. Если передан журнал, в него пишется запись.
// Пустой или не-UTF-8 товар, некорректное количество и переполнение итога
// не меняют склад и наружу не логируются.
func (s *Store) Add(item domain.ItemID, qty any, oplog domain.OperationLog) (err error) {
	defer func() { s.record(OpAdd, err) }()

	if item.IsZero() {
		return domain.ErrItemRequired
	}
	if !utf8.ValidString(string(item)) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidItem, string(item))
	}
	n, err := domain.ParseQuantity(qty)
	if err != nil {
		s.logger.WithError(err).WithField("item", item).Debug("add skipped")
		return err
	}

	total, err := s.repo.Adjust(item, n)
	if err != nil {
		err = fmt.Errorf("%w: %s", err, item)
		s.logger.WithError(err).WithField("item", item).Debug("add skipped")
		return err
	}
	s.logger.WithFields(log.Fields{"item": item, "qty": n, "total": total}).Debug("stock added")

	if oplog != nil {
		entry := domain.LogEntry{Item: item, Qty: n, Occurred: s.now()}
		if appendErr := oplog.Append(entry); appendErr != nil {
			// Журнал best-effort: склад уже изменён.
			s.logger.WithError(appendErr).Warn("failed to append operation log")
		}
	}
	return nil
}

// Remove списывает qty с остатка товара; итог <= 0 удаляет позицию.
// Ошибки (нет товара, некорректное количество) выводятся оператору и возвращаются.
func (s *Store) Remove(item domain.ItemID, qty any) (err error) {
	defer func() { s.record(OpRemove, err) }()

	if _, ok := s.repo.Get(item); !ok {
		err = fmt.Errorf("%w: %s", domain.ErrItemNotFound, item)
		s.logger.WithError(err).WithField("item", item).Warn("error removing item")
		return err
	}
	n, err := domain.ParseQuantity(qty)
	if err != nil {
		s.logger.WithError(err).WithField("item", item).Warn("error removing item")
		return err
	}

	total, err := s.repo.Subtract(item, n)
	if err != nil {
		err = fmt.Errorf("%w: %s", err, item)
		s.logger.WithError(err).WithField("item", item).Warn("error removing item")
		return err
	}
	if total <= 0 {
		s.logger.WithField("item", item).Debug("item out of stock, removed")
	}
	return nil
}

// GetQuantity возвращает остаток товара или 0, если его нет.
func (s *Store) GetQuantity(item domain.ItemID) int64 {
	qty, _ := s.repo.Get(item)
	return qty
}

// CheckLowItems возвращает товары с остатком строго меньше threshold
// в порядке склада.
func (s *Store) CheckLowItems(threshold int64) []domain.ItemID {
	low := make([]domain.ItemID, 0)
	for _, e := range s.repo.Entries() {
		if e.Qty < threshold {
			low = append(low, e.Item)
		}
	}
	if s.metrics != nil {
		s.metrics.SetLowStockItems(len(low))
	}
	return low
}

// Snapshot возвращает копию позиций склада в порядке добавления.
func (s *Store) Snapshot() []domain.StockEntry {
	return s.repo.Entries()
}

// Load полностью заменяет склад содержимым файла (без слияния).
// Отсутствующий или битый файл сбрасывает склад в пустое состояние:
// это предупреждение, а не фатальная ошибка, проверяется через domain.IsRecoverableLoad.
// Прочие ошибки чтения оставляют склад без изменений.
func (s *Store) Load(path string) (err error) {
	if path == "" {
		path = DefaultFilePath
	}
	start := s.now()
	defer func() {
		s.recordFileIO(OpLoad, start)
		s.record(OpLoad, err)
	}()

	entries, err := jsonfile.Read(path)
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		s.repo.Replace(nil)
		s.logger.WithField("path", path).Warnf("%s not found, starting with empty inventory", path)
		return err
	case errors.Is(err, domain.ErrMalformedJSON):
		s.repo.Replace(nil)
		s.logger.WithError(err).WithField("path", path).Warnf("%s contains invalid JSON, starting fresh", path)
		return err
	case err != nil:
		return err
	}

	kept := make([]domain.StockEntry, 0, len(entries))
	for _, e := range lastValueWins(entries) {
		if e.Qty <= 0 {
			s.logger.WithFields(log.Fields{"item": e.Item, "qty": e.Qty}).Warn("skipping non-positive quantity from file")
			continue
		}
		kept = append(kept, e)
	}
	s.repo.Replace(kept)
	s.logger.WithFields(log.Fields{"path": path, "items": s.repo.Len()}).Debug("inventory loaded")
	return nil
}

// Save перезаписывает файл текущим состоянием склада.
// Ошибки ввода-вывода не обрабатываются локально и возвращаются вызывающему.
func (s *Store) Save(path string) (err error) {
	if path == "" {
		path = DefaultFilePath
	}
	start := s.now()
	defer func() {
		s.recordFileIO(OpSave, start)
		s.record(OpSave, err)
	}()

	if err := jsonfile.Write(path, s.repo.Entries()); err != nil {
		return err
	}
	s.logger.WithFields(log.Fields{"path": path, "items": s.repo.Len()}).Debug("inventory saved")
	return nil
}

// lastValueWins схлопывает повторяющиеся ключи файла: остаётся последнее
// значение на позиции первого вхождения.
func lastValueWins(entries []domain.StockEntry) []domain.StockEntry {
	index := make(map[domain.ItemID]int, len(entries))
	result := make([]domain.StockEntry, 0, len(entries))
	for _, e := range entries {
		if i, ok := index[e.Item]; ok {
			result[i].Qty = e.Qty
			continue
		}
		index[e.Item] = len(result)
		result = append(result, e)
	}
	return result
}

func (s *Store) record(operation string, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordOperation(operation, err)

	var units int64
	entries := s.repo.Entries()
	for _, e := range entries {
		units += e.Qty
	}
	s.metrics.SetStockLevels(len(entries), units)
}

func (s *Store) recordFileIO(operation string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordFileIO(operation, s.now().Sub(start))
}
