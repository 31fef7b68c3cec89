package memory

import (
	"math"
	"sync"

	"github.com/vladislavdragonenkov/inventory/internal/domain"
)

// stockRepositoryInMemory хранит остатки в памяти. Порядок ключей
// отслеживается отдельно, чтобы отчёты и файл были детерминированными.
type stockRepositoryInMemory struct {
	mu    sync.RWMutex
	order []domain.ItemID
	items map[domain.ItemID]int64
}

// NewStockRepository возвращает пустой in-memory склад.
func NewStockRepository() domain.StockRepository {
	return &stockRepositoryInMemory{
		items: make(map[domain.ItemID]int64),
	}
}

// Get возвращает количество товара и признак его наличия.
func (r *stockRepositoryInMemory) Get(item domain.ItemID) (int64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	qty, ok := r.items[item]
	return qty, ok
}

// Adjust прибавляет delta к текущему количеству (0, если товара нет).
func (r *stockRepositoryInMemory) Adjust(item domain.ItemID, delta int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.items[item]
	total, ok := addChecked(current, delta)
	if !ok {
		return current, domain.ErrQuantityOverflow
	}
	r.store(item, total)
	return total, nil
}

// Subtract списывает qty с существующей позиции.
func (r *stockRepositoryInMemory) Subtract(item domain.ItemID, qty int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[item]
	if !ok {
		return 0, domain.ErrItemNotFound
	}
	if qty == math.MinInt64 {
		return current, domain.ErrQuantityOverflow
	}
	total, ok := addChecked(current, -qty)
	if !ok {
		return current, domain.ErrQuantityOverflow
	}
	r.store(item, total)
	return total, nil
}

// Entries возвращает копию позиций в порядке добавления.
func (r *stockRepositoryInMemory) Entries() []domain.StockEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.StockEntry, 0, len(r.order))
	for _, item := range r.order {
		result = append(result, domain.StockEntry{Item: item, Qty: r.items[item]})
	}
	return result
}

// Replace заменяет содержимое склада. Повторяющиеся ключи схлопываются:
// остаётся последнее значение на позиции первого вхождения.
func (r *stockRepositoryInMemory) Replace(entries []domain.StockEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = make([]domain.ItemID, 0, len(entries))
	r.items = make(map[domain.ItemID]int64, len(entries))
	for _, e := range entries {
		r.store(e.Item, e.Qty)
	}
}

// Len возвращает число позиций на складе.
func (r *stockRepositoryInMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// store записывает итог под блокировкой вызывающего; итог <= 0 удаляет позицию.
func (r *stockRepositoryInMemory) store(item domain.ItemID, total int64) {
	_, exists := r.items[item]
	if total <= 0 {
		if exists {
			delete(r.items, item)
			r.removeFromOrder(item)
		}
		return
	}
	if !exists {
		r.order = append(r.order, item)
	}
	r.items[item] = total
}

// addChecked складывает a и b; ok == false, если сумма не помещается в int64.
func addChecked(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func (r *stockRepositoryInMemory) removeFromOrder(item domain.ItemID) {
	for i, id := range r.order {
		if id == item {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

var _ domain.StockRepository = (*stockRepositoryInMemory)(nil)
