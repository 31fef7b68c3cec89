package domain

// StockRepository хранит соответствие товар -> количество с сохранением
// порядка добавления. Позиции с количеством <= 0 не хранятся.
type StockRepository interface {
	// Get возвращает количество и признак наличия товара.
	Get(item ItemID) (int64, bool)
	// Adjust прибавляет delta (товар создаётся при отсутствии) и возвращает новый итог.
	// Если итог <= 0, позиция удаляется. При переполнении — ErrQuantityOverflow без изменений.
	Adjust(item ItemID, delta int64) (int64, error)
	// Subtract списывает qty с существующей позиции; ErrItemNotFound, если её нет,
	// ErrQuantityOverflow при переполнении.
	Subtract(item ItemID, qty int64) (int64, error)
	// Entries возвращает копию позиций в порядке добавления.
	Entries() []StockEntry
	// Replace полностью заменяет содержимое склада.
	Replace(entries []StockEntry)
	// Len возвращает число позиций.
	Len() int
}

// OperationLog — журнал операций, который передаёт вызывающая сторона.
type OperationLog interface {
	Append(entry LogEntry) error
	List() ([]LogEntry, error)
}
