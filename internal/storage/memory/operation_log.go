package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/inventory/internal/domain"
)

// operationLogInMemory — журнал операций только на добавление.
type operationLogInMemory struct {
	mu      sync.RWMutex
	entries []domain.LogEntry
}

// NewOperationLog создаёт пустой in-memory журнал операций.
func NewOperationLog() domain.OperationLog {
	return &operationLogInMemory{}
}

// Append добавляет запись в конец журнала, проставляя ID и время при необходимости.
func (l *operationLogInMemory) Append(entry domain.LogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Occurred.IsZero() {
		entry.Occurred = time.Now()
	}
	l.entries = append(l.entries, entry)
	return nil
}

// List возвращает копию записей в порядке добавления.
func (l *operationLogInMemory) List() ([]domain.LogEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]domain.LogEntry, len(l.entries))
	copy(result, l.entries)
	return result, nil
}

var _ domain.OperationLog = (*operationLogInMemory)(nil)
