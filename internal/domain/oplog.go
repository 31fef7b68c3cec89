package domain

import (
	"fmt"
	"time"
)

// LogEntry описывает одно пополнение склада в журнале операций.
type LogEntry struct {
	ID       string
	Item     ItemID
	Qty      int64
	Occurred time.Time
}

func (e LogEntry) String() string {
	return fmt.Sprintf("%s: Added %d of %s", e.Occurred.Format("2006-01-02 15:04:05.000000"), e.Qty, e.Item)
}
