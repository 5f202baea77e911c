// Package snapshot persists and restores point-in-time views of the
// book: a gob file of all active orders plus the sequence watermark.
// The entry WAL is truncated up to the watermark after each write, so
// recovery is snapshot load + replay of the tail.
package snapshot

import (
	"time"

	"github.com/google/uuid"
)

type OrderEntry struct {
	ID     uint64
	Trader uuid.UUID
	Side   int
	Price  int64
	Qty    int64
	Filled int64
	SeqID  uint64
	Status int
}

type Snapshot struct {
	Seq     uint64
	Created time.Time
	Orders  []OrderEntry
}
