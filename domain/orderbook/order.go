package orderbook

import "github.com/google/uuid"

type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Bid {
		return "bid"
	}
	return "ask"
}

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

type Status int

const (
	Open Status = iota
	PartiallyFilled
	Filled
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Open:
		return "open"
	case PartiallyFilled:
		return "partially_filled"
	case Filled:
		return "filled"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == Filled || s == Cancelled
}

// Order is a pure domain entity. The book links active orders into
// per-level FIFO queues through the intrusive next/prev pointers;
// everything else only ever holds a pointer to the single canonical
// instance owned by the ledger.
type Order struct {
	ID     uint64
	Trader uuid.UUID
	Price  int64
	Qty    int64
	Filled int64
	SeqID  uint64

	Side   Side
	Status Status

	next  *Order
	prev  *Order
	level *PriceLevel
}

func (o *Order) Remaining() int64 {
	return o.Qty - o.Filled
}

// Read-only traversal helper for snapshot walkers.
func (o *Order) Next() *Order {
	return o.next
}
