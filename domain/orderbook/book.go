package orderbook

import "sync/atomic"

// Book indexes the active orders of one trading pair by price, then by
// arrival sequence within a price. It holds pointers into the ledger's
// order arena, never copies. The book is single-writer and
// deterministic; it performs no matching and no settlement itself.
type Book struct {
	Bids *RBTree
	Asks *RBTree

	LastSeq atomic.Uint64
}

func NewBook() *Book {
	return &Book{
		Bids: NewRBTree(),
		Asks: NewRBTree(),
	}
}

func (b *Book) tree(s Side) *RBTree {
	if s == Bid {
		return b.Bids
	}
	return b.Asks
}

// Insert adds an order at the tail of its side's price level, creating
// the level if absent.
func (b *Book) Insert(o *Order) {
	b.LastSeq.Store(o.SeqID)
	b.tree(o.Side).UpsertLevel(o.Price).Enqueue(o)
}

// PeekBest returns the head order of the best price level for the side:
// highest price for bids, lowest for asks, oldest first within a level.
// It returns nil if the side is empty.
func (b *Book) PeekBest(s Side) *Order {
	var lvl *PriceLevel
	if s == Bid {
		lvl = b.Bids.MaxLevel()
	} else {
		lvl = b.Asks.MinLevel()
	}
	if lvl == nil {
		return nil
	}
	return lvl.Head()
}

// Reduce trades qty out of a resting order. When the order's remaining
// amount reaches zero it is unlinked from its level, and the level is
// dropped from the tree once empty, so fully traded orders are never
// visible through PeekBest.
func (b *Book) Reduce(o *Order, qty int64) {
	lvl := o.level
	o.Filled += qty
	lvl.Reduce(qty)
	if o.Remaining() == 0 {
		lvl.Unlink(o)
		if lvl.Empty() {
			b.tree(o.Side).DeleteLevel(lvl.Price)
		}
	}
}

// Remove takes an order out of the book from wherever it sits in its
// level, preserving FIFO order of the remainder. Used by cancellation.
func (b *Book) Remove(o *Order) {
	lvl := o.level
	if lvl == nil {
		return
	}
	lvl.Unlink(o)
	if lvl.Empty() {
		b.tree(o.Side).DeleteLevel(lvl.Price)
	}
}

// ---- traversal helpers (best to worst) ----

func (b *Book) BidsWalk(fn func(*PriceLevel)) {
	b.Bids.ForEachDescending(func(lvl *PriceLevel) bool {
		fn(lvl)
		return true
	})
}

func (b *Book) AsksWalk(fn func(*PriceLevel)) {
	b.Asks.ForEachAscending(func(lvl *PriceLevel) bool {
		fn(lvl)
		return true
	})
}

// SideWalk visits the given side's levels in book priority order.
func (b *Book) SideWalk(s Side, fn func(*PriceLevel)) {
	if s == Bid {
		b.BidsWalk(fn)
	} else {
		b.AsksWalk(fn)
	}
}
