package orderbook

import "testing"

func newOrder(id uint64, side Side, price, qty int64) *Order {
	return &Order{ID: id, SeqID: id, Side: side, Price: price, Qty: qty, Status: Open}
}

func TestBookPeekBest(t *testing.T) {
	b := NewBook()
	b.Insert(newOrder(1, Bid, 100, 10))
	b.Insert(newOrder(2, Bid, 105, 10))
	b.Insert(newOrder(3, Ask, 110, 10))
	b.Insert(newOrder(4, Ask, 108, 10))

	if best := b.PeekBest(Bid); best == nil || best.Price != 105 {
		t.Fatalf("best bid should be 105, got %+v", best)
	}
	if best := b.PeekBest(Ask); best == nil || best.Price != 108 {
		t.Fatalf("best ask should be 108, got %+v", best)
	}
}

func TestBookFIFOWithinLevel(t *testing.T) {
	b := NewBook()
	b.Insert(newOrder(1, Bid, 100, 5))
	b.Insert(newOrder(2, Bid, 100, 5))
	b.Insert(newOrder(3, Bid, 100, 5))

	if best := b.PeekBest(Bid); best.ID != 1 {
		t.Fatalf("expected order 1 at head, got %d", best.ID)
	}

	// Full fill of the head promotes the second arrival.
	head := b.PeekBest(Bid)
	b.Reduce(head, 5)
	if best := b.PeekBest(Bid); best.ID != 2 {
		t.Fatalf("expected order 2 after fill, got %d", best.ID)
	}
}

func TestBookReducePartial(t *testing.T) {
	b := NewBook()
	o := newOrder(1, Ask, 100, 10)
	b.Insert(o)

	b.Reduce(o, 4)
	if o.Remaining() != 6 {
		t.Fatalf("expected remaining 6, got %d", o.Remaining())
	}
	if best := b.PeekBest(Ask); best != o {
		t.Fatal("partially filled order should keep its queue position")
	}

	lvl := b.Asks.FindLevel(100)
	if lvl == nil || lvl.TotalQty != 6 {
		t.Fatalf("level qty should track remaining, got %+v", lvl)
	}
}

func TestBookReduceToZeroDropsLevel(t *testing.T) {
	b := NewBook()
	o := newOrder(1, Ask, 100, 10)
	b.Insert(o)

	b.Reduce(o, 10)
	if b.PeekBest(Ask) != nil {
		t.Fatal("empty side should peek nil")
	}
	if b.Asks.FindLevel(100) != nil {
		t.Fatal("empty level should be removed from the tree")
	}
}

func TestBookRemoveMiddleOfQueue(t *testing.T) {
	b := NewBook()
	o1 := newOrder(1, Bid, 100, 5)
	o2 := newOrder(2, Bid, 100, 5)
	o3 := newOrder(3, Bid, 100, 5)
	b.Insert(o1)
	b.Insert(o2)
	b.Insert(o3)

	b.Remove(o2)

	lvl := b.Bids.FindLevel(100)
	if lvl.OrderCount != 2 || lvl.TotalQty != 10 {
		t.Fatalf("level should hold 2 orders qty 10, got %d/%d", lvl.OrderCount, lvl.TotalQty)
	}
	if lvl.Head().ID != 1 || lvl.Head().Next().ID != 3 {
		t.Fatal("removal broke FIFO chain")
	}
}

func TestSideWalkBestFirst(t *testing.T) {
	b := NewBook()
	b.Insert(newOrder(1, Bid, 100, 1))
	b.Insert(newOrder(2, Bid, 103, 1))
	b.Insert(newOrder(3, Bid, 101, 1))
	b.Insert(newOrder(4, Ask, 110, 1))
	b.Insert(newOrder(5, Ask, 107, 1))

	var bids []int64
	b.BidsWalk(func(lvl *PriceLevel) { bids = append(bids, lvl.Price) })
	if len(bids) != 3 || bids[0] != 103 || bids[2] != 100 {
		t.Fatalf("bids walk should descend from best: %v", bids)
	}

	var asks []int64
	b.AsksWalk(func(lvl *PriceLevel) { asks = append(asks, lvl.Price) })
	if len(asks) != 2 || asks[0] != 107 {
		t.Fatalf("asks walk should ascend from best: %v", asks)
	}
}
