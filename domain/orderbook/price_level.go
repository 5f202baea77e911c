package orderbook

// PriceLevel is a FIFO queue of orders resting at a single price.
// Sequence order within a level is insertion order: Enqueue always
// appends at the tail, so the head is the oldest active order.
type PriceLevel struct {
	Price int64

	head *Order
	tail *Order

	TotalQty   int64
	OrderCount int
}

func (p *PriceLevel) Enqueue(o *Order) {
	if p.head == nil {
		p.head = o
		p.tail = o
	} else {
		p.tail.next = o
		o.prev = p.tail
		p.tail = o
	}
	o.level = p
	p.TotalQty += o.Remaining()
	p.OrderCount++
}

// Unlink removes an order from wherever it sits in the queue,
// preserving the FIFO order of the remainder. The order's already
// traded quantity is not part of TotalQty, so only the remainder
// is subtracted.
func (p *PriceLevel) Unlink(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		p.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		p.tail = o.prev
	}
	o.next = nil
	o.prev = nil
	o.level = nil

	p.TotalQty -= o.Remaining()
	p.OrderCount--
}

// Reduce accounts for qty traded out of an order on this level.
func (p *PriceLevel) Reduce(qty int64) {
	p.TotalQty -= qty
}

func (p *PriceLevel) Empty() bool {
	return p.head == nil
}

// Read-only helper
func (p *PriceLevel) Head() *Order {
	return p.head
}
