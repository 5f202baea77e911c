package ledger

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"vega/domain/orderbook"
	"vega/infra/memory"
	"vega/infra/sequence"
)

var (
	ErrInvalidAmount   = errors.New("ledger: invalid amount")
	ErrInvalidPrice    = errors.New("ledger: invalid price")
	ErrOrderNotFound   = errors.New("ledger: order not found")
	ErrUnauthorized    = errors.New("ledger: requester does not own order")
	ErrAlreadyInactive = errors.New("ledger: order already filled or cancelled")
)

// Ledger owns the canonical record and lifecycle state of every order.
// Identifiers double as sequence numbers: both come from one strictly
// monotonic sequencer, so id order is arrival order.
//
// Amounts are mutated by the book on behalf of the matching engine;
// the ledger owns status transitions and enforces that Filled and
// Cancelled are absorbing.
type Ledger struct {
	orders map[uint64]*orderbook.Order
	pool   *memory.Pool[orderbook.Order]
	seq    *sequence.Sequencer
}

func New(pool *memory.Pool[orderbook.Order], seq *sequence.Sequencer) *Ledger {
	return &Ledger{
		orders: make(map[uint64]*orderbook.Order, 1024),
		pool:   pool,
		seq:    seq,
	}
}

// Create validates the input and registers a new open order. Nothing is
// mutated when validation fails.
func (l *Ledger) Create(trader uuid.UUID, side orderbook.Side, price, qty int64) (*orderbook.Order, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAmount, qty)
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrice, price)
	}
	// The order's full notional must be representable, or trades
	// against it could overflow the quote leg.
	if qty > math.MaxInt64/price {
		return nil, fmt.Errorf("%w: %d at price %d overflows notional", ErrInvalidAmount, qty, price)
	}

	id := l.seq.Next()
	o := l.pool.Get()
	*o = orderbook.Order{
		ID:     id,
		Trader: trader,
		Side:   side,
		Price:  price,
		Qty:    qty,
		SeqID:  id,
		Status: orderbook.Open,
	}
	l.orders[id] = o
	return o, nil
}

// Restore re-registers an order rebuilt from a snapshot. The caller is
// responsible for resetting the sequencer past the restored ids.
func (l *Ledger) Restore(o *orderbook.Order) {
	l.orders[o.ID] = o
}

func (l *Ledger) Get(id uint64) (*orderbook.Order, error) {
	o, ok := l.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
	}
	return o, nil
}

func (l *Ledger) Len() int {
	return len(l.orders)
}

// MarkFilled transitions an order whose remaining amount reached zero
// into the terminal Filled state.
func (l *Ledger) MarkFilled(id uint64) error {
	o, err := l.Get(id)
	if err != nil {
		return err
	}
	if o.Status.Terminal() {
		return fmt.Errorf("%w: %d is %s", ErrAlreadyInactive, id, o.Status)
	}
	if o.Remaining() != 0 {
		return fmt.Errorf("ledger: order %d has %d remaining, cannot mark filled", id, o.Remaining())
	}
	o.Status = orderbook.Filled
	return nil
}

// MarkPartial records a partial fill. newRemaining must match the
// order's current remaining amount, which the book already decremented;
// the cross-check catches amount drift between book and ledger.
func (l *Ledger) MarkPartial(id uint64, newRemaining int64) error {
	o, err := l.Get(id)
	if err != nil {
		return err
	}
	if o.Status.Terminal() {
		return fmt.Errorf("%w: %d is %s", ErrAlreadyInactive, id, o.Status)
	}
	if newRemaining <= 0 || newRemaining >= o.Qty {
		return fmt.Errorf("ledger: order %d: partial remaining %d out of range (0, %d)", id, newRemaining, o.Qty)
	}
	if newRemaining != o.Remaining() {
		return fmt.Errorf("ledger: order %d: remaining mismatch, book=%d ledger=%d", id, newRemaining, o.Remaining())
	}
	o.Status = orderbook.PartiallyFilled
	return nil
}

// Cancel transitions an order to Cancelled on behalf of its owner.
// The second cancel of the same order reports ErrAlreadyInactive and
// changes nothing. The caller removes the order from the book.
func (l *Ledger) Cancel(id uint64, requester uuid.UUID) error {
	o, err := l.Get(id)
	if err != nil {
		return err
	}
	if o.Trader != requester {
		return fmt.Errorf("%w: order %d", ErrUnauthorized, id)
	}
	if o.Status.Terminal() {
		return fmt.Errorf("%w: %d is %s", ErrAlreadyInactive, id, o.Status)
	}
	o.Status = orderbook.Cancelled
	return nil
}

// Evict drops a terminal order from the table so its memory can be
// returned to the pool. Eviction only happens after every snapshot
// reader has moved past the order's retirement epoch.
func (l *Ledger) Evict(id uint64) {
	o, ok := l.orders[id]
	if !ok || !o.Status.Terminal() {
		return
	}
	delete(l.orders, id)
}
