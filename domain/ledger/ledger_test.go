package ledger

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"vega/domain/orderbook"
	"vega/infra/memory"
	"vega/infra/sequence"
)

func newLedger() *Ledger {
	pool := memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
	return New(pool, sequence.New(0))
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	led := newLedger()
	trader := uuid.New()

	a, err := led.Create(trader, orderbook.Bid, 100, 10)
	require.NoError(t, err)
	b, err := led.Create(trader, orderbook.Ask, 101, 5)
	require.NoError(t, err)

	require.Equal(t, a.ID+1, b.ID)
	require.Equal(t, a.ID, a.SeqID)
	require.Equal(t, orderbook.Open, a.Status)
	require.Equal(t, 2, led.Len())
}

func TestCreateValidation(t *testing.T) {
	led := newLedger()
	trader := uuid.New()

	_, err := led.Create(trader, orderbook.Bid, 100, 0)
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = led.Create(trader, orderbook.Bid, 100, -3)
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = led.Create(trader, orderbook.Bid, 0, 10)
	require.ErrorIs(t, err, ErrInvalidPrice)

	// Amount is checked before price.
	_, err = led.Create(trader, orderbook.Bid, -1, -1)
	require.ErrorIs(t, err, ErrInvalidAmount)

	// Notional must fit in int64.
	_, err = led.Create(trader, orderbook.Bid, 3, math.MaxInt64/2)
	require.ErrorIs(t, err, ErrInvalidAmount)

	require.Equal(t, 0, led.Len())
}

func TestGetUnknown(t *testing.T) {
	led := newLedger()
	_, err := led.Get(42)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCancelAuthorization(t *testing.T) {
	led := newLedger()
	owner := uuid.New()
	other := uuid.New()

	o, err := led.Create(owner, orderbook.Bid, 100, 10)
	require.NoError(t, err)

	require.ErrorIs(t, led.Cancel(o.ID, other), ErrUnauthorized)
	require.Equal(t, orderbook.Open, o.Status)

	require.NoError(t, led.Cancel(o.ID, owner))
	require.Equal(t, orderbook.Cancelled, o.Status)

	// Second cancel reports the terminal state and changes nothing.
	require.ErrorIs(t, led.Cancel(o.ID, owner), ErrAlreadyInactive)
	require.Equal(t, orderbook.Cancelled, o.Status)
}

func TestMarkPartialAndFilled(t *testing.T) {
	led := newLedger()
	o, err := led.Create(uuid.New(), orderbook.Ask, 100, 10)
	require.NoError(t, err)

	// The book decrements first; the ledger cross-checks.
	o.Filled = 4
	require.NoError(t, led.MarkPartial(o.ID, 6))
	require.Equal(t, orderbook.PartiallyFilled, o.Status)

	// Drifted remaining is rejected.
	require.Error(t, led.MarkPartial(o.ID, 3))

	// Cannot mark filled while amount remains.
	require.Error(t, led.MarkFilled(o.ID))

	o.Filled = 10
	require.NoError(t, led.MarkFilled(o.ID))
	require.Equal(t, orderbook.Filled, o.Status)
	require.True(t, o.Status.Terminal())

	require.ErrorIs(t, led.MarkFilled(o.ID), ErrAlreadyInactive)
}

func TestCancelFilledOrder(t *testing.T) {
	led := newLedger()
	trader := uuid.New()
	o, err := led.Create(trader, orderbook.Bid, 100, 5)
	require.NoError(t, err)

	o.Filled = 5
	require.NoError(t, led.MarkFilled(o.ID))
	require.ErrorIs(t, led.Cancel(o.ID, trader), ErrAlreadyInactive)
}

func TestEvictOnlyTerminal(t *testing.T) {
	led := newLedger()
	trader := uuid.New()
	o, err := led.Create(trader, orderbook.Bid, 100, 5)
	require.NoError(t, err)

	led.Evict(o.ID)
	_, err = led.Get(o.ID)
	require.NoError(t, err, "active orders must not be evicted")

	require.NoError(t, led.Cancel(o.ID, trader))
	led.Evict(o.ID)
	_, err = led.Get(o.ID)
	require.ErrorIs(t, err, ErrOrderNotFound)
}
