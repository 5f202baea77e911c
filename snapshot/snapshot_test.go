package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"vega/domain/ledger"
	"vega/domain/orderbook"
	"vega/infra/memory"
	"vega/infra/sequence"
)

func TestWriteLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	pool := memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
	seqGen := sequence.New(0)
	led := ledger.New(pool, seqGen)
	book := orderbook.NewBook()

	trader := uuid.New()
	bid, err := led.Create(trader, orderbook.Bid, 100, 10)
	require.NoError(t, err)
	bid.Filled = 4
	bid.Status = orderbook.PartiallyFilled
	book.Insert(bid)

	ask, err := led.Create(trader, orderbook.Ask, 105, 3)
	require.NoError(t, err)
	book.Insert(ask)

	w := &Writer{Dir: dir}
	require.NoError(t, w.Write(seqGen.Current(), book))

	pool2 := memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
	led2 := ledger.New(pool2, sequence.New(0))
	book2 := orderbook.NewBook()

	seq, err := Load(filepath.Join(dir, FileName), led2, book2, pool2)
	require.NoError(t, err)
	require.Equal(t, seqGen.Current(), seq)

	got, err := led2.Get(bid.ID)
	require.NoError(t, err)
	require.Equal(t, trader, got.Trader)
	require.EqualValues(t, 6, got.Remaining())
	require.Equal(t, orderbook.PartiallyFilled, got.Status)
	require.Same(t, got, book2.PeekBest(orderbook.Bid))

	got, err = led2.Get(ask.ID)
	require.NoError(t, err)
	require.Same(t, got, book2.PeekBest(orderbook.Ask))
}

func TestLoadMissingFile(t *testing.T) {
	pool := memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
	led := ledger.New(pool, sequence.New(0))
	book := orderbook.NewBook()

	seq, err := Load(filepath.Join(t.TempDir(), FileName), led, book, pool)
	require.NoError(t, err)
	require.Zero(t, seq)
	require.Equal(t, 0, led.Len())
}

func TestWriteReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	book := orderbook.NewBook()
	w := &Writer{Dir: dir}

	require.NoError(t, w.Write(1, book))
	require.NoError(t, w.Write(2, book))

	pool := memory.NewPool(func() *orderbook.Order { return &orderbook.Order{} })
	led := ledger.New(pool, sequence.New(0))
	seq, err := Load(filepath.Join(dir, FileName), led, orderbook.NewBook(), pool)
	require.NoError(t, err)
	require.EqualValues(t, 2, seq)
}
