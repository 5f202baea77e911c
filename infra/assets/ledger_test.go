package assets

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTradeMovesBothLegs(t *testing.T) {
	l := NewLedger()
	buyer, seller := uuid.New(), uuid.New()
	ctx := context.Background()

	l.Deposit(buyer, "USD", 10_000)
	l.Deposit(seller, "BTC", 50)

	require.NoError(t, l.Trade(ctx, buyer, seller, "BTC", "USD", 10, 100))

	for _, tc := range []struct {
		trader uuid.UUID
		asset  string
		want   int64
	}{
		{buyer, "BTC", 10},
		{buyer, "USD", 9_000},
		{seller, "BTC", 40},
		{seller, "USD", 1_000},
	} {
		got, err := l.BalanceOf(ctx, tc.trader, tc.asset)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s balance of %s", tc.asset, tc.trader)
	}
}

func TestTradeInsufficientLeavesNothingMoved(t *testing.T) {
	l := NewLedger()
	buyer, seller := uuid.New(), uuid.New()
	ctx := context.Background()

	l.Deposit(buyer, "USD", 500) // needs 1000
	l.Deposit(seller, "BTC", 50)

	err := l.Trade(ctx, buyer, seller, "BTC", "USD", 10, 100)
	require.ErrorIs(t, err, ErrInsufficientBalance)

	got, _ := l.BalanceOf(ctx, buyer, "USD")
	require.EqualValues(t, 500, got)
	got, _ = l.BalanceOf(ctx, seller, "BTC")
	require.EqualValues(t, 50, got)
	got, _ = l.BalanceOf(ctx, buyer, "BTC")
	require.Zero(t, got)
}

func TestTradeSellerShortLeavesNothingMoved(t *testing.T) {
	l := NewLedger()
	buyer, seller := uuid.New(), uuid.New()
	ctx := context.Background()

	l.Deposit(buyer, "USD", 10_000)
	l.Deposit(seller, "BTC", 3) // needs 10

	err := l.Trade(ctx, buyer, seller, "BTC", "USD", 10, 100)
	require.ErrorIs(t, err, ErrInsufficientBalance)

	got, _ := l.BalanceOf(ctx, buyer, "USD")
	require.EqualValues(t, 10_000, got)
}

func TestTradeValidatesArguments(t *testing.T) {
	l := NewLedger()
	buyer, seller := uuid.New(), uuid.New()
	ctx := context.Background()

	require.Error(t, l.Trade(ctx, buyer, seller, "BTC", "USD", 0, 100))
	require.Error(t, l.Trade(ctx, buyer, seller, "BTC", "USD", 10, -1))
}

func TestTradeRejectsOverflowingQuoteLeg(t *testing.T) {
	l := NewLedger()
	buyer, seller := uuid.New(), uuid.New()
	ctx := context.Background()

	l.Deposit(buyer, "USD", math.MaxInt64)
	l.Deposit(seller, "BTC", math.MaxInt64)

	// qty*price wraps negative; a wrapped quote amount would pass the
	// balance check and corrupt both USD accounts.
	err := l.Trade(ctx, buyer, seller, "BTC", "USD", math.MaxInt64/2, 3)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInsufficientBalance)

	got, _ := l.BalanceOf(ctx, buyer, "USD")
	require.EqualValues(t, int64(math.MaxInt64), got)
	got, _ = l.BalanceOf(ctx, seller, "BTC")
	require.EqualValues(t, int64(math.MaxInt64), got)
	got, _ = l.BalanceOf(ctx, seller, "USD")
	require.Zero(t, got)
}

func TestTradeHonorsCancelledContext(t *testing.T) {
	l := NewLedger()
	buyer, seller := uuid.New(), uuid.New()
	l.Deposit(buyer, "USD", 10_000)
	l.Deposit(seller, "BTC", 50)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, l.Trade(ctx, buyer, seller, "BTC", "USD", 10, 100))
	got, _ := l.BalanceOf(context.Background(), buyer, "BTC")
	require.Zero(t, got)
}

func TestConservationAcrossTrades(t *testing.T) {
	l := NewLedger()
	a, b := uuid.New(), uuid.New()
	ctx := context.Background()

	l.Deposit(a, "USD", 5_000)
	l.Deposit(a, "BTC", 20)
	l.Deposit(b, "USD", 5_000)
	l.Deposit(b, "BTC", 20)

	require.NoError(t, l.Trade(ctx, a, b, "BTC", "USD", 5, 100))
	require.NoError(t, l.Trade(ctx, b, a, "BTC", "USD", 3, 90))

	sum := func(asset string) (total int64) {
		for _, trader := range []uuid.UUID{a, b} {
			v, err := l.BalanceOf(ctx, trader, asset)
			require.NoError(t, err)
			total += v
		}
		return total
	}
	require.EqualValues(t, 10_000, sum("USD"))
	require.EqualValues(t, 40, sum("BTC"))
}
