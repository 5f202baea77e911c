// Package assets is an in-memory asset ledger implementing the
// settlement gateway. The production gateway lives on the other side of
// a trust boundary; this one backs tests, replay and the demo server.
package assets

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
)

var ErrInsufficientBalance = errors.New("assets: insufficient balance")

// Ledger tracks per-trader, per-asset integer balances. Trade applies
// both legs under one lock after checking both, so a trade is
// observable as all-or-nothing and total balances per asset never
// change, only ownership.
type Ledger struct {
	mu       sync.Mutex
	balances map[uuid.UUID]map[string]int64
}

func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[uuid.UUID]map[string]int64),
	}
}

// Deposit credits a trader. Used to seed balances.
func (l *Ledger) Deposit(trader uuid.UUID, asset string, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.credit(trader, asset, amount)
}

func (l *Ledger) BalanceOf(ctx context.Context, trader uuid.UUID, asset string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[trader][asset], nil
}

// Trade performs the compare-and-transfer: both legs are verified, then
// both applied, without releasing the lock in between. On any failure
// no balance moves.
func (l *Ledger) Trade(ctx context.Context, buyer, seller uuid.UUID, baseAsset, quoteAsset string, qty, price int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if qty <= 0 || price <= 0 {
		return fmt.Errorf("assets: non-positive trade qty=%d price=%d", qty, price)
	}
	if qty > math.MaxInt64/price {
		return fmt.Errorf("assets: trade value overflows: qty=%d price=%d", qty, price)
	}
	quoteAmount := qty * price

	l.mu.Lock()
	defer l.mu.Unlock()

	if have := l.balances[seller][baseAsset]; have < qty {
		return fmt.Errorf("%w: seller %s has %d %s, needs %d", ErrInsufficientBalance, seller, have, baseAsset, qty)
	}
	if have := l.balances[buyer][quoteAsset]; have < quoteAmount {
		return fmt.Errorf("%w: buyer %s has %d %s, needs %d", ErrInsufficientBalance, buyer, have, quoteAsset, quoteAmount)
	}

	l.balances[seller][baseAsset] -= qty
	l.credit(buyer, baseAsset, qty)
	l.balances[buyer][quoteAsset] -= quoteAmount
	l.credit(seller, quoteAsset, quoteAmount)
	return nil
}

func (l *Ledger) credit(trader uuid.UUID, asset string, amount int64) {
	acct, ok := l.balances[trader]
	if !ok {
		acct = make(map[string]int64, 2)
		l.balances[trader] = acct
	}
	acct[asset] += amount
}
