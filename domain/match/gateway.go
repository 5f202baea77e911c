package match

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSettlementFailed marks any trade whose two-leg asset transfer did
// not complete, including gateway timeouts. The engine never retries;
// resubmission is the caller's decision.
var ErrSettlementFailed = errors.New("match: settlement failed")

// ErrInsufficientBalance rejects a placement whose trader cannot cover
// the order at submission time. Advisory only: balances can still move
// between the pre-check and settlement of a later match.
var ErrInsufficientBalance = errors.New("match: insufficient balance")

// Gateway settles trades by moving assets between counter-parties. It
// usually sits across a process or trust boundary, so calls may be slow
// or fail; Trade must behave as a single atomic unit — either both the
// base leg (seller to buyer) and the quote leg (buyer to seller,
// qty*price) take effect, or neither does. The engine never has to
// tolerate a half-executed trade.
type Gateway interface {
	// BalanceOf reports a trader's balance in one asset. Advisory:
	// used for pre-validation only, the balance may change before a
	// later match settles.
	BalanceOf(ctx context.Context, trader uuid.UUID, asset string) (int64, error)

	// Trade transfers qty of baseAsset from seller to buyer and
	// qty*price of quoteAsset from buyer to seller, atomically.
	Trade(ctx context.Context, buyer, seller uuid.UUID, baseAsset, quoteAsset string, qty, price int64) error
}
