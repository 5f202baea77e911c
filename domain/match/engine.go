package match

import (
	"context"
	"fmt"
	"time"

	"vega/domain/ledger"
	"vega/domain/orderbook"
)

// Trade is one committed match.
type Trade struct {
	BuyOrderID  uint64
	SellOrderID uint64
	Qty         int64
	Price       int64
}

// Engine drives the match loop over the book. It is single-writer and
// deterministic: one placement is matched to completion before the next
// begins, which the service layer enforces with its writer lock.
type Engine struct {
	ledger  *ledger.Ledger
	book    *orderbook.Book
	gateway Gateway

	baseAsset  string
	quoteAsset string
	timeout    time.Duration
}

func NewEngine(led *ledger.Ledger, book *orderbook.Book, gw Gateway, baseAsset, quoteAsset string, timeout time.Duration) *Engine {
	return &Engine{
		ledger:     led,
		book:       book,
		gateway:    gw,
		baseAsset:  baseAsset,
		quoteAsset: quoteAsset,
		timeout:    timeout,
	}
}

// Match repeatedly pairs the best bid against the best ask until the
// book no longer crosses or one side empties. Equal prices cross.
//
// The resting order is whichever of the pair arrived first; the trade
// executes at the resting order's price, so the aggressor always gets
// the better of its own limit and the earlier price, never worse.
//
// Every trade settles through the gateway before either order or the
// book is touched. A settlement failure aborts that trade unmutated and
// halts matching for this event; trades already committed stand, and
// the triggering order keeps resting with its pre-trade remaining
// amount. The returned trades are the committed ones either way.
func (e *Engine) Match(ctx context.Context) ([]Trade, error) {
	var trades []Trade
	for {
		bid := e.book.PeekBest(orderbook.Bid)
		ask := e.book.PeekBest(orderbook.Ask)
		if bid == nil || ask == nil || bid.Price < ask.Price {
			return trades, nil
		}

		resting := bid
		if ask.SeqID < bid.SeqID {
			resting = ask
		}
		price := resting.Price
		qty := min(bid.Remaining(), ask.Remaining())

		if err := e.settle(ctx, bid, ask, qty, price); err != nil {
			return trades, err
		}

		if err := e.apply(bid, qty); err != nil {
			return trades, err
		}
		if err := e.apply(ask, qty); err != nil {
			return trades, err
		}

		trades = append(trades, Trade{
			BuyOrderID:  bid.ID,
			SellOrderID: ask.ID,
			Qty:         qty,
			Price:       price,
		})
	}
}

func (e *Engine) settle(ctx context.Context, bid, ask *orderbook.Order, qty, price int64) error {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	if err := e.gateway.Trade(ctx, bid.Trader, ask.Trader, e.baseAsset, e.quoteAsset, qty, price); err != nil {
		return fmt.Errorf("%w: buy=%d sell=%d qty=%d price=%d: %v",
			ErrSettlementFailed, bid.ID, ask.ID, qty, price, err)
	}
	return nil
}

func (e *Engine) apply(o *orderbook.Order, qty int64) error {
	e.book.Reduce(o, qty)
	if o.Remaining() == 0 {
		return e.ledger.MarkFilled(o.ID)
	}
	return e.ledger.MarkPartial(o.ID, o.Remaining())
}
