package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	pb "vega/api/pb"
	"vega/domain/event"
	"vega/domain/ledger"
	"vega/domain/match"
	"vega/domain/orderbook"
	"vega/infra/kafka"
	"vega/infra/memory"
	"vega/infra/outbox"
	"vega/infra/sequence"
	entrywal "vega/infra/wal/entry"
	"vega/snapshot"
)

/*
OrderService is the ONLY write entry point into the system.

All coordination between:
- domain (ledger, orderbook, match)
- infra (memory, wal, outbox, kafka)
- snapshot
happens here. A single mutex serializes every mutation, which is what
keeps cancellations ordered behind in-flight matches for the same
order.
*/

type OrderService struct {
	mu sync.Mutex

	led    *ledger.Ledger
	book   *orderbook.Book
	engine *match.Engine

	gateway    match.Gateway
	baseAsset  string
	quoteAsset string

	pool   *memory.Pool[orderbook.Order]
	ring   *memory.RetireRing[orderbook.Order]
	reader *snapshot.Reader

	seqGen *sequence.Sequencer // order ids, shared with the WAL
	evtSeq *sequence.Sequencer // event stream positions

	entryWAL *entrywal.WAL
	outbox   *outbox.Outbox
	feed     *kafka.Producer // best-effort trade ticks, may be nil

	log *zap.Logger
}

// Deps carries everything NewOrderService wires together.
// No globals. No magic.
type Deps struct {
	Ledger  *ledger.Ledger
	Book    *orderbook.Book
	Gateway match.Gateway

	BaseAsset         string
	QuoteAsset        string
	SettlementTimeout time.Duration

	Pool   *memory.Pool[orderbook.Order]
	Ring   *memory.RetireRing[orderbook.Order]
	Reader *snapshot.Reader

	SeqGen   *sequence.Sequencer
	EventSeq *sequence.Sequencer

	EntryWAL *entrywal.WAL
	Outbox   *outbox.Outbox
	Feed     *kafka.Producer

	Log *zap.Logger
}

func NewOrderService(d Deps) *OrderService {
	return &OrderService{
		led:        d.Ledger,
		book:       d.Book,
		engine:     match.NewEngine(d.Ledger, d.Book, d.Gateway, d.BaseAsset, d.QuoteAsset, d.SettlementTimeout),
		gateway:    d.Gateway,
		baseAsset:  d.BaseAsset,
		quoteAsset: d.QuoteAsset,
		pool:       d.Pool,
		ring:       d.Ring,
		reader:     d.Reader,
		seqGen:     d.SeqGen,
		evtSeq:     d.EventSeq,
		entryWAL:   d.EntryWAL,
		outbox:     d.Outbox,
		feed:       d.Feed,
		log:        d.Log,
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// PlaceOrder submits a new limit order and runs the match loop. It
// returns the assigned order id. A settlement failure mid-loop still
// returns the id: the order was accepted and rests with whatever
// remains after the trades that did commit.
func (s *OrderService) PlaceOrder(
	ctx context.Context,
	trader uuid.UUID,
	side orderbook.Side,
	price int64,
	qty int64,
) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Reject before any state mutation.
	if qty <= 0 {
		return 0, fmt.Errorf("%w: %d", ledger.ErrInvalidAmount, qty)
	}
	if price <= 0 {
		return 0, fmt.Errorf("%w: %d", ledger.ErrInvalidPrice, price)
	}
	if qty > math.MaxInt64/price {
		return 0, fmt.Errorf("%w: %d at price %d overflows notional", ledger.ErrInvalidAmount, qty, price)
	}
	if err := s.checkFunds(ctx, trader, side, price, qty); err != nil {
		return 0, err
	}

	o, err := s.led.Create(trader, side, price, qty)
	if err != nil {
		return 0, err
	}

	// Durable intent before the book sees the order. If the WAL
	// rejects the write the placement never happened.
	if err := s.logCommand(entrywal.RecordPlace, o.ID, &pb.OrderCommand{
		Type:    pb.CommandType_COMMAND_TYPE_PLACE,
		OrderId: o.ID,
		Trader:  trader.String(),
		Side:    sideToPB(side),
		Price:   price,
		Qty:     qty,
	}); err != nil {
		_ = s.led.Cancel(o.ID, trader)
		s.led.Evict(o.ID)
		s.pool.Put(o)
		return 0, fmt.Errorf("wal append: %w", err)
	}

	s.emit(event.NewPlaced(s.evtSeq.Next(), time.Now().UnixNano(), event.OrderPlaced{
		ID:     o.ID,
		Trader: trader,
		Amount: qty,
		Price:  price,
		IsBuy:  side == orderbook.Bid,
	}))

	s.book.Insert(o)

	trades, matchErr := s.engine.Match(ctx)
	s.publishTrades(ctx, trades)

	if matchErr != nil {
		// Committed trades stand; the triggering order keeps resting.
		s.log.Warn("matching halted",
			zap.Uint64("order", o.ID),
			zap.Int("committed", len(trades)),
			zap.Error(matchErr))
		return o.ID, matchErr
	}
	return o.ID, nil
}

// CancelOrder removes a resting order on behalf of its owner.
func (s *OrderService) CancelOrder(ctx context.Context, id uint64, requester uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.led.Get(id)
	if err != nil {
		return err
	}
	if o.Trader != requester {
		return fmt.Errorf("%w: order %d", ledger.ErrUnauthorized, id)
	}
	if o.Status.Terminal() {
		return fmt.Errorf("%w: %d is %s", ledger.ErrAlreadyInactive, id, o.Status)
	}

	// Cancel records take their own sequence number so the WAL stays
	// strictly ordered.
	if err := s.logCommand(entrywal.RecordCancel, s.seqGen.Next(), &pb.OrderCommand{
		Type:    pb.CommandType_COMMAND_TYPE_CANCEL,
		OrderId: id,
		Trader:  requester.String(),
	}); err != nil {
		return fmt.Errorf("wal append: %w", err)
	}

	if err := s.led.Cancel(id, requester); err != nil {
		return err
	}
	s.book.Remove(o)

	s.emit(event.NewCancelled(s.evtSeq.Next(), time.Now().UnixNano(), event.OrderCancelled{ID: id}))

	s.retire(o)
	return nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// ActiveOrders returns the ids of all resting orders on one side,
// best price first, FIFO within a level.
func (s *OrderService) ActiveOrders(side orderbook.Side) []uint64 {
	s.reader.Begin()
	defer s.reader.End()

	out := make([]uint64, 0, 256)
	s.book.SideWalk(side, func(lvl *orderbook.PriceLevel) {
		for o := lvl.Head(); o != nil; o = o.Next() {
			if !o.Status.Terminal() {
				out = append(out, o.ID)
			}
		}
	})
	return out
}

// Depth returns a consistent view of all resting orders, bids then
// asks, each side best first. Caller must treat returned orders as
// read-only.
func (s *OrderService) Depth() []*orderbook.Order {
	s.reader.Begin()
	defer s.reader.End()

	out := make([]*orderbook.Order, 0, 1024)
	collect := func(lvl *orderbook.PriceLevel) {
		for o := lvl.Head(); o != nil; o = o.Next() {
			if !o.Status.Terminal() {
				out = append(out, o)
			}
		}
	}
	s.book.BidsWalk(collect)
	s.book.AsksWalk(collect)
	return out
}

// Order looks up a single order by id.
func (s *OrderService) Order(id uint64) (*orderbook.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.led.Get(id)
}

//
// ──────────────────────────────────────────────────────────
// Reclamation
// ──────────────────────────────────────────────────────────
//

// AdvanceEpoch performs safe reclamation of retired orders. Intended
// to be called periodically by a background job. Orders leave the
// ledger table and return to the pool only once every reader has
// moved past their retirement epoch.
func (s *OrderService) AdvanceEpoch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	memory.AdvanceEpochAndReclaim(s.ring, s.reclaim, s.reader.Epoch())
}

// reclaim drops the order's ledger entry before the memory is
// recycled. Until then, terminal orders stay queryable by id.
func (s *OrderService) reclaim(o *orderbook.Order) {
	s.led.Evict(o.ID)
	s.pool.Put(o)
}

//
// ──────────────────────────────────────────────────────────
// Internals
// ──────────────────────────────────────────────────────────
//

func (s *OrderService) checkFunds(ctx context.Context, trader uuid.UUID, side orderbook.Side, price, qty int64) error {
	asset, need := s.baseAsset, qty
	if side == orderbook.Bid {
		asset, need = s.quoteAsset, qty*price
	}
	bal, err := s.gateway.BalanceOf(ctx, trader, asset)
	if err != nil {
		return fmt.Errorf("balance check: %w", err)
	}
	if bal < need {
		return fmt.Errorf("%w: trader %s has %d %s, needs %d",
			match.ErrInsufficientBalance, trader, bal, asset, need)
	}
	return nil
}

func (s *OrderService) logCommand(t entrywal.RecordType, seq uint64, cmd *pb.OrderCommand) error {
	payload, err := proto.Marshal(cmd)
	if err != nil {
		return err
	}
	return s.entryWAL.Append(entrywal.NewRecord(t, seq, payload))
}

// publishTrades emits one OrderMatched event per committed trade,
// pushes best-effort ticks to the feed, and retires orders the trades
// completed.
func (s *OrderService) publishTrades(ctx context.Context, trades []match.Trade) {
	if len(trades) == 0 {
		return
	}

	touched := make(map[uint64]struct{}, len(trades)*2)
	for _, t := range trades {
		s.emit(event.NewMatched(s.evtSeq.Next(), time.Now().UnixNano(), event.OrderMatched{
			BuyOrderID:  t.BuyOrderID,
			SellOrderID: t.SellOrderID,
			Amount:      t.Qty,
			Price:       t.Price,
		}))

		if s.feed != nil {
			if err := s.feed.PublishTrade(ctx, t.Qty, t.Price); err != nil {
				s.log.Warn("tick publish failed", zap.Error(err))
			}
		}

		touched[t.BuyOrderID] = struct{}{}
		touched[t.SellOrderID] = struct{}{}
	}

	for id := range touched {
		if o, err := s.led.Get(id); err == nil && o.Status.Terminal() {
			s.retire(o)
		}
	}
}

// emit hands an event to the outbox. The broadcaster drains it to the
// broker with at-least-once delivery. An append failure drops the
// event from the stream, so it is loud in the logs.
func (s *OrderService) emit(e event.Event) {
	payload, err := e.Encode()
	if err != nil {
		s.log.Error("event encode failed", zap.Uint64("seq", e.Seq), zap.Error(err))
		return
	}
	if err := s.outbox.Append(e.Seq, payload); err != nil {
		s.log.Error("outbox append failed", zap.Uint64("seq", e.Seq), zap.Error(err))
	}
}

func (s *OrderService) retire(o *orderbook.Order) {
	if !s.ring.Enqueue(o) {
		// Ring full: keep the order in the ledger and try again on a
		// later trade. Memory is not reclaimed but nothing is lost.
		s.log.Warn("retire ring full", zap.Uint64("order", o.ID))
	}
}

func sideToPB(s orderbook.Side) pb.Side {
	if s == orderbook.Ask {
		return pb.Side_SIDE_ASK
	}
	return pb.Side_SIDE_BID
}

func sideFromPB(s pb.Side) orderbook.Side {
	if s == pb.Side_SIDE_ASK {
		return orderbook.Ask
	}
	return orderbook.Bid
}
