package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"

	pb "vega/api/pb"
	"vega/domain/ledger"
	"vega/domain/match"
	"vega/domain/orderbook"
	"vega/infra/memory"
	"vega/infra/sequence"
	entrywal "vega/infra/wal/entry"
	"vega/snapshot"
)

/*
Replay rebuilds in-memory state: load the latest snapshot, then re-run
every entry WAL record past its watermark through the real matching
logic.

IMPORTANT:
- This MUST run before accepting traffic
- The outbox is NOT replayed; its pending records survive in pebble
*/

// replayGateway commits trades without moving assets. The external
// asset ledger already reflects every settlement that happened before
// the restart, so replay only has to reproduce book and ledger state.
type replayGateway struct{}

func (replayGateway) BalanceOf(context.Context, uuid.UUID, string) (int64, error) {
	return math.MaxInt64, nil
}

func (replayGateway) Trade(context.Context, uuid.UUID, uuid.UUID, string, string, int64, int64) error {
	return nil
}

func Replay(
	walDir string,
	snapDir string,
	led *ledger.Ledger,
	book *orderbook.Book,
	pool *memory.Pool[orderbook.Order],
	seqGen *sequence.Sequencer,
	baseAsset, quoteAsset string,
) error {
	watermark, err := snapshot.Load(filepath.Join(snapDir, snapshot.FileName), led, book, pool)
	if err != nil {
		return fmt.Errorf("snapshot load: %w", err)
	}

	engine := match.NewEngine(led, book, replayGateway{}, baseAsset, quoteAsset, 0)
	ctx := context.Background()

	lastSeq, err := entrywal.Replay(walDir, func(rec *entrywal.Record) error {
		if rec.Seq <= watermark {
			return nil
		}

		var cmd pb.OrderCommand
		if err := proto.Unmarshal(rec.Data, &cmd); err != nil {
			return fmt.Errorf("record %d: %w", rec.Seq, err)
		}

		switch rec.Type {
		case entrywal.RecordPlace:
			return replayPlace(ctx, rec.Seq, &cmd, led, book, pool, engine)
		case entrywal.RecordCancel:
			return replayCancel(&cmd, led, book, pool)
		default:
			return fmt.Errorf("record %d: unknown type %d", rec.Seq, rec.Type)
		}
	})
	if err != nil {
		return err
	}

	// Resume sequencing AFTER replay.
	if watermark > lastSeq {
		lastSeq = watermark
	}
	seqGen.Reset(lastSeq)
	return nil
}

func replayPlace(
	ctx context.Context,
	seq uint64,
	cmd *pb.OrderCommand,
	led *ledger.Ledger,
	book *orderbook.Book,
	pool *memory.Pool[orderbook.Order],
	engine *match.Engine,
) error {
	trader, err := uuid.Parse(cmd.Trader)
	if err != nil {
		return fmt.Errorf("record %d: trader: %w", seq, err)
	}

	o := pool.Get()
	*o = orderbook.Order{
		ID:     cmd.OrderId,
		Trader: trader,
		Side:   sideFromPB(cmd.Side),
		Price:  cmd.Price,
		Qty:    cmd.Qty,
		SeqID:  cmd.OrderId,
		Status: orderbook.Open,
	}
	led.Restore(o)
	book.Insert(o)

	trades, err := engine.Match(ctx)
	if err != nil {
		return fmt.Errorf("record %d: %w", seq, err)
	}
	evictFilled(trades, led, pool)
	return nil
}

// replayCancel tolerates cancels of orders replay cannot see as
// active. Live matching can halt on a settlement failure and leave an
// order resting that deterministic replay fills; a later logged
// cancel of that order then has nothing to remove.
func replayCancel(
	cmd *pb.OrderCommand,
	led *ledger.Ledger,
	book *orderbook.Book,
	pool *memory.Pool[orderbook.Order],
) error {
	o, err := led.Get(cmd.OrderId)
	if err != nil {
		if errors.Is(err, ledger.ErrOrderNotFound) {
			return nil
		}
		return err
	}
	trader, err := uuid.Parse(cmd.Trader)
	if err != nil {
		return fmt.Errorf("cancel %d: trader: %w", cmd.OrderId, err)
	}
	if err := led.Cancel(cmd.OrderId, trader); err != nil {
		if errors.Is(err, ledger.ErrAlreadyInactive) {
			return nil
		}
		return err
	}
	book.Remove(o)
	led.Evict(o.ID)
	pool.Put(o)
	return nil
}

// evictFilled releases orders the replayed trades completed. No
// readers run during replay, so there is no epoch to wait out.
func evictFilled(trades []match.Trade, led *ledger.Ledger, pool *memory.Pool[orderbook.Order]) {
	touched := make(map[uint64]struct{}, len(trades)*2)
	for _, t := range trades {
		touched[t.BuyOrderID] = struct{}{}
		touched[t.SellOrderID] = struct{}{}
	}
	for id := range touched {
		if o, err := led.Get(id); err == nil && o.Status.Terminal() {
			led.Evict(id)
			pool.Put(o)
		}
	}
}
