package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"vega/api/grpcserver"
	pb "vega/api/pb"
	"vega/config"
	"vega/domain/ledger"
	"vega/domain/orderbook"
	"vega/infra/assets"
	"vega/infra/kafka"
	"vega/infra/memory"
	"vega/infra/outbox"
	"vega/infra/sequence"
	entrywal "vega/infra/wal/entry"
	"vega/jobs/broadcaster"
	"vega/service"
	"vega/snapshot"
)

func main() {
	cfgPath := flag.String("config", "", "path to JSON config file")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	// ---------------- Entry WAL ----------------

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:         cfg.WALDir,
		SegmentSize: int64(cfg.WALSegmentSize),
	})
	if err != nil {
		log.Fatal("entry WAL init failed", zap.Error(err))
	}
	defer entryWAL.Close()

	// ---------------- Outbox ----------------

	ob, err := outbox.Open(cfg.OutboxDir)
	if err != nil {
		log.Fatal("outbox init failed", zap.Error(err))
	}
	defer ob.Close()

	// ---------------- Sequencers ----------------

	seqGen := sequence.New(0)

	lastEvt, err := ob.LastSeq()
	if err != nil {
		log.Fatal("outbox scan failed", zap.Error(err))
	}
	evtSeq := sequence.New(lastEvt)

	// ---------------- Memory ----------------

	pool := memory.NewPool(func() *orderbook.Order {
		return &orderbook.Order{}
	})
	ring := memory.NewRetireRing[orderbook.Order](1 << 18)
	reader := snapshot.NewReader()

	// ---------------- Domain ----------------

	book := orderbook.NewBook()
	led := ledger.New(pool, seqGen)

	assetLedger := assets.NewLedger()
	for _, b := range cfg.Balances {
		trader, err := uuid.Parse(b.Trader)
		if err != nil {
			log.Fatal("config balance trader", zap.String("trader", b.Trader), zap.Error(err))
		}
		assetLedger.Deposit(trader, b.Asset, b.Amount)
	}

	// ---------------- Recovery ----------------

	if err := service.Replay(
		cfg.WALDir,
		cfg.SnapshotDir,
		led,
		book,
		pool,
		seqGen,
		cfg.BaseAsset,
		cfg.QuoteAsset,
	); err != nil {
		log.Fatal("replay failed", zap.Error(err))
	}
	log.Info("replay complete",
		zap.Uint64("seq", seqGen.Current()),
		zap.Int("open_orders", led.Len()))

	// ---------------- Trade feed ----------------

	feed := kafka.NewProducer(cfg.Brokers, cfg.TickTopic, cfg.Pair)
	defer feed.Close()

	// ---------------- Service ----------------

	svc := service.NewOrderService(service.Deps{
		Ledger:            led,
		Book:              book,
		Gateway:           assetLedger,
		BaseAsset:         cfg.BaseAsset,
		QuoteAsset:        cfg.QuoteAsset,
		SettlementTimeout: cfg.SettlementTimeout(),
		Pool:              pool,
		Ring:              ring,
		Reader:            reader,
		SeqGen:            seqGen,
		EventSeq:          evtSeq,
		EntryWAL:          entryWAL,
		Outbox:            ob,
		Feed:              feed,
		Log:               log,
	})

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ticker := time.NewTicker(cfg.EpochInterval())
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				svc.AdvanceEpoch()
			}
		}
	}()

	svc.StartSnapshotJob(ctx, cfg.SnapshotDir, cfg.SnapshotInterval())

	bc, err := broadcaster.New(ob, cfg.Brokers, cfg.EventTopic, cfg.BroadcastInterval(), log)
	if err != nil {
		log.Fatal("broadcaster init failed", zap.Error(err))
	}
	defer bc.Close()
	bc.Start(ctx)

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatal("listen failed", zap.Error(err))
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterMarketServiceServer(grpcSrv, grpcserver.NewServer(svc, log))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		grpcSrv.GracefulStop()
	}()

	log.Info("engine running",
		zap.String("addr", cfg.ListenAddr),
		zap.String("pair", cfg.Pair))

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatal("gRPC server exited", zap.Error(err))
	}
}
