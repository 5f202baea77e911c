package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vega/snapshot"
)

// StartSnapshotJob periodically persists the book and garbage-collects
// the durable logs behind the snapshot watermark: entry WAL segments
// fully below it, and outbox records already acked by the broker.
func (s *OrderService) StartSnapshotJob(ctx context.Context, dir string, interval time.Duration) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.snapshotOnce(w)
			}
		}
	}()
}

func (s *OrderService) snapshotOnce(w *snapshot.Writer) {
	s.mu.Lock()
	seq := s.seqGen.Current()
	err := w.Write(seq, s.book)
	s.mu.Unlock()
	if err != nil {
		s.log.Error("snapshot write failed", zap.Error(err))
		return
	}

	if err := s.entryWAL.TruncateBefore(seq); err != nil {
		s.log.Warn("wal truncate failed", zap.Uint64("seq", seq), zap.Error(err))
	}
	if err := s.outbox.TruncateAckedUpTo(s.evtSeq.Current()); err != nil {
		s.log.Warn("outbox truncate failed", zap.Error(err))
	}

	s.log.Info("snapshot written", zap.Uint64("seq", seq))
}
