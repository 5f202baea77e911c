package sequence

import "sync/atomic"

// Sequencer generates strictly monotonic sequence IDs. Order ids and
// sequence numbers are drawn from the same space, so arrival order is
// id order. Deterministic and replay-safe.
type Sequencer struct {
	last atomic.Uint64
}

// New creates a sequencer that issued `start` last.
// Fresh start: 0. After replay: the last replayed seq.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.last.Store(start)
	return s
}

// Next returns the next sequence ID.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.last.Load()
}

// Reset moves the sequencer to v. Only used after WAL replay and
// snapshot restore.
func (s *Sequencer) Reset(v uint64) {
	s.last.Store(v)
}
