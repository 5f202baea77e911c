package memory

import "sync/atomic"

// GlobalEpoch monotonically increases.
var GlobalEpoch atomic.Uint64

const inactive = ^uint64(0)

// ReaderEpoch marks when a reader entered a read section.
type ReaderEpoch struct {
	epoch atomic.Uint64
}

// NewReaderEpoch returns an epoch in the inactive state. The zero
// value reads as epoch 0 and would block reclamation forever.
func NewReaderEpoch() *ReaderEpoch {
	r := &ReaderEpoch{}
	r.epoch.Store(inactive)
	return r
}

func (r *ReaderEpoch) Enter() {
	r.epoch.Store(GlobalEpoch.Load())
}

func (r *ReaderEpoch) Exit() {
	r.epoch.Store(inactive)
}

func (r *ReaderEpoch) Value() uint64 {
	return r.epoch.Load()
}

// AdvanceEpochAndReclaim advances the global epoch and hands every
// retired object to reclaim, but only while no reader is inside an
// older epoch. A live reader may still hold references into the ring's
// contents, so in that case everything stays queued for a later pass;
// retirement order is preserved.
func AdvanceEpochAndReclaim[T any](ring *RetireRing[T], reclaim func(*T), readers ...*ReaderEpoch) {
	GlobalEpoch.Add(1)
	if minReaderEpoch(readers...) != inactive {
		return
	}
	for {
		obj := ring.Dequeue()
		if obj == nil {
			return
		}
		reclaim(obj)
	}
}

func minReaderEpoch(rs ...*ReaderEpoch) uint64 {
	min := inactive
	for _, r := range rs {
		if r == nil {
			continue
		}
		v := r.Value()
		if v < min {
			min = v
		}
	}
	return min
}
