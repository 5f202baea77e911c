package snapshot

import "vega/infra/memory"

// Reader marks the bounds of a consistent read section. Orders retired
// while a reader is inside its section are not reclaimed until the
// reader exits.
type Reader struct {
	epoch *memory.ReaderEpoch
}

func NewReader() *Reader {
	return &Reader{
		epoch: memory.NewReaderEpoch(),
	}
}

func (r *Reader) Begin() {
	r.epoch.Enter()
}

func (r *Reader) End() {
	r.epoch.Exit()
}

// Epoch exposes the underlying epoch for reclaimers.
func (r *Reader) Epoch() *memory.ReaderEpoch {
	return r.epoch
}
