package memory

import "sync/atomic"

// RetireRing is a lock-free SPSC ring buffer of retired objects.
// Orders leave the book here and wait until no snapshot reader can
// still hold a reference to them.
type RetireRing[T any] struct {
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte
	buf   []*T
	mask  uint64
}

func NewRetireRing[T any](size uint64) *RetireRing[T] {
	if size&(size-1) != 0 {
		panic("RetireRing size must be power of two")
	}
	return &RetireRing[T]{
		buf:  make([]*T, size),
		mask: size - 1,
	}
}

// Enqueue is producer-side only. Returns false when the ring is full.
func (r *RetireRing[T]) Enqueue(v *T) bool {
	h := r.head
	t := atomic.LoadUint64(&r.tail)
	if h-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[h&r.mask] = v
	r.head = h + 1
	return true
}

// Dequeue is consumer-side only. Returns nil when the ring is empty.
func (r *RetireRing[T]) Dequeue() *T {
	t := r.tail
	h := atomic.LoadUint64(&r.head)
	if t == h {
		return nil
	}
	v := r.buf[t&r.mask]
	r.buf[t&r.mask] = nil
	r.tail = t + 1
	return v
}
