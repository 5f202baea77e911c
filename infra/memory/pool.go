// Package memory provides the allocation and reclamation machinery the
// engine uses to keep snapshot readers safe: a typed order pool, a ring
// of retired objects, and epoch tracking that delays reuse until every
// in-flight snapshot has moved on.
package memory

import "sync"

// Pool is a typed object pool.
type Pool[T any] struct {
	p *sync.Pool
}

func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

func (p *Pool[T]) Put(v *T) {
	p.p.Put(v)
}
