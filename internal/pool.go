package internal

import "sync"

// SlicePool recycles slices of T so that per-tick scans stay allocation free.
type SlicePool[T any] struct {
	pool sync.Pool
}

func NewSlicePool[T any](capacity int) *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() interface{} {
				s := make([]T, 0, capacity)
				return &s
			},
		},
	}
}

// Get returns an empty slice with the pool's base capacity.
func (p *SlicePool[T]) Get() []T {
	return (*p.pool.Get().(*[]T))[:0]
}

// Put hands a slice back to the pool. The caller must not retain it.
func (p *SlicePool[T]) Put(s []T) {
	p.pool.Put(&s)
}
