package xdbuf

import "sync"

// Pool provides sync.Pool-based Buffer reuse so hot loops can obtain
// fill-initialized buffers without allocating when a recycled backing
// slice is large enough.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{}
			},
		},
	}
}

// Get returns a Buffer of the given per-axis sizes with every element set
// to fill. The Buffer may carry capacity from a recycled backing slice.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(fill T, dims ...int) (*Buffer[T], error) {
	shape, err := NewShape(dims...)
	if err != nil {
		return nil, err
	}

	b := p.pool.Get().(*Buffer[T])
	b.reset(shape)
	for i := range b.data {
		b.data[i] = fill
	}

	return b, nil
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the Buffer after calling Put.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
