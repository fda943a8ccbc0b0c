package xdbuf

// Buffer is a dense N-dimensional buffer over flat row-major storage.
//
// The rank is fixed when the Buffer is created; Init and InitFrom may swap
// in new per-axis sizes but never a new rank. Reinitializing reuses the
// backing storage whenever the new element count fits the existing
// capacity, so a single Buffer can be recycled across many differently
// sized runs without reallocating. Capacity only grows when a
// reinitialization needs more elements than ever before, and then to the
// exact new count.
type Buffer[T any] struct {
	data  []T
	shape Shape
	gen   uint64
}

// New returns a Buffer of the given per-axis sizes with every element set
// to fill.
func New[T any](fill T, dims ...int) (*Buffer[T], error) {
	shape, err := NewShape(dims...)
	if err != nil {
		return nil, err
	}

	data := make([]T, shape.Total())
	for i := range data {
		data[i] = fill
	}

	return &Buffer[T]{data: data, shape: shape}, nil
}

// FromValues returns a Buffer of the given per-axis sizes initialized from
// values in flat row-major order. len(values) must equal the product of the
// sizes. The values are copied; the Buffer owns its storage exclusively.
func FromValues[T any](values []T, dims ...int) (*Buffer[T], error) {
	shape, err := NewShape(dims...)
	if err != nil {
		return nil, err
	}
	if len(values) != shape.Total() {
		return nil, ErrLengthMismatch
	}

	data := make([]T, len(values))
	copy(data, values)

	return &Buffer[T]{data: data, shape: shape}, nil
}

// Init reinitializes the Buffer to new per-axis sizes with every element
// set to fill. The sizes must match the rank the Buffer was created with.
//
// Init advances the generation: Walkers derived before the call become
// stale.
func (b *Buffer[T]) Init(fill T, dims ...int) error {
	shape, err := b.reshape(dims)
	if err != nil {
		return err
	}

	b.reset(shape)
	for i := range b.data {
		b.data[i] = fill
	}

	return nil
}

// InitFrom reinitializes the Buffer to new per-axis sizes with contents
// copied from values in flat row-major order. len(values) must equal the
// product of the new sizes. On any error the Buffer is left unchanged.
//
// InitFrom advances the generation: Walkers derived before the call become
// stale.
func (b *Buffer[T]) InitFrom(values []T, dims ...int) error {
	shape, err := b.reshape(dims)
	if err != nil {
		return err
	}
	if len(values) != shape.Total() {
		return ErrLengthMismatch
	}

	b.reset(shape)
	copy(b.data, values)

	return nil
}

// reshape validates a reinitialization shape against the fixed rank.
func (b *Buffer[T]) reshape(dims []int) (Shape, error) {
	if len(dims) != b.shape.Rank() {
		return Shape{}, ErrRankMismatch
	}
	return NewShape(dims...)
}

// reset installs shape and resizes storage, reusing capacity when possible.
// Contents are unspecified afterwards; callers overwrite every element.
func (b *Buffer[T]) reset(shape Shape) {
	n := shape.Total()
	if n <= cap(b.data) {
		b.data = b.data[:n]
	} else {
		// Exact fit. The whole point is avoiding reallocation on
		// same-size-or-shrinking reuse, not amortized growth.
		b.data = make([]T, n)
	}
	b.shape = shape
	b.gen++
}

// Get returns the element at flat index i. The second result is false when
// i lies outside [0, Len()); an out-of-range read is an expected miss, not
// an error.
func (b *Buffer[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(b.data) {
		var zero T
		return zero, false
	}
	return b.data[i], true
}

// Set writes v at flat index i.
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= len(b.data) {
		return ErrIndexOutOfBounds
	}
	b.data[i] = v
	return nil
}

// Len returns the current element count.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Cap returns the capacity of the backing storage. Capacity at or above a
// future element count means the reinitialization to it will not allocate.
func (b *Buffer[T]) Cap() int {
	return cap(b.data)
}

// Values returns the backing slice in flat row-major order. Mutations are
// visible through the Buffer and vice versa; the slice is invalidated by
// the next Init, InitFrom or ShrinkToFit.
func (b *Buffer[T]) Values() []T {
	return b.data
}

// Shape returns the current shape.
func (b *Buffer[T]) Shape() Shape {
	return b.shape
}

// Rank returns the number of axes fixed at construction.
func (b *Buffer[T]) Rank() int {
	return b.shape.Rank()
}

// Strides returns a copy of the current row-major strides.
func (b *Buffer[T]) Strides() []int {
	return b.shape.Strides()
}

// Generation returns the reinitialization count. Walkers are valid only
// against the generation they were derived from.
func (b *Buffer[T]) Generation() uint64 {
	return b.gen
}

// ShrinkToFit reallocates the backing storage down to exactly Len(),
// releasing capacity retained from earlier, larger shapes. Walkers remain
// valid; slices returned by Values do not.
func (b *Buffer[T]) ShrinkToFit() {
	if cap(b.data) == len(b.data) {
		return
	}
	data := make([]T, len(b.data))
	copy(data, b.data)
	b.data = data
}

// Walker returns a cursor positioned at coord, bound by value to the
// Buffer's current shape and generation. A later Init or InitFrom does not
// move the Walker; it makes it stale.
func (b *Buffer[T]) Walker(coord ...int) (*Walker[T], error) {
	if len(coord) != b.shape.Rank() {
		return nil, ErrRankMismatch
	}
	if !b.shape.contains(coord) {
		return nil, ErrIndexOutOfBounds
	}

	owned := make([]int, len(coord))
	copy(owned, coord)

	return &Walker[T]{shape: b.shape, coord: owned, gen: b.gen}, nil
}
