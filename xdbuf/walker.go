package xdbuf

// Walker is a bounded cursor over the coordinate space of a Buffer.
//
// A Walker holds a coordinate and a by-value snapshot of the shape it was
// derived from; it never references the Buffer's storage. Operations that
// need element values (StepUntil, ScanUntil) take the source Buffer
// explicitly and refuse to run if it has been reinitialized since the
// Walker was derived. Every operation either commits a valid coordinate or
// reports failure and leaves the Walker unchanged.
type Walker[T any] struct {
	shape Shape
	coord []int
	gen   uint64
}

// Index returns the flat row-major index of the current coordinate.
func (w *Walker[T]) Index() int {
	flat := 0
	for i, c := range w.coord {
		flat += c * w.shape.strides[i]
	}
	return flat
}

// Coord returns a copy of the current coordinate.
func (w *Walker[T]) Coord() []int {
	coord := make([]int, len(w.coord))
	copy(coord, w.coord)
	return coord
}

// Peek returns the flat index the Walker would reach by stepping delta,
// without moving.
func (w *Walker[T]) Peek(delta ...int) (int, error) {
	if len(delta) != len(w.coord) {
		return 0, ErrRankMismatch
	}

	flat := 0
	for i, d := range delta {
		c := w.coord[i] + d
		if c < 0 || c >= w.shape.dims[i] {
			return 0, ErrOutOfBounds
		}
		flat += c * w.shape.strides[i]
	}

	return flat, nil
}

// Step moves the Walker by delta, one displacement component per axis. The
// move is all-or-nothing: if any destination component leaves its axis
// range, Step returns ErrOutOfBounds and the Walker stays where it is.
func (w *Walker[T]) Step(delta ...int) error {
	if len(delta) != len(w.coord) {
		return ErrRankMismatch
	}

	for i, d := range delta {
		c := w.coord[i] + d
		if c < 0 || c >= w.shape.dims[i] {
			return ErrOutOfBounds
		}
	}
	for i, d := range delta {
		w.coord[i] += d
	}

	return nil
}

// Next moves to the next flat index in row-major order. It returns
// ErrOutOfBounds past the last element.
func (w *Walker[T]) Next() error {
	return w.seek(w.Index() + 1)
}

// Prev moves to the previous flat index in row-major order. It returns
// ErrOutOfBounds before the first element.
func (w *Walker[T]) Prev() error {
	return w.seek(w.Index() - 1)
}

// seek places the Walker at a flat index, rejecting out-of-range targets.
func (w *Walker[T]) seek(flat int) error {
	if flat < 0 || flat >= w.shape.total {
		return ErrOutOfBounds
	}
	for i, stride := range w.shape.strides {
		w.coord[i] = flat / stride
		flat %= stride
	}
	return nil
}

// Stale reports whether b has been reinitialized since the Walker was
// derived from it.
func (w *Walker[T]) Stale(b *Buffer[T]) bool {
	return w.gen != b.gen
}

// StepUntil steps repeatedly by delta until pred is satisfied.
//
// pred is evaluated at the current position before the first step, so an
// always-true predicate succeeds without moving. After that it is evaluated
// once per committed step. When a step would leave the shape before pred is
// satisfied, StepUntil returns ErrOutOfBounds and the Walker stays at the
// last in-bounds position reached.
//
// b must be the Buffer the Walker was derived from; StepUntil returns
// ErrStaleWalker if it has been reinitialized since. The coord slice passed
// to pred is reused between calls and must not be modified or retained.
func (w *Walker[T]) StepUntil(b *Buffer[T], pred func(v T, coord []int) bool, delta ...int) error {
	if w.Stale(b) {
		return ErrStaleWalker
	}
	if len(delta) != len(w.coord) {
		return ErrRankMismatch
	}

	for {
		if pred(b.data[w.Index()], w.coord) {
			return nil
		}
		if err := w.Step(delta...); err != nil {
			return err
		}
	}
}

// ScanUntil advances through flat indices in row-major storage order, from
// the current position to the end, until pred is satisfied. When no element
// from here onward satisfies pred, ScanUntil returns ErrOutOfBounds and the
// Walker does not move. Staleness rules follow StepUntil.
func (w *Walker[T]) ScanUntil(b *Buffer[T], pred func(v T, flat int) bool) error {
	if w.Stale(b) {
		return ErrStaleWalker
	}

	for flat := w.Index(); flat < w.shape.total; flat++ {
		if pred(b.data[flat], flat) {
			return w.seek(flat)
		}
	}

	return ErrOutOfBounds
}
