package xdbuf

import "math"

// Shape is an ordered tuple of positive per-axis sizes together with the
// row-major strides derived from them. Shapes are immutable after
// construction; the zero value is an empty rank-0 shape with no elements.
type Shape struct {
	dims    []int
	strides []int
	total   int
}

// NewShape builds a Shape from per-axis sizes. Every size must be positive
// and at least one axis is required. Strides are row-major: the last axis
// varies fastest in flat storage.
func NewShape(dims ...int) (Shape, error) {
	if len(dims) == 0 {
		return Shape{}, ErrInvalidDimension
	}

	total := 1
	for _, d := range dims {
		if d <= 0 || total > math.MaxInt/d {
			return Shape{}, ErrInvalidDimension
		}
		total *= d
	}

	owned := make([]int, len(dims))
	copy(owned, dims)

	strides := make([]int, len(owned))
	strides[len(owned)-1] = 1
	for i := len(owned) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * owned[i+1]
	}

	return Shape{dims: owned, strides: strides, total: total}, nil
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s.dims)
}

// Dim returns the size of axis i.
func (s Shape) Dim(i int) int {
	return s.dims[i]
}

// Dims returns a copy of the per-axis sizes.
func (s Shape) Dims() []int {
	dims := make([]int, len(s.dims))
	copy(dims, s.dims)
	return dims
}

// Total returns the element count, the product of all axis sizes.
func (s Shape) Total() int {
	return s.total
}

// Strides returns a copy of the row-major per-axis strides.
func (s Shape) Strides() []int {
	strides := make([]int, len(s.strides))
	copy(strides, s.strides)
	return strides
}

// Flatten converts a coordinate to its flat row-major index. The coordinate
// must carry one component per axis, each within [0, Dim(i)); Flatten never
// clamps.
func (s Shape) Flatten(coord []int) (int, error) {
	if len(coord) != len(s.dims) {
		return 0, ErrRankMismatch
	}

	flat := 0
	for i, c := range coord {
		if c < 0 || c >= s.dims[i] {
			return 0, ErrIndexOutOfBounds
		}
		flat += c * s.strides[i]
	}

	return flat, nil
}

// Coord converts a flat index back to its coordinate, the inverse of
// Flatten.
func (s Shape) Coord(flat int) ([]int, error) {
	if flat < 0 || flat >= s.total {
		return nil, ErrIndexOutOfBounds
	}

	coord := make([]int, len(s.dims))
	for i, stride := range s.strides {
		coord[i] = flat / stride
		flat %= stride
	}

	return coord, nil
}

// contains reports whether every component of coord lies inside the shape.
// The coordinate must already be rank-matched.
func (s Shape) contains(coord []int) bool {
	for i, c := range coord {
		if c < 0 || c >= s.dims[i] {
			return false
		}
	}
	return true
}
