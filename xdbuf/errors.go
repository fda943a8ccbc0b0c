package xdbuf

import "errors"

// Sentinel errors returned by Shape, Buffer and Walker operations.
// Match with errors.Is.
var (
	// ErrInvalidDimension reports a shape with a non-positive axis size,
	// or one whose element count overflows int.
	ErrInvalidDimension = errors.New("xdbuf: invalid dimension")

	// ErrLengthMismatch reports a value sequence whose length does not
	// equal the element count of the shape it is paired with.
	ErrLengthMismatch = errors.New("xdbuf: length mismatch")

	// ErrIndexOutOfBounds reports a flat write index or a coordinate
	// outside the valid range of the current shape.
	ErrIndexOutOfBounds = errors.New("xdbuf: index out of bounds")

	// ErrOutOfBounds reports a Walker movement that would leave the shape.
	ErrOutOfBounds = errors.New("xdbuf: step out of bounds")

	// ErrRankMismatch reports dims, a coordinate or a displacement whose
	// component count differs from the rank fixed at construction.
	ErrRankMismatch = errors.New("xdbuf: rank mismatch")

	// ErrStaleWalker reports a Walker used against a Buffer that has been
	// reinitialized since the Walker was derived.
	ErrStaleWalker = errors.New("xdbuf: stale walker")
)
