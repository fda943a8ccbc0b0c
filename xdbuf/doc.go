// Package xdbuf provides a reusable fixed-rank N-dimensional buffer and a
// bounded cursor for structured traversal.
//
// A Buffer owns flat row-major storage plus the Shape describing its
// per-axis sizes. The rank is fixed when the Buffer is created; Init and
// InitFrom swap in new per-axis sizes of the same rank and reuse the
// existing backing storage whenever the new element count fits its
// capacity, so one Buffer can serve many differently sized runs without
// reallocating:
//
//	b, err := xdbuf.New(0.0, 64, 64) // rank 2, 64x64, zero-filled
//	err = b.Init(0.0, 16, 16)        // same storage, no allocation
//
// A Walker navigates the coordinate space by relative displacement instead
// of manual index arithmetic. It snapshots the Buffer's shape by value and
// never references the storage itself; resolve its position with Index and
// read or write through the Buffer:
//
//	w, err := b.Walker(1, 1)
//	err = w.Step(step.Down2...)
//	v, ok := b.Get(w.Index())
//
// Steps are all-or-nothing: a displacement that would leave the shape on
// any axis fails with ErrOutOfBounds and does not move the cursor.
// StepUntil and ScanUntil walk until a predicate is satisfied; because they
// read element values they take the source Buffer as an argument and fail
// with ErrStaleWalker if it has been reinitialized since the Walker was
// derived.
//
// Nothing in this package is safe for concurrent use without external
// synchronization, with the exception of Pool.
package xdbuf
