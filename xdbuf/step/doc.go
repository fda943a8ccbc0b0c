// Package step provides named displacement vectors for use with
// xdbuf.Walker in rank-2 and rank-3 buffers.
//
// Axis 0 is x (Right/Left), axis 1 is y (Up/Down in rank 2, Front/Back in
// rank 3) and axis 2 is z (Top/Bottom). Down2 therefore decreases the
// second coordinate:
//
//	w.Step(step.Down2...)
//
// The vectors are plain slices so they spread directly into the variadic
// Walker methods; treat them as read-only.
package step
