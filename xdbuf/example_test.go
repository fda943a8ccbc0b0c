package xdbuf_test

import (
	"fmt"

	"github.com/cwbudde/algo-xdbuf/xdbuf"
	"github.com/cwbudde/algo-xdbuf/xdbuf/step"
)

func ExampleBuffer() {
	b, _ := xdbuf.New(0, 2, 3)
	fmt.Println(b.Len(), b.Cap())

	// Reinitializing to a same-size shape reuses the storage.
	_ = b.InitFrom([]int{1, 2, 3, 4, 5, 6}, 3, 2)
	fmt.Println(b.Values())
	fmt.Println(b.Len(), b.Cap())

	// Output:
	// 6 6
	// [1 2 3 4 5 6]
	// 6 6
}

func ExampleWalker() {
	b, _ := xdbuf.FromValues([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, 3)

	w, _ := b.Walker(1, 1)
	v, _ := b.Get(w.Index())
	fmt.Println(w.Index(), v)

	_ = w.Step(step.Down2...)
	v, _ = b.Get(w.Index())
	fmt.Println(w.Coord(), w.Index(), v)

	// Output:
	// 4 5
	// [1 0] 3 4
}

func ExampleWalker_stepUntil() {
	b, _ := xdbuf.FromValues([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, 3)
	w, _ := b.Walker(1, 1)

	err := w.StepUntil(b, func(v int, _ []int) bool {
		return v >= 8
	}, step.Right2...)

	fmt.Println(err, w.Coord(), w.Index())

	// Output:
	// <nil> [2 1] 7
}
