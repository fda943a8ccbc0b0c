package step

// Rank-2 axis displacements.
var (
	Right2 = []int{1, 0}
	Left2  = []int{-1, 0}
	Up2    = []int{0, 1}
	Down2  = []int{0, -1}
)

// Rank-2 diagonal displacements.
var (
	RightUp2   = []int{1, 1}
	RightDown2 = []int{1, -1}
	LeftUp2    = []int{-1, 1}
	LeftDown2  = []int{-1, -1}
)
