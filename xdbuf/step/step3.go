package step

// Rank-3 axis displacements.
var (
	Right3  = []int{1, 0, 0}
	Left3   = []int{-1, 0, 0}
	Front3  = []int{0, 1, 0}
	Back3   = []int{0, -1, 0}
	Top3    = []int{0, 0, 1}
	Bottom3 = []int{0, 0, -1}
)

// Rank-3 edge diagonals.
var (
	RightFront3  = []int{1, 1, 0}
	RightBack3   = []int{1, -1, 0}
	RightTop3    = []int{1, 0, 1}
	RightBottom3 = []int{1, 0, -1}
	LeftFront3   = []int{-1, 1, 0}
	LeftBack3    = []int{-1, -1, 0}
	LeftTop3     = []int{-1, 0, 1}
	LeftBottom3  = []int{-1, 0, -1}
	FrontTop3    = []int{0, 1, 1}
	FrontBottom3 = []int{0, 1, -1}
	BackTop3     = []int{0, -1, 1}
	BackBottom3  = []int{0, -1, -1}
)

// Rank-3 corner diagonals.
var (
	RightFrontTop3    = []int{1, 1, 1}
	RightFrontBottom3 = []int{1, 1, -1}
	RightBackTop3     = []int{1, -1, 1}
	RightBackBottom3  = []int{1, -1, -1}
	LeftFrontTop3     = []int{-1, 1, 1}
	LeftFrontBottom3  = []int{-1, 1, -1}
	LeftBackTop3      = []int{-1, -1, 1}
	LeftBackBottom3   = []int{-1, -1, -1}
)
