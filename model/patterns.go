package model

// Well-known starting patterns, expressed as binary matrices suitable for
// stamping into a larger matrix before FromMatrix.
var (
	// PatternBlock is a 2x2 still life.
	PatternBlock = [][]int{
		{1, 1},
		{1, 1},
	}

	// PatternBlinker is a horizontal period-2 oscillator.
	PatternBlinker = [][]int{
		{1, 1, 1},
	}

	// PatternGlider travels diagonally one cell every four generations.
	PatternGlider = [][]int{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}
)

// StampPattern copies a pattern into matrix with its top-left corner at
// row x, column y. Entries falling outside the matrix are dropped.
func StampPattern(matrix, pattern [][]int, x, y int) {
	for i, row := range pattern {
		for j, v := range row {
			ti, tj := x+i, y+j
			if ti < 0 || ti >= len(matrix) || tj < 0 || tj >= len(matrix[ti]) {
				continue
			}
			matrix[ti][tj] = v
		}
	}
}
