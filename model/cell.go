package model

// Cell identifies a single board position. X is the row index and Y the
// column index, matching the (i, j) layout of an input matrix.
type Cell struct {
	X int
	Y int
}

// mooreOffsets are the 8 relative positions of the Moore neighborhood.
var mooreOffsets = [8]Cell{
	{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
	{X: 0, Y: -1}, {X: 0, Y: 1},
	{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
}

// cellLess orders cells ascending by column, then by row. This is the
// canonical ordering for snapshots and rendering.
func cellLess(a, b Cell) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
