package model

import "github.com/pkg/errors"

// BoundingBox returns the per-axis extremes of the live set as
// ((xmin, xmax), (ymin, ymax)). It fails with ErrEmptyBoard when the board
// has no live cells; callers should guard with Population.
func (b *Board) BoundingBox() (xmin, xmax, ymin, ymax int, err error) {
	if len(b.live) == 0 {
		return 0, 0, 0, 0, errors.Wrap(ErrEmptyBoard, "[BoundingBox] board has no live cells")
	}

	first := true
	for c := range b.live {
		if first {
			xmin, xmax, ymin, ymax = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		xmin = min(xmin, c.X)
		xmax = max(xmax, c.X)
		ymin = min(ymin, c.Y)
		ymax = max(ymax, c.Y)
	}
	return xmin, xmax, ymin, ymax, nil
}

// ToMatrix reconstructs the smallest dense binary matrix covering the live
// set: entry (x-xmin, y-ymin) is 1 for each live cell (x, y). Used by
// display collaborators only.
func (b *Board) ToMatrix() ([][]int, error) {
	xmin, xmax, ymin, ymax, err := b.BoundingBox()
	if err != nil {
		return nil, errors.WithMessage(err, "[ToMatrix] cannot reconstruct matrix")
	}

	matrix := make([][]int, xmax-xmin+1)
	for i := range matrix {
		matrix[i] = make([]int, ymax-ymin+1)
	}
	for c := range b.live {
		matrix[c.X-xmin][c.Y-ymin] = 1
	}
	return matrix, nil
}
