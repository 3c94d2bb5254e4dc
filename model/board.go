package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparselife/rules"
)

// Board holds one generation of a sparse Game of Life simulation. The live
// set is replaced wholesale on each advance; rows and cols record the
// original dimensions and only participate in boundary arithmetic.
type Board struct {
	rows     int
	cols     int
	boundary BoundaryMode
	live     map[Cell]struct{}
	history  []string // Recent state hashes for cycle detection
}

// FromMatrix builds a board from an explicit binary matrix. A cell at row i,
// column j is live iff matrix[i][j] is non-zero; the board dimensions are
// taken from the matrix shape.
func FromMatrix(matrix [][]int, mode BoundaryMode) (*Board, error) {
	if !mode.valid() {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "[FromMatrix] unrecognized boundary mode: %q", string(mode))
	}
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "[FromMatrix] matrix must have at least one row and one column")
	}

	cols := len(matrix[0])
	live := newCellSet()
	for i, row := range matrix {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "[FromMatrix] row %d has %d entries, want %d", i, len(row), cols)
		}
		for j, v := range row {
			if v != 0 {
				live[Cell{X: i, Y: j}] = struct{}{}
			}
		}
	}

	return &Board{
		rows:     len(matrix),
		cols:     cols,
		boundary: mode,
		live:     live,
	}, nil
}

// FromRandom builds a rows x cols board where each cell is independently
// live with probability percentAlive. The pseudo-random sequence is seeded
// once per construction, so identical parameters always produce the same
// board.
func FromRandom(rows, cols int, seed int64, percentAlive float64, mode BoundaryMode) (*Board, error) {
	if !mode.valid() {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "[FromRandom] unrecognized boundary mode: %q", string(mode))
	}
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "[FromRandom] dimensions must be positive, got %dx%d", rows, cols)
	}
	if percentAlive < 0 || percentAlive > 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "[FromRandom] percent alive must be in [0,1], got %v", percentAlive)
	}

	rng := rand.New(rand.NewSource(seed))
	live := newCellSet()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < percentAlive {
				live[Cell{X: i, Y: j}] = struct{}{}
			}
		}
	}

	return &Board{
		rows:     rows,
		cols:     cols,
		boundary: mode,
		live:     live,
	}, nil
}

// Rows returns the original row count supplied at construction.
func (b *Board) Rows() int { return b.rows }

// Cols returns the original column count supplied at construction.
func (b *Board) Cols() int { return b.cols }

// Boundary returns the board's topology rule.
func (b *Board) Boundary() BoundaryMode { return b.boundary }

// Population returns the number of live cells in the current generation.
func (b *Board) Population() int { return len(b.live) }

// Alive reports whether the cell is live in the current generation.
func (b *Board) Alive(c Cell) bool {
	_, ok := b.live[c]
	return ok
}

// Neighbors returns the Moore neighborhood of a cell under the board's
// boundary mode. Periodic boards always yield exactly 8 entries, with
// duplicates when rows or cols is 1 or 2; fixed boards yield between 0 and
// 8 after clipping; infinite boards yield the 8 raw offsets.
func (b *Board) Neighbors(c Cell) []Cell {
	neighbors := make([]Cell, 0, 8)
	for _, off := range mooreOffsets {
		n := Cell{X: c.X + off.X, Y: c.Y + off.Y}
		switch b.boundary {
		case BoundaryPeriodic:
			n.X = ((n.X % b.rows) + b.rows) % b.rows
			n.Y = ((n.Y % b.cols) + b.cols) % b.cols
		case BoundaryFixed:
			if n.X < 0 || n.X >= b.rows || n.Y < 0 || n.Y >= b.cols {
				continue
			}
		}
		neighbors = append(neighbors, n)
	}
	return neighbors
}

// LiveNeighborCount returns the number of distinct neighbor coordinates of
// c that are live. Duplicate neighbors from periodic wrapping count once.
func (b *Board) LiveNeighborCount(c Cell) int {
	var (
		count = 0
		seen  = newCellSet()
	)
	for _, n := range b.Neighbors(c) {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		if _, alive := b.live[n]; alive {
			count++
		}
	}
	recycleCellSet(seen)
	return count
}

// Advance replaces the live set with the next generation and returns the
// new population count. All neighbor counts are evaluated against the
// pre-advance generation.
func (b *Board) Advance() int {
	var (
		next       = newCellSet()
		candidates = newCellSet() // dead neighbors already evaluated
	)

	for c := range b.live {
		if rules.ApplyConwayRules(b.LiveNeighborCount(c), true) {
			next[c] = struct{}{}
		}
		for _, n := range b.Neighbors(c) {
			if _, alive := b.live[n]; alive {
				continue
			}
			if _, done := candidates[n]; done {
				continue
			}
			candidates[n] = struct{}{}
			if rules.ApplyConwayRules(b.LiveNeighborCount(n), false) {
				next[n] = struct{}{}
			}
		}
	}

	recycleCellSet(candidates)
	recycleCellSet(b.live)
	b.live = next
	return len(next)
}

// SortedCells returns the live cells in canonical order: ascending by
// column, then by row.
func (b *Board) SortedCells() []Cell {
	cells := make([]Cell, 0, len(b.live))
	for c := range b.live {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		return cellLess(cells[i], cells[j])
	})
	return cells
}

// StateHash returns an MD5 hash of the canonical cell ordering.
func (b *Board) StateHash() string {
	h := md5.New()
	for _, c := range b.SortedCells() {
		fmt.Fprintf(h, "%d,%d;", c.X, c.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current state hash to the history and maintains size.
func (b *Board) UpdateHistory() {
	b.history = append(b.history, b.StateHash())

	// Keep only the last 5 states to detect short cycles
	if len(b.history) > 5 {
		b.history = b.history[1:]
	}
}

// IsStagnant checks whether the board is stuck in a static state or a
// cycle of period at most 3.
func (b *Board) IsStagnant() bool {
	if len(b.history) < 3 {
		return false
	}

	currentHash := b.StateHash()
	for lookback := 1; lookback <= 3; lookback++ {
		if b.history[len(b.history)-lookback] == currentHash {
			return true
		}
	}
	return false
}
