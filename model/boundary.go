package model

import "github.com/pkg/errors"

// BoundaryMode selects the topology rule applied when enumerating
// neighbors at or beyond the board edges.
type BoundaryMode string

const (
	// BoundaryPeriodic wraps neighbor coordinates modulo the board
	// dimensions (toroidal topology).
	BoundaryPeriodic BoundaryMode = "periodic"
	// BoundaryFixed clips neighbors to the original rows x cols window.
	BoundaryFixed BoundaryMode = "fixed"
	// BoundaryInfinite places the board on an unbounded plane; neighbor
	// coordinates may be negative or arbitrarily large.
	BoundaryInfinite BoundaryMode = "infinite"
)

// ParseBoundaryMode validates a boundary-mode string from configuration.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	mode := BoundaryMode(s)
	if !mode.valid() {
		return "", errors.Wrapf(ErrInvalidConfiguration, "[ParseBoundaryMode] unrecognized boundary mode: %q", s)
	}
	return mode, nil
}

func (m BoundaryMode) valid() bool {
	switch m {
	case BoundaryPeriodic, BoundaryFixed, BoundaryInfinite:
		return true
	}
	return false
}
