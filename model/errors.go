package model

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration indicates a construction input that cannot
	// produce a board: an unrecognized boundary mode, a malformed matrix,
	// or out-of-range random-generation parameters.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrEmptyBoard indicates a bounding-box or matrix query against a
	// board with no live cells. Callers should guard with Population.
	ErrEmptyBoard = errors.New("query on empty board")
)
