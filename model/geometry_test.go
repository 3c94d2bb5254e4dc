package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBox(t *testing.T) {
	// live cells (1,5), (3,2), (3,9)
	matrix := make([][]int, 4)
	for i := range matrix {
		matrix[i] = make([]int, 10)
	}
	matrix[1][5] = 1
	matrix[3][2] = 1
	matrix[3][9] = 1

	board, err := FromMatrix(matrix, BoundaryInfinite)
	require.NoError(t, err)

	xmin, xmax, ymin, ymax, err := board.BoundingBox()
	require.NoError(t, err)
	assert.Equal(t, 1, xmin)
	assert.Equal(t, 3, xmax)
	assert.Equal(t, 2, ymin)
	assert.Equal(t, 9, ymax)
}

func TestBoundingBoxEmptyBoard(t *testing.T) {
	board, err := FromMatrix([][]int{{0}}, BoundaryFixed)
	require.NoError(t, err)

	_, _, _, _, err = board.BoundingBox()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyBoard))
}

func TestToMatrixCropsToBoundingBox(t *testing.T) {
	board, err := FromMatrix([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	}, BoundaryFixed)
	require.NoError(t, err)

	matrix, err := board.ToMatrix()
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{1, 1},
		{1, 0},
	}, matrix)
}

func TestToMatrixRoundTrip(t *testing.T) {
	original := [][]int{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 1},
	}
	board, err := FromMatrix(original, BoundaryInfinite)
	require.NoError(t, err)

	reconstructed, err := board.ToMatrix()
	require.NoError(t, err)
	assert.Equal(t, original, reconstructed)
}

func TestToMatrixEmptyBoard(t *testing.T) {
	board, err := FromMatrix([][]int{{0, 0}}, BoundaryPeriodic)
	require.NoError(t, err)

	_, err = board.ToMatrix()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyBoard))
}

func TestToMatrixNegativeCoordinates(t *testing.T) {
	board, err := FromMatrix([][]int{{1, 1, 1}}, BoundaryInfinite)
	require.NoError(t, err)
	board.Advance() // vertical blinker spanning x = -1..1

	matrix, err := board.ToMatrix()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {1}, {1}}, matrix)
}
