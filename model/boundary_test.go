package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoundaryMode(t *testing.T) {
	t.Run("recognized modes", func(t *testing.T) {
		for _, s := range []string{"periodic", "fixed", "infinite"} {
			mode, err := ParseBoundaryMode(s)
			require.NoError(t, err)
			assert.Equal(t, BoundaryMode(s), mode)
		}
	})

	t.Run("unrecognized mode", func(t *testing.T) {
		for _, s := range []string{"", "toroidal", "Periodic", "wrap"} {
			_, err := ParseBoundaryMode(s)
			require.Error(t, err, "mode %q", s)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		}
	})
}

func TestFromMatrixValidation(t *testing.T) {
	t.Run("empty matrix", func(t *testing.T) {
		_, err := FromMatrix(nil, BoundaryFixed)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	})

	t.Run("zero-width rows", func(t *testing.T) {
		_, err := FromMatrix([][]int{{}, {}}, BoundaryFixed)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := FromMatrix([][]int{{1, 0}, {1}}, BoundaryFixed)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		assert.Contains(t, err.Error(), "row 1")
	})

	t.Run("bad boundary mode", func(t *testing.T) {
		_, err := FromMatrix([][]int{{1}}, BoundaryMode("moebius"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	})
}

func TestFromRandomValidation(t *testing.T) {
	t.Run("non-positive dimensions", func(t *testing.T) {
		_, err := FromRandom(0, 5, 1, 0.5, BoundaryPeriodic)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))

		_, err = FromRandom(5, -1, 1, 0.5, BoundaryPeriodic)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	})

	t.Run("percent alive out of range", func(t *testing.T) {
		_, err := FromRandom(5, 5, 1, -0.1, BoundaryPeriodic)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))

		_, err = FromRandom(5, 5, 1, 1.1, BoundaryPeriodic)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	})

	t.Run("bad boundary mode", func(t *testing.T) {
		_, err := FromRandom(5, 5, 1, 0.5, BoundaryMode("bounded"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	})

	t.Run("probability extremes", func(t *testing.T) {
		empty, err := FromRandom(5, 5, 1, 0, BoundaryPeriodic)
		require.NoError(t, err)
		assert.Equal(t, 0, empty.Population())

		full, err := FromRandom(5, 5, 1, 1, BoundaryPeriodic)
		require.NoError(t, err)
		assert.Equal(t, 25, full.Population())
	})
}
