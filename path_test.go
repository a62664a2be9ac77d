package texart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateOnPathEndpoints(t *testing.T) {
	x := []float64{0.1, 0.2, 0.7}
	y := []float64{3, 1, 2}

	px, py, err := LocateOnPath(x, y, 0, AxisLinear, AxisLinear)
	require.NoError(t, err)
	assert.Equal(t, 0.1, px)
	assert.Equal(t, 3.0, py)

	px, py, err = LocateOnPath(x, y, 1, AxisLinear, AxisLinear)
	require.NoError(t, err)
	assert.Equal(t, 0.7, px)
	assert.Equal(t, 2.0, py)
}

func TestLocateOnPathLinearMidpoint(t *testing.T) {
	x := []float64{0, 10}
	y := []float64{0, 0}

	px, py, err := LocateOnPath(x, y, 0.5, AxisLinear, AxisLinear)
	require.NoError(t, err)
	assert.InDelta(t, 5, px, 1e-12)
	assert.InDelta(t, 0, py, 1e-12)
}

func TestLocateOnPathLogMidpoint(t *testing.T) {
	// Halfway along a log axis is the geometric mean, not the
	// arithmetic one.
	x := []float64{1, 100}
	y := []float64{0, 0}

	px, py, err := LocateOnPath(x, y, 0.5, AxisLog, AxisLinear)
	require.NoError(t, err)
	assert.InDelta(t, 10, px, 1e-12)
	assert.InDelta(t, 0, py, 1e-12)
}

func TestLocateOnPathUnevenSegments(t *testing.T) {
	// Segment lengths 1 and 3: the quarter point of the total path
	// sits at the end of the first segment.
	x := []float64{0, 1, 4}
	y := []float64{0, 0, 0}

	px, _, err := LocateOnPath(x, y, 0.25, AxisLinear, AxisLinear)
	require.NoError(t, err)
	assert.InDelta(t, 1, px, 1e-12)

	px, _, err = LocateOnPath(x, y, 0.5, AxisLinear, AxisLinear)
	require.NoError(t, err)
	assert.InDelta(t, 2, px, 1e-12)
}

func TestLocateOnPathExtrapolates(t *testing.T) {
	x := []float64{0, 10}
	y := []float64{0, 0}

	px, _, err := LocateOnPath(x, y, -0.1, AxisLinear, AxisLinear)
	require.NoError(t, err)
	assert.InDelta(t, -1, px, 1e-12)

	px, _, err = LocateOnPath(x, y, 1.1, AxisLinear, AxisLinear)
	require.NoError(t, err)
	assert.InDelta(t, 11, px, 1e-12)
}

func TestLocateOnPathSinglePoint(t *testing.T) {
	for _, frac := range []float64{0, 0.5, 1, 2} {
		px, py, err := LocateOnPath([]float64{4}, []float64{9}, frac, AxisLinear, AxisLinear)
		require.NoError(t, err)
		assert.Equal(t, 4.0, px)
		assert.Equal(t, 9.0, py)
	}
}

func TestLocateOnPathZeroExtent(t *testing.T) {
	x := []float64{2, 2, 2}
	y := []float64{5, 5, 5}

	px, py, err := LocateOnPath(x, y, 0.5, AxisLinear, AxisLinear)
	require.NoError(t, err)
	assert.Equal(t, 2.0, px)
	assert.Equal(t, 5.0, py)
}

func TestLocateOnPathErrors(t *testing.T) {
	t.Run("mismatched lengths", func(t *testing.T) {
		_, _, err := LocateOnPath([]float64{1, 2}, []float64{1}, 0.5, AxisLinear, AxisLinear)
		require.ErrorIs(t, err, ErrDimensionMismatch)
	})
	t.Run("empty path", func(t *testing.T) {
		_, _, err := LocateOnPath(nil, nil, 0.5, AxisLinear, AxisLinear)
		require.ErrorIs(t, err, ErrEmptyData)
	})
	t.Run("log axis with non-positive value", func(t *testing.T) {
		_, _, err := LocateOnPath([]float64{0, 1}, []float64{1, 2}, 0.5, AxisLog, AxisLinear)
		require.ErrorIs(t, err, ErrLogDomain)

		_, _, err = LocateOnPath([]float64{1, 2}, []float64{-1, 2}, 0.5, AxisLinear, AxisLog)
		require.ErrorIs(t, err, ErrLogDomain)
	})
}
