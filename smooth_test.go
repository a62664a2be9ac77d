package texart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texart/texart/internal/testutil"
)

func TestSmoothDegreeZeroIsIdentity(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 2, 4}

	sx, sy, err := Smooth(x, y, 0)
	require.NoError(t, err)
	assert.Equal(t, x, sx)
	assert.Equal(t, y, sy)
}

func TestSmoothLengthLaw(t *testing.T) {
	const n = 20
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = math.Sin(float64(i) / 3)
	}

	for degree := 1; degree <= 10; degree++ {
		sx, sy, err := Smooth(x, y, degree)
		require.NoError(t, err)
		assert.Len(t, sx, n-(degree-1), "degree %d", degree)
		assert.Len(t, sy, n-(degree-1), "degree %d", degree)
	}
}

func TestSmoothPreservesDomain(t *testing.T) {
	x := []float64{0, 1, 4, 9, 16}
	y := []float64{5, 4, 3, 2, 1}

	for degree := 1; degree <= 4; degree++ {
		sx, sy, err := Smooth(x, y, degree)
		require.NoError(t, err)
		for i, v := range sx {
			assert.GreaterOrEqual(t, v, x[0])
			assert.LessOrEqual(t, v, x[len(x)-1])
			assert.GreaterOrEqual(t, sy[i], y[len(y)-1])
			assert.LessOrEqual(t, sy[i], y[0])
		}
		testutil.AssertNoNaNOrInf(t, sx)
		testutil.AssertNoNaNOrInf(t, sy)
	}
}

func TestSmoothDegreeOneLinearCurve(t *testing.T) {
	// Resampling a straight line at any degree reproduces the line.
	x := []float64{0, 2, 3, 7, 10}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2*v + 1
	}

	sx, sy, err := Smooth(x, y, 1)
	require.NoError(t, err)
	require.Len(t, sx, len(x))
	for i := range sx {
		assert.InDelta(t, 2*sx[i]+1, sy[i], 1e-12)
	}
	// Degree 1 output is evenly spaced over [min, max].
	assert.InDelta(t, 0, sx[0], 1e-12)
	assert.InDelta(t, 10, sx[len(sx)-1], 1e-12)
	step := sx[1] - sx[0]
	for i := 1; i < len(sx); i++ {
		assert.InDelta(t, step, sx[i]-sx[i-1], 1e-12)
	}
}

func TestSmoothLogRoundTrip(t *testing.T) {
	// A power law is a straight line in log-log space, so log-mode
	// smoothing reproduces it exactly at the resampled positions.
	x := []float64{1, 10, 100, 1000, 10000}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3 * v * v
	}

	sx, sy, err := SmoothLog(x, y, 2, true, true)
	require.NoError(t, err)
	require.Len(t, sx, len(x)-1)
	for i := range sx {
		assert.InEpsilon(t, 3*sx[i]*sx[i], sy[i], 1e-9)
	}
}

func TestSmoothLogRejectsNonPositive(t *testing.T) {
	x := []float64{1, 10, 100}
	y := []float64{1, 0, 1}

	_, _, err := SmoothLog(x, y, 1, false, true)
	require.ErrorIs(t, err, ErrLogDomain)

	_, _, err = SmoothLog([]float64{-1, 1, 2}, []float64{1, 2, 3}, 1, true, false)
	require.ErrorIs(t, err, ErrLogDomain)
}

func TestSmoothInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		x, y   []float64
		degree int
		want   error
	}{
		{"mismatched lengths", []float64{1, 2}, []float64{1}, 1, ErrDimensionMismatch},
		{"negative degree", []float64{1, 2}, []float64{1, 2}, -1, ErrInvalidDegree},
		{"degree exceeds samples", []float64{1, 2, 3}, []float64{1, 2, 3}, 4, ErrInvalidDegree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Smooth(tt.x, tt.y, tt.degree)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSmoothSinglePoint(t *testing.T) {
	sx, sy, err := Smooth([]float64{5}, []float64{7}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, sx)
	assert.Equal(t, []float64{7}, sy)
}

func TestMovingAverageConstantSignal(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6}
	y := []float64{3, 3, 3, 3, 3, 3, 3}

	sx, sy, err := MovingAverage(x, y, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, sx)
	testutil.AssertSlicesClose(t, []float64{3, 3, 3, 3, 3}, sy, testutil.DefaultTolerance)
}

func TestMovingAverageWindow(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 2, 3, 4, 10}

	sx, sy, err := MovingAverage(x, y, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, sx)
	testutil.AssertSlicesClose(t, []float64{2, 3, 17. / 3}, sy, 1e-12)
}

func TestMovingAverageWidthOneIsIdentity(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{4, 5, 6}

	sx, sy, err := MovingAverage(x, y, 1)
	require.NoError(t, err)
	assert.Equal(t, x, sx)
	assert.Equal(t, y, sy)
}

func TestMovingAverageInvalidWidth(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 2, 3, 4}

	for _, width := range []int{0, -3, 2, 4, 5} {
		_, _, err := MovingAverage(x, y, width)
		require.ErrorIs(t, err, ErrInvalidDegree, "width %d", width)
	}

	_, _, err := MovingAverage([]float64{1, 2}, []float64{1}, 3)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
