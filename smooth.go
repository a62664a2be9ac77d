package texart

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"

	"github.com/texart/texart/internal/interpolate"
)

// Smooth resamples the curve (x, y) through recursive linear
// interpolation and returns the smoothed pair.
//
// Degree 0 returns the input unchanged. Degree 1 resamples y onto
// len(x) evenly spaced positions spanning [min(x), max(x)]. Each
// further degree first smooths at degree-1, then interpolates at the
// midpoints of consecutive x-values, shortening the output by one
// sample: degree d yields len(x)-(d-1) samples.
//
// The x-values must be sorted in non-decreasing order for the
// interpolation to be meaningful; this precondition is not checked and
// unsorted input silently produces distorted output.
func Smooth(x, y []float64, degree int) ([]float64, []float64, error) {
	return SmoothLog(x, y, degree, false, false)
}

// SmoothLog is Smooth operating in log10-space for either axis. The
// transform is applied once on entry and inverted once on return, so a
// curve spanning decades is resampled multiplicatively. Non-positive
// values on a log-transformed axis are an error.
func SmoothLog(x, y []float64, degree int, logX, logY bool) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrDimensionMismatch, len(x), len(y))
	}
	if degree < 0 {
		return nil, nil, fmt.Errorf("%w: degree %d is negative", ErrInvalidDegree, degree)
	}
	if degree == 0 {
		return x, y, nil
	}
	if degree > len(x) {
		return nil, nil, fmt.Errorf("%w: degree %d exceeds sample count %d", ErrInvalidDegree, degree, len(x))
	}

	if logX {
		var err error
		if x, err = logSlice(x); err != nil {
			return nil, nil, fmt.Errorf("x axis: %w", err)
		}
	}
	if logY {
		var err error
		if y, err = logSlice(y); err != nil {
			return nil, nil, fmt.Errorf("y axis: %w", err)
		}
	}

	var sx, sy []float64
	switch {
	case len(x) < 2:
		// A single sample has nothing to resample.
		sx = append([]float64(nil), x...)
		sy = append([]float64(nil), y...)
	case degree == 1:
		sx = make([]float64, len(x))
		floats.Span(sx, floats.Min(x), floats.Max(x))
		sy = interpolate.Slice(sx, x, y)
	default:
		// The recursion receives already-transformed values, so the log
		// flags stay off below the entry call.
		px, py, err := SmoothLog(x, y, degree-1, false, false)
		if err != nil {
			return nil, nil, err
		}
		sx = midpoints(px)
		sy = interpolate.Slice(sx, px, py)
	}

	if logX {
		powSlice(sx)
	}
	if logY {
		powSlice(sy)
	}
	return sx, sy, nil
}

// MovingAverage smooths y with a centered boxcar average of the given
// odd width and returns the trimmed x alongside. The output holds
// len(y)-width+1 samples; width/2 samples are trimmed from each end of
// x. A width of 1 returns the input unchanged.
func MovingAverage(x, y []float64, width int) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrDimensionMismatch, len(x), len(y))
	}
	switch {
	case width < 1:
		return nil, nil, fmt.Errorf("%w: width %d must be positive", ErrInvalidDegree, width)
	case width%2 == 0:
		return nil, nil, fmt.Errorf("%w: width %d must be odd", ErrInvalidDegree, width)
	case width > len(y):
		return nil, nil, fmt.Errorf("%w: width %d exceeds sample count %d", ErrInvalidDegree, width, len(y))
	}
	if width == 1 {
		return x, y, nil
	}

	// A boxcar convolution in "valid" mode is exactly the centered
	// moving average: len(y)-width+1 fully covered windows.
	kernel := make([]float64, width)
	for i := range kernel {
		kernel[i] = 1
	}
	sy := make([]float64, len(y)-width+1)
	f64.ConvolveValid(sy, y, kernel)
	f64.Scale(sy, sy, 1/float64(width))

	half := width / 2
	sx := append([]float64(nil), x[half:len(x)-half]...)
	return sx, sy, nil
}

// midpoints returns the averages of consecutive pairs of values.
func midpoints(v []float64) []float64 {
	out := make([]float64, len(v)-1)
	for i := range out {
		out[i] = (v[i] + v[i+1]) / 2
	}
	return out
}

// logSlice returns a copy of v mapped to log10-space.
func logSlice(v []float64) ([]float64, error) {
	out := make([]float64, len(v))
	for i, e := range v {
		if e <= 0 {
			return nil, fmt.Errorf("%w: value %v", ErrLogDomain, e)
		}
		out[i] = math.Log10(e)
	}
	return out, nil
}

// powSlice undoes the log10 transform in place.
func powSlice(v []float64) {
	for i, e := range v {
		v[i] = math.Pow(10, e)
	}
}
