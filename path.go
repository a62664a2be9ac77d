package texart

import (
	"fmt"
	"math"

	"github.com/texart/texart/internal/interpolate"
)

// LocateOnPath returns the point at fractional arc length t along the
// polyline described by x and y. The fraction is measured against the
// cumulative Euclidean path length, computed in log10-space for any
// axis in AxisLog mode so that pins land where the eye expects them on
// logarithmic plots.
//
// t = 0 and t = 1 return the exact first and last points. Values of t
// outside [0, 1] extrapolate linearly along the first or last segment,
// placing the point beyond the path ends. A single-point path, or a
// path whose points all coincide, yields its sole point for any t.
//
// LocateOnPath fails when x and y differ in length, when either is
// empty, or when a logarithmic axis carries non-positive values.
func LocateOnPath(x, y []float64, t float64, xmode, ymode AxisMode) (float64, float64, error) {
	if len(x) != len(y) {
		return 0, 0, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrDimensionMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return 0, 0, fmt.Errorf("%w: path needs at least one point", ErrEmptyData)
	}

	n := len(x)
	if n == 1 {
		return x[0], y[0], nil
	}

	// Exact endpoints, avoiding floating-point drift at the boundary.
	switch t {
	case 0:
		return x[0], y[0], nil
	case 1:
		return x[n-1], y[n-1], nil
	}

	tx, err := transformAxis(x, xmode)
	if err != nil {
		return 0, 0, fmt.Errorf("x axis: %w", err)
	}
	ty, err := transformAxis(y, ymode)
	if err != nil {
		return 0, 0, fmt.Errorf("y axis: %w", err)
	}

	// Fraction of the total path length at each vertex.
	ratios := make([]float64, n)
	var total float64
	for i := 1; i < n; i++ {
		total += math.Hypot(tx[i]-tx[i-1], ty[i]-ty[i-1])
		ratios[i] = total
	}
	if total == 0 {
		// Path has no extent; every point coincides with the first.
		return x[0], y[0], nil
	}
	for i := range ratios {
		ratios[i] /= total
	}

	// Inverse lookup: fractional vertex index at path fraction t.
	indices := make([]float64, n)
	for i := range indices {
		indices[i] = float64(i)
	}
	idx := interpolate.AtExtrapolated(t, ratios, indices)

	k := int(math.Floor(idx))
	if k < 0 {
		k = 0
	}
	if k > n-2 {
		k = n - 2
	}
	f := idx - float64(k)

	px := tx[k] + (tx[k+1]-tx[k])*f
	py := ty[k] + (ty[k+1]-ty[k])*f
	return invertAxis(px, xmode), invertAxis(py, ymode), nil
}

// transformAxis returns values mapped to log10-space when the axis is
// logarithmic, or the original slice otherwise.
func transformAxis(values []float64, mode AxisMode) ([]float64, error) {
	if !mode.IsLog() {
		return values, nil
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if v <= 0 {
			return nil, fmt.Errorf("%w: value %v", ErrLogDomain, v)
		}
		out[i] = math.Log10(v)
	}
	return out, nil
}

// invertAxis undoes the log10 transform for a single coordinate.
func invertAxis(v float64, mode AxisMode) float64 {
	if mode.IsLog() {
		return math.Pow(10, v)
	}
	return v
}
