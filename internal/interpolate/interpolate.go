// Package interpolate provides piecewise-linear interpolation over
// tabulated values.
package interpolate

import "sort"

// At returns the piecewise-linear interpolation of the table (xs, ys)
// at x. Queries outside [xs[0], xs[len-1]] clamp to the nearest table
// endpoint. The abscissae xs must be non-decreasing; ys must have the
// same length as xs. Both preconditions are the caller's responsibility.
func At(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if n == 1 || x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	return segment(x, xs, ys)
}

// AtExtrapolated is like At, but queries outside the table range
// extrapolate linearly along the first or last table segment instead of
// clamping.
func AtExtrapolated(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if n == 1 {
		return ys[0]
	}
	if x < xs[0] {
		return extrapolate(x, xs[0], xs[1], ys[0], ys[1])
	}
	if x > xs[n-1] {
		return extrapolate(x, xs[n-2], xs[n-1], ys[n-2], ys[n-1])
	}
	return segment(x, xs, ys)
}

// Slice interpolates the table (xs, ys) at every query point, with
// clamping endpoint behavior as in At.
func Slice(queries, xs, ys []float64) []float64 {
	out := make([]float64, len(queries))
	for i, q := range queries {
		out[i] = At(q, xs, ys)
	}
	return out
}

// segment interpolates within the table for x in (xs[0], xs[n-1]).
func segment(x float64, xs, ys []float64) float64 {
	// Index of the first table entry >= x; x lies in [xs[i-1], xs[i]].
	i := sort.SearchFloat64s(xs, x)
	if xs[i] == x {
		return ys[i]
	}
	return extrapolate(x, xs[i-1], xs[i], ys[i-1], ys[i])
}

// extrapolate evaluates the line through (x0, y0), (x1, y1) at x.
// A degenerate segment (x0 == x1) yields y0.
func extrapolate(x, x0, x1, y0, y1 float64) float64 {
	dx := x1 - x0
	if dx == 0 {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/dx
}
