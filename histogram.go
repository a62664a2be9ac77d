package texart

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bin computes a histogram of data over n equal-width bins spanning the
// data range and returns the counts and bin edges, ready to be passed
// to [SubPlot.Histogram]. len(edges) == len(counts)+1.
func Bin(data []float64, n int) (counts, edges []float64, err error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: no data to bin", ErrEmptyData)
	}
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: bin count %d must be positive", ErrInvalidHistogram, n)
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		// All values equal; widen the range to a unit-width window so
		// the dividers are strictly increasing.
		lo, hi = lo-0.5, hi+0.5
	}
	edges = make([]float64, n+1)
	floats.Span(edges, lo, hi)

	// stat.Histogram treats the divider range as half-open, so nudge
	// the last divider to include the maximum value.
	dividers := append([]float64(nil), edges...)
	dividers[n] = math.Nextafter(dividers[n], math.Inf(1))
	counts = stat.Histogram(nil, dividers, sorted, nil)
	return counts, edges, nil
}
