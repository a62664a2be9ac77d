// Package testutil provides reusable test helpers for texart tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// DefaultTolerance is the tolerance for comparing computed coordinates.
const DefaultTolerance = 1e-12

// AssertSlicesClose verifies that two float slices match element-wise
// within the tolerance.
func AssertSlicesClose(t *testing.T, want, got []float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return false
	}
	ok := true
	for i := range want {
		if !assert.InDelta(t, want[i], got[i], tolerance, "element %d", i) {
			ok = false
		}
	}
	return ok
}

// AssertNoNaNOrInf verifies that no element of the slice is NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("element %d is %f", i, v)
			return false
		}
	}
	return true
}
