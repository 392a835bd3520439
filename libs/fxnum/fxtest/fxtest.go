// Package fxtest holds the shared sample set and tolerance assertions used by
// the fxcore package tests.
package fxtest

import (
	"math"
	"testing"

	"github.com/beatoz/fxcore/libs/fxnum"
	"github.com/stretchr/testify/require"
)

// Eps is fxnum.Epsilon as float64.
const Eps = 1.0 / (1 << fxnum.FracBits)

// Set returns extremes, values around zero and one, powers of ten on both
// sides of the point and a few arbitrary values.
func Set() []fxnum.Fp {
	set := []fxnum.Fp{
		fxnum.MinValue, fxnum.MaxValue,
		fxnum.One, fxnum.MinusOne, fxnum.Zero,

		fxnum.Epsilon,
		fxnum.Epsilon.Neg(),
		fxnum.One.Add(fxnum.Epsilon),
		fxnum.One.Sub(fxnum.Epsilon),

		fxnum.EpsilonSqrt,

		fxnum.From(math.MinInt32), fxnum.From(math.MaxInt32),
		fxnum.From(math.MinInt16), fxnum.From(math.MaxInt16),
	}

	for _, n := range []int{10, 1000, 100000, 10000000, 1000000000, 9, 999, 99999, 9999999, 999999999} {
		set = append(set, fxnum.FromInt(n), fxnum.FromInt(-n))
	}
	for _, v := range []float64{0.1, 0.001, 0.00001, 0.0000001, 0.000000001, 0.9, 0.999, 0.99999, 0.9999999, 0.999999999} {
		set = append(set, fxnum.MustNearest(v), fxnum.MustNearest(-v))
	}
	for _, v := range []float64{0.6046602879796196, 0.9405090880450124, 0.6645600532184904, 0.4377141871869802, 0.4246374970712657} {
		set = append(set, fxnum.MustNearest(v))
	}
	for _, n := range []int{-1794053580, 1122962137, -389431291, 2073849219, -612353489} {
		set = append(set, fxnum.FromInt(n))
	}
	return set
}

// ApproxEqual asserts |want - got| <= |tol|.
func ApproxEqual(t *testing.T, want, got, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.LessOrEqual(t, math.Abs(want-got), math.Abs(tol), msgAndArgs...)
}

// ApproxEqualFp asserts that two Fp values are at most one Epsilon apart.
func ApproxEqualFp(t *testing.T, want, got fxnum.Fp, msgAndArgs ...interface{}) {
	t.Helper()
	d := want.Sub(got)
	if d.IsNegative() {
		d = d.Neg()
	}
	require.True(t, d.LessThanOrEqual(fxnum.Epsilon), msgAndArgs...)
}
