// Package fxmath implements deterministic elementary functions over fxnum.Fp.
//
// Every function uses integer instructions and the embedded lookup tables
// only. Functions that have no exact integer algorithm yet return
// xerrors.ErrUnsupported instead of an approximation.
package fxmath

import (
	"math"

	"github.com/beatoz/fxcore/libs/fxnum"
	"github.com/beatoz/fxcore/types/xerrors"
)

var (
	PI     = fxnum.MustNearest(math.Pi)
	HalfPI = fxnum.MustNearest(math.Pi / 2)
	TwoPI  = fxnum.MustNearest(2 * math.Pi)
	E      = fxnum.MustNearest(math.E)

	Deg2Rad = PI.Div(fxnum.FromInt(180))
	Rad2Deg = fxnum.FromInt(180).Div(PI)

	Ln2      = fxnum.MustNearest(math.Ln2)
	Log10Of2 = fxnum.MustNearest(math.Ln2 / math.Ln10)
)

// Abs returns |f|. Abs(MinValue) is MaxValue, the closest representable value.
func Abs(f fxnum.Fp) fxnum.Fp {
	if f == fxnum.MinValue {
		return fxnum.MaxValue
	}
	if f.IsNegative() {
		return f.Neg()
	}
	return f
}

// Sign returns 1 for f >= 0 and -1 otherwise.
func Sign(f fxnum.Fp) int {
	if f.IsNegative() {
		return -1
	}
	return 1
}

func Min(a, b fxnum.Fp) fxnum.Fp {
	if a.LessThan(b) {
		return a
	}
	return b
}

func Max(a, b fxnum.Fp) fxnum.Fp {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// MinOf returns the smallest of vals. It panics if vals is empty.
func MinOf(vals ...fxnum.Fp) fxnum.Fp {
	m := vals[0]
	for _, v := range vals[1:] {
		m = Min(m, v)
	}
	return m
}

// MaxOf returns the largest of vals. It panics if vals is empty.
func MaxOf(vals ...fxnum.Fp) fxnum.Fp {
	m := vals[0]
	for _, v := range vals[1:] {
		m = Max(m, v)
	}
	return m
}

func Clamp(v, lo, hi fxnum.Fp) fxnum.Fp {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

func Clamp01(v fxnum.Fp) fxnum.Fp {
	return Clamp(v, fxnum.Zero, fxnum.One)
}

// Lerp interpolates between a and b with t clamped to [0, 1].
func Lerp(a, b, t fxnum.Fp) fxnum.Fp {
	return LerpUnclamped(a, b, Clamp01(t))
}

func LerpUnclamped(a, b, t fxnum.Fp) fxnum.Fp {
	return a.Add(b.Sub(a).Mul(t))
}

// Floor clears the fractional bits, rounding toward negative infinity.
func Floor(f fxnum.Fp) fxnum.Fp {
	return fxnum.FromRaw(f.Raw() &^ fxnum.FracMask)
}

func Ceil(f fxnum.Fp) fxnum.Fp {
	if f.Frac() == 0 {
		return f
	}
	return Floor(f).Add(fxnum.One)
}

// Round rounds half up: Round(-1.5) == -1, Round(1.5) == 2.
func Round(f fxnum.Fp) fxnum.Fp {
	if f.Frac() >= fxnum.Half.Raw() {
		return Floor(f).Add(fxnum.One)
	}
	return Floor(f)
}

func FloorToInt(f fxnum.Fp) int {
	return Floor(f).Int()
}

func CeilToInt(f fxnum.Fp) int {
	return Ceil(f).Int()
}

func RoundToInt(f fxnum.Fp) int {
	return Round(f).Int()
}

// Pow supports the exponents -1, 0 and 1 only.
func Pow(f, p fxnum.Fp) (fxnum.Fp, xerrors.XError) {
	switch p {
	case fxnum.Zero:
		return fxnum.One, nil
	case fxnum.One:
		return f, nil
	case fxnum.MinusOne:
		if f.IsZero() {
			return fxnum.Zero, xerrors.ErrDomain.Wrapf("reciprocal of zero")
		}
		return fxnum.One.Div(f), nil
	}
	return fxnum.Zero, xerrors.ErrUnsupported.Wrapf("pow with exponent %v", p)
}

func Exp(f fxnum.Fp) (fxnum.Fp, xerrors.XError) {
	return fxnum.Zero, xerrors.ErrUnsupported.Wrapf("exp(%v)", f)
}

func Asin(f fxnum.Fp) (fxnum.Fp, xerrors.XError) {
	return fxnum.Zero, xerrors.ErrUnsupported.Wrapf("asin(%v)", f)
}

func Acos(f fxnum.Fp) (fxnum.Fp, xerrors.XError) {
	return fxnum.Zero, xerrors.ErrUnsupported.Wrapf("acos(%v)", f)
}

func Atan(f fxnum.Fp) (fxnum.Fp, xerrors.XError) {
	return fxnum.Zero, xerrors.ErrUnsupported.Wrapf("atan(%v)", f)
}

func Atan2(y, x fxnum.Fp) (fxnum.Fp, xerrors.XError) {
	return fxnum.Zero, xerrors.ErrUnsupported.Wrapf("atan2(%v, %v)", y, x)
}
