package fxnum

import (
	"math"

	"github.com/beatoz/fxcore/types/xerrors"
	imgfixed "golang.org/x/image/math/fixed"
)

const (
	shift26_6  = FracBits - 6
	shift52_12 = FracBits - 12
)

// FromInt26_6 converts a 26.6 value exactly.
func FromInt26_6(v imgfixed.Int26_6) Fp {
	return Fp{raw: int64(v) << shift26_6}
}

// ToInt26_6 drops the fraction bits below 1/64, rounding toward negative
// infinity. It fails when the integer part does not fit 26 bits.
func (x Fp) ToInt26_6() (imgfixed.Int26_6, xerrors.XError) {
	v := x.raw >> shift26_6
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, xerrors.ErrRange.Wrapf("%v is out of the Int26_6 range", x)
	}
	return imgfixed.Int26_6(v), nil
}

// FromInt52_12 converts a 52.12 value exactly. It fails when the integer
// part does not fit 32 bits.
func FromInt52_12(v imgfixed.Int52_12) (Fp, xerrors.XError) {
	if int64(v) > math.MaxInt64>>shift52_12 || int64(v) < math.MinInt64>>shift52_12 {
		return Zero, xerrors.ErrRange.Wrapf("%d/4096 is out of the Fp range", int64(v))
	}
	return Fp{raw: int64(v) << shift52_12}, nil
}

// ToInt52_12 drops the fraction bits below 1/4096, rounding toward negative
// infinity. Every Fp fits.
func (x Fp) ToInt52_12() imgfixed.Int52_12 {
	return imgfixed.Int52_12(x.raw >> shift52_12)
}
