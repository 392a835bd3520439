package fxmath

import (
	"github.com/beatoz/fxcore/libs/fxnum"
	"github.com/beatoz/fxcore/types/xerrors"
)

var two = fxnum.FromInt(2)

// Log2 returns the binary logarithm of f.
//
// f is first scaled into [1, 2) by doubling or halving, counting the
// integer part of the result. Each fractional bit is then found by squaring
// the scaled value: a square of 2 or more sets the bit and is halved again.
// One iteration per fractional bit.
func Log2(f fxnum.Fp) (fxnum.Fp, xerrors.XError) {
	if !f.GreaterThan(fxnum.Zero) {
		return fxnum.Zero, xerrors.ErrNotPositive.Wrapf("log2(%v)", f)
	}

	y := fxnum.Zero
	x := f
	for x.LessThan(fxnum.One) {
		x = x.Lsh(1)
		y = y.Sub(fxnum.One)
	}
	for x.GreaterThanOrEqual(two) {
		x = x.Rsh(1)
		y = y.Add(fxnum.One)
	}

	z := x
	for b := fxnum.Half; b.GreaterThan(fxnum.Zero); b = b.Rsh(1) {
		z = z.Mul(z)
		if z.GreaterThanOrEqual(two) {
			z = z.Rsh(1)
			y = y.Add(b)
		}
	}
	return y, nil
}

// Log returns the natural logarithm of f.
func Log(f fxnum.Fp) (fxnum.Fp, xerrors.XError) {
	y, xerr := Log2(f)
	if xerr != nil {
		return fxnum.Zero, xerr
	}
	return y.Mul(Ln2), nil
}

func Log10(f fxnum.Fp) (fxnum.Fp, xerrors.XError) {
	y, xerr := Log2(f)
	if xerr != nil {
		return fxnum.Zero, xerr
	}
	return y.Mul(Log10Of2), nil
}

// LogBase returns the logarithm of f in the given base.
// The base must be positive and not One.
func LogBase(f, base fxnum.Fp) (fxnum.Fp, xerrors.XError) {
	if base == fxnum.One {
		return fxnum.Zero, xerrors.ErrDomain.Wrapf("log base 1")
	}
	lb, xerr := Log2(base)
	if xerr != nil {
		return fxnum.Zero, xerr
	}
	y, xerr := Log2(f)
	if xerr != nil {
		return fxnum.Zero, xerr
	}
	return y.Div(lb), nil
}
