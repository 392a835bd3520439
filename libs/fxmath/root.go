package fxmath

import (
	"math/bits"

	"github.com/beatoz/fxcore/libs/fxnum"
)

// Sqrt returns the square root of f truncated to 32 fractional bits.
// Negative input returns Zero.
//
// The raw value is shifted left by an even amount until one of its two top
// bits is set, so that small inputs keep their precision, and the integer
// square root is scaled back by half of that shift.
func Sqrt(f fxnum.Fp) fxnum.Fp {
	if f.IsZero() || f == fxnum.One {
		return f
	}
	if f.IsNegative() {
		return fxnum.Zero
	}

	r0 := f.Raw()
	safeShift := 0
	for r0&fxnum.Hi2Mask == 0 && safeShift+2 <= fxnum.LeftShiftMax {
		r0 <<= 2
		safeShift += 2
	}

	if fxnum.FracBits-safeShift > 0 {
		return fxnum.FromRaw(isqrt(r0) << ((fxnum.FracBits - safeShift) / 2))
	}
	return fxnum.FromRaw(isqrt(r0) >> ((safeShift - fxnum.FracBits) / 2))
}

// isqrt is the restoring (digit-by-digit) integer square root of a
// non-negative value.
func isqrt(v int64) int64 {
	res := int64(0)
	one := fxnum.Hi1Mask
	for one > v {
		one >>= 2
	}

	for one > 0 {
		t := res + one
		res >>= 1
		if v >= t {
			v -= t
			res += one
		}
		one >>= 2
	}
	return res
}

// Cbrt returns the cube root of f, with about 21 significant bits.
//
// The magnitude is normalized by a left shift s with s ≡ 1 (mod 3), so that
// the remaining scale 2^(64-s) has an exact integer cube root.
func Cbrt(f fxnum.Fp) fxnum.Fp {
	if f.IsZero() || f == fxnum.One {
		return f
	}

	mag := uint64(f.Raw())
	if f.IsNegative() {
		mag = uint64(-f.Raw())
	}

	lz := bits.LeadingZeros64(mag)
	s := lz - (lz+2)%3
	if s >= 0 {
		mag <<= uint(s)
	} else {
		mag >>= uint(-s)
	}

	r := fxnum.FromRaw(int64(icbrt(mag) << uint((64-s)/3)))
	if f.IsNegative() {
		return r.Neg()
	}
	return r
}

// icbrt is the restoring integer cube root (Hacker's Delight, 11-2).
func icbrt(x uint64) uint64 {
	y := uint64(0)
	for s := 63; s >= 0; s -= 3 {
		y <<= 1
		b := 3*y*(y+1) + 1
		if x>>uint(s) >= b {
			x -= b << uint(s)
			y++
		}
	}
	return y
}
