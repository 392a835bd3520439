// Package fxnum provides Fp, a deterministic Q32.32 binary fixed-point number.
//
// An Fp is a single int64 "raw" value interpreted as raw / 2^32. Every
// operation is a pure function of raw values built from integer instructions
// only, so the same sequence of operations produces bit-identical results on
// every platform. Addition, subtraction and negation wrap on overflow exactly
// like int64 two's-complement arithmetic; no saturation is applied.
package fxnum

import (
	"math"

	"github.com/beatoz/fxcore/types/xerrors"
	"golang.org/x/exp/constraints"
)

const (
	FracBits = 32
	FracMask = int64(1)<<FracBits - 1

	fracBitsMinusOne = FracBits - 1
	fracMinusOneMask = int64(1)<<fracBitsMinusOne - 1

	// LeftShiftMax is the largest left shift applied to a non-negative raw
	// value while normalizing it; 64 - sign bit - 1 bit headroom.
	LeftShiftMax = 62
	Hi2Mask      = int64(0x6000000000000000) // 0b0110 0000 ...
	Hi1Mask      = int64(0x4000000000000000) // 0b0100 0000 ...

	denominator  = FracMask + 1
	denominatorF = float64(denominator)
)

var (
	Epsilon     = Fp{raw: 1}
	EpsilonSqrt = Fp{raw: 1 << (FracBits / 2)}
	Zero        = Fp{raw: 0}
	Half        = Fp{raw: 1 << fracBitsMinusOne}
	One         = Fp{raw: 1 << FracBits}
	MinusOne    = Fp{raw: -1 << FracBits}
	MinValue    = Fp{raw: math.MinInt64}
	MaxValue    = Fp{raw: math.MaxInt64}
)

// Fp is an immutable Q32.32 fixed-point value. The zero value is Zero.
type Fp struct {
	raw int64
}

func FromRaw(raw int64) Fp {
	return Fp{raw: raw}
}

func FromInt(v int) Fp {
	return Fp{raw: int64(v) << FracBits}
}

func FromInt64(v int64) Fp {
	return Fp{raw: v << FracBits}
}

// From converts any integer to Fp. Values outside the int32 range wrap.
func From[T constraints.Integer](v T) Fp {
	return Fp{raw: int64(v) << FracBits}
}

// Nearest returns the Fp closest below v. It is meant for building
// constants and lookup tables, not for hot paths: the result depends on the
// float64 value passed in.
func Nearest(v float64) (Fp, xerrors.XError) {
	if math.IsNaN(v) {
		return Zero, xerrors.ErrNaN
	}
	// float64(MaxValue) rounds up to 2^31, which is not representable.
	if v >= -float64(math.MinInt32) {
		return Zero, xerrors.ErrRange.Wrapf("greater than MaxValue: %v", v)
	}
	if v < float64(math.MinInt32) {
		return Zero, xerrors.ErrRange.Wrapf("less than MinValue: %v", v)
	}

	i := math.Floor(v)
	frac := int64((v - i) * denominatorF)
	return Fp{raw: int64(i)<<FracBits + frac}, nil
}

// MustNearest is like Nearest but panics on a range error.
// It is used to initialize package-level constants.
func MustNearest(v float64) Fp {
	f, xerr := Nearest(v)
	if xerr != nil {
		panic(xerr)
	}
	return f
}

func (x Fp) Raw() int64 {
	return x.raw
}

// Frac returns the fractional bits of x as a non-negative raw value.
func (x Fp) Frac() int64 {
	return x.raw & FracMask
}

// Int64 truncates toward negative infinity: Fp(-0.5).Int64() == -1.
func (x Fp) Int64() int64 {
	return x.raw >> FracBits
}

func (x Fp) Int() int {
	return int(x.Int64())
}

func (x Fp) Float64() float64 {
	return float64(x.raw>>FracBits) + float64(x.raw&FracMask)/denominatorF
}

func (x Fp) Float32() float32 {
	return float32(x.Float64())
}

func (x Fp) Cmp(o Fp) int {
	switch {
	case x.raw < o.raw:
		return -1
	case x.raw > o.raw:
		return 1
	}
	return 0
}

func (x Fp) Equal(o Fp) bool {
	return x.raw == o.raw
}

func (x Fp) GreaterThan(o Fp) bool {
	return x.raw > o.raw
}

func (x Fp) GreaterThanOrEqual(o Fp) bool {
	return x.raw >= o.raw
}

func (x Fp) LessThan(o Fp) bool {
	return x.raw < o.raw
}

func (x Fp) LessThanOrEqual(o Fp) bool {
	return x.raw <= o.raw
}

func (x Fp) IsZero() bool {
	return x.raw == 0
}

func (x Fp) IsNegative() bool {
	return x.raw < 0
}
