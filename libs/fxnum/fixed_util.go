package fxnum

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/beatoz/fxcore/types/xerrors"
	"github.com/holiman/uint256"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

// fixedScaleDigits represents the default scale (7 decimal places) used by robaho/fixed.
const fixedScaleDigits = 7

var (
	// 2^-32 == 5^32 / 10^32, so the fractional bits times 5^32 are exactly
	// the 32 decimal digits after the point.
	fracDigitsFactor = new(uint256.Int).Exp(uint256.NewInt(5), uint256.NewInt(FracBits))
	fracDecimalScale = decimal.NewFromBigInt(new(big.Int).Exp(big.NewInt(5), big.NewInt(FracBits), nil), -FracBits)
	denominatorDec   = decimal.New(denominator, 0)
	minRawDec        = decimal.New(math.MinInt64, 0)
	maxRawDec        = decimal.New(math.MaxInt64, 0)
)

// String returns the exact decimal expansion of x without trailing zeros,
// e.g. "-1.5" or "0.00000000023283064365386962890625".
func (x Fp) String() string {
	mag := magnitude(x.raw)
	intPart := mag >> FracBits
	frac := mag & uint64(FracMask)

	sign := ""
	if x.raw < 0 {
		sign = "-"
	}
	if frac == 0 {
		return fmt.Sprintf("%s%d", sign, intPart)
	}

	digits := new(uint256.Int).Mul(uint256.NewInt(frac), fracDigitsFactor).Dec()
	digits = strings.Repeat("0", FracBits-len(digits)) + digits
	return fmt.Sprintf("%s%d.%s", sign, intPart, strings.TrimRight(digits, "0"))
}

// Debug shows the integer part, the fractional part and the raw value.
func (x Fp) Debug() string {
	return fmt.Sprintf("%v <int=%d frac=%d/%d raw=%d>", x.Float64(), x.raw>>FracBits, x.raw&FracMask, denominator, x.raw)
}

// Parse converts a decimal string to the Fp closest below it.
// Unlike Nearest, no float64 is involved, so constants parsed from text
// are identical on every platform.
func Parse(s string) (Fp, xerrors.XError) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, xerrors.ErrInvalidSyntax.Wrap(err)
	}
	return FromDecimal(d)
}

func MustParse(s string) Fp {
	f, xerr := Parse(s)
	if xerr != nil {
		panic(xerr)
	}
	return f
}

// FromDecimal returns floor(d * 2^32) as a raw value.
func FromDecimal(d decimal.Decimal) (Fp, xerrors.XError) {
	scaled := d.Mul(denominatorDec).Floor()
	if scaled.GreaterThan(maxRawDec) {
		return Zero, xerrors.ErrRange.Wrapf("greater than MaxValue: %v", d)
	}
	if scaled.LessThan(minRawDec) {
		return Zero, xerrors.ErrRange.Wrapf("less than MinValue: %v", d)
	}
	return Fp{raw: scaled.IntPart()}, nil
}

// ToDecimal converts x to an exactly equal decimal.Decimal.
func (x Fp) ToDecimal() decimal.Decimal {
	return decimal.New(x.raw, 0).Mul(fracDecimalScale)
}

// FixedToDecimalByInt converts a robaho/fixed.Fixed value to a shopspring/decimal.Decimal.
// It leverages the internal int64 value via MarshalBinary.
func FixedToDecimalByInt(f fixed.Fixed) (decimal.Decimal, error) {
	// Handle NaN values, as shopspring/decimal does not natively support them.
	if f.IsNaN() {
		return decimal.Decimal{}, fmt.Errorf("cannot convert NaN fixed.Fixed to decimal.Decimal")
	}

	// MarshalBinary writes the internal int64 as a varint.
	buf, err := f.MarshalBinary()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to marshal fixed.Fixed to binary: %w", err)
	}
	raw, _ := binary.Varint(buf)

	// The 'raw' value is effectively (actual_value * 10^fixedScaleDigits).
	return decimal.New(raw, -fixedScaleDigits), nil
}

// FromFixed converts a robaho/fixed value (7 decimal places) to Fp.
func FromFixed(f fixed.Fixed) (Fp, xerrors.XError) {
	d, err := FixedToDecimalByInt(f)
	if err != nil {
		return Zero, xerrors.ErrNaN.Wrap(err)
	}
	return FromDecimal(d)
}

// ToFixed converts x to robaho/fixed, truncating toward zero at the 7th
// decimal place. Every Fp is within the range of fixed.Fixed.
func (x Fp) ToFixed() fixed.Fixed {
	return fixed.NewI(x.ToDecimal().Shift(fixedScaleDigits).Truncate(0).IntPart(), fixedScaleDigits)
}

// Percent returns n/100.
func Percent(n int) Fp {
	return FromInt(n).Div(FromInt(100))
}

// Permil returns n/1000.
func Permil(n int) Fp {
	return FromInt(n).Div(FromInt(1000))
}
