package fxnum

func (x Fp) Add(o Fp) Fp {
	return Fp{raw: x.raw + o.raw}
}

func (x Fp) Sub(o Fp) Fp {
	return Fp{raw: x.raw - o.raw}
}

func (x Fp) Neg() Fp {
	return Fp{raw: -x.raw}
}

func (x Fp) Inc() Fp {
	return Fp{raw: x.raw + One.raw}
}

func (x Fp) Dec() Fp {
	return Fp{raw: x.raw - One.raw}
}

// Mul returns x * o truncated to 32 fractional bits.
//
// The magnitudes are split into an integer half (hi), the top fractional
// bit (mid) and the 31 remaining fractional bits (lo) so that no partial
// product exceeds 63 bits. The result wraps if it is not representable.
func (x Fp) Mul(o Fp) Fp {
	neg := (x.raw >= 0) != (o.raw >= 0)
	la, ra := x.raw, o.raw
	if la < 0 {
		la = -la
	}
	if ra < 0 {
		ra = -ra
	}

	lhsHi, rhsHi := la>>FracBits, ra>>FracBits
	lhsMi, rhsMi := (la&FracMask)>>fracBitsMinusOne, (ra&FracMask)>>fracBitsMinusOne
	lhsLo, rhsLo := la&fracMinusOneMask, ra&fracMinusOneMask

	raw := (lhsHi*rhsHi)<<FracBits +
		(lhsHi*rhsMi)<<fracBitsMinusOne +
		lhsHi*rhsLo +
		(lhsMi*rhsHi)<<fracBitsMinusOne +
		(lhsMi*rhsMi)<<(fracBitsMinusOne-1) +
		(lhsMi*rhsLo)>>1 +
		lhsLo*rhsHi +
		(lhsLo*rhsMi)>>1 +
		(lhsLo*rhsLo)>>FracBits

	if neg {
		raw = -raw
	}
	return Fp{raw: raw}
}

// Div returns x / o truncated to 32 fractional bits. It panics if o is Zero,
// as integer division does.
//
// The remainder of the integer quotient is repeatedly shifted left until its
// top bits are set, divided, and the partial quotient is placed at the bit
// position given by the accumulated shift. This keeps the full precision for
// divisors close to the representable range without a 128-bit intermediate.
func (x Fp) Div(o Fp) Fp {
	neg := (x.raw >= 0) != (o.raw >= 0)
	la, ra := magnitude(x.raw), magnitude(o.raw)

	qu := la / ra
	re := la % ra
	result := qu << FracBits

	// With the divisor's top bits set, a remainder scaled up to bit 62 could
	// still be smaller than the divisor and the loop would never progress.
	// Dropping the divisor's lowest bit (and the remainder's) keeps the
	// divisor below 2^62.
	ra0, re0 := ra, re
	for ra0&^uint64(Hi1Mask-1) != 0 {
		ra0 >>= 1
		re0 >>= 1
	}

	safeShift := 0
	for re0 != 0 && safeShift < LeftShiftMax {
		for re0&uint64(Hi2Mask) == 0 && safeShift+2 <= LeftShiftMax {
			re0 <<= 2
			safeShift += 2
		}
		for re0&uint64(Hi1Mask) == 0 && safeShift+1 <= LeftShiftMax {
			re0 <<= 1
			safeShift += 1
		}

		if FracBits-safeShift > 0 {
			result += (re0 / ra0) << (FracBits - safeShift)
		} else {
			result += (re0 / ra0) >> (safeShift - FracBits)
		}

		re0 %= ra0
	}

	raw := int64(result)
	if neg {
		raw = -raw
	}
	return Fp{raw: raw}
}

// Mod returns the remainder of the raw values; the sign follows x.
// It panics if o is Zero.
func (x Fp) Mod(o Fp) Fp {
	return Fp{raw: x.raw % o.raw}
}

func (x Fp) Lsh(n uint) Fp {
	return Fp{raw: x.raw << n}
}

func (x Fp) Rsh(n uint) Fp {
	return Fp{raw: x.raw >> n}
}

// magnitude returns |raw| as uint64, which is exact for math.MinInt64 too.
func magnitude(raw int64) uint64 {
	if raw < 0 {
		return uint64(-raw)
	}
	return uint64(raw)
}
