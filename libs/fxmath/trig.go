package fxmath

import (
	"github.com/beatoz/fxcore/libs/fxmath/lut"
	"github.com/beatoz/fxcore/libs/fxnum"
)

// The 32 bits of 2π and π that follow the last fractional bit of TwoPI and
// PI. Without them each period reduced drifts by a fraction of a raw unit,
// which adds up to about 3e-3 near MaxValue.
const (
	twoPiLo = 189141414
	piLo    = 2242054355
)

// reduce returns f modulo the period p + lo*2^-64, in [0, p).
func reduce(f, p fxnum.Fp, lo int64) fxnum.Fp {
	k := f.Div(p).Int64()
	// |k| < 2^30, so k*lo fits; the raw difference may wrap but the result is small
	x := fxnum.FromRaw(f.Raw() - k*p.Raw() - (k*lo)>>32)
	for x.IsNegative() {
		x = x.Add(p)
	}
	for x.GreaterThanOrEqual(p) {
		x = x.Sub(p)
	}
	return x
}

// Sin reduces f into [0, π/2] and interpolates the sine table.
func Sin(f fxnum.Fp) fxnum.Fp {
	x := reduce(f, TwoPI, twoPiLo)

	flip := false
	if x.GreaterThanOrEqual(PI) {
		x = x.Sub(PI)
		flip = true
	}
	if x.GreaterThan(HalfPI) {
		x = PI.Sub(x)
	}

	v := interpolate(lut.Sin, x)
	if flip {
		return v.Neg()
	}
	return v
}

func Cos(f fxnum.Fp) fxnum.Fp {
	return Sin(HalfPI.Sub(reduce(f, TwoPI, twoPiLo)))
}

// Tan reduces f into [0, π/2] and interpolates the tangent table.
// Within the last two table intervals below π/2, where interpolating
// the asymptote is inaccurate, it returns Sin/Cos instead; a zero cosine
// gives ±MaxValue.
func Tan(f fxnum.Fp) fxnum.Fp {
	x := reduce(f, PI, piLo)

	flip := false
	if x.GreaterThan(HalfPI) {
		x = PI.Sub(x)
		flip = true
	}

	var v fxnum.Fp
	idx := x.Mul(lut.Tan.OneOverStep())
	ceil := idx.Int()
	if idx.Frac() != 0 {
		ceil++
	}
	if ceil >= lut.Tan.Len()-1 {
		c := Cos(x)
		if c.IsZero() {
			v = fxnum.MaxValue
		} else {
			v = Sin(x).Div(c)
		}
	} else {
		v = interpolate(lut.Tan, x)
	}

	if flip {
		return v.Neg()
	}
	return v
}

// interpolate reads the table linearly at x in [0, π/2].
func interpolate(t *lut.Table, x fxnum.Fp) fxnum.Fp {
	idx := x.Mul(t.OneOverStep())
	i0 := idx.Int()
	if i0 >= t.Len() {
		return t.Last()
	}

	v0, v1 := t.At(i0), t.At(i0+1)
	return v0.Add(v1.Sub(v0).Mul(fxnum.FromRaw(idx.Frac())))
}
