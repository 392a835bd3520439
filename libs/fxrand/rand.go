// Package fxrand is a seeded pseudo-random generator whose output is
// identical on every platform.
//
// The generator is the portable C-library linear congruential recurrence.
// Each step yields 15 bits, which are also shifted into a 64-bit buffer;
// wider outputs are read from that buffer.
//
// A Rand is not safe for concurrent use.
package fxrand

import (
	"math/bits"

	"github.com/beatoz/fxcore/libs/fxnum"
)

const (
	multiplier = 1103515245
	increment  = 12345

	stepBits = 15
	stepMask = 1<<stepBits - 1

	warmUpSteps = 10

	// splitBound is the span above which NextfpRange narrows the range by
	// halves before rejection sampling.
	splitBound = uint64(1) << fxnum.LeftShiftMax
)

type Rand struct {
	seed   int32
	state  int32
	buffer uint64
}

// New returns a generator for seed after discarding the first ten steps.
func New(seed int32) *Rand {
	r := &Rand{seed: seed, state: seed}
	for i := 0; i < warmUpSteps; i++ {
		r.step()
	}
	return r
}

func (r *Rand) Seed() int32 {
	return r.seed
}

func (r *Rand) step() uint64 {
	r.state = r.state*multiplier + increment
	out := (uint64(uint32(r.state)) >> 16) & stepMask
	r.buffer = r.buffer<<stepBits | out
	return out
}

// Next advances one step and returns its 15-bit output, in [0, 32767].
func (r *Rand) Next() int {
	return int(r.step())
}

// NextInt advances one step and returns the low 32 bits of the buffer.
func (r *Rand) NextInt() uint32 {
	r.step()
	return uint32(r.buffer)
}

// NextIntRange returns a value in [min, max). Reversed bounds are swapped;
// equal bounds return min.
func (r *Rand) NextIntRange(min, max int32) int32 {
	if min > max {
		min, max = max, min
	}
	if min == max {
		return min
	}

	diff := uint64(int64(max) - int64(min))
	mask := uint64(1)<<bits.Len64(diff-1) - 1
	for {
		r.step()
		if d := r.buffer & mask; d < diff {
			return int32(int64(min) + int64(d))
		}
	}
}

// Nextfp returns a value in [0, 1).
func (r *Rand) Nextfp() fxnum.Fp {
	r.step()
	return fxnum.FromRaw(int64(r.buffer & uint64(fxnum.FracMask)))
}

// NextfpRange returns a value in [min, max], both inclusive. Reversed bounds
// are swapped; equal bounds return min.
//
// While the span is wider than 62 bits, each step picks the lower or the
// upper half by the lowest buffer bit. The remaining span is rejection
// sampled.
func (r *Rand) NextfpRange(min, max fxnum.Fp) fxnum.Fp {
	if min.GreaterThan(max) {
		min, max = max, min
	}
	if min == max {
		return min
	}

	lo, hi := min.Raw(), max.Raw()
	span := uint64(hi - lo)
	for span >= splitBound {
		r.step()
		mid := lo + int64(span/2)
		if r.buffer&1 == 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
		span = uint64(hi - lo)
	}

	mask := uint64(1)<<bits.Len64(span) - 1
	for {
		r.step()
		if d := r.buffer & mask; d <= span {
			return fxnum.FromRaw(lo + int64(d))
		}
	}
}
