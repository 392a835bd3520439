// Package fxstat computes summary statistics of fxnum samples. Sums are
// accumulated exactly in decimal, so the result does not depend on the
// order of the samples.
package fxstat

import (
	"fmt"
	"strings"

	"github.com/beatoz/fxcore/libs/fxnum"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Precision is the number of fractional digits of Mean and Variance.
const Precision = 16

type Summary struct {
	Count    int             `json:"count"`
	Min      fxnum.Fp        `json:"min"`
	Max      fxnum.Fp        `json:"max"`
	Mean     decimal.Decimal `json:"mean"`
	Variance decimal.Decimal `json:"variance"`
}

// Summarize returns the population statistics of vals.
// An empty slice yields a zero Summary.
func Summarize(vals []fxnum.Fp) Summary {
	if len(vals) == 0 {
		return Summary{}
	}

	sum, sqSum := decimal.Zero, decimal.Zero
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		d := v.ToDecimal()
		sum = sum.Add(d)
		sqSum = sqSum.Add(d.Mul(d))
		if v.LessThan(lo) {
			lo = v
		}
		if v.GreaterThan(hi) {
			hi = v
		}
	}

	// n·Σx² - (Σx)² is exact; only the final division rounds.
	n := decimal.NewFromInt(int64(len(vals)))
	variance := n.Mul(sqSum).Sub(sum.Mul(sum)).DivRound(n.Mul(n), Precision)

	return Summary{
		Count:    len(vals),
		Min:      lo,
		Max:      hi,
		Mean:     sum.DivRound(n, Precision),
		Variance: variance,
	}
}

// SummarizeInts is Summarize over integer samples.
func SummarizeInts[T constraints.Integer](vals []T) Summary {
	fps := make([]fxnum.Fp, len(vals))
	for i, v := range vals {
		fps[i] = fxnum.From(v)
	}
	return Summarize(fps)
}

func (s Summary) String() string {
	return fmt.Sprintf("count=%d min=%v max=%v mean=%v variance=%v", s.Count, s.Min, s.Max, s.Mean, s.Variance)
}

// CountInts returns how many times each value occurs.
func CountInts[T constraints.Integer](vals []T) map[T]int {
	counts := make(map[T]int)
	for _, v := range vals {
		counts[v]++
	}
	return counts
}

// FormatCounts renders counts as "value: count" lines in ascending order
// of value.
func FormatCounts[T constraints.Integer](counts map[T]int) string {
	keys := maps.Keys(counts)
	slices.Sort(keys)

	sb := strings.Builder{}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%d: %d\n", k, counts[k])
	}
	return sb.String()
}
