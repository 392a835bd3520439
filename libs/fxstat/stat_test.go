package fxstat

import (
	"testing"

	"github.com/beatoz/fxcore/libs/fxnum"
	"github.com/beatoz/fxcore/libs/jsonx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s := SummarizeInts([]int32{2, 4, 4, 4, 5, 5, 7, 9})
	require.Equal(t, 8, s.Count)
	require.Equal(t, fxnum.FromInt(2), s.Min)
	require.Equal(t, fxnum.FromInt(9), s.Max)
	require.True(t, decimal.NewFromInt(5).Equal(s.Mean), s.Mean.String())
	require.True(t, decimal.NewFromInt(4).Equal(s.Variance), s.Variance.String())

	s = Summarize([]fxnum.Fp{fxnum.Epsilon, fxnum.Epsilon.Neg()})
	require.True(t, s.Mean.IsZero())
	require.Equal(t, fxnum.Epsilon.Neg(), s.Min)

	// exact regardless of magnitude
	s = Summarize([]fxnum.Fp{fxnum.MaxValue, fxnum.MaxValue, fxnum.MaxValue})
	require.True(t, fxnum.MaxValue.ToDecimal().Round(Precision).Equal(s.Mean), s.Mean.String())
	require.True(t, s.Variance.IsZero())

	require.Equal(t, Summary{}, Summarize(nil))
}

func TestSummaryJSON(t *testing.T) {
	s := SummarizeInts([]int{1, 2})
	bz, err := jsonx.Marshal(s)
	require.NoError(t, err)
	require.JSONEq(t, `{"count":2,"min":"1","max":"2","mean":"1.5","variance":"0.25"}`, string(bz))
}

func TestCounts(t *testing.T) {
	counts := CountInts([]int32{3, -1, 3, 0, 3, -1})
	require.Equal(t, map[int32]int{3: 3, -1: 2, 0: 1}, counts)
	require.Equal(t, "-1: 2\n0: 1\n3: 3\n", FormatCounts(counts))
	require.Equal(t, "", FormatCounts(map[int]int{}))
}
