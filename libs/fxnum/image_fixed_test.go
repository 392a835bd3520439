package fxnum_test

import (
	"testing"

	. "github.com/beatoz/fxcore/libs/fxnum"
	"github.com/beatoz/fxcore/types/xerrors"
	"github.com/stretchr/testify/require"
	imgfixed "golang.org/x/image/math/fixed"
)

func Test_Int26_6(t *testing.T) {
	v := imgfixed.I(3) + 16 // 3.25
	require.Equal(t, MustParse("3.25"), FromInt26_6(v))
	require.Equal(t, MustParse("-0.015625"), FromInt26_6(-1))

	back, xerr := MustParse("-12.75").ToInt26_6()
	require.NoError(t, xerr)
	require.Equal(t, -imgfixed.I(12)-48, back)

	// below 1/64 rounds toward negative infinity
	back, xerr = Epsilon.Neg().ToInt26_6()
	require.NoError(t, xerr)
	require.Equal(t, imgfixed.Int26_6(-1), back)

	back, xerr = FromInt(1<<25 - 1).ToInt26_6()
	require.NoError(t, xerr)
	require.Equal(t, imgfixed.I(1<<25-1), back)

	_, xerr = FromInt(1 << 25).ToInt26_6()
	require.ErrorIs(t, xerr, xerrors.ErrRange)
	_, xerr = MaxValue.ToInt26_6()
	require.ErrorIs(t, xerr, xerrors.ErrRange)

	lo, hi := FromInt(-1<<25), FromInt(1<<25)
	for _, f := range testSet {
		if f.LessThan(lo) || f.GreaterThanOrEqual(hi) {
			continue
		}
		v, xerr := f.ToInt26_6()
		require.NoError(t, xerr)
		require.True(t, FromInt26_6(v).LessThanOrEqual(f))
		require.True(t, f.Sub(FromInt26_6(v)).LessThan(FromRaw(1<<26)))
	}
}

func Test_Int52_12(t *testing.T) {
	require.Equal(t, imgfixed.Int52_12(4096+2048), MustParse("1.5").ToInt52_12())

	f, xerr := FromInt52_12(imgfixed.Int52_12(-4096 - 1024))
	require.NoError(t, xerr)
	require.Equal(t, MustParse("-1.25"), f)

	f, xerr = FromInt52_12(MaxValue.ToInt52_12())
	require.NoError(t, xerr)
	require.Equal(t, MaxValue.Raw()>>20<<20, f.Raw())

	f, xerr = FromInt52_12(MinValue.ToInt52_12())
	require.NoError(t, xerr)
	require.Equal(t, MinValue, f)

	_, xerr = FromInt52_12(imgfixed.Int52_12(1) << 44)
	require.ErrorIs(t, xerr, xerrors.ErrRange)
}
