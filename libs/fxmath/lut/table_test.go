package lut

import (
	"bytes"
	"math"
	"testing"

	"github.com/beatoz/fxcore/libs/fxnum"
	"github.com/beatoz/fxcore/types/xerrors"
	"github.com/stretchr/testify/require"
)

func TestEmbedded(t *testing.T) {
	for _, tb := range []*Table{Sin, Tan} {
		require.Equal(t, DefaultLength, tb.Len())
		require.Equal(t, fxnum.MustNearest(float64(tb.Len())/(math.Pi/2)), tb.OneOverStep())
	}
	require.Equal(t, fxnum.Zero, Sin.At(0))
	require.Equal(t, fxnum.One, Sin.Last())
	require.Equal(t, fxnum.Zero, Tan.At(0))
	require.Equal(t, fxnum.MaxValue, Tan.Last())
	require.True(t, Tan.At(DefaultLength-1).LessThan(fxnum.MaxValue))

	for i := 1; i <= DefaultLength; i++ {
		require.True(t, Sin.At(i).GreaterThanOrEqual(Sin.At(i-1)), "sin is not monotonic at %d", i)
		require.True(t, Tan.At(i).GreaterThanOrEqual(Tan.At(i-1)), "tan is not monotonic at %d", i)
	}
}

func TestEmbeddedMatchesGenerator(t *testing.T) {
	sin, err := GenerateSin(DefaultLength)
	require.NoError(t, err)
	tan, err := GenerateTan(DefaultLength)
	require.NoError(t, err)

	// float64 sin/tan may differ by an ulp between math libraries,
	// which moves a sample by at most one raw unit.
	for i := 0; i <= DefaultLength; i++ {
		require.LessOrEqual(t, absRaw(sin.At(i), Sin.At(i)), int64(1), "sin[%d]", i)
		require.LessOrEqual(t, absRaw(tan.At(i), Tan.At(i)), int64(1), "tan[%d]", i)
	}
}

func absRaw(a, b fxnum.Fp) int64 {
	d := a.Raw() - b.Raw()
	if d < 0 {
		return -d
	}
	return d
}

func TestGenerate(t *testing.T) {
	sin, err := GenerateSin(4)
	require.NoError(t, err)
	require.Equal(t, 4, sin.Len())
	require.Equal(t, fxnum.MustNearest(math.Sqrt2/2), sin.At(2))
	require.Equal(t, fxnum.One, sin.Last())

	tan, err := GenerateTan(4)
	require.NoError(t, err)
	require.Equal(t, fxnum.MustNearest(math.Tan(math.Pi/8)), tan.At(1))
	require.Equal(t, fxnum.MaxValue, tan.Last())

	_, err = GenerateSin(0)
	require.ErrorIs(t, err, xerrors.ErrInvalidTable)
	_, err = GenerateTan(-1)
	require.ErrorIs(t, err, xerrors.ErrInvalidTable)
}

func TestCodec(t *testing.T) {
	tb, err := GenerateTan(1024)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	n, err := tb.WriteTo(buf)
	require.NoError(t, err)
	require.Equal(t, int64(headerSize+8*1025), n)
	require.Equal(t, []byte("FPLT"), buf.Bytes()[:4])

	decoded, err := Decode(buf.Bytes())
	require.NoError(t, err)
	require.True(t, tb.Equal(decoded))

	// the embedded table encodes back to the same bytes
	buf.Reset()
	_, err = Sin.WriteTo(buf)
	require.NoError(t, err)
	require.Equal(t, sinData, buf.Bytes())
}

func TestDecodeMalformed(t *testing.T) {
	valid := make([]byte, len(sinData))
	copy(valid, sinData)

	cases := map[string][]byte{
		"empty":     nil,
		"short":     valid[:headerSize-1],
		"magic":     append([]byte("FPLX"), valid[4:]...),
		"truncated": valid[:len(valid)-1],
		"trailing":  append(append([]byte{}, valid...), 0),
		"zero":      append(append([]byte("FPLT"), 0, 0, 0, 0), valid[8:headerSize]...),
	}
	for name, data := range cases {
		_, err := Decode(data)
		require.ErrorIs(t, err, xerrors.ErrInvalidTable, name)
	}
}
