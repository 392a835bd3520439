// Package lut holds the precomputed trigonometric tables used by fxmath.
//
// A table samples a function over [0, π/2] at n+1 equally spaced points.
// The tables are generated offline with float64 math, serialized to a small
// binary format and embedded in the binary, so every platform interpolates
// over identical raw values.
package lut

import (
	"bytes"
	_ "embed"
	"encoding/binary"
	"io"
	"math"

	"github.com/beatoz/fxcore/libs/fxnum"
	"github.com/beatoz/fxcore/types/xerrors"
)

//go:generate go run ../../../cmd lutgen --lut_out . --lut_length 65536

const (
	// DefaultLength is the number of intervals of the embedded tables.
	DefaultLength = 65536

	headerSize = 4 + 4 + 8
)

var magic = [4]byte{'F', 'P', 'L', 'T'}

var (
	//go:embed sin.lut
	sinData []byte
	//go:embed tan.lut
	tanData []byte

	// Sin holds sin(x) and Tan holds tan(x) for x in [0, π/2].
	Sin *Table
	Tan *Table
)

func init() {
	var err error
	if Sin, err = Decode(sinData); err != nil {
		panic(err)
	}
	if Tan, err = Decode(tanData); err != nil {
		panic(err)
	}
}

// Table is an immutable set of n+1 samples and the reciprocal of the
// sampling step, n / (π/2).
type Table struct {
	length      int
	oneOverStep fxnum.Fp
	samples     []fxnum.Fp
}

// Len returns n, the number of intervals. The table has n+1 samples.
func (t *Table) Len() int {
	return t.length
}

func (t *Table) At(i int) fxnum.Fp {
	return t.samples[i]
}

func (t *Table) OneOverStep() fxnum.Fp {
	return t.oneOverStep
}

func (t *Table) Last() fxnum.Fp {
	return t.samples[t.length]
}

// Equal reports whether both tables hold the same raw values.
func (t *Table) Equal(o *Table) bool {
	if t.length != o.length || t.oneOverStep != o.oneOverStep {
		return false
	}
	for i := range t.samples {
		if t.samples[i] != o.samples[i] {
			return false
		}
	}
	return true
}

// GenerateSin samples sin(i/n · π/2) for i in [0, n].
func GenerateSin(n int) (*Table, error) {
	return generate(n, math.Sin)
}

// GenerateTan samples tan(i/n · π/2) for i in [0, n]. Values that are not
// representable, including the asymptote at π/2, are stored as MaxValue.
func GenerateTan(n int) (*Table, error) {
	return generate(n, func(v float64) float64 {
		t := math.Tan(v)
		if t < 0 || t >= -float64(math.MinInt32) {
			return math.Inf(1)
		}
		return t
	})
}

func generate(n int, fn func(float64) float64) (*Table, error) {
	if n <= 0 || n > math.MaxInt32 {
		return nil, xerrors.ErrInvalidTable.Wrapf("length must be in (0, %d]: %d", math.MaxInt32, n)
	}

	oneOverStep, xerr := fxnum.Nearest(float64(n) / (math.Pi / 2))
	if xerr != nil {
		return nil, xerrors.ErrInvalidTable.Wrap(xerr)
	}

	step := 1.0 / float64(n)
	samples := make([]fxnum.Fp, n+1)
	for i := range samples {
		v := fn(float64(i) * step * math.Pi / 2)
		if math.IsInf(v, 1) {
			samples[i] = fxnum.MaxValue
			continue
		}
		if samples[i], xerr = fxnum.Nearest(v); xerr != nil {
			return nil, xerrors.ErrInvalidTable.Wrap(xerr)
		}
	}

	return &Table{
		length:      n,
		oneOverStep: oneOverStep,
		samples:     samples,
	}, nil
}

// WriteTo writes the table in its binary form:
// "FPLT", uint32 n, int64 oneOverStep, then n+1 int64 samples,
// all little-endian.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, headerSize+8*len(t.samples))
	copy(buf, magic[:])
	binary.LittleEndian.PutUint32(buf[4:], uint32(t.length))
	binary.LittleEndian.PutUint64(buf[8:], uint64(t.oneOverStep.Raw()))
	for i, s := range t.samples {
		binary.LittleEndian.PutUint64(buf[headerSize+8*i:], uint64(s.Raw()))
	}

	n, err := w.Write(buf)
	return int64(n), err
}

// Decode parses a table written by WriteTo.
func Decode(data []byte) (*Table, error) {
	if len(data) < headerSize {
		return nil, xerrors.ErrInvalidTable.Wrapf("too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:4], magic[:]) {
		return nil, xerrors.ErrInvalidTable.Wrapf("wrong magic: %x", data[:4])
	}

	n := binary.LittleEndian.Uint32(data[4:])
	if n == 0 || n > math.MaxInt32 {
		return nil, xerrors.ErrInvalidTable.Wrapf("wrong length: %d", n)
	}
	if want := headerSize + 8*(int64(n)+1); int64(len(data)) != want {
		return nil, xerrors.ErrInvalidTable.Wrapf("wrong size: expected %d bytes, got %d", want, len(data))
	}

	samples := make([]fxnum.Fp, n+1)
	for i := range samples {
		samples[i] = fxnum.FromRaw(int64(binary.LittleEndian.Uint64(data[headerSize+8*i:])))
	}

	return &Table{
		length:      int(n),
		oneOverStep: fxnum.FromRaw(int64(binary.LittleEndian.Uint64(data[8:]))),
		samples:     samples,
	}, nil
}
