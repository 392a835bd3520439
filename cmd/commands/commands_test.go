package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beatoz/fxcore/cmd/version"
	"github.com/beatoz/fxcore/libs/fxmath/lut"
	"github.com/beatoz/fxcore/libs/fxnum"
	"github.com/beatoz/fxcore/libs/fxrand"
	"github.com/beatoz/fxcore/libs/jsonx"
	"github.com/beatoz/fxcore/types/xerrors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/cli"
)

// newTestRoot builds a fresh command tree so that flags parsed by one test
// do not leak into the next.
func newTestRoot(t *testing.T) *cobra.Command {
	root := &cobra.Command{
		Use:               RootCmd.Use,
		PersistentPreRunE: preRunRoot,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	registerFlagsRootCmd(root)
	root.AddCommand(NewLutGenCmd(), NewEvalCmd(), NewSampleCmd(), VersionCmd)
	_ = cli.PrepareBaseCmd(root, "FXCORE", t.TempDir())
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	root := newTestRoot(t)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, version.String()+"\n", out)
}

func TestEvalCmd(t *testing.T) {
	out, err := execute(t, "eval", "mul", "-1.5", "2.25")
	require.NoError(t, err)

	var report EvalReport
	require.NoError(t, jsonx.Unmarshal([]byte(out), &report))
	require.Equal(t, "mul", report.Func)
	require.Equal(t, []fxnum.Fp{fxnum.MustParse("-1.5"), fxnum.MustParse("2.25")}, report.Args)
	require.Equal(t, fxnum.MustParse("-3.375"), report.Result)
	require.Equal(t, report.Result.Raw(), report.Raw)
	require.NotNil(t, report.Reference)
	require.Equal(t, -3.375, *report.Reference)

	// exact decimal and raw are written as strings
	require.Contains(t, out, `"result": "-3.375"`)
	require.Contains(t, out, `"raw": "-14495514624"`)
	require.Contains(t, out, `"bits": "FFFFFFFCA0000000"`)
	require.Equal(t, "FFFFFFFCA0000000", report.Bits.String())
}

func TestEval(t *testing.T) {
	report, err := Eval("sqrt", []string{"2"})
	require.NoError(t, err)
	require.InDelta(t, 1.4142135623, report.Result.Float64(), 1e-9)

	report, err = Eval("floor", []string{"-0.5"})
	require.NoError(t, err)
	require.Equal(t, fxnum.MinusOne, report.Result)

	report, err = Eval("logb", []string{"8", "2"})
	require.NoError(t, err)
	require.InDelta(t, 3, report.Result.Float64(), 1e-6)

	report, err = Eval("pow", []string{"4", "-1"})
	require.NoError(t, err)
	require.Equal(t, fxnum.MustParse("0.25"), report.Result)

	// the reference is dropped when float64 has no finite answer
	report, err = Eval("sqrt", []string{"-4"})
	require.NoError(t, err)
	require.Equal(t, fxnum.Zero, report.Result)
	require.Nil(t, report.Reference)
}

func TestEvalErrors(t *testing.T) {
	_, err := Eval("exp", []string{"1"})
	require.ErrorIs(t, err, xerrors.ErrUnsupported)

	_, err = Eval("add", []string{"1"})
	require.Error(t, err)

	_, err = Eval("sqrt", []string{"two"})
	require.ErrorIs(t, err, xerrors.ErrInvalidSyntax)

	_, err = Eval("div", []string{"1", "0"})
	require.ErrorIs(t, err, xerrors.ErrDomain)

	_, err = Eval("mod", []string{"1", "0.0"})
	require.ErrorIs(t, err, xerrors.ErrDomain)

	_, err = Eval("log", []string{"-1"})
	require.ErrorIs(t, err, xerrors.ErrNotPositive)

	_, err = Eval("pow", []string{"2", "0.5"})
	require.ErrorIs(t, err, xerrors.ErrUnsupported)

	_, err = execute(t, "eval", "cbrt")
	require.Error(t, err)
}

func TestSampleCmd(t *testing.T) {
	out, err := execute(t, "sample", "--seed", "7", "--count", "8", "--values", "int", "-100", "100")
	require.NoError(t, err)

	var report SampleReport
	require.NoError(t, jsonx.Unmarshal([]byte(out), &report))
	require.Equal(t, SampleKindInt, report.Kind)
	require.Equal(t, 8, report.Summary.Count)
	require.Equal(t, fxnum.FromInt(-82), report.Summary.Min)
	require.Equal(t, fxnum.FromInt(90), report.Summary.Max)

	want := []fxnum.Fp{}
	for _, v := range []int{-81, 90, -82, -34, 5, 2, -64, -65} {
		want = append(want, fxnum.FromInt(v))
	}
	require.Equal(t, want, report.Values)

	// continuing from the reported state gives the next draws of the stream
	r := fxrand.New(7)
	for i := 0; i < 8; i++ {
		r.NextIntRange(-100, 100)
	}
	require.Equal(t, r.State(), report.State)
}

func TestSampleFp(t *testing.T) {
	report, err := Sample(SampleKindFp, "-0.5", "0.5", 1, 1000, false)
	require.NoError(t, err)
	require.Equal(t, 1000, report.Summary.Count)
	require.Nil(t, report.Values)
	require.True(t, report.Summary.Min.GreaterThanOrEqual(fxnum.MustParse("-0.5")))
	require.True(t, report.Summary.Max.LessThanOrEqual(fxnum.Half))

	again, err := Sample(SampleKindFp, "-0.5", "0.5", 1, 1000, false)
	require.NoError(t, err)
	require.Equal(t, report, again)

	_, err = Sample("dice", "1", "6", 1, 1, false)
	require.ErrorIs(t, err, xerrors.ErrUnsupported)
	_, err = Sample(SampleKindInt, "1", "4294967296", 1, 1, false)
	require.ErrorIs(t, err, xerrors.ErrInvalidSyntax)
}

func TestSampleHistogram(t *testing.T) {
	out, err := execute(t, "sample", "--seed", "3", "--count", "300", "--histogram", "int", "0", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for i, l := range lines {
		require.True(t, strings.HasPrefix(l, []string{"0: ", "1: ", "2: "}[i]), l)
	}

	_, err = execute(t, "sample", "--histogram", "fp", "0", "1")
	require.ErrorIs(t, err, xerrors.ErrUnsupported)
}

func TestSampleInvalidConfig(t *testing.T) {
	_, err := execute(t, "sample", "--count", "-1", "int", "0", "1")
	require.ErrorIs(t, err, xerrors.ErrConfig)

	_, err = execute(t, "--log_format", "xml", "sample", "int", "0", "1")
	require.ErrorIs(t, err, xerrors.ErrConfig)
}

func TestLutGenCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tables")
	_, err := execute(t, "lutgen", "--lut_out", dir, "--lut_length", "64")
	require.NoError(t, err)

	for file, gen := range map[string]func(int) (*lut.Table, error){
		SinTableFile: lut.GenerateSin,
		TanTableFile: lut.GenerateTan,
	} {
		bz, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err)

		tb, err := lut.Decode(bz)
		require.NoError(t, err)
		require.Equal(t, 64, tb.Len())

		want, err := gen(64)
		require.NoError(t, err)
		require.True(t, want.Equal(tb), file)
	}
}

func TestLutGenInvalidLength(t *testing.T) {
	_, err := execute(t, "lutgen", "--lut_out", t.TempDir(), "--lut_length", "0")
	require.ErrorIs(t, err, xerrors.ErrConfig)
}
