package commands

import (
	encbinary "encoding/binary"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/beatoz/fxcore/libs/fxmath"
	"github.com/beatoz/fxcore/libs/fxnum"
	"github.com/beatoz/fxcore/libs/jsonx"
	"github.com/beatoz/fxcore/types/xerrors"
	"github.com/spf13/cobra"
	tmbytes "github.com/tendermint/tendermint/libs/bytes"
)

type evalFunc struct {
	arity int
	fx    func(a []fxnum.Fp) (fxnum.Fp, xerrors.XError)
	ref   func(a []float64) float64
}

func unary(f func(fxnum.Fp) fxnum.Fp, ref func(float64) float64) evalFunc {
	return evalFunc{
		arity: 1,
		fx:    func(a []fxnum.Fp) (fxnum.Fp, xerrors.XError) { return f(a[0]), nil },
		ref:   func(a []float64) float64 { return ref(a[0]) },
	}
}

func unaryErr(f func(fxnum.Fp) (fxnum.Fp, xerrors.XError), ref func(float64) float64) evalFunc {
	return evalFunc{
		arity: 1,
		fx:    func(a []fxnum.Fp) (fxnum.Fp, xerrors.XError) { return f(a[0]) },
		ref:   func(a []float64) float64 { return ref(a[0]) },
	}
}

func binary(f func(x, y fxnum.Fp) fxnum.Fp, ref func(x, y float64) float64) evalFunc {
	return evalFunc{
		arity: 2,
		fx:    func(a []fxnum.Fp) (fxnum.Fp, xerrors.XError) { return f(a[0], a[1]), nil },
		ref:   func(a []float64) float64 { return ref(a[0], a[1]) },
	}
}

// nonZeroDivisor guards the operations that panic on a zero divisor.
func nonZeroDivisor(f func(x, y fxnum.Fp) fxnum.Fp) func(a []fxnum.Fp) (fxnum.Fp, xerrors.XError) {
	return func(a []fxnum.Fp) (fxnum.Fp, xerrors.XError) {
		if a[1].IsZero() {
			return fxnum.Zero, xerrors.ErrDomain.Wrapf("division by zero")
		}
		return f(a[0], a[1]), nil
	}
}

var evalFuncs = map[string]evalFunc{
	"add": binary(fxnum.Fp.Add, func(x, y float64) float64 { return x + y }),
	"sub": binary(fxnum.Fp.Sub, func(x, y float64) float64 { return x - y }),
	"mul": binary(fxnum.Fp.Mul, func(x, y float64) float64 { return x * y }),
	"div": {
		arity: 2,
		fx:    nonZeroDivisor(fxnum.Fp.Div),
		ref:   func(a []float64) float64 { return a[0] / a[1] },
	},
	"mod": {
		arity: 2,
		fx:    nonZeroDivisor(fxnum.Fp.Mod),
		ref:   func(a []float64) float64 { return math.Mod(a[0], a[1]) },
	},
	"abs":   unary(fxmath.Abs, math.Abs),
	"sqrt":  unary(fxmath.Sqrt, math.Sqrt),
	"cbrt":  unary(fxmath.Cbrt, math.Cbrt),
	"floor": unary(fxmath.Floor, math.Floor),
	"ceil":  unary(fxmath.Ceil, math.Ceil),
	"round": unary(fxmath.Round, func(x float64) float64 { return math.Floor(x + 0.5) }),
	"sin":   unary(fxmath.Sin, math.Sin),
	"cos":   unary(fxmath.Cos, math.Cos),
	"tan":   unary(fxmath.Tan, math.Tan),
	"log2":  unaryErr(fxmath.Log2, math.Log2),
	"log":   unaryErr(fxmath.Log, math.Log),
	"log10": unaryErr(fxmath.Log10, math.Log10),
	"logb": {
		arity: 2,
		fx:    func(a []fxnum.Fp) (fxnum.Fp, xerrors.XError) { return fxmath.LogBase(a[0], a[1]) },
		ref:   func(a []float64) float64 { return math.Log(a[0]) / math.Log(a[1]) },
	},
	"pow": {
		arity: 2,
		fx:    func(a []fxnum.Fp) (fxnum.Fp, xerrors.XError) { return fxmath.Pow(a[0], a[1]) },
		ref:   func(a []float64) float64 { return math.Pow(a[0], a[1]) },
	},
}

func evalFuncNames() []string {
	names := make([]string, 0, len(evalFuncs))
	for n := range evalFuncs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// EvalReport is the result of one evaluation. Bits is the big-endian
// two's complement of Raw. Reference is the float64 result of the same
// function and is omitted when it is not finite.
type EvalReport struct {
	Func      string           `json:"func"`
	Args      []fxnum.Fp       `json:"args"`
	Result    fxnum.Fp         `json:"result"`
	Raw       int64            `json:"raw"`
	Bits      tmbytes.HexBytes `json:"bits"`
	Reference *float64         `json:"reference,omitempty"`
}

// Eval parses the decimal operands and applies the named function.
func Eval(name string, operands []string) (*EvalReport, error) {
	fn, ok := evalFuncs[name]
	if !ok {
		return nil, xerrors.ErrUnsupported.Wrapf("unknown function %q, expected one of %s", name, strings.Join(evalFuncNames(), ", "))
	}
	if len(operands) != fn.arity {
		return nil, xerrors.NewOrdinary(fmt.Sprintf("%s takes %d argument(s), got %d", name, fn.arity, len(operands)))
	}

	args := make([]fxnum.Fp, len(operands))
	refArgs := make([]float64, len(operands))
	for i, s := range operands {
		v, xerr := fxnum.Parse(s)
		if xerr != nil {
			return nil, xerr
		}
		args[i] = v
		refArgs[i] = v.Float64()
	}

	ret, xerr := fn.fx(args)
	if xerr != nil {
		return nil, xerr
	}

	report := &EvalReport{
		Func:   name,
		Args:   args,
		Result: ret,
		Raw:    ret.Raw(),
		Bits:   encbinary.BigEndian.AppendUint64(nil, uint64(ret.Raw())),
	}
	if ref := fn.ref(refArgs); !math.IsNaN(ref) && !math.IsInf(ref, 0) {
		report.Reference = &ref
	}
	return report, nil
}

func NewEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval FUNC VALUE [VALUE]",
		Short: "Evaluate a fixed-point function on decimal operands",
		Long: "Evaluate a fixed-point function on decimal operands and print the result as JSON.\n" +
			"Functions: " + strings.Join(evalFuncNames(), ", "),
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := Eval(args[0], args[1:])
			if err != nil {
				return err
			}

			bz, err := jsonx.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			logger.Debug("evaluated", "func", report.Func, "raw", report.Raw)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		},
	}
	// negative operands must not be taken for flags
	cmd.Flags().SetInterspersed(false)
	return cmd
}
