package commands

import (
	"bytes"
	"path/filepath"

	"github.com/beatoz/fxcore/libs/fxmath/lut"
	"github.com/spf13/cobra"
	tmos "github.com/tendermint/tendermint/libs/os"
)

const (
	SinTableFile = "sin.lut"
	TanTableFile = "tan.lut"

	tableFilePerm = 0o644
	tableDirPerm  = 0o755
)

// NewLutGenCmd returns the command that regenerates the sine and tangent
// lookup tables embedded in libs/fxmath/lut.
func NewLutGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lutgen",
		Short: "Generate the sine and tangent lookup tables",
		Long: "Generate the sine and tangent lookup tables.\n" +
			"Each table samples [0, π/2] at lut_length+1 points and is written as " +
			SinTableFile + " and " + TanTableFile + " into lut_out.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenerateTables(rootConfig.LutOut, rootConfig.LutLength)
		},
	}
	AddLutGenFlags(cmd)
	return cmd
}

func AddLutGenFlags(cmd *cobra.Command) {
	cmd.Flags().String("lut_out", rootConfig.LutOut, "directory the table files are written to")
	cmd.Flags().Int("lut_length", rootConfig.LutLength, "number of intervals of each table")
}

// GenerateTables writes both tables of length n into dir.
func GenerateTables(dir string, n int) error {
	if err := tmos.EnsureDir(dir, tableDirPerm); err != nil {
		return err
	}

	gens := []struct {
		file string
		gen  func(int) (*lut.Table, error)
	}{
		{SinTableFile, lut.GenerateSin},
		{TanTableFile, lut.GenerateTan},
	}
	for _, g := range gens {
		tb, err := g.gen(n)
		if err != nil {
			return err
		}

		buf := &bytes.Buffer{}
		if _, err := tb.WriteTo(buf); err != nil {
			return err
		}

		path := filepath.Join(dir, g.file)
		if err := tmos.WriteFile(path, buf.Bytes(), tableFilePerm); err != nil {
			return err
		}
		logger.Info("lookup table written", "file", path, "length", tb.Len(), "bytes", buf.Len())
	}
	return nil
}
