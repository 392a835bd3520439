package main

import (
	"path/filepath"

	"github.com/beatoz/fxcore/cmd/commands"
	"github.com/beatoz/fxcore/libs"
	"github.com/tendermint/tendermint/libs/cli"
)

func main() {
	commands.RootCmd.AddCommand(
		commands.NewLutGenCmd(),
		commands.NewEvalCmd(),
		commands.NewSampleCmd(),
		commands.VersionCmd,
	)

	executor := cli.PrepareBaseCmd(commands.RootCmd, "FXCORE", filepath.Join(libs.GetHome(), ".fxcore"))
	if err := executor.Execute(); err != nil {
		panic(err)
	}
}
