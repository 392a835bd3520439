package commands

import (
	"os"

	cfg "github.com/beatoz/fxcore/cmd/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	rootConfig = cfg.DefaultConfig()
	logger     = log.NewTMLogger(log.NewSyncWriter(os.Stdout))
)

func init() {
	registerFlagsRootCmd(RootCmd)
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log_level", rootConfig.LogLevel, "log level (e.g. \"info\", \"*:error,lutgen:debug\")")
	cmd.PersistentFlags().String("log_format", rootConfig.LogFormat, "log format: plain | json")
}

// ParseConfig reads the configuration merged by viper from the config file,
// the environment and the flags of cmd.
func ParseConfig(cmd *cobra.Command) (*cfg.Config, error) {
	conf := cfg.DefaultConfig()
	if err := viper.Unmarshal(conf); err != nil {
		return nil, err
	}

	home, err := cmd.Flags().GetString(cli.HomeFlag)
	if err != nil {
		return nil, err
	}
	conf.RootDir = home

	if err := conf.ValidateBasic(); err != nil {
		return nil, err
	}
	return conf, nil
}

// RootCmd is the root command for fxcore.
var RootCmd = &cobra.Command{
	Use:               "fxcore",
	Short:             "Deterministic Q32.32 fixed-point math toolkit",
	PersistentPreRunE: preRunRoot,
}

// preRunRoot loads the configuration and sets up the logger before any
// subcommand runs.
func preRunRoot(cmd *cobra.Command, args []string) error {
	if cmd.Name() == VersionCmd.Name() {
		return nil
	}

	conf, err := ParseConfig(cmd)
	if err != nil {
		return err
	}
	rootConfig = conf

	if rootConfig.LogFormat == cfg.LogFormatJSON {
		logger = log.NewTMJSONLogger(log.NewSyncWriter(os.Stdout))
	}

	logger, err = tmflags.ParseLogLevel(rootConfig.LogLevel, logger, cfg.DefaultLogLevel)
	if err != nil {
		return err
	}

	if viper.GetBool(cli.TraceFlag) {
		logger = log.NewTracingLogger(logger)
	}

	logger = logger.With("module", "main")
	return nil
}
