package config

import (
	"math"

	"github.com/beatoz/fxcore/libs/fxmath/lut"
	"github.com/beatoz/fxcore/types/xerrors"
)

const (
	DefaultLogLevel = "info"

	LogFormatPlain = "plain"
	LogFormatJSON  = "json"
)

// Config holds the settings shared by all fxcore commands. Values are
// merged by viper from $FXCORE_HOME/config/config.toml, FXCORE_* environment
// variables and command-line flags, in increasing priority.
type Config struct {
	RootDir   string `mapstructure:"home"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// lookup table generation
	LutLength int    `mapstructure:"lut_length"`
	LutOut    string `mapstructure:"lut_out"`

	// sampling
	Seed  int32 `mapstructure:"seed"`
	Count int   `mapstructure:"count"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: LogFormatPlain,
		LutLength: lut.DefaultLength,
		LutOut:    ".",
		Seed:      0,
		Count:     10,
	}
}

func (c *Config) ValidateBasic() error {
	if c.LogFormat != LogFormatPlain && c.LogFormat != LogFormatJSON {
		return xerrors.ErrConfig.Wrapf("unknown log_format: %q", c.LogFormat)
	}
	if c.LutLength <= 0 || c.LutLength > math.MaxInt32 {
		return xerrors.ErrConfig.Wrapf("lut_length must be in (0, %d]: %d", math.MaxInt32, c.LutLength)
	}
	if c.LutOut == "" {
		return xerrors.ErrConfig.Wrapf("lut_out is empty")
	}
	if c.Count < 0 {
		return xerrors.ErrConfig.Wrapf("count must not be negative: %d", c.Count)
	}
	return nil
}
