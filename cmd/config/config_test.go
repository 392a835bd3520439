package config

import (
	"strings"
	"testing"

	"github.com/beatoz/fxcore/types/xerrors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.ValidateBasic())
	require.Equal(t, 65536, c.LutLength)
}

func TestValidateBasic(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.LogFormat = "yaml" },
		func(c *Config) { c.LutLength = 0 },
		func(c *Config) { c.LutLength = -1 },
		func(c *Config) { c.LutOut = "" },
		func(c *Config) { c.Count = -1 },
	}
	for i, modify := range cases {
		c := DefaultConfig()
		modify(c)
		require.ErrorIs(t, c.ValidateBasic(), xerrors.ErrConfig, "case %d", i)
	}
}

func TestUnmarshalViper(t *testing.T) {
	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
log_level = "debug"
lut_length = 1024
lut_out = "/tmp/lut"
seed = -42
count = 7
`)))

	c := DefaultConfig()
	require.NoError(t, v.Unmarshal(c))
	require.Equal(t, "debug", c.LogLevel)
	require.Equal(t, LogFormatPlain, c.LogFormat)
	require.Equal(t, 1024, c.LutLength)
	require.Equal(t, "/tmp/lut", c.LutOut)
	require.Equal(t, int32(-42), c.Seed)
	require.Equal(t, 7, c.Count)
	require.NoError(t, c.ValidateBasic())
}
