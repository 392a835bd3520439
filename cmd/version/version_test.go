package version

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionParsing(t *testing.T) {
	parseVersions("v1.2.3", "abcdef01")
	require.Equal(t, uint64(1), Major())
	require.Equal(t, uint64(2), Minor())
	require.Equal(t, uint64(3), Patch())

	n, err := strconv.ParseUint("abcdef01", 16, 64)
	require.NoError(t, err)
	require.Equal(t, n, CommitHash())

	require.Equal(t, "v1.2.3-abcdef01", String())
	require.Equal(t, uint64(0x01020003abcdef01), Uint64())

	require.Panics(t, func() { parseVersions("1.2", "") })
	require.Panics(t, func() { parseVersions("v1.2.3", "xyz") })
}
