package jsonx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Camel(t *testing.T) {
	require.Equal(t, "testUnderscore", toLowerFirstCamel("_test_underscore"))
	require.Equal(t, "lutLength", toLowerFirstCamel("lut_length"))
	require.Equal(t, "oneOverStep", toLowerFirstCamel("OneOverStep"))
	require.Equal(t, "seed", toLowerFirstCamel("seed"))
	require.Equal(t, "", toLowerFirstCamel(""))
}
