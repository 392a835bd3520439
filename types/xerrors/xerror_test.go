package xerrors

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Wrap(t *testing.T) {
	err := errors.New("base error")
	xerr0 := NewOrdinary("first xerror").Wrap(err)
	xerr1 := NewOrdinary("second xerror").Wrap(xerr0)

	//second xerror
	//	first xerror
	//	base error
	fmt.Println(xerr1)
	require.Equal(t, "second xerror\n\tfirst xerror\n\tbase error", xerr1.Error())

	xerr0 = NewOrdinary("first xerror").Wrapf("initial error: %s", err.Error())
	xerr1 = NewOrdinary("second xerror").Wrap(xerr0)
	require.Equal(t, "second xerror\n\tfirst xerror\n\tinitial error: base error", xerr1.Error())
}

func Test_Contains(t *testing.T) {
	err := errors.New("base error")
	xerr0 := NewOrdinary("first xerror").Wrap(err)
	xerr1 := NewOrdinary("second xerror").Wrap(xerr0)
	xerrNotContained := NewOrdinary("third xerror").Wrap(err)

	require.True(t, xerr1.Contains(xerr0))
	require.False(t, xerr1.Contains(xerrNotContained))
}

func Test_ErrorsIs(t *testing.T) {
	err := ErrUnsupported.Wrapf("asin")
	require.ErrorIs(t, err, ErrUnsupported)
	require.NotErrorIs(t, err, ErrRange)
	require.True(t, err.Equal(ErrUnsupported))

	// sentinels built by wrapping keep the outer code
	require.ErrorIs(t, ErrNaN, ErrRange)
	require.Equal(t, ErrCodeRange, ErrNaN.Code())
	require.ErrorIs(t, ErrNaN.Wrapf("value=%v", 1), ErrRange)
	require.ErrorIs(t, ErrNaN.Wrapf("value=%v", 1), ErrNaN)
	require.ErrorIs(t, ErrNotPositive.Wrapf("log2(0)"), ErrDomain)
	require.ErrorIs(t, NewOrdinary("outer").Wrap(ErrNaN.Wrapf("v")), ErrNaN)
	require.ErrorIs(t, ErrInvalidSyntax.Wrap(errors.New("strconv")), ErrInvalidSyntax)

	// a parent does not match the sentinels derived from it
	require.NotErrorIs(t, ErrRange, ErrNaN)
	require.NotErrorIs(t, ErrRange.Wrapf("x"), ErrNaN)
	require.NotErrorIs(t, ErrDomain.Wrapf("log base 1"), ErrNotPositive)
	require.NotErrorIs(t, ErrNaN, ErrNotPositive)
	require.NotErrorIs(t, ErrRange.Wrapf("x"), ErrRange.Wrapf("y"))

	require.Nil(t, From(nil))
	require.Same(t, ErrIndex, From(ErrIndex))
	require.Equal(t, ErrCodeOrdinary, From(errors.New("plain")).Code())
}
