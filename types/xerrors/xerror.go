package xerrors

import (
	"errors"
	"fmt"
)

const (
	ErrCodeSuccess uint32 = iota
	ErrCodeOrdinary
	ErrCodeRange
	ErrCodeUnsupported
	ErrCodeIndex
	ErrCodeDomain
	ErrCodeTable
	ErrCodeConfig
	ErrLast
)

var (
	ErrCommon = New(ErrCodeOrdinary, "fxcore error")

	// ErrRange is returned when a real or decimal number can not be
	// represented by a Q32.32 value.
	ErrRange = New(ErrCodeRange, "out of range")

	// ErrUnsupported is returned by the operations that are intentionally
	// left unimplemented. It is never a wrong answer in disguise.
	ErrUnsupported = New(ErrCodeUnsupported, "unsupported operation")

	ErrIndex        = New(ErrCodeIndex, "index out of range")
	ErrDomain       = New(ErrCodeDomain, "argument out of domain")
	ErrInvalidTable = New(ErrCodeTable, "invalid lookup table")
	ErrConfig       = New(ErrCodeConfig, "invalid config")

	// new style errors
	ErrNaN           = ErrRange.Wrap(NewOrdinary("not a number"))
	ErrNotPositive   = ErrDomain.Wrap(NewOrdinary("argument must be positive"))
	ErrInvalidSyntax = NewOrdinary("invalid syntax")
)

type XError interface {
	Code() uint32
	Cause() error
	Error() string
	Msg() string
	Wrap(error) XError
	Wrapf(string, ...any) XError
	Contains(XError) bool
	Equal(XError) bool
	Unwrap() error
}

type xerror struct {
	code  uint32
	msg   string
	cause error
}

func New(code uint32, msg string) XError {
	return &xerror{
		code: code,
		msg:  msg,
	}
}

func NewOrdinary(msg string) XError {
	return &xerror{
		code: ErrCodeOrdinary,
		msg:  msg,
	}
}

func From(err error) XError {
	if err == nil {
		return nil
	}
	if xerr, ok := err.(XError); ok {
		return xerr
	}
	return NewOrdinary(err.Error())
}

func Wrap(err error, msg string) XError {
	return &xerror{
		code:  ErrCodeOrdinary,
		msg:   msg,
		cause: err,
	}
}

func (xerr *xerror) Code() uint32 {
	return xerr.code
}

func (xerr *xerror) Error() string {
	msg := xerr.msg

	if xerr.cause != nil {
		msg += "\n\t" + xerr.cause.Error()
	}

	return msg
}

func (xerr *xerror) Msg() string {
	return xerr.msg
}

func (xerr *xerror) Cause() error {
	return xerr.cause
}

func (xerr *xerror) Unwrap() error {
	return xerr.cause
}

// Is reports whether xerr starts with the chain of codes and messages of
// target. An error wrapped from a sentinel matches it, and a sentinel built
// by wrapping a parent (ErrNaN from ErrRange) matches the parent, but the
// bare parent does not match the derived sentinel.
func (xerr *xerror) Is(target error) bool {
	other, ok := target.(*xerror)
	if !ok {
		return false
	}
	if xerr == other {
		return true
	}
	if xerr.code != other.code || xerr.msg != other.msg {
		return false
	}
	if other.cause == nil {
		return true
	}
	if tc, ok := other.cause.(*xerror); ok {
		c, ok := xerr.cause.(*xerror)
		return ok && c.Is(tc)
	}
	return errors.Is(xerr.cause, other.cause)
}

func (xerr *xerror) Wrap(err error) XError {
	if xerr.cause != nil {
		if cerr, ok := xerr.cause.(*xerror); ok {
			return &xerror{
				code:  xerr.code,
				msg:   xerr.msg,
				cause: cerr.Wrap(err),
			}
		}
	}
	return &xerror{
		code:  xerr.code,
		msg:   xerr.msg,
		cause: err,
	}
}

func (xerr *xerror) Wrapf(format string, args ...any) XError {
	return xerr.Wrap(New(ErrCodeOrdinary, fmt.Sprintf(format, args...)))
}

func (xerr *xerror) Contains(other XError) bool {
	if xerr.code == other.Code() && xerr.msg == other.Msg() {
		return true
	} else if xerr.cause != nil {
		if _xerr, ok := xerr.cause.(*xerror); ok {
			return _xerr.Contains(other)
		} else {
			return errors.Is(xerr.cause, other)
		}
	}
	return false
}

func (xerr *xerror) Equal(other XError) bool {
	return xerr.code == other.Code()
}
