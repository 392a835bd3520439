package jsonx

import (
	"reflect"
	"unsafe"

	"github.com/beatoz/fxcore/libs/fxnum"
	jsoniter "github.com/json-iterator/go"
)

// Fp values are written as their exact decimal expansion in a string, so
// that a round trip restores the same raw value. Decoding also accepts a
// plain JSON number.
func encodeFp(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString((*(*fxnum.Fp)(ptr)).String())
}

func decodeFp(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	var s string
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		s = iter.ReadString()
	case jsoniter.NumberValue:
		s = string(iter.ReadNumber())
	default:
		iter.ReportError("decode fxnum.Fp", "expected a string or a number")
		iter.Skip()
		return
	}

	f, xerr := fxnum.Parse(s)
	if xerr != nil {
		iter.ReportError("decode fxnum.Fp", xerr.Error())
		return
	}
	*(*fxnum.Fp)(ptr) = f
}

func isEmptyFp(ptr unsafe.Pointer) bool {
	return (*(*fxnum.Fp)(ptr)).IsZero()
}

func registerFp() {
	typ := reflect.TypeOf(fxnum.Fp{}).String()
	jsoniter.RegisterTypeEncoderFunc(typ, encodeFp, isEmptyFp)
	jsoniter.RegisterTypeDecoderFunc(typ, decodeFp)
}
