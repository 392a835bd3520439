package jsonx

import (
	"reflect"
	"strconv"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/constraints"
)

// integerExtension encodes the target integer kinds as decimal strings,
// unless the field already carries the ",string" option. Decoding accepts
// both strings and numbers.
type integerExtension struct {
	jsoniter.DummyExtension
	targets []reflect.Kind
}

func newIntegerExtension(targets ...reflect.Kind) *integerExtension {
	return &integerExtension{
		targets: targets,
	}
}

func (e *integerExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		kind := binding.Field.Type().Kind()
		if !e.isTarget(kind) {
			continue
		}

		tag := binding.Field.Tag().Get("json")
		if tag == "-" || hasStringOption(tag) {
			continue
		}

		codec := integerCodecs[kind]
		binding.Encoder = codec
		binding.Decoder = codec
	}
}

func (e *integerExtension) isTarget(kind reflect.Kind) bool {
	for _, target := range e.targets {
		if kind == target {
			return true
		}
	}
	return false
}

func hasStringOption(tag string) bool {
	parts := strings.Split(tag, ",")
	for _, opt := range parts[1:] {
		if opt == "string" {
			return true
		}
	}
	return false
}

type integerCodec interface {
	jsoniter.ValEncoder
	jsoniter.ValDecoder
}

var integerCodecs = map[reflect.Kind]integerCodec{
	reflect.Int:    signedCodec[int]{},
	reflect.Int8:   signedCodec[int8]{},
	reflect.Int16:  signedCodec[int16]{},
	reflect.Int32:  signedCodec[int32]{},
	reflect.Int64:  signedCodec[int64]{},
	reflect.Uint:   unsignedCodec[uint]{},
	reflect.Uint8:  unsignedCodec[uint8]{},
	reflect.Uint16: unsignedCodec[uint16]{},
	reflect.Uint32: unsignedCodec[uint32]{},
	reflect.Uint64: unsignedCodec[uint64]{},
}

type signedCodec[T constraints.Signed] struct{}

func (signedCodec[T]) IsEmpty(ptr unsafe.Pointer) bool {
	return *(*T)(ptr) == 0
}

func (signedCodec[T]) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString(strconv.FormatInt(int64(*(*T)(ptr)), 10))
}

func (signedCodec[T]) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		i, err := strconv.ParseInt(iter.ReadString(), 10, int(unsafe.Sizeof(T(0)))*8)
		if err != nil {
			iter.ReportError("decode integer", err.Error())
			return
		}
		*(*T)(ptr) = T(i)
	case jsoniter.NumberValue:
		*(*T)(ptr) = T(iter.ReadInt64())
	default:
		iter.Skip()
	}
}

type unsignedCodec[T constraints.Unsigned] struct{}

func (unsignedCodec[T]) IsEmpty(ptr unsafe.Pointer) bool {
	return *(*T)(ptr) == 0
}

func (unsignedCodec[T]) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString(strconv.FormatUint(uint64(*(*T)(ptr)), 10))
}

func (unsignedCodec[T]) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		u, err := strconv.ParseUint(iter.ReadString(), 10, int(unsafe.Sizeof(T(0)))*8)
		if err != nil {
			iter.ReportError("decode integer", err.Error())
			return
		}
		*(*T)(ptr) = T(u)
	case jsoniter.NumberValue:
		*(*T)(ptr) = T(iter.ReadUint64())
	default:
		iter.Skip()
	}
}
