// Package jsonx is the JSON codec used across fxcore.
//
// Field names are written in lowerCamelCase, 64-bit integers and fxnum.Fp
// values are written as decimal strings so that no precision is lost in
// consumers that parse numbers as float64.
package jsonx

import (
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var _jsonx = jsoniter.Config{
	IndentionStep:          2,
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

var (
	Marshal       = _jsonx.Marshal
	Unmarshal     = _jsonx.Unmarshal
	MarshalIndent = _jsonx.MarshalIndent
	NewEncoder    = _jsonx.NewEncoder
	NewDecoder    = _jsonx.NewDecoder
)

func init() {
	jsoniter.RegisterExtension(newIntegerExtension(reflect.Int64, reflect.Uint64))
	jsoniter.RegisterExtension(&camelCaseExtension{})
	registerFp()
}
