package jsonx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

// camelCaseExtension writes snake_case and PascalCase field names as
// lowerCamelCase. Decoding accepts both the camelCase and the original name.
type camelCaseExtension struct {
	jsoniter.DummyExtension
}

func (e *camelCaseExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		tag := binding.Field.Tag().Get("json")
		if tag == "-" {
			continue
		}

		name := binding.Field.Name()
		if n, _, _ := strings.Cut(tag, ","); n != "" {
			name = n
		}

		if strings.Contains(name, "_") || isFirstCharUpper(name) {
			camel := toLowerFirstCamel(name)
			binding.ToNames = []string{camel}
			binding.FromNames = []string{camel, name}
		}
	}
}

func toLowerFirstCamel(s string) string {
	if !strings.Contains(s, "_") {
		if s == "" {
			return s
		}
		return strings.ToLower(s[:1]) + s[1:]
	}

	sb := strings.Builder{}
	for _, p := range strings.Split(s, "_") {
		if p == "" {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteString(strings.ToLower(p[:1]) + p[1:])
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	return sb.String()
}

func isFirstCharUpper(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
