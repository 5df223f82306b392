package schema

import (
	"strings"
	"unicode"
)

// Field maps one in-memory field name to its wire key.
type Field struct {
	Name     string // snake_case
	Wire     string // key used in JSON bodies and query strings
	Optional bool   // may be absent from a decoded body
}

// Fields is the bidirectional name table of a schema type. Lookups accept either form.
type Fields struct {
	order  []Field
	byName map[string]string
	byWire map[string]string
}

// CamelFields builds a table whose wire keys are derived from the snake_case names by
// ToCamel. Every entity and request schema uses this rule.
func CamelFields(names ...string) Fields {
	fields := make([]Field, 0, len(names))
	for _, n := range names {
		fields = append(fields, Field{Name: n, Wire: ToCamel(n)})
	}
	return AliasFields(fields...)
}

// OptionalCamelFields is CamelFields for partial-update schemas, whose keys may all be
// absent.
func OptionalCamelFields(names ...string) Fields {
	fields := make([]Field, 0, len(names))
	for _, n := range names {
		fields = append(fields, Field{Name: n, Wire: ToCamel(n), Optional: true})
	}
	return AliasFields(fields...)
}

// AliasFields builds a table with explicit wire keys, for server shapes that do not follow
// the camelCase rule (such as the error envelopes).
func AliasFields(fields ...Field) Fields {
	f := Fields{
		order:  fields,
		byName: make(map[string]string, len(fields)),
		byWire: make(map[string]string, len(fields)),
	}
	for _, field := range fields {
		f.byName[field.Name] = field.Wire
		f.byWire[field.Wire] = field.Name
	}
	return f
}

// All returns the table in declaration order.
func (f Fields) All() []Field {
	return append([]Field(nil), f.order...)
}

// Wire resolves a field given by either its name or its wire key.
func (f Fields) Wire(key string) (string, bool) {
	if _, ok := f.byWire[key]; ok {
		return key, true
	}
	w, ok := f.byName[key]
	return w, ok
}

// Name resolves a field given by either its name or its wire key.
func (f Fields) Name(key string) (string, bool) {
	if _, ok := f.byName[key]; ok {
		return key, true
	}
	n, ok := f.byWire[key]
	return n, ok
}

// ToCamel converts "created_by_user_id" to "createdByUserId".
func ToCamel(snake string) string {
	parts := strings.Split(snake, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// ToSnake converts "createdByUserId" to "created_by_user_id".
func ToSnake(camel string) string {
	var b strings.Builder
	for i, r := range camel {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
