package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Schema is implemented by every request, response and entity type in this package.
type Schema interface {
	Fields() Fields
}

// ErrorKind classifies why a value failed to decode or validate.
type ErrorKind string

const (
	KindMalformed ErrorKind = "malformed" // body is not JSON at all
	KindMissing   ErrorKind = "missing"   // a required key is absent
	KindType      ErrorKind = "type"      // a value has the wrong JSON type
	KindTooShort  ErrorKind = "too_short" // a string is shorter than its minimum length
	KindFormat    ErrorKind = "format"    // a string is not a valid uuid, url, email...
	KindInvalid   ErrorKind = "invalid"   // any other constraint
)

// Issue is one failed check, located by its wire path (e.g. "course.previewFile.id").
type Issue struct {
	Field   string
	Kind    ErrorKind
	Message string
}

// Error is returned by Decode, Validate and Assign.
type Error struct {
	Type   string
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Field == "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", is.Message, is.Kind))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s (%s)", is.Field, is.Message, is.Kind))
		}
	}
	return fmt.Sprintf("%s: %d validation error(s): %s", e.Type, len(e.Issues), strings.Join(parts, "; "))
}

// Kind returns the kind of the first issue.
func (e *Error) Kind() ErrorKind {
	if len(e.Issues) == 0 {
		return ""
	}
	return e.Issues[0].Kind
}

// Has reports whether any issue at the given wire path has the given kind.
func (e *Error) Has(field string, kind ErrorKind) bool {
	for _, is := range e.Issues {
		if is.Field == field && is.Kind == kind {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses a wire JSON body into T and validates the result.
func Decode[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return v, &Error{Type: typeName(v), Issues: []Issue{{Kind: KindMalformed, Message: err.Error()}}}
		}
		return v, withType(typeName(v), issuesFrom("", err))
	}
	if err := Validate(&v); err != nil {
		return v, err
	}
	return v, nil
}

// Encode serializes a schema value using its wire keys. Lists are always sent as arrays:
// a nil list encodes as [] and an empty list decodes back to nil.
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Query renders a schema value as query parameters using its wire keys. Null values are
// omitted.
func Query(v any) (url.Values, error) {
	data, err := Encode(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]interface{}
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	values := make(url.Values, len(m))
	for k, raw := range m {
		switch x := raw.(type) {
		case nil:
		case string:
			values.Set(k, x)
		default:
			values.Set(k, fmt.Sprint(x))
		}
	}
	return values, nil
}

// Validate trims surrounding whitespace from every string field (recursively) and then
// checks the struct's validation rules. It must be given a pointer.
func Validate(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("schema: Validate requires a non-nil pointer, got %T", v)
	}
	trimStrings(rv.Elem())
	if rv.Elem().Kind() != reflect.Struct {
		return nil
	}
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Type: typeName(rv.Elem().Interface())}
	for _, fe := range verrs {
		out.Issues = append(out.Issues, issueFromFieldError(fe))
	}
	return out
}

// Assign sets one field of target, addressed by either its snake_case name or its wire
// key, and validates the whole value again. If validation fails the old value is
// restored and the validation error is returned. Plain strings and integers are wrapped
// when the field is an ldvalue optional; nil leaves such a field undefined.
func Assign(target Schema, field string, value any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("schema: Assign requires a pointer to a struct, got %T", target)
	}
	wire, ok := target.Fields().Wire(field)
	if !ok {
		return fmt.Errorf("schema: %T has no field %q", target, field)
	}
	idx, ok := wireIndex(rv.Elem().Type())[wire]
	if !ok {
		return fmt.Errorf("schema: %T does not map wire key %q", target, wire)
	}
	fv := rv.Elem().Field(idx)
	nv := reflect.ValueOf(value)
	switch {
	case !nv.IsValid() && isOptional(fv.Type()):
		nv = reflect.Zero(fv.Type())
	case !nv.IsValid():
		return &Error{Type: typeName(rv.Elem().Interface()), Issues: []Issue{
			{Field: wire, Kind: KindType, Message: "Input should not be null"},
		}}
	case nv.Type().AssignableTo(fv.Type()):
	case fv.Type() == optionalStringType && nv.Kind() == reflect.String:
		nv = reflect.ValueOf(ldvalue.NewOptionalString(nv.String()))
	case fv.Type() == optionalIntType && isInteger(nv.Kind()):
		nv = reflect.ValueOf(ldvalue.NewOptionalInt(int(nv.Int())))
	case isInteger(nv.Kind()) && isInteger(fv.Kind()):
		nv = nv.Convert(fv.Type())
	default:
		return &Error{Type: typeName(rv.Elem().Interface()), Issues: []Issue{
			{Field: wire, Kind: KindType, Message: fmt.Sprintf("expected %s, got %s", fv.Type(), nv.Type())},
		}}
	}
	old := reflect.New(fv.Type()).Elem()
	old.Set(fv)
	fv.Set(nv)
	if err := Validate(target); err != nil {
		fv.Set(old)
		return err
	}
	return nil
}

// decodeObject is the UnmarshalJSON body shared by all schema types. It accepts each
// field under its wire key or its snake_case name, reports absent required keys, and
// decodes field by field so that nested failures carry their full path.
func decodeObject(data []byte, fields Fields, target any) error {
	rv := reflect.ValueOf(target).Elem()
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &Error{Issues: []Issue{{Kind: KindType, Message: "Input should be a valid object"}}}
	}
	if raw == nil {
		return &Error{Issues: []Issue{{Kind: KindType, Message: "Input should be a valid object"}}}
	}
	index := wireIndex(rv.Type())
	var issues []Issue
	for _, f := range fields.order {
		value, ok := raw[f.Wire]
		if !ok {
			value, ok = raw[f.Name]
		}
		if !ok {
			if !f.Optional {
				issues = append(issues, Issue{Field: f.Wire, Kind: KindMissing, Message: "Field required"})
			}
			continue
		}
		i, ok := index[f.Wire]
		if !ok {
			continue
		}
		fv := rv.Field(i)
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) && !f.Optional && !acceptsNull(fv.Type()) {
			issues = append(issues, Issue{Field: f.Wire, Kind: KindType, Message: "Input should not be null"})
			continue
		}
		if err := json.Unmarshal(value, fv.Addr().Interface()); err != nil {
			issues = append(issues, issuesFrom(f.Wire, err)...)
			continue
		}
		if fv.Kind() == reflect.Slice && fv.Len() == 0 {
			fv.Set(reflect.Zero(fv.Type()))
		}
	}
	if len(issues) > 0 {
		return &Error{Issues: issues}
	}
	return nil
}

var valueType = reflect.TypeOf(ldvalue.Value{})

func acceptsNull(t reflect.Type) bool {
	return t == valueType
}

func issuesFrom(prefix string, err error) []Issue {
	var schemaErr *Error
	if errors.As(err, &schemaErr) {
		out := make([]Issue, 0, len(schemaErr.Issues))
		for _, is := range schemaErr.Issues {
			is.Field = joinPath(prefix, is.Field)
			out = append(out, is)
		}
		return out
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []Issue{{
			Field:   joinPath(prefix, typeErr.Field),
			Kind:    KindType,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}}
	}
	return []Issue{{Field: prefix, Kind: KindType, Message: err.Error()}}
}

func withType(name string, issues []Issue) *Error {
	return &Error{Type: name, Issues: issues}
}

func joinPath(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	default:
		return prefix + "." + field
	}
}

func issueFromFieldError(fe validator.FieldError) Issue {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return Issue{Field: path, Kind: KindMissing, Message: "Field required"}
	case "min":
		if fe.Kind() == reflect.String {
			return Issue{Field: path, Kind: KindTooShort,
				Message: fmt.Sprintf("String should have at least %s character", fe.Param())}
		}
		return Issue{Field: path, Kind: KindInvalid,
			Message: fmt.Sprintf("Input should be greater than or equal to %s", fe.Param())}
	case "uuid", "uuid4", "url", "email":
		return Issue{Field: path, Kind: KindFormat, Message: fmt.Sprintf("Input should be a valid %s", fe.Tag())}
	default:
		return Issue{Field: path, Kind: KindInvalid, Message: fmt.Sprintf("failed on the %q rule", fe.Tag())}
	}
}

var (
	optionalStringType = reflect.TypeOf(ldvalue.OptionalString{})
	optionalIntType    = reflect.TypeOf(ldvalue.OptionalInt{})
)

func isOptional(t reflect.Type) bool {
	return t == optionalStringType || t == optionalIntType
}

func trimStrings(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(strings.TrimSpace(v.String()))
		}
	case reflect.Struct:
		if v.Type() == optionalStringType {
			if s, ok := v.Interface().(ldvalue.OptionalString).Get(); ok && v.CanSet() {
				v.Set(reflect.ValueOf(ldvalue.NewOptionalString(strings.TrimSpace(s))))
			}
			return
		}
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				trimStrings(v.Field(i))
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			trimStrings(v.Index(i))
		}
	}
}

var wireIndexes sync.Map // reflect.Type -> map[string]int

func wireIndex(t reflect.Type) map[string]int {
	if cached, ok := wireIndexes.Load(t); ok {
		return cached.(map[string]int)
	}
	index := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if name != "" && name != "-" {
			index[name] = i
		}
	}
	wireIndexes.Store(t, index)
	return index
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}
