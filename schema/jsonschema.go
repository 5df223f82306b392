package schema

import (
	"reflect"
	"strconv"
	"strings"
)

const jsonSchemaDraft = "https://json-schema.org/draft/2020-12/schema"

// JSONSchema describes the wire form of v as a JSON Schema (draft 2020-12) document. Keys
// come from the Fields tables, so optional fields are the only ones left out of "required",
// and the uuid, url, email and min validation rules become format and minLength keywords.
func JSONSchema(v Schema) map[string]any {
	doc := typeSchema(reflect.TypeOf(v))
	doc["$schema"] = jsonSchemaDraft
	doc["title"] = typeName(v)
	return doc
}

func typeSchema(t reflect.Type) map[string]any {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t {
	case valueType:
		return map[string]any{}
	case optionalStringType:
		return map[string]any{"type": []string{"string", "null"}}
	case optionalIntType:
		return map[string]any{"type": []string{"integer", "null"}}
	}
	switch t.Kind() {
	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.Slice, reflect.Array:
		return map[string]any{"type": "array", "items": typeSchema(t.Elem())}
	case reflect.Map:
		return map[string]any{"type": "object", "additionalProperties": typeSchema(t.Elem())}
	case reflect.Struct:
		return objectSchema(t)
	}
	if isInteger(t.Kind()) {
		return map[string]any{"type": "integer"}
	}
	return map[string]any{}
}

func objectSchema(t reflect.Type) map[string]any {
	var fields Fields
	if s, ok := reflect.New(t).Interface().(Schema); ok {
		fields = s.Fields()
	}
	optional := make(map[string]bool)
	for _, f := range fields.All() {
		optional[f.Wire] = f.Optional
	}

	properties := make(map[string]any)
	required := []string{}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		wire := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if !sf.IsExported() || wire == "" || wire == "-" {
			continue
		}
		p := typeSchema(sf.Type)
		applyRules(p, sf.Tag.Get("validate"))
		if optional[wire] {
			p = map[string]any{"anyOf": []any{p, map[string]any{"type": "null"}}}
		} else {
			required = append(required, wire)
		}
		properties[wire] = p
	}
	return map[string]any{"type": "object", "properties": properties, "required": required}
}

func applyRules(p map[string]any, tag string) {
	if tag == "" {
		return
	}
	for _, rule := range strings.Split(tag, ",") {
		name, param, _ := strings.Cut(rule, "=")
		switch name {
		case "uuid", "uuid4":
			p["format"] = "uuid"
		case "email":
			p["format"] = "email"
		case "url":
			p["format"] = "uri"
		case "min":
			if n, err := strconv.Atoi(param); err == nil && p["type"] == "string" {
				p["minLength"] = n
			}
		}
	}
}
