package assertions

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/coursesqa/courses-api-tests/schema"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/require"
)

const jsonSchemaResource = "response.json"

// AssertJSONSchema fails unless body is JSON that satisfies the given JSON Schema document.
// Format keywords such as uuid, uri and email are asserted, not just annotated.
func AssertJSONSchema(t TestingT, body []byte, document map[string]any) {
	title, _ := document["title"].(string)
	step(t, "Check that the response matches the JSON schema", func() {
		if err := validateJSONSchema(body, document); err != nil {
			require.Fail(t, fmt.Sprintf("Response does not match the %s JSON schema: %s", title, err))
		}
	})
}

func validateJSONSchema(body []byte, document map[string]any) error {
	raw, err := json.Marshal(document)
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	c := jsonschema.NewCompiler()
	c.AssertFormat()
	if err := c.AddResource(jsonSchemaResource, doc); err != nil {
		return err
	}
	compiled, err := c.Compile(jsonSchemaResource)
	if err != nil {
		return err
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("body is not valid JSON: %w", err)
	}
	return compiled.Validate(instance)
}

// AssertSchema fails unless body satisfies the JSON Schema of T, decodes into T and passes
// T's validation rules. It returns the decoded value.
func AssertSchema[T any](t TestingT, body []byte) T {
	var out T
	step(t, fmt.Sprintf("Check that the response matches the %T schema", out), func() {
		if s, ok := any(out).(schema.Schema); ok {
			AssertJSONSchema(t, body, schema.JSONSchema(s))
		}
		v, err := schema.Decode[T](body)
		if err != nil {
			require.Fail(t, fmt.Sprintf("Response does not match the %T schema: %s", out, err))
		}
		out = v
	})
	return out
}
