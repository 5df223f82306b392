package assertions

import (
	"fmt"

	"github.com/coursesqa/courses-api-tests/schema"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func AssertValidationError(t TestingT, actual, expected schema.ValidationError) {
	step(t, "Check validation error", func() {
		AssertEqual(t, actual.Type, expected.Type, "type")
		AssertEqual(t, actual.Input, expected.Input, "input")
		AssertEqual(t, contextValue(actual.Context), contextValue(expected.Context), "context")
		AssertEqual(t, actual.Message, expected.Message, "message")
		AssertEqual(t, actual.Location, expected.Location, "location")
	})
}

func contextValue(ctx map[string]ldvalue.Value) ldvalue.Value {
	if ctx == nil {
		return ldvalue.Null()
	}
	b := ldvalue.ObjectBuild()
	for k, v := range ctx {
		b.Set(k, v)
	}
	return b.Build()
}

func AssertValidationErrorResponse(t TestingT, actual, expected schema.ValidationErrorResponse) {
	step(t, "Check validation error response", func() {
		AssertLength(t, actual.Details, expected.Details, "details")
		for i := range expected.Details {
			step(t, fmt.Sprintf("Check validation error #%d", i+1), func() {
				AssertValidationError(t, actual.Details[i], expected.Details[i])
			})
		}
	})
}

func AssertInternalErrorResponse(t TestingT, actual, expected schema.InternalErrorResponse) {
	step(t, "Check internal error response", func() {
		AssertEqual(t, actual.Details, expected.Details, "details")
	})
}
