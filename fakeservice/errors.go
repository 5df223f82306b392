package fakeservice

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/coursesqa/courses-api-tests/schema"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	data, err := schema.Encode(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, schema.InternalErrorResponse{Details: detail})
}

func writeNotFound(w http.ResponseWriter, what string) {
	writeDetail(w, http.StatusNotFound, what+" not found")
}

func writeValidationErrors(w http.ResponseWriter, details ...schema.ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, schema.ValidationErrorResponse{Details: details})
}

// decodeBody parses a JSON request body. On failure it writes a 422 response and returns
// false.
func decodeBody[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var zero T
		writeDetail(w, http.StatusBadRequest, "Unreadable request body")
		return zero, false
	}
	v, err := schema.Decode[T](body)
	if err != nil {
		writeValidationErrors(w, bodyErrors(body, err)...)
		return v, false
	}
	return v, true
}

func bodyErrors(body []byte, err error) []schema.ValidationError {
	var schemaErr *schema.Error
	if !errors.As(err, &schemaErr) {
		return []schema.ValidationError{{
			Type: "json_invalid", Input: ldvalue.Null(), Message: "JSON decode error", Location: []string{"body"},
		}}
	}
	input := ldvalue.Parse(body)
	out := make([]schema.ValidationError, 0, len(schemaErr.Issues))
	for _, is := range schemaErr.Issues {
		loc := []string{"body"}
		if is.Field != "" {
			loc = append(loc, strings.Split(is.Field, ".")...)
		}
		switch is.Kind {
		case schema.KindMalformed:
			out = append(out, schema.ValidationError{
				Type: "json_invalid", Input: ldvalue.Null(), Message: "JSON decode error", Location: loc,
			})
		case schema.KindMissing:
			out = append(out, schema.ValidationError{
				Type: "missing", Input: input, Message: "Field required", Location: loc,
			})
		default:
			out = append(out, schema.ValidationError{
				Type: "type_error", Input: input, Message: is.Message, Location: loc,
			})
		}
	}
	return out
}

func stringTooShort(loc []string, input string, minLength int) schema.ValidationError {
	msg := "String should have at least 1 character"
	if minLength != 1 {
		msg = "String should have at least " + strconv.Itoa(minLength) + " characters"
	}
	return schema.ValidationError{
		Type:     "string_too_short",
		Input:    ldvalue.String(input),
		Context:  map[string]ldvalue.Value{"min_length": ldvalue.Int(minLength)},
		Message:  msg,
		Location: loc,
	}
}

func invalidEmail(input string) schema.ValidationError {
	return schema.ValidationError{
		Type:     "value_error",
		Input:    ldvalue.String(input),
		Context:  map[string]ldvalue.Value{"reason": ldvalue.String("The email address is not valid.")},
		Message:  "value is not a valid email address: The email address is not valid.",
		Location: []string{"body", "email"},
	}
}

// checkEmail reports whether value is a well-formed address. It is the one body rule the
// typed request schemas do not carry themselves.
func checkEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

// parseID parses a UUID path parameter. On failure it writes a 422 response in the shape
// the real service produces and returns false.
func parseID(w http.ResponseWriter, param, value string) (string, bool) {
	id, err := uuid.Parse(value)
	if err != nil {
		reason := uuidParsingReason(value)
		writeValidationErrors(w, schema.ValidationError{
			Type:     "uuid_parsing",
			Input:    ldvalue.String(value),
			Context:  map[string]ldvalue.Value{"error": ldvalue.String(reason)},
			Message:  "Input should be a valid UUID, " + reason,
			Location: []string{"path", param},
		})
		return "", false
	}
	return id.String(), true
}

func uuidParsingReason(value string) string {
	for i, c := range value {
		if !isUUIDChar(c) {
			return "invalid character: expected an optional prefix of `urn:uuid:` followed by [0-9a-fA-F-], " +
				"found `" + string(c) + "` at " + strconv.Itoa(i+1)
		}
	}
	return "invalid length: expected length 32 for simple format, found " + strconv.Itoa(len(value))
}

func isUUIDChar(c rune) bool {
	return c == '-' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
