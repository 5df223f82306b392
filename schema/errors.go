package schema

import (
	"encoding/json"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ValidationError is one entry of a 422 response body. The server uses short keys here,
// so this is the one place with explicit aliases.
type ValidationError struct {
	Type     string                   `json:"type"`
	Input    ldvalue.Value            `json:"input"`
	Context  map[string]ldvalue.Value `json:"ctx,omitempty"`
	Message  string                   `json:"msg"`
	Location []string                 `json:"loc"`
}

var validationErrorFields = AliasFields(
	Field{Name: "type", Wire: "type"},
	Field{Name: "input", Wire: "input"},
	Field{Name: "context", Wire: "ctx", Optional: true},
	Field{Name: "message", Wire: "msg"},
	Field{Name: "location", Wire: "loc"},
)

func (ValidationError) Fields() Fields { return validationErrorFields }

func (e *ValidationError) UnmarshalJSON(data []byte) error {
	type plain ValidationError
	return decodeObject(data, validationErrorFields, (*plain)(e))
}

// MarshalJSON omits ctx only when it is nil, so an empty context survives a round trip.
func (e ValidationError) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type     string                    `json:"type"`
		Input    ldvalue.Value             `json:"input"`
		Context  *map[string]ldvalue.Value `json:"ctx,omitempty"`
		Message  string                    `json:"msg"`
		Location []string                  `json:"loc"`
	}
	w := wire{Type: e.Type, Input: e.Input, Message: e.Message, Location: nonNil(e.Location)}
	if e.Context != nil {
		w.Context = &e.Context
	}
	return json.Marshal(w)
}

// ValidationErrorResponse is the {"detail": [...]} body the server returns with 422.
type ValidationErrorResponse struct {
	Details []ValidationError `json:"detail"`
}

var validationErrorResponseFields = AliasFields(Field{Name: "details", Wire: "detail"})

func (ValidationErrorResponse) Fields() Fields { return validationErrorResponseFields }

func (r *ValidationErrorResponse) UnmarshalJSON(data []byte) error {
	type plain ValidationErrorResponse
	return decodeObject(data, validationErrorResponseFields, (*plain)(r))
}

func (r ValidationErrorResponse) MarshalJSON() ([]byte, error) {
	type plain ValidationErrorResponse
	r.Details = nonNil(r.Details)
	return json.Marshal(plain(r))
}

// InternalErrorResponse is the {"detail": "..."} body of non-validation errors such as 404.
type InternalErrorResponse struct {
	Details string `json:"detail"`
}

var internalErrorResponseFields = AliasFields(Field{Name: "details", Wire: "detail"})

func (InternalErrorResponse) Fields() Fields { return internalErrorResponseFields }

func (r *InternalErrorResponse) UnmarshalJSON(data []byte) error {
	type plain InternalErrorResponse
	return decodeObject(data, internalErrorResponseFields, (*plain)(r))
}
