package schema

import (
	"encoding/json"

	"github.com/coursesqa/courses-api-tests/fakers"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type Exercise struct {
	ID            string `json:"id" validate:"uuid"`
	Title         string `json:"title"`
	CourseID      string `json:"courseId" validate:"uuid"`
	MaxScore      int    `json:"maxScore"`
	MinScore      int    `json:"minScore"`
	OrderIndex    int    `json:"orderIndex"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimatedTime"`
}

var exerciseFields = CamelFields(
	"id", "title", "course_id", "max_score", "min_score", "order_index", "description", "estimated_time",
)

func (Exercise) Fields() Fields { return exerciseFields }

func (e *Exercise) UnmarshalJSON(data []byte) error {
	type plain Exercise
	return decodeObject(data, exerciseFields, (*plain)(e))
}

// GetExercisesQuery is the query string of GET /api/v1/exercises.
type GetExercisesQuery struct {
	CourseID string `json:"courseId"`
}

var getExercisesQueryFields = CamelFields("course_id")

func (GetExercisesQuery) Fields() Fields { return getExercisesQueryFields }

func (q *GetExercisesQuery) UnmarshalJSON(data []byte) error {
	type plain GetExercisesQuery
	return decodeObject(data, getExercisesQueryFields, (*plain)(q))
}

type GetExercisesResponse struct {
	Exercises []Exercise `json:"exercises" validate:"dive"`
}

var getExercisesResponseFields = CamelFields("exercises")

func (GetExercisesResponse) Fields() Fields { return getExercisesResponseFields }

func (r *GetExercisesResponse) UnmarshalJSON(data []byte) error {
	type plain GetExercisesResponse
	return decodeObject(data, getExercisesResponseFields, (*plain)(r))
}

func (r GetExercisesResponse) MarshalJSON() ([]byte, error) {
	type plain GetExercisesResponse
	r.Exercises = nonNil(r.Exercises)
	return json.Marshal(plain(r))
}

type GetExerciseResponse struct {
	Exercise Exercise `json:"exercise"`
}

var exerciseEnvelopeFields = CamelFields("exercise")

func (GetExerciseResponse) Fields() Fields { return exerciseEnvelopeFields }

func (r *GetExerciseResponse) UnmarshalJSON(data []byte) error {
	type plain GetExerciseResponse
	return decodeObject(data, exerciseEnvelopeFields, (*plain)(r))
}

// CreateExerciseRequest is the body of POST /api/v1/exercises.
type CreateExerciseRequest struct {
	Title         string `json:"title"`
	CourseID      string `json:"courseId"`
	MaxScore      int    `json:"maxScore"`
	MinScore      int    `json:"minScore"`
	OrderIndex    int    `json:"orderIndex"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimatedTime"`
}

var createExerciseRequestFields = CamelFields(
	"title", "course_id", "max_score", "min_score", "order_index", "description", "estimated_time",
)

func (CreateExerciseRequest) Fields() Fields { return createExerciseRequestFields }

func (r *CreateExerciseRequest) UnmarshalJSON(data []byte) error {
	type plain CreateExerciseRequest
	return decodeObject(data, createExerciseRequestFields, (*plain)(r))
}

// NewCreateExerciseRequest returns overrides with every zero field filled by fake.
func NewCreateExerciseRequest(fake *fakers.Fake, overrides CreateExerciseRequest) (CreateExerciseRequest, error) {
	r := overrides
	fill(&r.Title, fake.Sentence)
	fill(&r.CourseID, fake.UUID4)
	fillInt(&r.MaxScore, fake.MaxScore)
	fillInt(&r.MinScore, fake.MinScore)
	fillInt(&r.OrderIndex, func() int { return fake.Integer(1, 100) })
	fill(&r.Description, fake.Text)
	fill(&r.EstimatedTime, fake.EstimatedTime)
	if err := Validate(&r); err != nil {
		return r, err
	}
	return r, nil
}

type CreateExerciseResponse struct {
	Exercise Exercise `json:"exercise"`
}

func (CreateExerciseResponse) Fields() Fields { return exerciseEnvelopeFields }

func (r *CreateExerciseResponse) UnmarshalJSON(data []byte) error {
	type plain CreateExerciseResponse
	return decodeObject(data, exerciseEnvelopeFields, (*plain)(r))
}

// UpdateExerciseRequest is the body of PATCH /api/v1/exercises/{exercise_id}. An exercise
// cannot be moved to another course.
type UpdateExerciseRequest struct {
	Title         ldvalue.OptionalString `json:"title"`
	MaxScore      ldvalue.OptionalInt    `json:"maxScore"`
	MinScore      ldvalue.OptionalInt    `json:"minScore"`
	OrderIndex    ldvalue.OptionalInt    `json:"orderIndex"`
	Description   ldvalue.OptionalString `json:"description"`
	EstimatedTime ldvalue.OptionalString `json:"estimatedTime"`
}

var updateExerciseRequestFields = OptionalCamelFields(
	"title", "max_score", "min_score", "order_index", "description", "estimated_time",
)

func (UpdateExerciseRequest) Fields() Fields { return updateExerciseRequestFields }

func (r *UpdateExerciseRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateExerciseRequest
	return decodeObject(data, updateExerciseRequestFields, (*plain)(r))
}

func NewUpdateExerciseRequest(fake *fakers.Fake, overrides UpdateExerciseRequest) (UpdateExerciseRequest, error) {
	r := overrides
	fillOptional(&r.Title, fake.Sentence)
	fillOptionalInt(&r.MaxScore, fake.MaxScore)
	fillOptionalInt(&r.MinScore, fake.MinScore)
	fillOptionalInt(&r.OrderIndex, func() int { return fake.Integer(1, 100) })
	fillOptional(&r.Description, fake.Text)
	fillOptional(&r.EstimatedTime, fake.EstimatedTime)
	if err := Validate(&r); err != nil {
		return r, err
	}
	return r, nil
}

type UpdateExerciseResponse struct {
	Exercise Exercise `json:"exercise"`
}

func (UpdateExerciseResponse) Fields() Fields { return exerciseEnvelopeFields }

func (r *UpdateExerciseResponse) UnmarshalJSON(data []byte) error {
	type plain UpdateExerciseResponse
	return decodeObject(data, exerciseEnvelopeFields, (*plain)(r))
}
