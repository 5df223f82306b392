package schema

import (
	"encoding/json"

	"github.com/coursesqa/courses-api-tests/fakers"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Course owns snapshots of its preview file and its author, exactly as the server embeds
// them.
type Course struct {
	ID            string `json:"id" validate:"uuid"`
	Title         string `json:"title"`
	MaxScore      int    `json:"maxScore"`
	MinScore      int    `json:"minScore"`
	Description   string `json:"description"`
	PreviewFile   File   `json:"previewFile"`
	EstimatedTime string `json:"estimatedTime"`
	CreatedByUser User   `json:"createdByUser"`
}

var courseFields = CamelFields(
	"id", "title", "max_score", "min_score", "description", "preview_file", "estimated_time", "created_by_user",
)

func (Course) Fields() Fields { return courseFields }

func (c *Course) UnmarshalJSON(data []byte) error {
	type plain Course
	return decodeObject(data, courseFields, (*plain)(c))
}

// GetCoursesQuery is the query string of GET /api/v1/courses.
type GetCoursesQuery struct {
	UserID string `json:"userId"`
}

var getCoursesQueryFields = CamelFields("user_id")

func (GetCoursesQuery) Fields() Fields { return getCoursesQueryFields }

func (q *GetCoursesQuery) UnmarshalJSON(data []byte) error {
	type plain GetCoursesQuery
	return decodeObject(data, getCoursesQueryFields, (*plain)(q))
}

type GetCoursesResponse struct {
	Courses []Course `json:"courses" validate:"dive"`
}

var getCoursesResponseFields = CamelFields("courses")

func (GetCoursesResponse) Fields() Fields { return getCoursesResponseFields }

func (r *GetCoursesResponse) UnmarshalJSON(data []byte) error {
	type plain GetCoursesResponse
	return decodeObject(data, getCoursesResponseFields, (*plain)(r))
}

func (r GetCoursesResponse) MarshalJSON() ([]byte, error) {
	type plain GetCoursesResponse
	r.Courses = nonNil(r.Courses)
	return json.Marshal(plain(r))
}

type GetCourseResponse struct {
	Course Course `json:"course"`
}

var courseEnvelopeFields = CamelFields("course")

func (GetCourseResponse) Fields() Fields { return courseEnvelopeFields }

func (r *GetCourseResponse) UnmarshalJSON(data []byte) error {
	type plain GetCourseResponse
	return decodeObject(data, courseEnvelopeFields, (*plain)(r))
}

// CreateCourseRequest is the body of POST /api/v1/courses.
type CreateCourseRequest struct {
	Title           string `json:"title"`
	MaxScore        int    `json:"maxScore"`
	MinScore        int    `json:"minScore"`
	Description     string `json:"description"`
	EstimatedTime   string `json:"estimatedTime"`
	PreviewFileID   string `json:"previewFileId"`
	CreatedByUserID string `json:"createdByUserId"`
}

var createCourseRequestFields = CamelFields(
	"title", "max_score", "min_score", "description", "estimated_time", "preview_file_id", "created_by_user_id",
)

func (CreateCourseRequest) Fields() Fields { return createCourseRequestFields }

func (r *CreateCourseRequest) UnmarshalJSON(data []byte) error {
	type plain CreateCourseRequest
	return decodeObject(data, createCourseRequestFields, (*plain)(r))
}

// NewCreateCourseRequest returns overrides with every zero field filled by fake. The result
// is trimmed and validated before it is returned. Tests normally override PreviewFileID and
// CreatedByUserID with real fixture ids.
func NewCreateCourseRequest(fake *fakers.Fake, overrides CreateCourseRequest) (CreateCourseRequest, error) {
	r := overrides
	fill(&r.Title, fake.Sentence)
	fillInt(&r.MaxScore, fake.MaxScore)
	fillInt(&r.MinScore, fake.MinScore)
	fill(&r.Description, fake.Text)
	fill(&r.EstimatedTime, fake.EstimatedTime)
	fill(&r.PreviewFileID, fake.UUID4)
	fill(&r.CreatedByUserID, fake.UUID4)
	if err := Validate(&r); err != nil {
		return r, err
	}
	return r, nil
}

type CreateCourseResponse struct {
	Course Course `json:"course"`
}

func (CreateCourseResponse) Fields() Fields { return courseEnvelopeFields }

func (r *CreateCourseResponse) UnmarshalJSON(data []byte) error {
	type plain CreateCourseResponse
	return decodeObject(data, courseEnvelopeFields, (*plain)(r))
}

// UpdateCourseRequest is the body of PATCH /api/v1/courses/{course_id}. The preview file and
// the author cannot be changed.
type UpdateCourseRequest struct {
	Title         ldvalue.OptionalString `json:"title"`
	MaxScore      ldvalue.OptionalInt    `json:"maxScore"`
	MinScore      ldvalue.OptionalInt    `json:"minScore"`
	Description   ldvalue.OptionalString `json:"description"`
	EstimatedTime ldvalue.OptionalString `json:"estimatedTime"`
}

var updateCourseRequestFields = OptionalCamelFields(
	"title", "max_score", "min_score", "description", "estimated_time",
)

func (UpdateCourseRequest) Fields() Fields { return updateCourseRequestFields }

func (r *UpdateCourseRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateCourseRequest
	return decodeObject(data, updateCourseRequestFields, (*plain)(r))
}

func NewUpdateCourseRequest(fake *fakers.Fake, overrides UpdateCourseRequest) (UpdateCourseRequest, error) {
	r := overrides
	fillOptional(&r.Title, fake.Sentence)
	fillOptionalInt(&r.MaxScore, fake.MaxScore)
	fillOptionalInt(&r.MinScore, fake.MinScore)
	fillOptional(&r.Description, fake.Text)
	fillOptional(&r.EstimatedTime, fake.EstimatedTime)
	if err := Validate(&r); err != nil {
		return r, err
	}
	return r, nil
}

type UpdateCourseResponse struct {
	Course Course `json:"course"`
}

func (UpdateCourseResponse) Fields() Fields { return courseEnvelopeFields }

func (r *UpdateCourseResponse) UnmarshalJSON(data []byte) error {
	type plain UpdateCourseResponse
	return decodeObject(data, courseEnvelopeFields, (*plain)(r))
}
