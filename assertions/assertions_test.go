package assertions

import (
	"testing"

	"github.com/coursesqa/courses-api-tests/framework"
	"github.com/coursesqa/courses-api-tests/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func runOne(t *testing.T, action func(*framework.Context)) framework.TestResult {
	results := framework.Run(nil, nil, func(c *framework.Context) {
		c.Run("case", action)
	})
	result, ok := results.Find("case")
	require.True(t, ok)
	return result
}

func errorText(r framework.TestResult) string {
	s := ""
	for _, e := range r.Errors {
		s += e.Error() + "\n"
	}
	return s
}

type recordingStepper struct {
	*framework.Context
	titles []string
}

func (s *recordingStepper) Step(title string, action func()) {
	s.titles = append(s.titles, title)
	action()
}

func TestAssertEqualPasses(t *testing.T) {
	r := runOne(t, func(c *framework.Context) {
		AssertEqual(c, 5, 5, "x")
	})
	assert.Len(t, r.Errors, 0)
}

func TestAssertEqualFailureNamesFieldAndValues(t *testing.T) {
	reached := false
	r := runOne(t, func(c *framework.Context) {
		AssertEqual(c, 5, 6, "x")
		reached = true
	})
	require.Len(t, r.Errors, 1)
	assert.False(t, reached)
	msg := errorText(r)
	assert.Contains(t, msg, `"x"`)
	assert.Contains(t, msg, "Expected: 6")
	assert.Contains(t, msg, "Actual: 5")
}

func TestAssertEqualComparesLDValues(t *testing.T) {
	r := runOne(t, func(c *framework.Context) {
		AssertEqual(c, ldvalue.Parse([]byte(`{"a":1}`)), ldvalue.ObjectBuild().Set("a", ldvalue.Int(1)).Build(), "v")
	})
	assert.Len(t, r.Errors, 0)
}

func TestAssertStatusCode(t *testing.T) {
	assert.Len(t, runOne(t, func(c *framework.Context) { AssertStatusCode(c, 200, 200) }).Errors, 0)
	r := runOne(t, func(c *framework.Context) { AssertStatusCode(c, 404, 200) })
	require.Len(t, r.Errors, 1)
	assert.Contains(t, errorText(r), "Expected: 200. Actual: 404")
}

func TestAssertIsTrue(t *testing.T) {
	assert.Len(t, runOne(t, func(c *framework.Context) { AssertIsTrue(c, "token", "access_token") }).Errors, 0)
	assert.Len(t, runOne(t, func(c *framework.Context) { AssertIsTrue(c, "", "access_token") }).Errors, 1)
	assert.Len(t, runOne(t, func(c *framework.Context) { AssertIsTrue(c, nil, "access_token") }).Errors, 1)
}

func TestAssertLengthMismatch(t *testing.T) {
	r := runOne(t, func(c *framework.Context) {
		AssertLength(c, []int{1, 2, 3}, []string{"a", "b"}, "items")
	})
	require.Len(t, r.Errors, 1)
	assert.Contains(t, errorText(r), "Expected: 2. Actual: 3")
}

func sampleCourse() (schema.CreateCourseRequest, schema.CreateCourseResponse) {
	request := schema.CreateCourseRequest{
		Title:           "Playwright",
		MaxScore:        100,
		MinScore:        10,
		Description:     "Playwright course",
		EstimatedTime:   "2 weeks",
		PreviewFileID:   "7c1f0a5e-1f6b-4f0e-9b51-54d7f5cf2b11",
		CreatedByUserID: "a3c1b1d2-6a1e-4c59-9d8f-0f9e2a3c4b5d",
	}
	response := schema.CreateCourseResponse{Course: schema.Course{
		ID:            "0f0c6a34-2b7c-4a3e-8d2c-7b9d0c1e2f3a",
		Title:         request.Title,
		MaxScore:      request.MaxScore,
		MinScore:      request.MinScore,
		Description:   request.Description,
		EstimatedTime: request.EstimatedTime,
		PreviewFile: schema.File{
			ID:        request.PreviewFileID,
			URL:       "http://localhost:8000/static/tests/image.png",
			Filename:  "image.png",
			Directory: "tests",
		},
		CreatedByUser: schema.User{
			ID:        request.CreatedByUserID,
			Email:     "user@example.com",
			LastName:  "Doe",
			FirstName: "John",
		},
	}}
	return request, response
}

func TestAssertCreateCourseResponse(t *testing.T) {
	request, response := sampleCourse()
	assert.Len(t, runOne(t, func(c *framework.Context) {
		AssertCreateCourseResponse(c, request, response)
	}).Errors, 0)

	response.Course.Title = "Selenium"
	r := runOne(t, func(c *framework.Context) {
		AssertCreateCourseResponse(c, request, response)
	})
	require.Len(t, r.Errors, 1)
	assert.Contains(t, errorText(r), `"title"`)
}

func TestAssertGetCoursesResponseChecksLengthFirst(t *testing.T) {
	_, created := sampleCourse()
	r := runOne(t, func(c *framework.Context) {
		AssertGetCoursesResponse(c, schema.GetCoursesResponse{}, []schema.CreateCourseResponse{created})
	})
	require.Len(t, r.Errors, 1)
	assert.Contains(t, errorText(r), `"courses"`)

	r = runOne(t, func(c *framework.Context) {
		AssertGetCoursesResponse(c, schema.GetCoursesResponse{Courses: []schema.Course{created.Course}},
			[]schema.CreateCourseResponse{created})
	})
	assert.Len(t, r.Errors, 0)
}

func TestAssertUpdateCourseResponseIgnoresUndefinedFields(t *testing.T) {
	_, created := sampleCourse()
	request := schema.UpdateCourseRequest{Title: ldvalue.NewOptionalString(created.Course.Title)}
	response := schema.UpdateCourseResponse{Course: created.Course}
	response.Course.Description = "changed elsewhere"
	assert.Len(t, runOne(t, func(c *framework.Context) {
		AssertUpdateCourseResponse(c, request, response)
	}).Errors, 0)

	request.Description = ldvalue.NewOptionalString("expected")
	assert.Len(t, runOne(t, func(c *framework.Context) {
		AssertUpdateCourseResponse(c, request, response)
	}).Errors, 1)
}

func TestAssertCreateFileWithEmptyFilenameResponse(t *testing.T) {
	body := []byte(`{"detail":[{"type":"string_too_short","loc":["body","filename"],` +
		`"msg":"String should have at least 1 character","input":"","ctx":{"min_length":1}}]}`)
	r := runOne(t, func(c *framework.Context) {
		response := AssertSchema[schema.ValidationErrorResponse](c, body)
		AssertCreateFileWithEmptyFilenameResponse(c, response)
	})
	assert.Len(t, r.Errors, 0)

	r = runOne(t, func(c *framework.Context) {
		response := AssertSchema[schema.ValidationErrorResponse](c, body)
		AssertCreateFileWithEmptyDirectoryResponse(c, response)
	})
	require.Len(t, r.Errors, 1)
	assert.Contains(t, errorText(r), `"location"`)
}

func TestAssertGetFileWithIncorrectFileIDResponse(t *testing.T) {
	body := []byte(`{"detail":[{"type":"uuid_parsing","loc":["path","file_id"],` +
		`"msg":"Input should be a valid UUID, invalid character: expected an optional prefix of ` +
		"`urn:uuid:` followed by [0-9a-fA-F-], found `i` at 1\"," +
		`"input":"incorrect-file-id","ctx":{"error":"invalid character: expected an optional prefix of ` +
		"`urn:uuid:` followed by [0-9a-fA-F-], found `i` at 1\"}}]}")
	r := runOne(t, func(c *framework.Context) {
		response := AssertSchema[schema.ValidationErrorResponse](c, body)
		AssertGetFileWithIncorrectFileIDResponse(c, response)
	})
	assert.Len(t, r.Errors, 0)
}

func TestAssertNotFoundResponses(t *testing.T) {
	r := runOne(t, func(c *framework.Context) {
		AssertFileNotFoundResponse(c, schema.InternalErrorResponse{Details: "File not found"})
		AssertCourseNotFoundResponse(c, schema.InternalErrorResponse{Details: "Course not found"})
		AssertExerciseNotFoundResponse(c, schema.InternalErrorResponse{Details: "Exercise not found"})
	})
	assert.Len(t, r.Errors, 0)

	r = runOne(t, func(c *framework.Context) {
		AssertCourseNotFoundResponse(c, schema.InternalErrorResponse{Details: "File not found"})
	})
	assert.Len(t, r.Errors, 1)
}

func TestAssertSchemaFailsOnMissingField(t *testing.T) {
	r := runOne(t, func(c *framework.Context) {
		AssertSchema[schema.LoginResponse](c, []byte(`{"token":{"tokenType":"bearer","accessToken":"a"}}`))
	})
	require.Len(t, r.Errors, 1)
	assert.Contains(t, errorText(r), "LoginResponse")
}

func TestAssertSchemaChecksJSONSchemaFormats(t *testing.T) {
	valid := []byte(`{"file":{"id":"7b7c0c55-9a43-4f5e-a0f2-3c8b1de4a0c2",` +
		`"url":"http://localhost:8000/static/tests/image.png","filename":"image.png","directory":"tests"}}`)
	r := runOne(t, func(c *framework.Context) {
		got := AssertSchema[schema.GetFileResponse](c, valid)
		AssertEqual(c, got.File.Filename, "image.png", "filename")
	})
	assert.Len(t, r.Errors, 0)

	badID := []byte(`{"file":{"id":"not-a-uuid","url":"http://localhost:8000/static/tests/image.png",` +
		`"filename":"image.png","directory":"tests"}}`)
	r = runOne(t, func(c *framework.Context) {
		AssertSchema[schema.GetFileResponse](c, badID)
	})
	require.Len(t, r.Errors, 1)
	assert.Contains(t, errorText(r), "GetFileResponse JSON schema")

	wrongType := []byte(`{"exercises":[{"id":"e9d8c7b6-a5f4-4e3d-8c2b-1a0f9e8d7c6b","title":"Task",` +
		`"courseId":"c2a6b8f4-5e1d-4c3b-8a9f-6d2e1f0b7c3a","maxScore":"ten","minScore":1,"orderIndex":1,` +
		`"description":"d","estimatedTime":"1 week"}]}`)
	r = runOne(t, func(c *framework.Context) {
		AssertSchema[schema.GetExercisesResponse](c, wrongType)
	})
	require.Len(t, r.Errors, 1)
	assert.Contains(t, errorText(r), "JSON schema")
}

func TestAssertJSONSchemaRejectsNonJSON(t *testing.T) {
	r := runOne(t, func(c *framework.Context) {
		AssertJSONSchema(c, []byte(`<html>`), schema.JSONSchema(schema.InternalErrorResponse{}))
	})
	require.Len(t, r.Errors, 1)
	assert.Contains(t, errorText(r), "not valid JSON")
}

func TestAssertLoginResponse(t *testing.T) {
	ok := schema.LoginResponse{Token: schema.Token{TokenType: "bearer", AccessToken: "a", RefreshToken: "r"}}
	assert.Len(t, runOne(t, func(c *framework.Context) { AssertLoginResponse(c, ok) }).Errors, 0)

	noRefresh := ok
	noRefresh.Token.RefreshToken = ""
	assert.Len(t, runOne(t, func(c *framework.Context) { AssertLoginResponse(c, noRefresh) }).Errors, 1)
}

func TestAssertionsReportStepsToStepper(t *testing.T) {
	var s *recordingStepper
	runOne(t, func(c *framework.Context) {
		s = &recordingStepper{Context: c}
		AssertInternalErrorResponse(s, schema.InternalErrorResponse{Details: "x"}, schema.InternalErrorResponse{Details: "x"})
	})
	assert.Equal(t, []string{
		"Check internal error response",
		`Check that "details" equals x`,
	}, s.titles)
}
