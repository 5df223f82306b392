package apitests

import (
	"context"
	"net/http"

	"github.com/coursesqa/courses-api-tests/client"
	"github.com/coursesqa/courses-api-tests/schema"

	"github.com/stretchr/testify/require"
)

// Fixtures are created on first use within a test and removed when the test finishes.
// Removal failures are only logged: the service may already have cascaded the delete.

type UserFixture struct {
	Request  schema.CreateUserRequest
	Response schema.CreateUserResponse
}

func (f UserFixture) ID() string { return f.Response.User.ID }

type FileFixture struct {
	Request  schema.CreateFileRequest
	Response schema.CreateFileResponse
}

func (f FileFixture) ID() string { return f.Response.File.ID }

type CourseFixture struct {
	Request  schema.CreateCourseRequest
	Response schema.CreateCourseResponse
}

func (f CourseFixture) ID() string { return f.Response.Course.ID }

type ExerciseFixture struct {
	Request  schema.CreateExerciseRequest
	Response schema.CreateExerciseResponse
}

func (f ExerciseFixture) ID() string { return f.Response.Exercise.ID }

// FunctionUser returns a freshly registered user.
func (t *T) FunctionUser() UserFixture {
	if t.user == nil {
		request, err := schema.NewCreateUserRequest(t.Fake(), schema.CreateUserRequest{})
		require.NoError(t, err, "failed to build user fixture request")
		response, err := t.PublicUsersClient().CreateUser(t.Context(), request)
		require.NoError(t, err, "failed to create user fixture")
		t.user = &UserFixture{Request: request, Response: response}
		t.Defer(func() { t.cleanup("user", t.PrivateUsersClient().DeleteUserAPI, response.User.ID) })
	}
	return *t.user
}

// FunctionFile returns a freshly uploaded copy of the configured PNG file.
func (t *T) FunctionFile() FileFixture {
	if t.file == nil {
		request, err := schema.NewCreateFileRequest(t.Fake(), schema.CreateFileRequest{
			UploadFile: t.env.Config.TestData.ImagePNGFile,
		})
		require.NoError(t, err, "failed to build file fixture request")
		response, err := t.FilesClient().CreateFile(t.Context(), request)
		require.NoError(t, err, "failed to create file fixture")
		t.file = &FileFixture{Request: request, Response: response}
		t.Defer(func() { t.cleanup("file", t.FilesClient().DeleteFileAPI, response.File.ID) })
	}
	return *t.file
}

// FunctionCourse returns a course created by FunctionUser with FunctionFile as preview.
func (t *T) FunctionCourse() CourseFixture {
	if t.course == nil {
		request, err := schema.NewCreateCourseRequest(t.Fake(), schema.CreateCourseRequest{
			PreviewFileID:   t.FunctionFile().ID(),
			CreatedByUserID: t.FunctionUser().ID(),
		})
		require.NoError(t, err, "failed to build course fixture request")
		response, err := t.CoursesClient().CreateCourse(t.Context(), request)
		require.NoError(t, err, "failed to create course fixture")
		t.course = &CourseFixture{Request: request, Response: response}
		t.Defer(func() { t.cleanup("course", t.CoursesClient().DeleteCourseAPI, response.Course.ID) })
	}
	return *t.course
}

// FunctionExercise returns an exercise of FunctionCourse.
func (t *T) FunctionExercise() ExerciseFixture {
	if t.exercise == nil {
		request, err := schema.NewCreateExerciseRequest(t.Fake(), schema.CreateExerciseRequest{
			CourseID: t.FunctionCourse().ID(),
		})
		require.NoError(t, err, "failed to build exercise fixture request")
		response, err := t.ExercisesClient().CreateExercise(t.Context(), request)
		require.NoError(t, err, "failed to create exercise fixture")
		t.exercise = &ExerciseFixture{Request: request, Response: response}
		t.Defer(func() { t.cleanup("exercise", t.ExercisesClient().DeleteExerciseAPI, response.Exercise.ID) })
	}
	return *t.exercise
}

func (t *T) cleanup(kind string, remove func(context.Context, string) (*client.Response, error), id string) {
	resp, err := remove(t.Context(), id)
	switch {
	case err != nil:
		t.Debug("failed to delete %s fixture %s: %s", kind, id, err)
	case resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound:
		t.Debug("deleting %s fixture %s returned HTTP status %d", kind, id, resp.StatusCode)
	}
}
