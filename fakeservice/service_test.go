package fakeservice

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/coursesqa/courses-api-tests/client"
	"github.com/coursesqa/courses-api-tests/config"
	"github.com/coursesqa/courses-api-tests/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	testEmail    = "tester@example.com"
	testPassword = "secret-password"
)

var imagePath = filepath.Join("..", "testdata", "image.png")

type fixture struct {
	server  *httptest.Server
	service *Service
	user    schema.User
	cfg     config.HTTPClient
	private *client.Transport
}

func withService(t *testing.T, action func(f fixture)) {
	service := New(Options{})
	user, err := service.AddUser(schema.CreateUserRequest{
		Email: testEmail, Password: testPassword, LastName: "Doe", FirstName: "Jane", MiddleName: "Q",
	})
	require.NoError(t, err)

	server := httptest.NewServer(service.Handler())
	defer server.Close()

	cfg := config.HTTPClient{URL: server.URL, Timeout: 5 * time.Second}
	private, err := client.NewPrivateHTTPClient(context.Background(), cfg,
		client.AuthenticationUser{Email: testEmail, Password: testPassword}, nil)
	require.NoError(t, err)

	action(fixture{server: server, service: service, user: user, cfg: cfg, private: private})
}

func TestLoginAndGetCurrentUser(t *testing.T) {
	withService(t, func(f fixture) {
		me, err := client.NewPrivateUsersClient(f.private).GetUserMe(context.Background())
		require.NoError(t, err)
		assert.Equal(t, f.user, me.User)
	})
}

func TestLoginWithWrongPassword(t *testing.T) {
	withService(t, func(f fixture) {
		auth := client.NewAuthenticationClient(client.NewPublicHTTPClient(f.cfg, nil))
		resp, err := auth.LoginAPI(context.Background(), schema.LoginRequest{Email: testEmail, Password: "nope"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRefreshIssuesNewTokens(t *testing.T) {
	withService(t, func(f fixture) {
		auth := client.NewAuthenticationClient(client.NewPublicHTTPClient(f.cfg, nil))
		login, err := auth.Login(context.Background(), schema.LoginRequest{Email: testEmail, Password: testPassword})
		require.NoError(t, err)
		assert.Equal(t, "bearer", login.Token.TokenType)

		refreshed, err := auth.Refresh(context.Background(), schema.RefreshRequest{RefreshToken: login.Token.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.Token.AccessToken)

		resp, err := auth.RefreshAPI(context.Background(), schema.RefreshRequest{RefreshToken: login.Token.AccessToken})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestPrivateRoutesRequireToken(t *testing.T) {
	withService(t, func(f fixture) {
		public := client.NewPublicHTTPClient(f.cfg, nil)
		resp, err := client.NewPrivateUsersClient(public).GetUserMeAPI(context.Background())
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestCreateUserRejectsDuplicateAndInvalidEmail(t *testing.T) {
	withService(t, func(f fixture) {
		users := client.NewPublicUsersClient(client.NewPublicHTTPClient(f.cfg, nil))
		request := schema.CreateUserRequest{Email: testEmail, Password: "p", LastName: "a", FirstName: "b", MiddleName: "c"}
		resp, err := users.CreateUserAPI(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		request.Email = "not-an-email"
		resp, err = users.CreateUserAPI(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestCreateUserMissingFieldIsReported(t *testing.T) {
	withService(t, func(f fixture) {
		transport := client.NewPublicHTTPClient(f.cfg, nil)
		resp, err := transport.PostJSON(context.Background(), "Create user", "/api/v1/users",
			map[string]string{"email": "a@example.com"})
		require.NoError(t, err)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		body, err := schema.Decode[schema.ValidationErrorResponse](resp.Body)
		require.NoError(t, err)
		require.NotEmpty(t, body.Details)
		assert.Equal(t, "missing", body.Details[0].Type)
		assert.Equal(t, "body", body.Details[0].Location[0])
	})
}

func TestFileUploadIsServedFromStatic(t *testing.T) {
	withService(t, func(f fixture) {
		files := client.NewFilesClient(f.private)
		created, err := files.CreateFile(context.Background(),
			schema.CreateFileRequest{Filename: "a.png", Directory: "tests", UploadFile: imagePath})
		require.NoError(t, err)
		assert.Equal(t, f.cfg.ClientURL()+"static/tests/a.png", created.File.URL)

		resp, err := http.Get(created.File.URL)
		require.NoError(t, err)
		defer resp.Body.Close()
		content, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
		assert.NotEmpty(t, content)

		got, err := files.GetFile(context.Background(), created.File.ID)
		require.NoError(t, err)
		assert.Equal(t, created.File, got.File)

		del, err := files.DeleteFileAPI(context.Background(), created.File.ID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, del.StatusCode)

		missing, err := files.GetFileAPI(context.Background(), created.File.ID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, missing.StatusCode)
		assert.JSONEq(t, `{"detail":"File not found"}`, missing.Text())
	})
}

func TestFileUploadWithEmptyFilename(t *testing.T) {
	withService(t, func(f fixture) {
		resp, err := client.NewFilesClient(f.private).CreateFileAPI(context.Background(),
			schema.CreateFileRequest{Filename: "", Directory: "tests", UploadFile: imagePath})
		require.NoError(t, err)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body, err := schema.Decode[schema.ValidationErrorResponse](resp.Body)
		require.NoError(t, err)
		require.Len(t, body.Details, 1)
		e := body.Details[0]
		assert.Equal(t, "string_too_short", e.Type)
		assert.Equal(t, []string{"body", "filename"}, e.Location)
		assert.Equal(t, "String should have at least 1 character", e.Message)
		assert.True(t, ldvalue.String("").Equal(e.Input))
		assert.True(t, ldvalue.Int(1).Equal(e.Context["min_length"]))
	})
}

func TestIncorrectFileIDIsReportedAsUUIDParsing(t *testing.T) {
	withService(t, func(f fixture) {
		resp, err := client.NewFilesClient(f.private).GetFileAPI(context.Background(), "incorrect-file-id")
		require.NoError(t, err)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body, err := schema.Decode[schema.ValidationErrorResponse](resp.Body)
		require.NoError(t, err)
		require.Len(t, body.Details, 1)
		assert.Equal(t, "uuid_parsing", body.Details[0].Type)
		assert.Equal(t, []string{"path", "file_id"}, body.Details[0].Location)
		assert.Contains(t, body.Details[0].Message, "found `i` at 1")
	})
}

func TestCourseAndExerciseLifecycle(t *testing.T) {
	withService(t, func(f fixture) {
		ctx := context.Background()
		file, err := client.NewFilesClient(f.private).CreateFile(ctx,
			schema.CreateFileRequest{Filename: "p.png", Directory: "courses", UploadFile: imagePath})
		require.NoError(t, err)

		courses := client.NewCoursesClient(f.private)
		created, err := courses.CreateCourse(ctx, schema.CreateCourseRequest{
			Title: "Go", MaxScore: 100, MinScore: 10, Description: "d", EstimatedTime: "2 weeks",
			PreviewFileID: file.File.ID, CreatedByUserID: f.user.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, file.File, created.Course.PreviewFile)
		assert.Equal(t, f.user, created.Course.CreatedByUser)

		list, err := courses.GetCourses(ctx, schema.GetCoursesQuery{UserID: f.user.ID})
		require.NoError(t, err)
		require.Len(t, list.Courses, 1)
		assert.Equal(t, created.Course, list.Courses[0])

		updated, err := courses.UpdateCourse(ctx, created.Course.ID,
			schema.UpdateCourseRequest{Title: ldvalue.NewOptionalString("Advanced Go")})
		require.NoError(t, err)
		assert.Equal(t, "Advanced Go", updated.Course.Title)
		assert.Equal(t, created.Course.Description, updated.Course.Description)

		exercises := client.NewExercisesClient(f.private)
		exercise, err := exercises.CreateExercise(ctx, schema.CreateExerciseRequest{
			Title: "E1", CourseID: created.Course.ID, MaxScore: 10, MinScore: 1, OrderIndex: 1,
			Description: "d", EstimatedTime: "1 week",
		})
		require.NoError(t, err)

		listed, err := exercises.GetExercises(ctx, schema.GetExercisesQuery{CourseID: created.Course.ID})
		require.NoError(t, err)
		require.Len(t, listed.Exercises, 1)
		assert.Equal(t, exercise.Exercise, listed.Exercises[0])

		del, err := courses.DeleteCourseAPI(ctx, created.Course.ID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, del.StatusCode)

		gone, err := exercises.GetExerciseAPI(ctx, exercise.Exercise.ID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, gone.StatusCode)
		assert.JSONEq(t, `{"detail":"Exercise not found"}`, gone.Text())
	})
}

func TestGetCoursesRequiresUserID(t *testing.T) {
	withService(t, func(f fixture) {
		resp, err := client.NewCoursesClient(f.private).GetCoursesAPI(context.Background(), schema.GetCoursesQuery{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}
