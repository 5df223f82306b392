package apitests

import (
	"context"
	"strings"

	"github.com/coursesqa/courses-api-tests/client"
	"github.com/coursesqa/courses-api-tests/fakers"
	"github.com/coursesqa/courses-api-tests/framework"
	"github.com/coursesqa/courses-api-tests/logging"
	"github.com/coursesqa/courses-api-tests/reporting"

	"github.com/stretchr/testify/require"
)

// Labels that group tests in reports.
const (
	FeatureUsers          = "users"
	FeatureFiles          = "files"
	FeatureCourses        = "courses"
	FeatureExercises      = "exercises"
	FeatureAuthentication = "authentication"

	StoryLogin          = "login"
	StoryGetEntity      = "get entity"
	StoryGetEntities    = "get entities"
	StoryCreateEntity   = "create entity"
	StoryUpdateEntity   = "update entity"
	StoryDeleteEntity   = "delete entity"
	StoryValidateEntity = "validate entity"
)

// T represents a test or subtest in the courses suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that
// is outside of the Go test runner. Those features are provided by the framework package.
// It also carries the clients for the service under test and the function-scoped fixtures
// a test has created so far.
//
// To make test assertions, you can use the assertions package or testify's assert and
// require packages, passing the *T as if it were a *testing.T.
type T struct {
	context *framework.Context
	env     *Environment
	ctx     context.Context

	user     *UserFixture
	file     *FileFixture
	course   *CourseFixture
	exercise *ExerciseFixture
}

// newTestScope creates the T for one test. Requests made by the test are written both to
// its captured debug output and to the structured log at debug level.
func newTestScope(c *framework.Context, env *Environment, ctx context.Context) *T {
	requests := logging.NewPrintfLogger(logging.Component(env.Logger, "requests"))
	return &T{
		context: c,
		env:     env,
		ctx:     reporting.WithDebugLogger(ctx, framework.MultiLogger(c.DebugLogger(), requests)),
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. The subtest starts with no fixtures of its own.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		t.env.Reporter.Step(t.ctx, strings.Join(c.ID().Path, " / "), func(ctx context.Context) {
			action(newTestScope(c, t.env, ctx))
		})
	})
}

// Step runs action as a named step of the current test. Steps nest, and each one is
// recorded as a span by the environment's Reporter.
func (t *T) Step(title string, action func()) {
	t.context.Debug("step: %s", title)
	parent := t.ctx
	t.env.Reporter.Step(parent, title, func(ctx context.Context) {
		t.ctx = ctx
		defer func() { t.ctx = parent }()
		action()
	})
}

// Label tags the current test, for example with its feature and story.
func (t *T) Label(key, value string) {
	reporting.Label(t.ctx, key, value)
}

func (t *T) Labels(feature, story string) {
	t.Label("feature", feature)
	t.Label("story", story)
}

// Debug logs some debug output for the test. The output will be passed to the test logger
// at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Defer registers a cleanup to run when the current test finishes.
func (t *T) Defer(cleanup func()) {
	t.context.Defer(cleanup)
}

// SkipWithReason ends the current test as skipped.
func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

// Context returns the context that requests of the current step should use. It carries the
// step's span and the test's debug logger.
func (t *T) Context() context.Context {
	return t.ctx
}

func (t *T) Env() *Environment { return t.env }

func (t *T) Fake() *fakers.Fake { return t.env.Fake }

func (t *T) PublicUsersClient() *client.PublicUsersClient {
	return client.NewPublicUsersClient(t.env.public)
}

func (t *T) PrivateUsersClient() *client.PrivateUsersClient {
	return client.NewPrivateUsersClient(t.env.private)
}

func (t *T) FilesClient() *client.FilesClient {
	return client.NewFilesClient(t.env.private)
}

func (t *T) CoursesClient() *client.CoursesClient {
	return client.NewCoursesClient(t.env.private)
}

func (t *T) ExercisesClient() *client.ExercisesClient {
	return client.NewExercisesClient(t.env.private)
}

func (t *T) AuthenticationClient() *client.AuthenticationClient {
	return client.NewAuthenticationClient(t.env.public)
}

// PrivateUsersClientAs logs in as user and returns a users client that acts on their behalf.
func (t *T) PrivateUsersClientAs(user UserFixture) *client.PrivateUsersClient {
	transport, err := client.NewPrivateHTTPClient(
		t.Context(),
		t.env.Config.HTTPClient,
		client.AuthenticationUser{Email: user.Request.Email, Password: user.Request.Password},
		t.env.Logger,
		t.env.Reporter, t.env.Coverage,
	)
	require.NoError(t, err)
	return client.NewPrivateUsersClient(transport)
}
