package apitests

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coursesqa/courses-api-tests/client"
	"github.com/coursesqa/courses-api-tests/config"
	"github.com/coursesqa/courses-api-tests/coverage"
	"github.com/coursesqa/courses-api-tests/fakers"
	"github.com/coursesqa/courses-api-tests/reporting"
	"github.com/coursesqa/courses-api-tests/schema"

	"go.uber.org/zap"
)

// Environment is shared by every test in a run.
type Environment struct {
	Config   *config.Config
	Logger   *zap.Logger
	Reporter *reporting.Reporter
	Coverage *coverage.Tracker
	Fake     *fakers.Fake

	public  *client.Transport
	private *client.Transport
}

// NewEnvironment builds the shared clients. The configured test user is logged in once; if
// the login is rejected the user is created first.
func NewEnvironment(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
	reporter *reporting.Reporter,
	tracker *coverage.Tracker,
) (*Environment, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = reporting.NewReporter(nil, logger)
	}
	if tracker == nil {
		tracker = coverage.NewTracker()
	}
	env := &Environment{
		Config:   cfg,
		Logger:   logger,
		Reporter: reporter,
		Coverage: tracker,
		Fake:     fakers.New(cfg.Faker.Seed),
	}
	interceptors := []client.Interceptor{reporter, tracker}
	env.public = client.NewPublicHTTPClient(cfg.HTTPClient, logger, interceptors...)

	private, err := env.loginTestUser(ctx, interceptors)
	if err != nil {
		return nil, err
	}
	env.private = private
	return env, nil
}

func (e *Environment) loginTestUser(ctx context.Context, interceptors []client.Interceptor) (*client.Transport, error) {
	user := client.AuthenticationUser{Email: e.Config.TestUser.Email, Password: e.Config.TestUser.Password}
	private, err := client.NewPrivateHTTPClient(ctx, e.Config.HTTPClient, user, e.Logger, interceptors...)
	if err == nil {
		return private, nil
	}
	e.Logger.Info("test user could not log in, creating it", zap.String("email", user.Email), zap.Error(err))

	request, buildErr := schema.NewCreateUserRequest(e.Fake, schema.CreateUserRequest{Email: user.Email, Password: user.Password})
	if buildErr != nil {
		return nil, fmt.Errorf("failed to build test user request: %w", buildErr)
	}
	resp, createErr := client.NewPublicUsersClient(e.public).CreateUserAPI(ctx, request)
	if createErr != nil {
		return nil, fmt.Errorf("failed to create test user: %w", createErr)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Join(err, fmt.Errorf("creating test user returned HTTP status %d: %s", resp.StatusCode, resp.Text()))
	}
	return client.NewPrivateHTTPClient(ctx, e.Config.HTTPClient, user, e.Logger, interceptors...)
}
