package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coursesqa/courses-api-tests/config"
	"github.com/coursesqa/courses-api-tests/schema"

	"go.uber.org/zap"
)

// AuthenticationUser holds the credentials a private client logs in with.
type AuthenticationUser struct {
	Email    string
	Password string
}

// NewPublicHTTPClient returns a Transport without credentials.
func NewPublicHTTPClient(cfg config.HTTPClient, logger *zap.Logger, interceptors ...Interceptor) *Transport {
	return &Transport{
		HTTP:         &http.Client{Timeout: cfg.Timeout},
		BaseURL:      cfg.URL,
		Interceptors: interceptors,
		Logger:       logger,
	}
}

// NewPrivateHTTPClient logs user in once and returns a Transport that sends the resulting
// access token with every request.
func NewPrivateHTTPClient(
	ctx context.Context,
	cfg config.HTTPClient,
	user AuthenticationUser,
	logger *zap.Logger,
	interceptors ...Interceptor,
) (*Transport, error) {
	auth := NewAuthenticationClient(NewPublicHTTPClient(cfg, logger, interceptors...))
	resp, err := auth.LoginAPI(ctx, schema.LoginRequest{Email: user.Email, Password: user.Password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("login as %s returned HTTP status %d: %s", user.Email, resp.StatusCode, resp.Text())
	}
	login, err := schema.Decode[schema.LoginResponse](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("malformed login response: %w", err)
	}
	return &Transport{
		HTTP: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: bearerTransport{token: login.Token.AccessToken, base: http.DefaultTransport},
		},
		BaseURL:      cfg.URL,
		Interceptors: interceptors,
		Logger:       logger,
	}, nil
}

type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (b bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+b.token)
	return b.base.RoundTrip(r)
}
