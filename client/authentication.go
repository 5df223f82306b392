package client

import (
	"context"

	"github.com/coursesqa/courses-api-tests/schema"
	"github.com/coursesqa/courses-api-tests/servicedef"
)

type AuthenticationClient struct {
	transport *Transport
}

func NewAuthenticationClient(t *Transport) *AuthenticationClient {
	return &AuthenticationClient{transport: t}
}

func (c *AuthenticationClient) LoginAPI(ctx context.Context, request schema.LoginRequest) (*Response, error) {
	return c.transport.PostJSON(ctx, "Authenticate user", servicedef.RouteLogin, request)
}

func (c *AuthenticationClient) Login(ctx context.Context, request schema.LoginRequest) (schema.LoginResponse, error) {
	return decode[schema.LoginResponse](c.LoginAPI(ctx, request))
}

func (c *AuthenticationClient) RefreshAPI(ctx context.Context, request schema.RefreshRequest) (*Response, error) {
	return c.transport.PostJSON(ctx, "Refresh token", servicedef.RouteRefreshToken, request)
}

func (c *AuthenticationClient) Refresh(ctx context.Context, request schema.RefreshRequest) (schema.LoginResponse, error) {
	return decode[schema.LoginResponse](c.RefreshAPI(ctx, request))
}
