package client

import (
	"context"

	"github.com/coursesqa/courses-api-tests/schema"
	"github.com/coursesqa/courses-api-tests/servicedef"
)

// PublicUsersClient covers the user endpoints that need no authentication.
type PublicUsersClient struct {
	transport *Transport
}

func NewPublicUsersClient(t *Transport) *PublicUsersClient {
	return &PublicUsersClient{transport: t}
}

func (c *PublicUsersClient) CreateUserAPI(ctx context.Context, request schema.CreateUserRequest) (*Response, error) {
	return c.transport.PostJSON(ctx, "Create user", servicedef.RouteUsers, request)
}

func (c *PublicUsersClient) CreateUser(ctx context.Context, request schema.CreateUserRequest) (schema.CreateUserResponse, error) {
	return decode[schema.CreateUserResponse](c.CreateUserAPI(ctx, request))
}

// PrivateUsersClient covers the user endpoints that require a bearer token.
type PrivateUsersClient struct {
	transport *Transport
}

func NewPrivateUsersClient(t *Transport) *PrivateUsersClient {
	return &PrivateUsersClient{transport: t}
}

func (c *PrivateUsersClient) GetUserMeAPI(ctx context.Context) (*Response, error) {
	return c.transport.Get(ctx, "Get current user", servicedef.RouteUsersMe, nil)
}

func (c *PrivateUsersClient) GetUserMe(ctx context.Context) (schema.GetUserResponse, error) {
	return decode[schema.GetUserResponse](c.GetUserMeAPI(ctx))
}

func (c *PrivateUsersClient) GetUserAPI(ctx context.Context, userID string) (*Response, error) {
	return c.transport.Get(ctx, "Get user", servicedef.RouteUser, nil, userID)
}

func (c *PrivateUsersClient) GetUser(ctx context.Context, userID string) (schema.GetUserResponse, error) {
	return decode[schema.GetUserResponse](c.GetUserAPI(ctx, userID))
}

func (c *PrivateUsersClient) UpdateUserAPI(ctx context.Context, userID string, request schema.UpdateUserRequest) (*Response, error) {
	return c.transport.PatchJSON(ctx, "Update user", servicedef.RouteUser, request, userID)
}

func (c *PrivateUsersClient) UpdateUser(
	ctx context.Context,
	userID string,
	request schema.UpdateUserRequest,
) (schema.UpdateUserResponse, error) {
	return decode[schema.UpdateUserResponse](c.UpdateUserAPI(ctx, userID, request))
}

func (c *PrivateUsersClient) DeleteUserAPI(ctx context.Context, userID string) (*Response, error) {
	return c.transport.Delete(ctx, "Delete user", servicedef.RouteUser, userID)
}
