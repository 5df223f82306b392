package apitests

import (
	"net/http"

	a "github.com/coursesqa/courses-api-tests/assertions"
	"github.com/coursesqa/courses-api-tests/schema"
)

var emailDomains = []string{"mail.ru", "gmail.com", "example.com"}

func DoUsersTests(t *T) {
	for _, domain := range emailDomains {
		t.Run("create user with "+domain+" email", func(t *T) {
			t.Labels(FeatureUsers, StoryCreateEntity)
			request, err := schema.NewCreateUserRequest(t.Fake(), schema.CreateUserRequest{Email: t.Fake().Email(domain)})
			a.RequireNoError(t, err)

			response, err := t.PublicUsersClient().CreateUserAPI(t.Context(), request)
			a.RequireNoError(t, err)
			a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
			created := a.AssertSchema[schema.CreateUserResponse](t, response.Body)
			a.AssertCreateUserResponse(t, request, created)
			t.Defer(func() { t.cleanup("user", t.PrivateUsersClient().DeleteUserAPI, created.User.ID) })
		})
	}

	t.Run("get user me", func(t *T) {
		t.Labels(FeatureUsers, StoryGetEntity)
		user := t.FunctionUser()

		response, err := t.PrivateUsersClientAs(user).GetUserMeAPI(t.Context())
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		got := a.AssertSchema[schema.GetUserResponse](t, response.Body)
		a.AssertGetUserResponse(t, got, user.Response)
	})

	t.Run("get user", func(t *T) {
		t.Labels(FeatureUsers, StoryGetEntity)
		user := t.FunctionUser()

		response, err := t.PrivateUsersClient().GetUserAPI(t.Context(), user.ID())
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		got := a.AssertSchema[schema.GetUserResponse](t, response.Body)
		a.AssertGetUserResponse(t, got, user.Response)
	})

	t.Run("update user", func(t *T) {
		t.Labels(FeatureUsers, StoryUpdateEntity)
		user := t.FunctionUser()
		request, err := schema.NewUpdateUserRequest(t.Fake(), schema.UpdateUserRequest{})
		a.RequireNoError(t, err)

		response, err := t.PrivateUsersClient().UpdateUserAPI(t.Context(), user.ID(), request)
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		updated := a.AssertSchema[schema.UpdateUserResponse](t, response.Body)
		a.AssertUpdateUserResponse(t, request, updated)
	})

	t.Run("delete user", func(t *T) {
		t.Labels(FeatureUsers, StoryDeleteEntity)
		user := t.FunctionUser()

		response, err := t.PrivateUsersClient().DeleteUserAPI(t.Context(), user.ID())
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)

		get, err := t.PrivateUsersClient().GetUserAPI(t.Context(), user.ID())
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, get.StatusCode, http.StatusNotFound)
	})
}
