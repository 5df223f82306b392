package apitests

import (
	"net/http"

	a "github.com/coursesqa/courses-api-tests/assertions"
	"github.com/coursesqa/courses-api-tests/schema"
)

func DoAuthenticationTests(t *T) {
	t.Run("login", func(t *T) {
		t.Labels(FeatureAuthentication, StoryLogin)
		user := t.FunctionUser()
		request := schema.LoginRequest{Email: user.Request.Email, Password: user.Request.Password}

		response, err := t.AuthenticationClient().LoginAPI(t.Context(), request)
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		login := a.AssertSchema[schema.LoginResponse](t, response.Body)
		a.AssertLoginResponse(t, login)
	})

	t.Run("refresh token", func(t *T) {
		t.Labels(FeatureAuthentication, StoryLogin)
		user := t.FunctionUser()
		login, err := t.AuthenticationClient().Login(t.Context(),
			schema.LoginRequest{Email: user.Request.Email, Password: user.Request.Password})
		a.RequireNoError(t, err)

		response, err := t.AuthenticationClient().RefreshAPI(t.Context(),
			schema.RefreshRequest{RefreshToken: login.Token.RefreshToken})
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		refreshed := a.AssertSchema[schema.LoginResponse](t, response.Body)
		a.AssertLoginResponse(t, refreshed)
	})

	t.Run("login with wrong password", func(t *T) {
		t.Labels(FeatureAuthentication, StoryValidateEntity)
		user := t.FunctionUser()
		request := schema.LoginRequest{Email: user.Request.Email, Password: user.Request.Password + "-wrong"}

		response, err := t.AuthenticationClient().LoginAPI(t.Context(), request)
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusUnauthorized)
		a.AssertSchema[schema.InternalErrorResponse](t, response.Body)
	})
}
