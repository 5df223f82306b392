package assertions

import "github.com/coursesqa/courses-api-tests/schema"

// AssertLoginResponse expects a bearer token pair. The token values themselves are
// unpredictable, so only their presence is checked.
func AssertLoginResponse(t TestingT, response schema.LoginResponse) {
	step(t, "Check login response", func() {
		AssertEqual(t, response.Token.TokenType, "bearer", "token_type")
		AssertIsTrue(t, response.Token.AccessToken, "access_token")
		AssertIsTrue(t, response.Token.RefreshToken, "refresh_token")
	})
}
