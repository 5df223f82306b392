package schema

// LoginRequest is the body of POST /api/v1/authentication/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestFields = CamelFields("email", "password")

func (LoginRequest) Fields() Fields { return loginRequestFields }

func (r *LoginRequest) UnmarshalJSON(data []byte) error {
	type plain LoginRequest
	return decodeObject(data, loginRequestFields, (*plain)(r))
}

// RefreshRequest is the body of POST /api/v1/authentication/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

var refreshRequestFields = CamelFields("refresh_token")

func (RefreshRequest) Fields() Fields { return refreshRequestFields }

func (r *RefreshRequest) UnmarshalJSON(data []byte) error {
	type plain RefreshRequest
	return decodeObject(data, refreshRequestFields, (*plain)(r))
}

type Token struct {
	TokenType    string `json:"tokenType"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

var tokenFields = CamelFields("token_type", "access_token", "refresh_token")

func (Token) Fields() Fields { return tokenFields }

func (t *Token) UnmarshalJSON(data []byte) error {
	type plain Token
	return decodeObject(data, tokenFields, (*plain)(t))
}

// LoginResponse is returned by both login and refresh.
type LoginResponse struct {
	Token Token `json:"token"`
}

var loginResponseFields = CamelFields("token")

func (LoginResponse) Fields() Fields { return loginResponseFields }

func (r *LoginResponse) UnmarshalJSON(data []byte) error {
	type plain LoginResponse
	return decodeObject(data, loginResponseFields, (*plain)(r))
}
