package schema

import (
	"github.com/coursesqa/courses-api-tests/fakers"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// User is the user representation returned by /api/v1/users and embedded in courses.
type User struct {
	ID         string `json:"id" validate:"uuid"`
	Email      string `json:"email" validate:"email"`
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
}

var userFields = CamelFields("id", "email", "last_name", "first_name", "middle_name")

func (User) Fields() Fields { return userFields }

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	return decodeObject(data, userFields, (*plain)(u))
}

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
}

var createUserRequestFields = CamelFields("email", "password", "last_name", "first_name", "middle_name")

func (CreateUserRequest) Fields() Fields { return createUserRequestFields }

func (r *CreateUserRequest) UnmarshalJSON(data []byte) error {
	type plain CreateUserRequest
	return decodeObject(data, createUserRequestFields, (*plain)(r))
}

// NewCreateUserRequest returns overrides with every empty field filled by fake, trimmed and
// validated like a decoded body.
func NewCreateUserRequest(fake *fakers.Fake, overrides CreateUserRequest) (CreateUserRequest, error) {
	r := overrides
	fill(&r.Email, func() string { return fake.Email("") })
	fill(&r.Password, fake.Password)
	fill(&r.LastName, fake.LastName)
	fill(&r.FirstName, fake.FirstName)
	fill(&r.MiddleName, fake.MiddleName)
	if err := Validate(&r); err != nil {
		return r, err
	}
	return r, nil
}

type CreateUserResponse struct {
	User User `json:"user"`
}

var userEnvelopeFields = CamelFields("user")

func (CreateUserResponse) Fields() Fields { return userEnvelopeFields }

func (r *CreateUserResponse) UnmarshalJSON(data []byte) error {
	type plain CreateUserResponse
	return decodeObject(data, userEnvelopeFields, (*plain)(r))
}

type GetUserResponse struct {
	User User `json:"user"`
}

func (GetUserResponse) Fields() Fields { return userEnvelopeFields }

func (r *GetUserResponse) UnmarshalJSON(data []byte) error {
	type plain GetUserResponse
	return decodeObject(data, userEnvelopeFields, (*plain)(r))
}

// UpdateUserRequest is the body of PATCH /api/v1/users/{user_id}. Undefined fields are sent
// as null and left unchanged by the server.
type UpdateUserRequest struct {
	Email      ldvalue.OptionalString `json:"email"`
	LastName   ldvalue.OptionalString `json:"lastName"`
	FirstName  ldvalue.OptionalString `json:"firstName"`
	MiddleName ldvalue.OptionalString `json:"middleName"`
}

var updateUserRequestFields = OptionalCamelFields("email", "last_name", "first_name", "middle_name")

func (UpdateUserRequest) Fields() Fields { return updateUserRequestFields }

func (r *UpdateUserRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateUserRequest
	return decodeObject(data, updateUserRequestFields, (*plain)(r))
}

// NewUpdateUserRequest returns overrides with every undefined field filled by fake.
func NewUpdateUserRequest(fake *fakers.Fake, overrides UpdateUserRequest) (UpdateUserRequest, error) {
	r := overrides
	fillOptional(&r.Email, func() string { return fake.Email("") })
	fillOptional(&r.LastName, fake.LastName)
	fillOptional(&r.FirstName, fake.FirstName)
	fillOptional(&r.MiddleName, fake.MiddleName)
	if err := Validate(&r); err != nil {
		return r, err
	}
	return r, nil
}

type UpdateUserResponse struct {
	User User `json:"user"`
}

func (UpdateUserResponse) Fields() Fields { return userEnvelopeFields }

func (r *UpdateUserResponse) UnmarshalJSON(data []byte) error {
	type plain UpdateUserResponse
	return decodeObject(data, userEnvelopeFields, (*plain)(r))
}
