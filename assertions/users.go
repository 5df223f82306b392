package assertions

import "github.com/coursesqa/courses-api-tests/schema"

// AssertCreateUserResponse checks that every field of the request came back unchanged.
func AssertCreateUserResponse(t TestingT, request schema.CreateUserRequest, response schema.CreateUserResponse) {
	step(t, "Check create user response", func() {
		AssertEqual(t, response.User.Email, request.Email, "email")
		AssertEqual(t, response.User.LastName, request.LastName, "last_name")
		AssertEqual(t, response.User.FirstName, request.FirstName, "first_name")
		AssertEqual(t, response.User.MiddleName, request.MiddleName, "middle_name")
	})
}

func AssertUser(t TestingT, actual, expected schema.User) {
	step(t, "Check user", func() {
		AssertEqual(t, actual.ID, expected.ID, "id")
		AssertEqual(t, actual.Email, expected.Email, "email")
		AssertEqual(t, actual.LastName, expected.LastName, "last_name")
		AssertEqual(t, actual.FirstName, expected.FirstName, "first_name")
		AssertEqual(t, actual.MiddleName, expected.MiddleName, "middle_name")
	})
}

func AssertGetUserResponse(t TestingT, getUserResponse schema.GetUserResponse, createUserResponse schema.CreateUserResponse) {
	step(t, "Check get user response", func() {
		AssertUser(t, getUserResponse.User, createUserResponse.User)
	})
}

// AssertUpdateUserResponse compares only the fields the request defined.
func AssertUpdateUserResponse(t TestingT, request schema.UpdateUserRequest, response schema.UpdateUserResponse) {
	step(t, "Check update user response", func() {
		if v, ok := request.Email.Get(); ok {
			AssertEqual(t, response.User.Email, v, "email")
		}
		if v, ok := request.LastName.Get(); ok {
			AssertEqual(t, response.User.LastName, v, "last_name")
		}
		if v, ok := request.FirstName.Get(); ok {
			AssertEqual(t, response.User.FirstName, v, "first_name")
		}
		if v, ok := request.MiddleName.Get(); ok {
			AssertEqual(t, response.User.MiddleName, v, "middle_name")
		}
	})
}
