package apitests

import (
	"context"

	"github.com/coursesqa/courses-api-tests/framework"
)

func RunTestSuite(
	ctx context.Context,
	env *Environment,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, env, ctx)

		t.Run("authentication", DoAuthenticationTests)
		t.Run("users", DoUsersTests)
		t.Run("files", DoFilesTests)
		t.Run("courses", DoCoursesTests)
		t.Run("exercises", DoExercisesTests)
	})
}
