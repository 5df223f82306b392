package apitests

import (
	"net/http"

	a "github.com/coursesqa/courses-api-tests/assertions"
	"github.com/coursesqa/courses-api-tests/schema"
)

func DoExercisesTests(t *T) {
	t.Run("get exercises", func(t *T) {
		t.Labels(FeatureExercises, StoryGetEntities)
		exercise := t.FunctionExercise()

		response, err := t.ExercisesClient().GetExercisesAPI(t.Context(),
			schema.GetExercisesQuery{CourseID: t.FunctionCourse().ID()})
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		got := a.AssertSchema[schema.GetExercisesResponse](t, response.Body)
		a.AssertGetExercisesResponse(t, got, []schema.CreateExerciseResponse{exercise.Response})
	})

	t.Run("create exercise", func(t *T) {
		t.Labels(FeatureExercises, StoryCreateEntity)
		request, err := schema.NewCreateExerciseRequest(t.Fake(), schema.CreateExerciseRequest{
			CourseID: t.FunctionCourse().ID(),
		})
		a.RequireNoError(t, err)

		response, err := t.ExercisesClient().CreateExerciseAPI(t.Context(), request)
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		created := a.AssertSchema[schema.CreateExerciseResponse](t, response.Body)
		a.AssertCreateExerciseResponse(t, request, created)
		t.Defer(func() { t.cleanup("exercise", t.ExercisesClient().DeleteExerciseAPI, created.Exercise.ID) })
	})

	t.Run("get exercise", func(t *T) {
		t.Labels(FeatureExercises, StoryGetEntity)
		exercise := t.FunctionExercise()

		response, err := t.ExercisesClient().GetExerciseAPI(t.Context(), exercise.ID())
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		got := a.AssertSchema[schema.GetExerciseResponse](t, response.Body)
		a.AssertGetExerciseResponse(t, got, exercise.Response)
	})

	t.Run("update exercise", func(t *T) {
		t.Labels(FeatureExercises, StoryUpdateEntity)
		exercise := t.FunctionExercise()
		request, err := schema.NewUpdateExerciseRequest(t.Fake(), schema.UpdateExerciseRequest{})
		a.RequireNoError(t, err)

		response, err := t.ExercisesClient().UpdateExerciseAPI(t.Context(), exercise.ID(), request)
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		updated := a.AssertSchema[schema.UpdateExerciseResponse](t, response.Body)
		a.AssertUpdateExerciseResponse(t, request, updated)
	})

	t.Run("delete exercise", func(t *T) {
		t.Labels(FeatureExercises, StoryDeleteEntity)
		exercise := t.FunctionExercise()

		response, err := t.ExercisesClient().DeleteExerciseAPI(t.Context(), exercise.ID())
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)

		get, err := t.ExercisesClient().GetExerciseAPI(t.Context(), exercise.ID())
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, get.StatusCode, http.StatusNotFound)
		body := a.AssertSchema[schema.InternalErrorResponse](t, get.Body)
		a.AssertExerciseNotFoundResponse(t, body)
	})
}
