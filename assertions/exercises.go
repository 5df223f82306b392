package assertions

import (
	"fmt"

	"github.com/coursesqa/courses-api-tests/schema"
)

func AssertExercise(t TestingT, actual, expected schema.Exercise) {
	step(t, "Check exercise", func() {
		AssertEqual(t, actual.ID, expected.ID, "id")
		AssertEqual(t, actual.Title, expected.Title, "title")
		AssertEqual(t, actual.CourseID, expected.CourseID, "course_id")
		AssertEqual(t, actual.MaxScore, expected.MaxScore, "max_score")
		AssertEqual(t, actual.MinScore, expected.MinScore, "min_score")
		AssertEqual(t, actual.OrderIndex, expected.OrderIndex, "order_index")
		AssertEqual(t, actual.Description, expected.Description, "description")
		AssertEqual(t, actual.EstimatedTime, expected.EstimatedTime, "estimated_time")
	})
}

func AssertCreateExerciseResponse(t TestingT, request schema.CreateExerciseRequest, response schema.CreateExerciseResponse) {
	step(t, "Check create exercise response", func() {
		AssertEqual(t, response.Exercise.Title, request.Title, "title")
		AssertEqual(t, response.Exercise.CourseID, request.CourseID, "course_id")
		AssertEqual(t, response.Exercise.MaxScore, request.MaxScore, "max_score")
		AssertEqual(t, response.Exercise.MinScore, request.MinScore, "min_score")
		AssertEqual(t, response.Exercise.OrderIndex, request.OrderIndex, "order_index")
		AssertEqual(t, response.Exercise.Description, request.Description, "description")
		AssertEqual(t, response.Exercise.EstimatedTime, request.EstimatedTime, "estimated_time")
	})
}

func AssertGetExerciseResponse(
	t TestingT,
	getExerciseResponse schema.GetExerciseResponse,
	createExerciseResponse schema.CreateExerciseResponse,
) {
	step(t, "Check get exercise response", func() {
		AssertExercise(t, getExerciseResponse.Exercise, createExerciseResponse.Exercise)
	})
}

func AssertGetExercisesResponse(
	t TestingT,
	getExercisesResponse schema.GetExercisesResponse,
	createExerciseResponses []schema.CreateExerciseResponse,
) {
	step(t, "Check get exercises response", func() {
		AssertLength(t, getExercisesResponse.Exercises, createExerciseResponses, "exercises")
		for i, created := range createExerciseResponses {
			step(t, fmt.Sprintf("Check exercise #%d", i+1), func() {
				AssertExercise(t, getExercisesResponse.Exercises[i], created.Exercise)
			})
		}
	})
}

// AssertUpdateExerciseResponse compares only the fields the request defined.
func AssertUpdateExerciseResponse(t TestingT, request schema.UpdateExerciseRequest, response schema.UpdateExerciseResponse) {
	step(t, "Check update exercise response", func() {
		if v, ok := request.Title.Get(); ok {
			AssertEqual(t, response.Exercise.Title, v, "title")
		}
		if v, ok := request.MaxScore.Get(); ok {
			AssertEqual(t, response.Exercise.MaxScore, v, "max_score")
		}
		if v, ok := request.MinScore.Get(); ok {
			AssertEqual(t, response.Exercise.MinScore, v, "min_score")
		}
		if v, ok := request.OrderIndex.Get(); ok {
			AssertEqual(t, response.Exercise.OrderIndex, v, "order_index")
		}
		if v, ok := request.Description.Get(); ok {
			AssertEqual(t, response.Exercise.Description, v, "description")
		}
		if v, ok := request.EstimatedTime.Get(); ok {
			AssertEqual(t, response.Exercise.EstimatedTime, v, "estimated_time")
		}
	})
}

func AssertExerciseNotFoundResponse(t TestingT, actual schema.InternalErrorResponse) {
	step(t, "Check exercise not found response", func() {
		AssertInternalErrorResponse(t, actual, schema.InternalErrorResponse{Details: "Exercise not found"})
	})
}
