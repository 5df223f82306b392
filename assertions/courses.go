package assertions

import (
	"fmt"

	"github.com/coursesqa/courses-api-tests/schema"
)

// AssertCreateCourseResponse checks that every request field came back unchanged. The
// preview file and the author are checked by id only, since the request carries nothing
// else about them.
func AssertCreateCourseResponse(t TestingT, request schema.CreateCourseRequest, response schema.CreateCourseResponse) {
	step(t, "Check create course response", func() {
		AssertEqual(t, response.Course.Title, request.Title, "title")
		AssertEqual(t, response.Course.MaxScore, request.MaxScore, "max_score")
		AssertEqual(t, response.Course.MinScore, request.MinScore, "min_score")
		AssertEqual(t, response.Course.Description, request.Description, "description")
		AssertEqual(t, response.Course.EstimatedTime, request.EstimatedTime, "estimated_time")
		AssertEqual(t, response.Course.PreviewFile.ID, request.PreviewFileID, "preview_file_id")
		AssertEqual(t, response.Course.CreatedByUser.ID, request.CreatedByUserID, "created_by_user_id")
	})
}

func AssertCourse(t TestingT, actual, expected schema.Course) {
	step(t, "Check course", func() {
		AssertEqual(t, actual.ID, expected.ID, "id")
		AssertEqual(t, actual.Title, expected.Title, "title")
		AssertEqual(t, actual.MaxScore, expected.MaxScore, "max_score")
		AssertEqual(t, actual.MinScore, expected.MinScore, "min_score")
		AssertEqual(t, actual.Description, expected.Description, "description")
		AssertEqual(t, actual.EstimatedTime, expected.EstimatedTime, "estimated_time")
		AssertFile(t, actual.PreviewFile, expected.PreviewFile)
		AssertUser(t, actual.CreatedByUser, expected.CreatedByUser)
	})
}

func AssertGetCourseResponse(t TestingT, getCourseResponse schema.GetCourseResponse, createCourseResponse schema.CreateCourseResponse) {
	step(t, "Check get course response", func() {
		AssertCourse(t, getCourseResponse.Course, createCourseResponse.Course)
	})
}

// AssertGetCoursesResponse expects the listed courses in the order they were created.
func AssertGetCoursesResponse(
	t TestingT,
	getCoursesResponse schema.GetCoursesResponse,
	createCourseResponses []schema.CreateCourseResponse,
) {
	step(t, "Check get courses response", func() {
		AssertLength(t, getCoursesResponse.Courses, createCourseResponses, "courses")
		for i, created := range createCourseResponses {
			step(t, fmt.Sprintf("Check course #%d", i+1), func() {
				AssertCourse(t, getCoursesResponse.Courses[i], created.Course)
			})
		}
	})
}

// AssertUpdateCourseResponse compares only the fields the request defined.
func AssertUpdateCourseResponse(t TestingT, request schema.UpdateCourseRequest, response schema.UpdateCourseResponse) {
	step(t, "Check update course response", func() {
		if v, ok := request.Title.Get(); ok {
			AssertEqual(t, response.Course.Title, v, "title")
		}
		if v, ok := request.MaxScore.Get(); ok {
			AssertEqual(t, response.Course.MaxScore, v, "max_score")
		}
		if v, ok := request.MinScore.Get(); ok {
			AssertEqual(t, response.Course.MinScore, v, "min_score")
		}
		if v, ok := request.Description.Get(); ok {
			AssertEqual(t, response.Course.Description, v, "description")
		}
		if v, ok := request.EstimatedTime.Get(); ok {
			AssertEqual(t, response.Course.EstimatedTime, v, "estimated_time")
		}
	})
}

func AssertCourseNotFoundResponse(t TestingT, actual schema.InternalErrorResponse) {
	step(t, "Check course not found response", func() {
		AssertInternalErrorResponse(t, actual, schema.InternalErrorResponse{Details: "Course not found"})
	})
}
