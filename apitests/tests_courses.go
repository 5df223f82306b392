package apitests

import (
	"net/http"

	a "github.com/coursesqa/courses-api-tests/assertions"
	"github.com/coursesqa/courses-api-tests/schema"
)

func DoCoursesTests(t *T) {
	t.Run("get courses", func(t *T) {
		t.Labels(FeatureCourses, StoryGetEntities)
		course := t.FunctionCourse()

		response, err := t.CoursesClient().GetCoursesAPI(t.Context(), schema.GetCoursesQuery{UserID: t.FunctionUser().ID()})
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		got := a.AssertSchema[schema.GetCoursesResponse](t, response.Body)
		a.AssertGetCoursesResponse(t, got, []schema.CreateCourseResponse{course.Response})
	})

	t.Run("create course", func(t *T) {
		t.Labels(FeatureCourses, StoryCreateEntity)
		request, err := schema.NewCreateCourseRequest(t.Fake(), schema.CreateCourseRequest{
			PreviewFileID:   t.FunctionFile().ID(),
			CreatedByUserID: t.FunctionUser().ID(),
		})
		a.RequireNoError(t, err)

		response, err := t.CoursesClient().CreateCourseAPI(t.Context(), request)
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		created := a.AssertSchema[schema.CreateCourseResponse](t, response.Body)
		a.AssertCreateCourseResponse(t, request, created)
		t.Defer(func() { t.cleanup("course", t.CoursesClient().DeleteCourseAPI, created.Course.ID) })
	})

	t.Run("get course", func(t *T) {
		t.Labels(FeatureCourses, StoryGetEntity)
		course := t.FunctionCourse()

		response, err := t.CoursesClient().GetCourseAPI(t.Context(), course.ID())
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		got := a.AssertSchema[schema.GetCourseResponse](t, response.Body)
		a.AssertGetCourseResponse(t, got, course.Response)
	})

	t.Run("update course", func(t *T) {
		t.Labels(FeatureCourses, StoryUpdateEntity)
		course := t.FunctionCourse()
		request, err := schema.NewUpdateCourseRequest(t.Fake(), schema.UpdateCourseRequest{})
		a.RequireNoError(t, err)

		response, err := t.CoursesClient().UpdateCourseAPI(t.Context(), course.ID(), request)
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		updated := a.AssertSchema[schema.UpdateCourseResponse](t, response.Body)
		a.AssertUpdateCourseResponse(t, request, updated)
	})

	t.Run("delete course", func(t *T) {
		t.Labels(FeatureCourses, StoryDeleteEntity)
		course := t.FunctionCourse()

		response, err := t.CoursesClient().DeleteCourseAPI(t.Context(), course.ID())
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)

		get, err := t.CoursesClient().GetCourseAPI(t.Context(), course.ID())
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, get.StatusCode, http.StatusNotFound)
		body := a.AssertSchema[schema.InternalErrorResponse](t, get.Body)
		a.AssertCourseNotFoundResponse(t, body)
	})
}
