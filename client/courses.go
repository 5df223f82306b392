package client

import (
	"context"

	"github.com/coursesqa/courses-api-tests/schema"
	"github.com/coursesqa/courses-api-tests/servicedef"
)

type CoursesClient struct {
	transport *Transport
}

func NewCoursesClient(t *Transport) *CoursesClient {
	return &CoursesClient{transport: t}
}

func (c *CoursesClient) GetCoursesAPI(ctx context.Context, query schema.GetCoursesQuery) (*Response, error) {
	values, err := schema.Query(query)
	if err != nil {
		return nil, err
	}
	return c.transport.Get(ctx, "Get courses", servicedef.RouteCourses, values)
}

func (c *CoursesClient) GetCourses(ctx context.Context, query schema.GetCoursesQuery) (schema.GetCoursesResponse, error) {
	return decode[schema.GetCoursesResponse](c.GetCoursesAPI(ctx, query))
}

func (c *CoursesClient) GetCourseAPI(ctx context.Context, courseID string) (*Response, error) {
	return c.transport.Get(ctx, "Get course", servicedef.RouteCourse, nil, courseID)
}

func (c *CoursesClient) GetCourse(ctx context.Context, courseID string) (schema.GetCourseResponse, error) {
	return decode[schema.GetCourseResponse](c.GetCourseAPI(ctx, courseID))
}

func (c *CoursesClient) CreateCourseAPI(ctx context.Context, request schema.CreateCourseRequest) (*Response, error) {
	return c.transport.PostJSON(ctx, "Create course", servicedef.RouteCourses, request)
}

func (c *CoursesClient) CreateCourse(ctx context.Context, request schema.CreateCourseRequest) (schema.CreateCourseResponse, error) {
	return decode[schema.CreateCourseResponse](c.CreateCourseAPI(ctx, request))
}

func (c *CoursesClient) UpdateCourseAPI(ctx context.Context, courseID string, request schema.UpdateCourseRequest) (*Response, error) {
	return c.transport.PatchJSON(ctx, "Update course", servicedef.RouteCourse, request, courseID)
}

func (c *CoursesClient) UpdateCourse(
	ctx context.Context,
	courseID string,
	request schema.UpdateCourseRequest,
) (schema.UpdateCourseResponse, error) {
	return decode[schema.UpdateCourseResponse](c.UpdateCourseAPI(ctx, courseID, request))
}

func (c *CoursesClient) DeleteCourseAPI(ctx context.Context, courseID string) (*Response, error) {
	return c.transport.Delete(ctx, "Delete course", servicedef.RouteCourse, courseID)
}
