package client

import (
	"context"

	"github.com/coursesqa/courses-api-tests/schema"
	"github.com/coursesqa/courses-api-tests/servicedef"
)

type ExercisesClient struct {
	transport *Transport
}

func NewExercisesClient(t *Transport) *ExercisesClient {
	return &ExercisesClient{transport: t}
}

// GetExercisesAPI lists the exercises of one course.
func (c *ExercisesClient) GetExercisesAPI(ctx context.Context, query schema.GetExercisesQuery) (*Response, error) {
	values, err := schema.Query(query)
	if err != nil {
		return nil, err
	}
	return c.transport.Get(ctx, "Get exercises", servicedef.RouteExercises, values)
}

func (c *ExercisesClient) GetExercises(ctx context.Context, query schema.GetExercisesQuery) (schema.GetExercisesResponse, error) {
	return decode[schema.GetExercisesResponse](c.GetExercisesAPI(ctx, query))
}

func (c *ExercisesClient) GetExerciseAPI(ctx context.Context, exerciseID string) (*Response, error) {
	return c.transport.Get(ctx, "Get exercise", servicedef.RouteExercise, nil, exerciseID)
}

func (c *ExercisesClient) GetExercise(ctx context.Context, exerciseID string) (schema.GetExerciseResponse, error) {
	return decode[schema.GetExerciseResponse](c.GetExerciseAPI(ctx, exerciseID))
}

func (c *ExercisesClient) CreateExerciseAPI(ctx context.Context, request schema.CreateExerciseRequest) (*Response, error) {
	return c.transport.PostJSON(ctx, "Create exercise", servicedef.RouteExercises, request)
}

func (c *ExercisesClient) CreateExercise(
	ctx context.Context,
	request schema.CreateExerciseRequest,
) (schema.CreateExerciseResponse, error) {
	return decode[schema.CreateExerciseResponse](c.CreateExerciseAPI(ctx, request))
}

func (c *ExercisesClient) UpdateExerciseAPI(
	ctx context.Context,
	exerciseID string,
	request schema.UpdateExerciseRequest,
) (*Response, error) {
	return c.transport.PatchJSON(ctx, "Update exercise", servicedef.RouteExercise, request, exerciseID)
}

func (c *ExercisesClient) UpdateExercise(
	ctx context.Context,
	exerciseID string,
	request schema.UpdateExerciseRequest,
) (schema.UpdateExerciseResponse, error) {
	return decode[schema.UpdateExerciseResponse](c.UpdateExerciseAPI(ctx, exerciseID, request))
}

func (c *ExercisesClient) DeleteExerciseAPI(ctx context.Context, exerciseID string) (*Response, error) {
	return c.transport.Delete(ctx, "Delete exercise", servicedef.RouteExercise, exerciseID)
}
