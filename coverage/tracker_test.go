package coverage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/coursesqa/courses-api-tests/client"
	"github.com/coursesqa/courses-api-tests/servicedef"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *Tracker, method, route string, status int) {
	op := client.Operation{Method: method, Route: route}
	ctx := t.BeforeRequest(context.Background(), op, nil)
	t.AfterResponse(ctx, op, &client.Response{StatusCode: status}, nil)
}

func TestTrackerCountsByRouteTemplateAndStatus(t *testing.T) {
	tr := NewTracker()
	record(tr, "GET", servicedef.RouteCourse, 200)
	record(tr, "GET", servicedef.RouteCourse, 200)
	record(tr, "GET", servicedef.RouteCourse, 404)
	tr.AfterResponse(context.Background(), client.Operation{Method: "GET", Route: servicedef.RouteCourse}, nil, errors.New("boom"))

	assert.Equal(t, float64(2), testutil.ToFloat64(tr.requests.WithLabelValues("GET", servicedef.RouteCourse, "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(tr.requests.WithLabelValues("GET", servicedef.RouteCourse, "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(tr.requests.WithLabelValues("GET", servicedef.RouteCourse, "error")))
}

func TestTrackersDoNotShareCounts(t *testing.T) {
	a, b := NewTracker(), NewTracker()
	record(a, "POST", servicedef.RouteCourses, 200)
	assert.Equal(t, 1, testutil.CollectAndCount(a.requests))
	assert.Equal(t, 0, testutil.CollectAndCount(b.requests))
}

func TestReport(t *testing.T) {
	tr := NewTracker()
	record(tr, "POST", servicedef.RouteCourses, 200)
	record(tr, "GET", servicedef.RouteCourse, 200)
	record(tr, "GET", servicedef.RouteCourse, 404)
	record(tr, "GET", "/api/v1/unknown", 404)

	r, err := tr.Report()
	require.NoError(t, err)
	require.Len(t, r.Endpoints, len(servicedef.Endpoints)+1)
	assert.Equal(t, 3, r.Covered())

	var get EndpointCoverage
	for _, e := range r.Endpoints {
		if e.Method == "GET" && e.Route == servicedef.RouteCourse {
			get = e
		}
	}
	assert.Equal(t, 2, get.Calls)
	assert.Equal(t, map[string]int{"200": 1, "404": 1}, get.Statuses)
	assert.Equal(t, "/api/v1/unknown", r.Endpoints[len(r.Endpoints)-1].Route)

	var buf bytes.Buffer
	r.Print(&buf)
	assert.Contains(t, buf.String(), "API coverage: 3/")
	assert.Contains(t, buf.String(), "[x] POST   /api/v1/courses (1)")
	assert.Contains(t, buf.String(), "[ ] DELETE /api/v1/courses/{course_id}")
}

func TestReportWriteFile(t *testing.T) {
	tr := NewTracker()
	record(tr, "POST", servicedef.RouteLogin, 200)
	r, err := tr.Report()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "coverage.json")
	require.NoError(t, r.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var back Report
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}

func TestEmptyReport(t *testing.T) {
	assert.Equal(t, float64(0), Report{}.Percent())
}
