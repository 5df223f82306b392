package reporting

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coursesqa/courses-api-tests/client"
	"github.com/coursesqa/courses-api-tests/config"
	"github.com/coursesqa/courses-api-tests/framework"
	"github.com/coursesqa/courses-api-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestReporter() (*Reporter, *tracetest.InMemoryExporter) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	return NewReporter(tp, nil), exporter
}

func TestStepRecordsSpan(t *testing.T) {
	r, exporter := newTestReporter()
	ran := false
	r.Step(context.Background(), "Check course", func(ctx context.Context) {
		r.Step(ctx, "Check preview file", func(context.Context) { ran = true })
	})
	assert.True(t, ran)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	child, parent := spans[0], spans[1]
	assert.Equal(t, "Check preview file", child.Name)
	assert.Equal(t, "Check course", parent.Name)
	assert.Equal(t, parent.SpanContext.SpanID(), child.Parent.SpanID())
	assert.Equal(t, codes.Unset, parent.Status.Code)
}

func TestStepMarksFailureAndRepanics(t *testing.T) {
	r, exporter := newTestReporter()
	assert.Panics(t, func() {
		r.Step(context.Background(), "Check status code", func(context.Context) { panic("failed") })
	})
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestStepWithoutProvider(t *testing.T) {
	r := NewReporter(nil, nil)
	ran := false
	r.Step(context.Background(), "noop", func(context.Context) { ran = true })
	assert.True(t, ran)
}

func hasAttribute(attrs []attribute.KeyValue, key string, value attribute.Value) bool {
	for _, kv := range attrs {
		if string(kv.Key) == key && kv.Value == value {
			return true
		}
	}
	return false
}

func TestRequestSpanAndDebugOutput(t *testing.T) {
	r, exporter := newTestReporter()
	var debug framework.CapturingLogger
	ctx := WithDebugLogger(context.Background(), &debug)

	op := client.Operation{Name: "Create course", Method: "POST", Route: servicedef.RouteCourses, Path: servicedef.RouteCourses}
	req, err := http.NewRequest("POST", "http://localhost:8000/api/v1/courses", bytes.NewReader([]byte(`{"title":"Intro"}`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	ctx = r.BeforeRequest(ctx, op, req)
	r.AfterResponse(ctx, op, &client.Response{StatusCode: 200, Body: []byte(`{"course":{}}`)}, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "Create course", spans[0].Name)
	assert.True(t, hasAttribute(spans[0].Attributes, "http.route", attribute.StringValue(servicedef.RouteCourses)))
	assert.True(t, hasAttribute(spans[0].Attributes, "http.response.status_code", attribute.IntValue(200)))

	out := debug.Output()
	require.Len(t, out, 2)
	assert.Contains(t, out[0].Message, "curl -X POST http://localhost:8000/api/v1/courses")
	assert.Contains(t, out[0].Message, `--data-binary '{"title":"Intro"}'`)
	assert.Contains(t, out[1].Message, "HTTP 200")
}

func TestRequestFailureMarksSpan(t *testing.T) {
	r, exporter := newTestReporter()
	op := client.Operation{Name: "Get course", Method: "GET", Route: servicedef.RouteCourse}
	ctx := r.BeforeRequest(context.Background(), op, nil)
	r.AfterResponse(ctx, op, nil, errors.New("connection refused"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Len(t, spans[0].Events, 1)
}

func TestCurlCommand(t *testing.T) {
	req, err := http.NewRequest("GET", "http://localhost:8000/api/v1/courses?userId=abc", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("Accept", "application/json")

	cmd := CurlCommand(req)
	assert.True(t, strings.HasPrefix(cmd, "curl -X GET "), cmd)
	assert.Contains(t, cmd, "-H 'Accept: application/json' -H 'Authorization: Bearer ***'")
	assert.NotContains(t, cmd, "secret-token")
	assert.NotContains(t, cmd, "--data-binary")
	assert.Equal(t, "", CurlCommand(nil))

	req, err = http.NewRequest("POST", "http://localhost/upload", bytes.NewReader([]byte{0xff, 0xfe, 0x00}))
	require.NoError(t, err)
	assert.Contains(t, CurlCommand(req), "'<binary body omitted>'")
}

func TestWriteEnvironmentFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	cfg := &config.Config{
		HTTPClient: config.HTTPClient{URL: "http://localhost:8000", Timeout: time.Second},
		TestUser:   config.TestUser{Email: "qa@example.com", Password: "secret"},
		ReportDir:  dir,
	}
	require.NoError(t, WriteEnvironmentFile(dir, cfg))

	data, err := os.ReadFile(filepath.Join(dir, EnvironmentFile))
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	assert.Contains(t, lines, "http_client.url=http://localhost:8000")
	assert.Contains(t, lines, "test_user.password=***")
	assert.NotContains(t, string(data), "secret")
	var sawOS, sawGo bool
	for _, l := range lines {
		sawOS = sawOS || strings.HasPrefix(l, "os_info=")
		sawGo = sawGo || strings.HasPrefix(l, "go_version=go")
	}
	assert.True(t, sawOS)
	assert.True(t, sawGo)
}
