package apitests

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coursesqa/courses-api-tests/assertions"
	"github.com/coursesqa/courses-api-tests/config"
	"github.com/coursesqa/courses-api-tests/coverage"
	"github.com/coursesqa/courses-api-tests/fakeservice"
	"github.com/coursesqa/courses-api-tests/framework"
	"github.com/coursesqa/courses-api-tests/reporting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap/zaptest"
)

var _ assertions.Stepper = (*T)(nil)

func testConfig(url string) *config.Config {
	return &config.Config{
		HTTPClient: config.HTTPClient{URL: url, Timeout: 10 * time.Second},
		TestUser:   config.TestUser{Email: "suite-user@example.com", Password: "suite-password"},
		TestData:   config.TestData{ImagePNGFile: filepath.Join("..", "testdata", "image.png")},
		Log:        config.Log{Level: "debug", Format: "console"},
		Faker:      config.Faker{Seed: 42},
		ReportDir:  "allure-results",
	}
}

type suiteRun struct {
	results  framework.Results
	exporter *tracetest.InMemoryExporter
	tracker  *coverage.Tracker
}

func runSuiteAgainstFake(t *testing.T, filter framework.Filter) suiteRun {
	service := fakeservice.New(fakeservice.Options{Logger: zaptest.NewLogger(t)})
	server := httptest.NewServer(service.Handler())
	defer server.Close()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	reporter := reporting.NewReporter(tp, zaptest.NewLogger(t))
	tracker := coverage.NewTracker()

	env, err := NewEnvironment(context.Background(), testConfig(server.URL), zaptest.NewLogger(t), reporter, tracker)
	require.NoError(t, err)

	results := RunTestSuite(context.Background(), env, filter, nil)
	return suiteRun{results: results, exporter: exporter, tracker: tracker}
}

func failureMessages(results framework.Results) string {
	var b strings.Builder
	for _, f := range results.Failures {
		b.WriteString(f.TestID.String())
		for _, e := range f.Errors {
			b.WriteString("\n  " + e.Error())
		}
		b.WriteString("\n")
	}
	return b.String()
}

func TestSuitePassesAgainstFakeService(t *testing.T) {
	run := runSuiteAgainstFake(t, nil)
	require.True(t, run.results.OK(), failureMessages(run.results))

	for _, path := range [][]string{
		{"authentication", "login"},
		{"users", "create user with gmail.com email"},
		{"files", "get file with incorrect file id"},
		{"courses", "get courses"},
		{"exercises", "delete exercise"},
	} {
		_, found := run.results.Find(path...)
		assert.True(t, found, "expected a result for %v", path)
	}
}

func TestSuiteCoversEveryEndpoint(t *testing.T) {
	run := runSuiteAgainstFake(t, nil)
	report, err := run.tracker.Report()
	require.NoError(t, err)
	for _, e := range report.Endpoints {
		assert.True(t, e.Covered(), "%s %s was not called", e.Method, e.Route)
	}
	assert.Equal(t, 100.0, report.Percent())
}

func TestSuiteRecordsStepsAsSpans(t *testing.T) {
	filter := func(id framework.TestID) bool {
		return len(id.Path) == 0 || id.Path[0] == "files"
	}
	run := runSuiteAgainstFake(t, filter)
	require.True(t, run.results.OK(), failureMessages(run.results))

	names := make(map[string]bool)
	for _, s := range run.exporter.GetSpans() {
		names[s.Name] = true
	}
	assert.True(t, names["files / get file"])
	assert.True(t, names["Check get file response"])
	assert.True(t, names["Get file"])
	assert.False(t, names["courses / get course"])
}

func TestFilterSkipsExcludedTests(t *testing.T) {
	filter := func(id framework.TestID) bool {
		return len(id.Path) < 2 || id.Path[1] == "login"
	}
	run := runSuiteAgainstFake(t, filter)
	require.True(t, run.results.OK(), failureMessages(run.results))

	_, found := run.results.Find("authentication", "login")
	assert.True(t, found)
	_, found = run.results.Find("authentication", "refresh token")
	assert.False(t, found)
}
