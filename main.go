package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coursesqa/courses-api-tests/apitests"
	"github.com/coursesqa/courses-api-tests/client"
	"github.com/coursesqa/courses-api-tests/config"
	"github.com/coursesqa/courses-api-tests/coverage"
	"github.com/coursesqa/courses-api-tests/framework"
	"github.com/coursesqa/courses-api-tests/logging"
	"github.com/coursesqa/courses-api-tests/reporting"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const coverageFile = "coverage.json"

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	os.Exit(run(context.Background(), params))
}

func run(ctx context.Context, params commandParams) int {
	cfg, err := config.Load(params.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		return 1
	}
	if err := params.apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		return 1
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging error: %s\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(cfg.ReportDir, 0o755); err != nil {
		logger.Error("cannot create report directory", zap.String("dir", cfg.ReportDir), zap.Error(err))
		return 1
	}
	exporter, err := reporting.NewSpanFileExporter(filepath.Join(cfg.ReportDir, reporting.SpansFile))
	if err != nil {
		logger.Error("cannot create span file", zap.Error(err))
		return 1
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", "courses-api-tests"))),
	)
	defer func() { _ = tp.Shutdown(ctx) }()

	if err := client.WaitForService(ctx, cfg.HTTPClient.URL, cfg.HTTPClient.Timeout, os.Stdout); err != nil {
		logger.Error("courses service is not reachable", zap.String("url", cfg.HTTPClient.URL), zap.Error(err))
		return 1
	}

	reporter := reporting.NewReporter(tp, logging.Component(logger, "steps"))
	tracker := coverage.NewTracker()
	env, err := apitests.NewEnvironment(ctx, cfg, logging.Component(logger, "clients"), reporter, tracker)
	if err != nil {
		logger.Error("cannot set up test environment", zap.Error(err))
		return 1
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running test suite")

	testLogger := framework.MultiTestLogger(
		framework.ConsoleTestLogger{
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		},
		framework.ZapTestLogger{Logger: logging.Component(logger, "tests")},
	)
	results := apitests.RunTestSuite(ctx, env, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)

	writeReports(cfg, tracker, logger)

	if !results.OK() {
		return 1
	}
	return 0
}

func writeReports(cfg *config.Config, tracker *coverage.Tracker, logger *zap.Logger) {
	report, err := tracker.Report()
	if err != nil {
		logger.Warn("cannot build coverage report", zap.Error(err))
	} else {
		fmt.Println()
		report.Print(os.Stdout)
		if err := report.WriteFile(filepath.Join(cfg.ReportDir, coverageFile)); err != nil {
			logger.Warn("cannot write coverage report", zap.Error(err))
		}
	}
	if err := reporting.WriteEnvironmentFile(cfg.ReportDir, cfg); err != nil {
		logger.Warn("cannot write environment file", zap.Error(err))
	}
}
