// Package reporting turns steps and requests into trace spans and debug output, and writes
// the environment description that accompanies a test report.
package reporting

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coursesqa/courses-api-tests/client"
	"github.com/coursesqa/courses-api-tests/framework"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const (
	tracerName       = "github.com/coursesqa/courses-api-tests"
	maxLoggedBodyLen = 2000
)

// Reporter records steps as spans. It is also a client.Interceptor that wraps each request
// in a span of its own and writes it to the test's debug log as a curl command.
type Reporter struct {
	tracer trace.Tracer
	logger *zap.Logger
}

var _ client.Interceptor = (*Reporter)(nil)

// NewReporter creates a Reporter. A nil provider or logger disables that output.
func NewReporter(tp trace.TracerProvider, logger *zap.Logger) *Reporter {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{tracer: tp.Tracer(tracerName), logger: logger}
}

// Step runs action inside a span named title. If action does not return normally (for
// instance because an assertion called FailNow) the span is marked as failed before the
// panic continues.
func (r *Reporter) Step(ctx context.Context, title string, action func(context.Context)) {
	ctx, span := r.tracer.Start(ctx, title)
	r.logger.Info(title)
	completed := false
	defer func() {
		if !completed {
			span.SetStatus(codes.Error, "step failed")
		}
		span.End()
	}()
	action(ctx)
	completed = true
}

type debugLoggerKey struct{}

// WithDebugLogger attaches a per-test debug logger to ctx. Requests made with that context
// are written to it.
func WithDebugLogger(ctx context.Context, logger framework.Logger) context.Context {
	return context.WithValue(ctx, debugLoggerKey{}, logger)
}

func debugLogger(ctx context.Context) framework.Logger {
	if l, ok := ctx.Value(debugLoggerKey{}).(framework.Logger); ok && l != nil {
		return l
	}
	return framework.NullLogger()
}

func (r *Reporter) BeforeRequest(ctx context.Context, op client.Operation, req *http.Request) context.Context {
	ctx, _ = r.tracer.Start(ctx, op.Name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", op.Method),
			attribute.String("http.route", op.Route),
			attribute.String("url.path", op.Path),
		))
	debugLogger(ctx).Printf("%s: %s", op.Name, CurlCommand(req))
	return ctx
}

func (r *Reporter) AfterResponse(ctx context.Context, op client.Operation, resp *client.Response, err error) {
	span := trace.SpanFromContext(ctx)
	defer span.End()
	logger := debugLogger(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Printf("%s failed: %s", op.Name, err)
		r.logger.Warn("request failed", zap.String("operation", op.Name), zap.Error(err))
		return
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 500 {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}
	logger.Printf("%s: HTTP %d %s", op.Name, resp.StatusCode, truncate(resp.Text(), maxLoggedBodyLen))
	r.logger.Debug("response received", zap.String("operation", op.Name), zap.Int("status", resp.StatusCode))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Label attaches an attribute such as the feature a test belongs to to the span in ctx.
func Label(ctx context.Context, key, value string) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String(key, value))
}
