package reporting

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SpansFile is the name of the file, inside the report directory, that steps and requests
// are exported to.
const SpansFile = "spans.jsonl"

// SpanFileExporter writes finished spans to a file as JSON lines, one span per line, and
// closes the file on shutdown.
type SpanFileExporter struct {
	*stdouttrace.Exporter
	file      *os.File
	closeOnce sync.Once
}

var _ sdktrace.SpanExporter = (*SpanFileExporter)(nil)

func NewSpanFileExporter(path string) (*SpanFileExporter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create span file: %w", err)
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(f))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create span exporter: %w", err)
	}
	return &SpanFileExporter{Exporter: exporter, file: f}, nil
}

func (e *SpanFileExporter) Shutdown(ctx context.Context) error {
	err := e.Exporter.Shutdown(ctx)
	e.closeOnce.Do(func() {
		err = errors.Join(err, e.file.Close())
	})
	return err
}
