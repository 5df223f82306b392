// Package client contains one typed client per resource of the courses service. Every
// operation is exactly one HTTP request; reporting and coverage hook in through
// Interceptors rather than being part of the call path.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coursesqa/courses-api-tests/schema"
	"github.com/coursesqa/courses-api-tests/servicedef"

	"go.uber.org/zap"
)

// Response is the transport-level result of a call: whatever the server sent back,
// regardless of status.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) Text() string { return string(r.Body) }

// Operation identifies a call for interceptors.
type Operation struct {
	// Name is a short human-readable description such as "Get course".
	Name string

	Method string

	// Route is the template from servicedef, e.g. "/api/v1/courses/{course_id}".
	Route string

	// Path is Route with its parameters filled in.
	Path string
}

// Interceptor observes every call a Transport makes. BeforeRequest may return a derived
// context (for instance one carrying a span); the same context is passed to AfterResponse.
// Interceptors must not change the request outcome.
type Interceptor interface {
	BeforeRequest(ctx context.Context, op Operation, req *http.Request) context.Context
	AfterResponse(ctx context.Context, op Operation, resp *Response, err error)
}

// Transport is the already-configured HTTP client that all resource clients share. It
// never authenticates by itself; see NewPrivateHTTPClient.
type Transport struct {
	HTTP         *http.Client
	BaseURL      string
	Interceptors []Interceptor
	Logger       *zap.Logger
}

func (t *Transport) httpClient() *http.Client {
	if t.HTTP == nil {
		return http.DefaultClient
	}
	return t.HTTP
}

func (t *Transport) logger() *zap.Logger {
	if t.Logger == nil {
		return zap.NewNop()
	}
	return t.Logger
}

// Get sends a GET to route, with params substituted into the template and query appended.
func (t *Transport) Get(ctx context.Context, name, route string, query url.Values, params ...string) (*Response, error) {
	return t.do(ctx, name, http.MethodGet, route, params, query, nil, "")
}

// PostJSON sends body encoded with its wire keys.
func (t *Transport) PostJSON(ctx context.Context, name, route string, body interface{}, params ...string) (*Response, error) {
	data, err := schema.Encode(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", name, err)
	}
	return t.do(ctx, name, http.MethodPost, route, params, nil, data, "application/json")
}

func (t *Transport) PatchJSON(ctx context.Context, name, route string, body interface{}, params ...string) (*Response, error) {
	data, err := schema.Encode(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", name, err)
	}
	return t.do(ctx, name, http.MethodPatch, route, params, nil, data, "application/json")
}

func (t *Transport) Delete(ctx context.Context, name, route string, params ...string) (*Response, error) {
	return t.do(ctx, name, http.MethodDelete, route, params, nil, nil, "")
}

// PostForm sends a pre-encoded body with the given content type, such as a multipart form.
func (t *Transport) PostForm(ctx context.Context, name, route string, body []byte, contentType string) (*Response, error) {
	return t.do(ctx, name, http.MethodPost, route, nil, nil, body, contentType)
}

func (t *Transport) do(
	ctx context.Context,
	name, method, route string,
	params []string,
	query url.Values,
	body []byte,
	contentType string,
) (*Response, error) {
	op := Operation{Name: name, Method: method, Route: route, Path: servicedef.Expand(route, params...)}

	target := strings.TrimRight(t.BaseURL, "/") + op.Path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	for _, ic := range t.Interceptors {
		ctx = ic.BeforeRequest(ctx, op, req)
	}
	req = req.WithContext(ctx)

	resp, err := t.send(req)
	for i := len(t.Interceptors) - 1; i >= 0; i-- {
		t.Interceptors[i].AfterResponse(ctx, op, resp, err)
	}
	if err != nil {
		t.logger().Debug("request failed", zap.String("method", method), zap.String("path", op.Path), zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", method, op.Path, err)
	}
	t.logger().Debug("request completed",
		zap.String("method", method), zap.String("path", op.Path), zap.Int("status", resp.StatusCode))
	return resp, nil
}

func (t *Transport) send(req *http.Request) (*Response, error) {
	resp, err := t.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// decode parses a response body into T. A body that does not match T is returned as the
// unmodified *schema.Error.
func decode[T any](resp *Response, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return schema.Decode[T](resp.Body)
}

// WaitForService polls url until it answers with any HTTP status, or until timeout.
func WaitForService(ctx context.Context, url string, timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Connecting to courses service at %s", url)
	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := http.DefaultClient.Do(req)
		if err == nil {
			resp.Body.Close()
			fmt.Fprintln(output)
			return nil
		}
		if ctx.Err() != nil || !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(time.Millisecond * 100)
	}
}
