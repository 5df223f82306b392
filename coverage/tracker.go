// Package coverage records which routes of the courses service a test run exercised.
package coverage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"

	"github.com/coursesqa/courses-api-tests/client"
	"github.com/coursesqa/courses-api-tests/servicedef"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const metricName = "courses_api_requests_total"

// Tracker is a client.Interceptor that counts requests per method, route template and
// response status. Each Tracker owns its registry, so separate runs never share counts.
type Tracker struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

var _ client.Interceptor = (*Tracker)(nil)

func NewTracker() *Tracker {
	t := &Tracker{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricName,
			Help: "Requests sent to the courses service, by route template and response status.",
		}, []string{"method", "route", "status"}),
	}
	t.registry.MustRegister(t.requests)
	return t
}

// Registry exposes the underlying metrics, e.g. for a push gateway.
func (t *Tracker) Registry() *prometheus.Registry { return t.registry }

func (t *Tracker) BeforeRequest(ctx context.Context, _ client.Operation, _ *http.Request) context.Context {
	return ctx
}

func (t *Tracker) AfterResponse(_ context.Context, op client.Operation, resp *client.Response, err error) {
	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.requests.WithLabelValues(op.Method, op.Route, status).Inc()
}

// EndpointCoverage is the tally for one endpoint.
type EndpointCoverage struct {
	Method   string         `json:"method"`
	Route    string         `json:"route"`
	Calls    int            `json:"calls"`
	Statuses map[string]int `json:"statuses,omitempty"`
}

func (e EndpointCoverage) Covered() bool { return e.Calls > 0 }

type Report struct {
	Endpoints []EndpointCoverage `json:"endpoints"`
}

// Report lists every known endpoint, plus any unknown route that was called, with its
// counts.
func (t *Tracker) Report() (Report, error) {
	families, err := t.registry.Gather()
	if err != nil {
		return Report{}, fmt.Errorf("failed to gather coverage metrics: %w", err)
	}
	byEndpoint := make(map[servicedef.Endpoint]*EndpointCoverage)
	var order []servicedef.Endpoint
	for _, e := range servicedef.Endpoints {
		byEndpoint[e] = &EndpointCoverage{Method: e.Method, Route: e.Route}
		order = append(order, e)
	}
	var extra []servicedef.Endpoint
	for _, mf := range families {
		if mf.GetName() != metricName {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := labelMap(m)
			key := servicedef.Endpoint{Method: labels["method"], Route: labels["route"]}
			ec, ok := byEndpoint[key]
			if !ok {
				ec = &EndpointCoverage{Method: key.Method, Route: key.Route}
				byEndpoint[key] = ec
				extra = append(extra, key)
			}
			n := int(m.GetCounter().GetValue())
			ec.Calls += n
			if ec.Statuses == nil {
				ec.Statuses = make(map[string]int)
			}
			ec.Statuses[labels["status"]] += n
		}
	}
	sort.Slice(extra, func(i, j int) bool {
		if extra[i].Route != extra[j].Route {
			return extra[i].Route < extra[j].Route
		}
		return extra[i].Method < extra[j].Method
	})
	var r Report
	for _, e := range append(order, extra...) {
		r.Endpoints = append(r.Endpoints, *byEndpoint[e])
	}
	return r, nil
}

func labelMap(m *dto.Metric) map[string]string {
	ret := make(map[string]string, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		ret[lp.GetName()] = lp.GetValue()
	}
	return ret
}

// Covered counts endpoints with at least one call.
func (r Report) Covered() int {
	n := 0
	for _, e := range r.Endpoints {
		if e.Covered() {
			n++
		}
	}
	return n
}

// Percent is the share of endpoints exercised, from 0 to 100.
func (r Report) Percent() float64 {
	if len(r.Endpoints) == 0 {
		return 0
	}
	return float64(r.Covered()) * 100 / float64(len(r.Endpoints))
}

// Print writes a plain-text summary.
func (r Report) Print(w io.Writer) {
	fmt.Fprintf(w, "API coverage: %d/%d endpoints (%.1f%%)\n", r.Covered(), len(r.Endpoints), r.Percent())
	for _, e := range r.Endpoints {
		mark := " "
		if e.Covered() {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %-6s %s", mark, e.Method, e.Route)
		if e.Covered() {
			fmt.Fprintf(w, " (%d)", e.Calls)
		}
		fmt.Fprintln(w)
	}
}

// WriteFile saves the report as JSON.
func (r Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
