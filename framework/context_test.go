package framework

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingTestLogger struct {
	events []string
}

func (r *recordingTestLogger) TestStarted(id TestID) { r.events = append(r.events, "start "+id.String()) }
func (r *recordingTestLogger) TestError(id TestID, err error) {
	r.events = append(r.events, "error "+id.String()+": "+err.Error())
}
func (r *recordingTestLogger) TestFinished(id TestID, failed bool, _ CapturedOutput) {
	if failed {
		r.events = append(r.events, "failed "+id.String())
	} else {
		r.events = append(r.events, "passed "+id.String())
	}
}
func (r *recordingTestLogger) TestSkipped(id TestID, reason string) {
	r.events = append(r.events, "skipped "+id.String()+" "+reason)
}

func TestRunCollectsResults(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("group", func(c *Context) {
			c.Run("passes", func(c *Context) {})
			c.Run("fails", func(c *Context) {
				require.Equal(c, 1, 2)
				panic("not reached")
			})
			c.Run("skips", func(c *Context) { c.SkipWithReason("not supported") })
		})
	})

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "group/fails", results.Failures[0].TestID.String())

	skipped, ok := results.Find("group", "skips")
	require.True(t, ok)
	assert.True(t, skipped.Skipped)
	passed, ok := results.Find("group", "passes")
	require.True(t, ok)
	assert.Empty(t, passed.Errors)

	assert.Contains(t, logger.events, "start group/passes")
	assert.Contains(t, logger.events, "passed group/passes")
	assert.Contains(t, logger.events, "failed group/fails")
	assert.Contains(t, logger.events, "skipped group/skips not supported")
	assert.Contains(t, logger.events, "passed group")
}

func TestFailureMessageIsReformatted(t *testing.T) {
	logger := &recordingTestLogger{}
	Run(nil, logger, func(c *Context) {
		c.Run("x", func(c *Context) { require.Fail(c, "Invalid value of \"x\"") })
	})
	var errorEvent string
	for _, e := range logger.events {
		if strings.HasPrefix(e, "error x") {
			errorEvent = e
		}
	}
	assert.Equal(t, `error x: Invalid value of "x"`, errorEvent)
}

func TestUnexpectedPanicIsReported(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("boom", func(c *Context) { panic("boom") })
	})
	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test: boom")
}

func TestFilterExcludesTests(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("^courses/delete"))
	ran := map[string]bool{}
	Run(filters.AsFilter, nil, func(c *Context) {
		c.Run("courses", func(c *Context) {
			for _, name := range []string{"create", "delete"} {
				c.Run(name, func(c *Context) { ran[c.ID().String()] = true })
			}
		})
	})
	assert.True(t, ran["courses/create"])
	assert.False(t, ran["courses/delete"])
}

func TestDeferRunsInReverseOrderEvenOnFailure(t *testing.T) {
	var order []string
	Run(nil, nil, func(c *Context) {
		c.Run("t", func(c *Context) {
			c.Defer(func() { order = append(order, "first") })
			c.Defer(func() { order = append(order, "second") })
			c.Defer(func() { panic("cleanup panics") })
			c.FailNow()
		})
	})
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestSubtestIDsDoNotAlias(t *testing.T) {
	var ids []string
	Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Run("b", func(c *Context) { ids = append(ids, c.ID().String()) })
			c.Run("c", func(c *Context) { ids = append(ids, c.ID().String()) })
		})
	})
	assert.Equal(t, []string{"a/b", "a/c"}, ids)
}

func TestRegexFilters(t *testing.T) {
	var f RegexFilters
	assert.True(t, f.AsFilter(TestID{Path: []string{"anything"}}))
	require.NoError(t, f.MustMatch.Set("files"))
	assert.True(t, f.AsFilter(TestID{Path: []string{"files", "create"}}))
	assert.False(t, f.AsFilter(TestID{Path: []string{"courses"}}))
	assert.Error(t, f.MustMatch.Set("("))
	assert.Equal(t, `"files"`, f.MustMatch.String())

	var buf bytes.Buffer
	PrintFilterDescription(&buf, f)
	assert.Contains(t, buf.String(), `skip any not matching "files"`)
}

func TestMultiLogger(t *testing.T) {
	var a, b CapturingLogger
	MultiLogger(&a, &b, NullLogger()).Printf("hello %s", "there")
	require.Len(t, a.Output(), 1)
	assert.Equal(t, "hello there", a.Output()[0].Message)
	assert.Equal(t, a.Output()[0].Message, b.Output()[0].Message)
}

func TestConsoleTestLogger(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	l := ConsoleTestLogger{DebugOutputOnFailure: true, Output: &buf}
	id := TestID{Path: []string{"files", "get"}}
	var debug CapturingLogger
	debug.Printf("GET /api/v1/files/x")

	l.TestStarted(id)
	l.TestError(id, errors.New("line one\nline two"))
	l.TestFinished(id, true, debug.Output())
	l.TestSkipped(id, "")
	out := buf.String()
	assert.Contains(t, out, "[files/get]\n")
	assert.Contains(t, out, "  line one\n  line two\n")
	assert.Contains(t, out, "FAILED: files/get")
	assert.Contains(t, out, "DEBUG [")
	assert.Contains(t, out, "GET /api/v1/files/x")
	assert.Contains(t, out, "SKIPPED: files/get")

	buf.Reset()
	PrintResults(&buf, Results{Tests: []TestResult{{}}})
	assert.Contains(t, buf.String(), "All tests passed")
	buf.Reset()
	failed := TestResult{TestID: id}
	PrintResults(&buf, Results{Tests: []TestResult{failed}, Failures: []TestResult{failed}})
	assert.Contains(t, buf.String(), "FAILED TESTS (0 passed, 1 failed, 0 skipped)")
	assert.Contains(t, buf.String(), "files/get")
}

func TestSummaryCountsLeafTestsOnly(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("group", func(c *Context) {
			c.Run("passes", func(c *Context) {})
			c.Run("fails", func(c *Context) { require.Fail(c, "boom") })
			c.Run("skips", func(c *Context) { c.SkipWithReason("not today") })
		})
	})
	passed, failed, skipped := results.Summary()
	assert.Equal(t, 1, passed)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, skipped)
}

func TestMultiTestLoggerAndZapTestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	recording := &recordingTestLogger{}
	logger := MultiTestLogger(recording, ZapTestLogger{Logger: zap.New(core)})

	Run(nil, logger, func(c *Context) {
		c.Run("passes", func(c *Context) {})
		c.Run("fails", func(c *Context) { require.Fail(c, "boom") })
	})

	assert.Contains(t, recording.events, "passed passes")
	assert.Contains(t, recording.events, "failed fails")
	assert.Equal(t, 1, logs.FilterMessage("test passed").Len())
	assert.Equal(t, 1, logs.FilterMessage("test failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("test error").Len())
}
