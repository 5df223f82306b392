package framework

import (
	"go.uber.org/zap"
)

// TestLogger receives test lifecycle events as a run progresses. Errors are reported as
// they happen; debug output captured during a test is passed along when it finishes.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (nullTestLogger) TestStarted(TestID)                        {}
func (nullTestLogger) TestError(TestID, error)                   {}
func (nullTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (nullTestLogger) TestSkipped(TestID, string)                {}

type multiTestLogger []TestLogger

// MultiTestLogger forwards every event to each of loggers in order.
func MultiTestLogger(loggers ...TestLogger) TestLogger {
	return multiTestLogger(loggers)
}

func (m multiTestLogger) TestStarted(id TestID) {
	for _, l := range m {
		l.TestStarted(id)
	}
}

func (m multiTestLogger) TestError(id TestID, err error) {
	for _, l := range m {
		l.TestError(id, err)
	}
}

func (m multiTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	for _, l := range m {
		l.TestFinished(id, failed, debugOutput)
	}
}

func (m multiTestLogger) TestSkipped(id TestID, reason string) {
	for _, l := range m {
		l.TestSkipped(id, reason)
	}
}

// ZapTestLogger writes lifecycle events as structured log entries. Debug output is not
// repeated; it already went to the console logger.
type ZapTestLogger struct {
	Logger *zap.Logger
}

func (z ZapTestLogger) TestStarted(id TestID) {
	z.Logger.Debug("test started", zap.Stringer("test", id))
}

func (z ZapTestLogger) TestError(id TestID, err error) {
	z.Logger.Warn("test error", zap.Stringer("test", id), zap.Error(err))
}

func (z ZapTestLogger) TestFinished(id TestID, failed bool, _ CapturedOutput) {
	if failed {
		z.Logger.Error("test failed", zap.Stringer("test", id))
		return
	}
	z.Logger.Info("test passed", zap.Stringer("test", id))
}

func (z ZapTestLogger) TestSkipped(id TestID, reason string) {
	z.Logger.Info("test skipped", zap.Stringer("test", id), zap.String("reason", reason))
}
