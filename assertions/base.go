// Package assertions compares actual responses with expected values field by field. Every
// check fails the test immediately (through FailNow) with a message naming the field and
// both values; mismatches are never aggregated.
package assertions

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// TestingT is what the assertions need from a test: *testing.T and the framework's
// Context both satisfy it.
type TestingT = require.TestingT

// Stepper is implemented by test contexts that report named steps. When the TestingT passed
// to an assertion is also a Stepper, every check runs as its own step.
type Stepper interface {
	Step(title string, action func())
}

type tHelper interface {
	Helper()
}

func step(t TestingT, title string, action func()) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if s, ok := t.(Stepper); ok {
		s.Step(title, action)
		return
	}
	action()
}

func AssertStatusCode(t TestingT, actual, expected int) {
	step(t, fmt.Sprintf("Check that response status code equals %d", expected), func() {
		if actual != expected {
			require.Fail(t, fmt.Sprintf("Invalid response status code. Expected: %d. Actual: %d", expected, actual))
		}
	})
}

// AssertEqual fails unless actual equals expected. name identifies the field in the failure
// message.
func AssertEqual(t TestingT, actual, expected interface{}, name string) {
	step(t, fmt.Sprintf("Check that %q equals %v", name, expected), func() {
		if !objectsAreEqual(actual, expected) {
			require.Fail(t, fmt.Sprintf("Invalid value of %q. Expected: %v. Actual: %v", name, expected, actual))
		}
	})
}

func objectsAreEqual(actual, expected interface{}) bool {
	if a, ok := actual.(ldvalue.Value); ok {
		if e, ok := expected.(ldvalue.Value); ok {
			return a.Equal(e)
		}
	}
	return assert.ObjectsAreEqual(expected, actual)
}

// AssertIsTrue fails if actual is empty: nil, false, zero, "" or an empty collection. It is
// used for generated values such as tokens whose presence matters but whose content is
// unknown.
func AssertIsTrue(t TestingT, actual interface{}, name string) {
	step(t, fmt.Sprintf("Check that %q is set", name), func() {
		if isEmpty(actual) {
			require.Fail(t, fmt.Sprintf("Invalid value of %q. Expected a non-empty value. Actual: %v", name, actual))
		}
	})
}

func isEmpty(v interface{}) bool {
	return !assert.NotEmpty(discardT{}, v)
}

type discardT struct{}

func (discardT) Errorf(string, ...interface{}) {}

// AssertLength fails unless both collections have the same length. It is checked before any
// element-wise comparison.
func AssertLength[A, E any](t TestingT, actual []A, expected []E, name string) {
	step(t, fmt.Sprintf("Check that length of %q equals %d", name, len(expected)), func() {
		if len(actual) != len(expected) {
			require.Fail(t, fmt.Sprintf("Invalid length of %q. Expected: %d. Actual: %d", name, len(expected), len(actual)))
		}
	})
}

// RequireNoError fails if a request could not be made or its response could not be decoded.
func RequireNoError(t TestingT, err error) {
	if err != nil {
		step(t, "Check that the request succeeded", func() {
			require.NoError(t, err)
		})
	}
}
