package framework

import "strings"

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Summary counts leaf tests only; a group that contains subtests is not a test of its own.
func (r Results) Summary() (passed, failed, skipped int) {
	failures := make(map[string]bool, len(r.Failures))
	for _, f := range r.Failures {
		failures[f.TestID.String()] = true
	}
	for _, t := range r.Tests {
		if len(t.TestID.Path) == 0 || r.hasChildren(t.TestID) {
			continue
		}
		switch {
		case t.Skipped:
			skipped++
		case failures[t.TestID.String()]:
			failed++
		default:
			passed++
		}
	}
	return passed, failed, skipped
}

func (r Results) hasChildren(id TestID) bool {
	prefix := id.String() + "/"
	for _, t := range r.Tests {
		if strings.HasPrefix(t.TestID.String(), prefix) {
			return true
		}
	}
	return false
}

// Find returns the result for the test with the given path.
func (r Results) Find(path ...string) (TestResult, bool) {
	want := TestID{Path: path}.String()
	for _, t := range r.Tests {
		if t.TestID.String() == want {
			return t, true
		}
	}
	return TestResult{}, false
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}
