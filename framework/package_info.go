// Package framework contains the test-context machinery that the contract suite runs on.
//
// The model is similar to Go's *testing.T, but it runs outside of "go test": a Context
// associates each piece of test logic with a hierarchical TestID, implements the TestingT
// interface that testify expects, and accumulates pass/fail/skip results. A TestLogger
// receives progress events; ConsoleTestLogger prints them.
//
// The domain-specific code that knows what is being tested (which service, which clients)
// builds its own test API on top of Context.
package framework
