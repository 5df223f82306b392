// Package apitests is the contract test suite for the courses service.
//
// Tests are grouped by resource and run through the framework package, so they execute
// outside of the Go test runner with filtering and per-test debug output. Each test gets a
// *T, which can be passed anywhere a testify TestingT is accepted; the assertions package
// reports its checks as steps of that T.
package apitests
