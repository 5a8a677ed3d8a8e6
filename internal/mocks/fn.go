// Package mocks provides test doubles built on testify's mock package.
package mocks

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// callMethod is the method name every Fn records its invocations under.
const callMethod = "Call"

// Fn is a mock function taking a variadic list of A and returning R.
// Each invocation is recorded on the embedded mock.Mock as a single []A argument,
// so the usual testify assertions work against it as well.
type Fn[A, R any] struct {
	mock.Mock

	mu          sync.Mutex
	impl    func(args ...A) R
	once    []R
	args    [][]A
	results []R
}

// NewFn creates a mock function that returns the zero value of R until configured
func NewFn[A, R any]() *Fn[A, R] {
	f := &Fn[A, R]{}
	f.On(callMethod, mock.Anything).Maybe()
	return f
}

// MockImplementation sets the function used to compute return values,
// replacing any earlier implementation or MockReturnValue
func (f *Fn[A, R]) MockImplementation(impl func(args ...A) R) *Fn[A, R] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.impl = impl
	return f
}

// MockReturnValue makes every call return v unless a one-time value applies.
// It replaces any implementation, and a later MockImplementation replaces it.
func (f *Fn[A, R]) MockReturnValue(v R) *Fn[A, R] {
	return f.MockImplementation(func(...A) R {
		return v
	})
}

// MockReturnValueOnce queues v to be returned by the next call that has no earlier queued value
func (f *Fn[A, R]) MockReturnValueOnce(v R) *Fn[A, R] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.once = append(f.once, v)
	return f
}

// Call invokes the mock function.
// Queued one-time values win over the most recent implementation or return value.
func (f *Fn[A, R]) Call(args ...A) R {
	f.MethodCalled(callMethod, args)

	f.mu.Lock()
	var (
		result R
		impl   func(args ...A) R
	)
	switch {
	case len(f.once) > 0:
		result = f.once[0]
		f.once = f.once[1:]
	case f.impl != nil:
		impl = f.impl
	}
	f.mu.Unlock()

	if impl != nil {
		result = impl(args...)
	}

	f.mu.Lock()
	f.args = append(f.args, args)
	f.results = append(f.results, result)
	f.mu.Unlock()
	return result
}

// CallCount returns how many times the function was called
func (f *Fn[A, R]) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.args)
}

// LastCall returns the arguments of the most recent call, or false if never called
func (f *Fn[A, R]) LastCall() ([]A, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.args) == 0 {
		return nil, false
	}
	return f.args[len(f.args)-1], true
}

// Results returns every value returned so far, in call order
func (f *Fn[A, R]) Results() []R {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]R, len(f.results))
	copy(out, f.results)
	return out
}

// LastReturned returns the value produced by the most recent call, or false if never called
func (f *Fn[A, R]) LastReturned() (R, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.results) == 0 {
		var zero R
		return zero, false
	}
	return f.results[len(f.results)-1], true
}

// AssertCalledWith asserts that at least one call received exactly args
func (f *Fn[A, R]) AssertCalledWith(t *testing.T, args ...A) bool {
	t.Helper()
	return f.AssertCalled(t, callMethod, args)
}

// AssertCalledTimes asserts the total number of calls
func (f *Fn[A, R]) AssertCalledTimes(t *testing.T, n int) bool {
	t.Helper()
	return f.AssertNumberOfCalls(t, callMethod, n)
}

// AssertLastCalledWith asserts that the most recent call received exactly args
func (f *Fn[A, R]) AssertLastCalledWith(t *testing.T, args ...A) bool {
	t.Helper()
	last, ok := f.LastCall()
	if !assert.True(t, ok, "mock function was never called") {
		return false
	}
	return assert.Equal(t, args, last, "unexpected arguments in last call")
}

// AssertLastReturnedWith asserts the value produced by the most recent call
func (f *Fn[A, R]) AssertLastReturnedWith(t *testing.T, want R) bool {
	t.Helper()
	got, ok := f.LastReturned()
	if !assert.True(t, ok, "mock function was never called") {
		return false
	}
	return assert.Equal(t, want, got, "unexpected value returned by last call")
}
