package mocks

import "sync"

// Spy records calls to a function-valued field while delegating to the
// function that was there before, until MockRestore puts it back.
type Spy[A, R any] struct {
	*Fn[A, R]

	restoreOnce sync.Once
	target      *func(A) R
	original    func(A) R
}

// SpyOn installs a spy into *target.
// The original function keeps serving calls until MockImplementation overrides it.
func SpyOn[A, R any](target *func(A) R) *Spy[A, R] {
	original := *target
	s := &Spy[A, R]{
		Fn:       NewFn[A, R](),
		target:   target,
		original: original,
	}
	s.Fn.MockImplementation(s.callOriginal)
	*target = func(arg A) R {
		return s.Call(arg)
	}
	return s
}

// MockImplementation overrides the spied function while keeping call tracking
func (s *Spy[A, R]) MockImplementation(impl func(arg A) R) *Spy[A, R] {
	s.Fn.MockImplementation(func(args ...A) R {
		return impl(args[0])
	})
	return s
}

// MockRestore puts the original function back into the spied field.
// Calls made after a restore are not recorded.
func (s *Spy[A, R]) MockRestore() {
	s.restoreOnce.Do(func() {
		*s.target = s.original
		s.Fn.MockImplementation(s.callOriginal)
	})
}

// Original returns the function that was in place when the spy was installed
func (s *Spy[A, R]) Original() func(A) R {
	return s.original
}

func (s *Spy[A, R]) callOriginal(args ...A) R {
	return s.original(args[0])
}
