// Package async provides a minimal typed future for work started on another goroutine.
package async

import (
	"context"
	"errors"
	"fmt"
)

// ErrPanicked is wrapped by the rejection error of a task that panicked.
var ErrPanicked = errors.New("async: task panicked")

// Promise holds the eventual result of a task. It settles exactly once.
type Promise[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Run starts fn on a new goroutine and returns a promise for its result.
// ctx is handed to fn unchanged; cancelling it is up to fn to observe.
func Run[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); r != nil {
				var zero T
				p.value = zero
				p.err = fmt.Errorf("%w: %v", ErrPanicked, r)
			}
		}()
		p.value, p.err = fn(ctx)
	}()
	return p
}

// Resolve returns a promise already settled with v
func Resolve[T any](v T) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{}), value: v}
	close(p.done)
	return p
}

// Reject returns a promise already settled with err
func Reject[T any](err error) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{}), err: err}
	close(p.done)
	return p
}

// Done returns a channel that is closed once the promise settles
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the promise settles or ctx is done.
// When ctx wins, the zero value and ctx.Err() are returned; the task keeps running.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	default:
	}

	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
