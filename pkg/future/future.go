package future

import (
	"time"

	"github.com/dmitrymomot/futurekit/pkg/status"
)

// Future is a read handle to a result that becomes available later. Futures
// are cheap to copy; every copy refers to the same shared core. The zero
// Future is not usable — obtain one from Make, MakeFinished or a
// combinator.
//
// The write side (MarkFinished, MarkFailed) is exposed on the same handle
// so a producer can hand out copies freely; single-producer discipline is
// enforced at runtime, not by the type system: finishing a future twice
// panics.
type Future[T any] struct {
	c *core[T]
}

// Make returns a new pending future.
func Make[T any]() Future[T] {
	return Future[T]{c: newCore[T]()}
}

// MakeFinished returns a future that is already resolved with r. Since the
// state can never change, waits and probes on it skip synchronization
// entirely.
func MakeFinished[T any](r status.Result[T]) Future[T] {
	return Future[T]{c: newFinishedCore(r)}
}

// MakeFinishedValue returns a future already resolved with a successful
// value.
func MakeFinishedValue[T any](value T) Future[T] {
	return MakeFinished(status.Of(value))
}

// MakeFinishedError returns a future already resolved with a failure.
func MakeFinishedError[T any](st status.Status) Future[T] {
	return MakeFinished(status.Fail[T](st))
}

// State returns the current lifecycle state without blocking.
func (f Future[T]) State() State {
	return f.c.currentState()
}

// IsFinished reports whether the future has resolved, without blocking.
func (f Future[T]) IsFinished() bool {
	return f.c.currentState().Finished()
}

// Wait blocks the calling goroutine until the future resolves. It is safe
// to call from any number of goroutines concurrently.
func (f Future[T]) Wait() {
	f.c.wait()
}

// WaitTimeout blocks until the future resolves or d elapses, and reports
// whether it resolved. A false return has no effect on the future; the
// producer keeps running and a later Wait can still succeed.
func (f Future[T]) WaitTimeout(d time.Duration) bool {
	return f.c.waitTimeout(d)
}

// Result waits for the future to resolve and returns its result.
func (f Future[T]) Result() status.Result[T] {
	f.c.wait()
	return f.c.result
}

// MarkFinished resolves the future with r and fires all registered
// callbacks, in registration order, on the calling goroutine. Exactly one
// MarkFinished or MarkFailed call is allowed per future; a second one
// panics.
func (f Future[T]) MarkFinished(r status.Result[T]) {
	f.c.finish(r)
}

// MarkFailed resolves the future with a failure. Passing an OK status
// panics.
func (f Future[T]) MarkFailed(st status.Status) {
	f.c.finish(status.Fail[T](st))
}

// OnComplete registers cb to run when the future resolves. Callbacks run in
// registration order on whichever goroutine resolves the future. If the
// future is already resolved, cb runs synchronously on the calling
// goroutine before OnComplete returns. Either way cb runs exactly once,
// with no future lock held.
func (f Future[T]) OnComplete(cb Callback[T]) {
	f.c.addCallback(cb)
}

// TryOnComplete registers the callback produced by factory only if the
// future is still pending, and reports whether it was registered. Unlike
// OnComplete it never invokes the callback itself, which lets a caller
// distinguish "already resolved" from "queued" synchronously.
func (f Future[T]) TryOnComplete(factory func() Callback[T]) bool {
	return f.c.tryAddCallback(factory)
}

// Then derives a new future by mapping the result of f through fn. The map
// function runs inline on the goroutine that resolves f (or on the calling
// goroutine when f is already resolved); scheduling is the producer's
// concern, not this operator's.
func Then[T, V any](f Future[T], fn func(status.Result[T]) status.Result[V]) Future[V] {
	out := Make[V]()
	f.OnComplete(func(r status.Result[T]) {
		out.MarkFinished(fn(r))
	})
	return out
}
