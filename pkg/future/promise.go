package future

import (
	"sync/atomic"

	"github.com/dmitrymomot/futurekit/pkg/status"
)

// Promise is the single-use write capability for one result. It wraps a
// one-shot completion callback: Fulfill hands the result to that callback
// exactly once, from whichever goroutine calls it.
//
// Go has no destructors, so abandonment is explicit: a producer that may
// exit without producing a value should `defer p.Abandon()`. Abandon
// synthesizes a failure for anyone still waiting, which keeps a dropped
// promise from leaving waiters blocked forever.
type Promise[T any] struct {
	consume Callback[T]
	settled atomic.Bool
}

// NewPromise wraps a one-shot consumer into a promise. The consumer is
// invoked at most once, by Fulfill or Abandon.
func NewPromise[T any](consumer Callback[T]) *Promise[T] {
	if consumer == nil {
		panic("future: NewPromise called with a nil consumer")
	}
	return &Promise[T]{consume: consumer}
}

// MakePair returns a pending future together with the promise that
// fulfills it.
func MakePair[T any]() (Future[T], *Promise[T]) {
	f := Make[T]()
	return f, NewPromise(f.MarkFinished)
}

// Fulfill delivers the result. Exactly one Fulfill call is allowed per
// promise; a second one, or one after Abandon took effect, panics.
func (p *Promise[T]) Fulfill(r status.Result[T]) {
	if !p.settled.CompareAndSwap(false, true) {
		panic("future: promise fulfilled twice")
	}
	consume := p.consume
	p.consume = nil
	consume(r)
}

// Abandon settles the promise with an "abandoned promise" failure if it has
// not been fulfilled yet. Calling Abandon on a fulfilled (or already
// abandoned) promise is a no-op, which makes it safe to defer
// unconditionally.
func (p *Promise[T]) Abandon() {
	if !p.settled.CompareAndSwap(false, true) {
		return
	}
	consume := p.consume
	p.consume = nil
	consume(status.Fail[T](status.Invalid("abandoned promise")))
}

// Settled reports whether the promise has been fulfilled or abandoned.
func (p *Promise[T]) Settled() bool {
	return p.settled.Load()
}

// PushSupplier is the producer-push shape of a deferred computation: instead
// of returning a result, it receives the write capability and fulfills it
// when the value is ready, possibly from another goroutine. The lazy
// package uses the direct-return Supplier shape; this one exists for
// producers that need to escape the calling goroutine.
type PushSupplier[T any] func(*Promise[T])

// Produce runs a push-style supplier and returns the future it will
// fulfill. The supplier itself runs synchronously on the calling goroutine;
// any concurrency is its own to arrange.
func Produce[T any](supplier PushSupplier[T]) Future[T] {
	f, p := MakePair[T]()
	supplier(p)
	return f
}
