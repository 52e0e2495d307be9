package future

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/futurekit/pkg/status"
)

// waiterMu is shared by every component that needs to observe several
// futures at once. A single process-wide mutex keeps lock management simple
// compared to a per-waiter mutex, and few waiters are ever alive at a time,
// so it does not limit scalability.
//
// The locking order is: waiterMu first, then the per-core mutex. finish
// takes both in that order; any new code path that needs both must do the
// same.
var waiterMu sync.Mutex

// Callback receives the finished result of a future. A callback is invoked
// exactly once, never while any future lock is held.
type Callback[T any] func(status.Result[T])

// core is the shared state machine behind a Future. It is reference-shared
// between the producer, consumers and combinators; all mutation goes
// through its mutex. The done channel is closed exactly once at the state
// transition and doubles as the notify-all for waiters.
type core[T any] struct {
	mu        sync.Mutex
	done      chan struct{}
	state     atomic.Int32 // written under mu, read lock-free
	result    status.Result[T]
	callbacks []Callback[T]
}

func newCore[T any]() *core[T] {
	return &core[T]{done: make(chan struct{})}
}

// newFinishedCore builds a core that is already terminal. The done channel
// is closed up front, so waits and probes never touch the mutex.
func newFinishedCore[T any](r status.Result[T]) *core[T] {
	c := &core[T]{done: make(chan struct{}), result: r}
	c.state.Store(int32(stateFor(r)))
	close(c.done)
	return c
}

func stateFor[T any](r status.Result[T]) State {
	if r.Ok() {
		return Success
	}
	return Failure
}

func (c *core[T]) currentState() State {
	return State(c.state.Load())
}

// finish transitions the core to its terminal state and fires the queued
// callbacks. It may be called exactly once; a second call is a programming
// error and panics.
//
// Lock order: the hypothetical multi-future waiter first, the core after.
// Both locks are released before any callback runs — a callback may be
// slow, may register further callbacks, or may finish other cores, and
// holding a lock across it would invite deadlock.
func (c *core[T]) finish(r status.Result[T]) {
	waiterMu.Lock()
	c.mu.Lock()
	if c.currentState().Finished() {
		c.mu.Unlock()
		waiterMu.Unlock()
		panic("future: MarkFinished called on an already finished future")
	}
	c.result = r
	c.state.Store(int32(stateFor(r)))
	close(c.done)
	callbacks := c.callbacks
	c.callbacks = nil
	c.mu.Unlock()
	waiterMu.Unlock()

	for _, cb := range callbacks {
		cb(r)
	}
}

// addCallback queues cb if the core is still pending. On an already
// finished core it runs cb synchronously on the calling goroutine, outside
// the lock, so a callback is never silently dropped.
func (c *core[T]) addCallback(cb Callback[T]) {
	c.mu.Lock()
	if c.currentState().Finished() {
		r := c.result
		c.mu.Unlock()
		cb(r)
		return
	}
	c.callbacks = append(c.callbacks, cb)
	c.mu.Unlock()
}

// tryAddCallback queues the callback built by factory only when the core is
// still pending, and reports whether it was queued. The factory is not
// invoked for a finished core, letting callers skip constructing a callback
// that would just run inline.
func (c *core[T]) tryAddCallback(factory func() Callback[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentState().Finished() {
		return false
	}
	c.callbacks = append(c.callbacks, factory())
	return true
}

// wait blocks until the core is finished.
func (c *core[T]) wait() {
	<-c.done
}

// waitTimeout blocks until the core is finished or d elapses, and reports
// whether the core finished. When completion and timeout race, completion
// wins: the state is re-checked before reporting a timeout.
func (c *core[T]) waitTimeout(d time.Duration) bool {
	select {
	case <-c.done:
		return true
	case <-time.After(d):
		return c.currentState().Finished()
	}
}
