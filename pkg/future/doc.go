// Package future implements the synchronization core for asynchronous
// results: a thread-safe pending/success/failure state machine with
// exactly-once completion, ordered callback delivery, blocking waits and
// multi-future combinators.
//
// A Future[T] is a cheap copyable handle to a shared core. The producer
// resolves it exactly once with MarkFinished or MarkFailed; consumers
// register callbacks with OnComplete, block with Wait or WaitTimeout, or
// derive new futures with Then and the combinators. Callbacks fire in
// registration order, exactly once, strictly after the result is stored,
// and never while an internal lock is held — a callback is free to be slow,
// to register more callbacks, or to resolve other futures.
//
// # Completion contract
//
// Resolving a future twice, like fulfilling a Promise twice, is a
// programming error and panics: it indicates corrupted invariants, not an
// environmental failure. Carried failures — a Result holding a non-OK
// Status — are ordinary data and flow through callbacks and combinators
// unchanged.
//
// # Usage
//
//	f := future.Make[int]()
//
//	f.OnComplete(func(r status.Result[int]) {
//	    log.Printf("got %v", r)
//	})
//
//	go func() {
//	    f.MarkFinished(status.Of(42))
//	}()
//
//	f.Wait()
//
// # Combinators
//
// AllComplete collapses N futures into a single completion signal with
// first-failure short-circuiting. AllFinished waits for every input and
// reports the earliest-indexed failure. All collects every individual
// result in input order.
//
// # Promises
//
// Promise[T] is the single-use write capability. A producer that may bail
// out should `defer p.Abandon()` so waiters receive a synthesized failure
// instead of blocking forever.
package future
