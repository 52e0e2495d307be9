// Package lazy implements deferred, executor-bound computations.
//
// A Lazy[T] wraps a zero-argument Supplier and an Executor. Composing with
// Then builds up a supplier chain without running any of it; ConsumeAsync is
// the single point where the executor is asked to run the whole chain and
// deliver the final result to a consumer. Under executor.Inline that happens
// synchronously on the calling goroutine; under executor.NewThreadPerTask or
// a Pool it happens on another goroutine.
//
//	l := lazy.New(func() status.Result[int] {
//	    return status.Of(5)
//	}, executor.Inline{})
//
//	doubled := lazy.Then(l, func(r status.Result[int]) status.Result[int] {
//	    if !r.Ok() {
//	        return r
//	    }
//	    return status.Of(r.Value() * 2)
//	})
//
//	doubled.ConsumeAsync(func(r status.Result[int]) {
//	    fmt.Println(r.Value()) // 10
//	})
//
// Each Lazy is consumed at most once: Then and ConsumeAsync spend their
// input, and reusing a spent Lazy panics. A Lazy that is never consumed
// never runs its work.
//
// Mapping a result into another Lazy and flattening the nesting (a
// ThenFuture-style operator) is deliberately not provided; compose suppliers
// instead, or consume the outer chain and start the inner one from its
// consumer.
package lazy
