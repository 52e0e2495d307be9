package future

import (
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/futurekit/pkg/status"
)

// Unit is the empty payload for futures that only signal completion.
type Unit struct{}

// UnitResult lifts a bare status into a Result[Unit].
func UnitResult(st status.Status) status.Result[Unit] {
	if st.IsOK() {
		return status.Of(Unit{})
	}
	return status.Fail[Unit](st)
}

// AllComplete aggregates futures into one completion signal. The output
// resolves with success once every input has succeeded, or with the first
// observed failure as soon as any input fails. Later failures and successes
// are ignored once the output is resolved. An empty input resolves
// immediately with success.
func AllComplete[T any](futures []Future[T]) Future[Unit] {
	if len(futures) == 0 {
		return MakeFinishedValue(Unit{})
	}

	out := Make[Unit]()

	// remaining counts inputs that have not succeeded yet. Only successes
	// decrement it, so it can reach zero only when no failure occurred.
	// firstMu guards the short-circuit so concurrent failures race for a
	// single MarkFinished.
	var firstMu sync.Mutex
	var remaining atomic.Int64
	remaining.Store(int64(len(futures)))

	for _, f := range futures {
		f.OnComplete(func(r status.Result[T]) {
			if st := r.Status(); !st.IsOK() {
				firstMu.Lock()
				defer firstMu.Unlock()
				if !out.IsFinished() {
					out.MarkFailed(st)
				}
				return
			}
			if remaining.Add(-1) != 0 {
				return
			}
			out.MarkFinished(status.Of(Unit{}))
		})
	}
	return out
}

// All collects the results of every input, in input order, into one future
// that resolves after the last input finishes. The output itself is always
// successful; individual failures travel inside the collected slice.
func All[T any](futures []Future[T]) Future[[]status.Result[T]] {
	n := len(futures)
	if n == 0 {
		return MakeFinishedValue([]status.Result[T]{})
	}

	out := Make[[]status.Result[T]]()
	results := make([]status.Result[T], n)
	var remaining atomic.Int64
	remaining.Store(int64(n))

	for i, f := range futures {
		f.OnComplete(func(r status.Result[T]) {
			// Each callback writes a distinct index; the final decrement
			// orders those writes before the read below.
			results[i] = r
			if remaining.Add(-1) == 0 {
				out.MarkFinished(status.Of(results))
			}
		})
	}
	return out
}

// AllFinished resolves after every input has finished, success or failure,
// and reports the failure of the earliest-indexed failing input, or success
// when there is none. Unlike AllComplete it never short-circuits.
func AllFinished[T any](futures []Future[T]) Future[Unit] {
	return Then(All(futures), func(r status.Result[[]status.Result[T]]) status.Result[Unit] {
		for _, res := range r.Value() {
			if !res.Ok() {
				return status.Fail[Unit](res.Status())
			}
		}
		return status.Of(Unit{})
	})
}
