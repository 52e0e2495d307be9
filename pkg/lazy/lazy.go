package lazy

import (
	"sync/atomic"

	"github.com/dmitrymomot/futurekit/pkg/executor"
	"github.com/dmitrymomot/futurekit/pkg/status"
)

// Supplier produces a result when invoked. It is the canonical direct-return
// shape for deferred work; the promise-driven shape lives in the future
// package as PushSupplier.
type Supplier[T any] func() status.Result[T]

// Mapper transforms one result into another, possibly of a different type.
// It receives failed results too and may recover from them or pass them on.
type Mapper[T, V any] func(status.Result[T]) status.Result[V]

// Consumer receives the final result of a consumed chain.
type Consumer[T any] func(status.Result[T])

// Lazy is an unstarted computation bound to an executor. Nothing runs at
// construction or composition time; work begins only when ConsumeAsync
// submits the composed chain to the executor.
//
// A Lazy is single-use. Then and ConsumeAsync both spend the value they are
// given, and touching a spent Lazy panics — the runtime stand-in for
// move-only consumption. Discarding an unconsumed Lazy is legal and simply
// never runs the work.
type Lazy[T any] struct {
	supplier Supplier[T]
	exec     executor.Executor
	spent    atomic.Bool
}

// New binds a supplier to an executor without running anything.
func New[T any](supplier Supplier[T], exec executor.Executor) *Lazy[T] {
	if supplier == nil {
		panic("lazy: New called with a nil supplier")
	}
	if exec == nil {
		panic("lazy: New called with a nil executor")
	}
	return &Lazy[T]{supplier: supplier, exec: exec}
}

// take spends the Lazy and extracts its supplier. All consuming operations
// funnel through here so double use traps in one place.
func (l *Lazy[T]) take() Supplier[T] {
	if !l.spent.CompareAndSwap(false, true) {
		panic("lazy: future already consumed")
	}
	supplier := l.supplier
	l.supplier = nil
	return supplier
}

// ConsumeAsync submits one unit of work to the executor: run the composed
// supplier chain, then hand the result to consumer. This is the only
// operation that executes anything. It spends the Lazy.
func (l *Lazy[T]) ConsumeAsync(consumer Consumer[T]) {
	if consumer == nil {
		panic("lazy: ConsumeAsync called with a nil consumer")
	}
	supplier := l.take()
	l.exec.Spawn(func() {
		consumer(supplier())
	})
}

// Then composes the chain with fn, returning a new Lazy on the same
// executor. No work runs during composition; fn is folded into the supplier
// and executes, in chain order, when the final Lazy is consumed. Then
// spends l.
func Then[T, V any](l *Lazy[T], fn Mapper[T, V]) *Lazy[V] {
	if fn == nil {
		panic("lazy: Then called with a nil mapper")
	}
	supplier := l.take()
	return New(func() status.Result[V] {
		return fn(supplier())
	}, l.exec)
}
