package lazy_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/futurekit/pkg/executor"
	"github.com/dmitrymomot/futurekit/pkg/lazy"
	"github.com/dmitrymomot/futurekit/pkg/status"
)

func TestInlineConsumeIsSynchronous(t *testing.T) {
	t.Parallel()

	l := lazy.New(func() status.Result[int] {
		return status.Of(5)
	}, executor.Inline{})

	var got atomic.Int64
	var ran atomic.Bool
	l.ConsumeAsync(func(r status.Result[int]) {
		require.True(t, r.Ok())
		got.Store(int64(r.Value()))
		ran.Store(true)
	})

	// Under the inline executor the consumer already ran on this goroutine.
	assert.True(t, ran.Load())
	assert.Equal(t, int64(5), got.Load())
}

func TestNothingRunsBeforeConsume(t *testing.T) {
	t.Parallel()

	var supplierRuns, mapperRuns atomic.Int64
	l := lazy.New(func() status.Result[int] {
		supplierRuns.Add(1)
		return status.Of(1)
	}, executor.Inline{})

	chained := lazy.Then(l, func(r status.Result[int]) status.Result[int] {
		mapperRuns.Add(1)
		return status.Of(r.Value() + 1)
	})

	// Composition alone executes nothing.
	assert.Zero(t, supplierRuns.Load())
	assert.Zero(t, mapperRuns.Load())

	chained.ConsumeAsync(func(r status.Result[int]) {
		assert.Equal(t, 2, r.Value())
	})
	assert.Equal(t, int64(1), supplierRuns.Load())
	assert.Equal(t, int64(1), mapperRuns.Load())
}

func TestDiscardedLazyRunsNothing(t *testing.T) {
	t.Parallel()

	var runs atomic.Int64
	l := lazy.New(func() status.Result[int] {
		runs.Add(1)
		return status.Of(1)
	}, executor.Inline{})
	_ = lazy.Then(l, func(r status.Result[int]) status.Result[int] {
		runs.Add(1)
		return r
	})

	// Dropped unconsumed: legal, and no side effects ever happen.
	assert.Zero(t, runs.Load())
}

func TestThenChainRunsInOrder(t *testing.T) {
	t.Parallel()

	l := lazy.New(func() status.Result[int] {
		return status.Of(3)
	}, executor.Inline{})

	squared := lazy.Then(l, func(r status.Result[int]) status.Result[int] {
		return status.Of(r.Value() * r.Value())
	})
	described := lazy.Then(squared, func(r status.Result[int]) status.Result[string] {
		if !r.Ok() {
			return status.Fail[string](r.Status())
		}
		if r.Value() == 9 {
			return status.Of("nine")
		}
		return status.Of("other")
	})

	described.ConsumeAsync(func(r status.Result[string]) {
		assert.Equal(t, "nine", r.Value())
	})
}

func TestMapperSeesCarriedFailure(t *testing.T) {
	t.Parallel()

	l := lazy.New(func() status.Result[int] {
		return status.Fail[int](status.IOError("read failed"))
	}, executor.Inline{})

	recovered := lazy.Then(l, func(r status.Result[int]) status.Result[int] {
		if !r.Ok() {
			return status.Of(-1)
		}
		return r
	})

	recovered.ConsumeAsync(func(r status.Result[int]) {
		require.True(t, r.Ok())
		assert.Equal(t, -1, r.Value())
	})
}

func TestThreadPerTaskConsumeDeliversError(t *testing.T) {
	t.Parallel()

	e := executor.NewThreadPerTask()

	// The supplier blocks until ConsumeAsync has returned; inline execution
	// would deadlock, so delivery proves the chain ran on another goroutine.
	release := make(chan struct{})
	done := make(chan status.Result[int], 1)

	l := lazy.New(func() status.Result[int] {
		<-release
		return status.Fail[int](status.Invalid("XYZ"))
	}, e)

	l.ConsumeAsync(func(r status.Result[int]) {
		done <- r
	})
	close(release)

	select {
	case r := <-done:
		require.False(t, r.Ok())
		assert.Equal(t, status.CodeInvalid, r.Status().Code())
	case <-time.After(time.Second):
		t.Fatal("consumer was never invoked")
	}

	require.NoError(t, e.Shutdown(context.Background()))
}

func TestPoolExecutorRunsChain(t *testing.T) {
	t.Parallel()

	p := executor.NewPool(executor.WithPoolSize(2))

	done := make(chan int, 1)
	l := lazy.New(func() status.Result[int] {
		return status.Of(7)
	}, p)
	l.ConsumeAsync(func(r status.Result[int]) {
		done <- r.Value()
	})

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, 7, <-done)
}

func TestConsumeTwicePanics(t *testing.T) {
	t.Parallel()

	l := lazy.New(func() status.Result[int] {
		return status.Of(1)
	}, executor.Inline{})
	l.ConsumeAsync(func(status.Result[int]) {})

	assert.Panics(t, func() {
		l.ConsumeAsync(func(status.Result[int]) {})
	})
}

func TestThenAfterConsumePanics(t *testing.T) {
	t.Parallel()

	l := lazy.New(func() status.Result[int] {
		return status.Of(1)
	}, executor.Inline{})
	l.ConsumeAsync(func(status.Result[int]) {})

	assert.Panics(t, func() {
		_ = lazy.Then(l, func(r status.Result[int]) status.Result[int] { return r })
	})
}

func TestConsumeAfterThenPanics(t *testing.T) {
	t.Parallel()

	l := lazy.New(func() status.Result[int] {
		return status.Of(1)
	}, executor.Inline{})
	_ = lazy.Then(l, func(r status.Result[int]) status.Result[int] { return r })

	// l was spent by Then; only the derived Lazy is consumable.
	assert.Panics(t, func() {
		l.ConsumeAsync(func(status.Result[int]) {})
	})
}

func TestNewNilArgumentsPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		_ = lazy.New[int](nil, executor.Inline{})
	})
	assert.Panics(t, func() {
		_ = lazy.New(func() status.Result[int] { return status.Of(1) }, nil)
	})
}
