package future_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/futurekit/pkg/future"
	"github.com/dmitrymomot/futurekit/pkg/status"
)

func TestPromiseFulfill(t *testing.T) {
	t.Parallel()

	f, p := future.MakePair[int]()
	require.False(t, p.Settled())
	require.False(t, f.IsFinished())

	p.Fulfill(status.Of(42))

	require.True(t, p.Settled())
	require.True(t, f.IsFinished())
	assert.Equal(t, 42, f.Result().Value())
}

func TestPromiseDoubleFulfillPanics(t *testing.T) {
	t.Parallel()

	_, p := future.MakePair[int]()
	p.Fulfill(status.Of(1))

	assert.Panics(t, func() {
		p.Fulfill(status.Of(2))
	})
}

func TestPromiseAbandon(t *testing.T) {
	t.Parallel()

	f, p := future.MakePair[int]()
	p.Abandon()

	require.True(t, f.IsFinished())
	r := f.Result()
	require.False(t, r.Ok())
	assert.Equal(t, status.CodeInvalid, r.Status().Code())
	assert.Equal(t, "abandoned promise", r.Status().Message())
}

func TestPromiseAbandonAfterFulfillIsNoop(t *testing.T) {
	t.Parallel()

	f, p := future.MakePair[int]()
	p.Fulfill(status.Of(5))

	assert.NotPanics(t, p.Abandon)
	assert.Equal(t, 5, f.Result().Value())
}

func TestPromiseAbandonIsIdempotent(t *testing.T) {
	t.Parallel()

	f, p := future.MakePair[int]()
	p.Abandon()
	assert.NotPanics(t, p.Abandon)
	assert.False(t, f.Result().Ok())
}

func TestDeferredAbandonUnblocksWaiter(t *testing.T) {
	t.Parallel()

	f, p := future.MakePair[int]()

	// A producer that bails out early: the deferred Abandon must leave a
	// failure behind instead of a forever-pending future.
	go func() {
		defer p.Abandon()
	}()

	require.True(t, f.WaitTimeout(time.Second))
	assert.False(t, f.Result().Ok())
}

func TestNewPromiseCustomConsumer(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	p := future.NewPromise(func(r status.Result[string]) {
		calls.Add(1)
		assert.Equal(t, "hello", r.Value())
	})

	p.Fulfill(status.Of("hello"))
	assert.Equal(t, int64(1), calls.Load())
}

func TestNewPromiseNilConsumerPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		_ = future.NewPromise[int](nil)
	})
}

func TestProducePushSupplier(t *testing.T) {
	t.Parallel()

	f := future.Produce(func(p *future.Promise[int]) {
		go func() {
			time.Sleep(time.Millisecond)
			p.Fulfill(status.Of(9))
		}()
	})

	require.True(t, f.WaitTimeout(time.Second))
	assert.Equal(t, 9, f.Result().Value())
}
