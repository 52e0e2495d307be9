package executor

import (
	"context"
	"sync"
	"sync/atomic"
)

// Task is one deferred unit of work. Tasks take no arguments and return
// nothing; results travel through whatever the task closes over.
type Task func()

// Executor is a strategy for eventually running submitted tasks.
type Executor interface {
	// Spawn accepts a task for execution. Implementations decide whether it
	// runs synchronously, on a dedicated goroutine, or on a shared pool.
	Spawn(task Task)
}

// Inline runs every task synchronously on the goroutine that calls Spawn.
// There is no concurrency and nothing to shut down, which makes it the
// executor of choice for deterministic tests and zero-overhead paths.
type Inline struct{}

func (Inline) Spawn(task Task) {
	task()
}

// ThreadPerTask runs each task on its own dedicated goroutine. Shutdown
// joins every goroutine it ever spawned, so no task outlives the executor.
type ThreadPerTask struct {
	wg     sync.WaitGroup
	stopMu sync.Mutex // serializes Spawn admission against Shutdown
	closed atomic.Bool
}

// NewThreadPerTask returns a thread-per-task executor.
func NewThreadPerTask() *ThreadPerTask {
	return &ThreadPerTask{}
}

// Spawn starts task on a new goroutine. Spawning after Shutdown is a
// programming error and panics.
func (e *ThreadPerTask) Spawn(task Task) {
	e.stopMu.Lock()
	if e.closed.Load() {
		e.stopMu.Unlock()
		panic("executor: Spawn called after Shutdown")
	}
	e.wg.Add(1)
	e.stopMu.Unlock()

	go func() {
		defer e.wg.Done()
		task()
	}()
}

// Shutdown waits for every spawned task to finish. The context bounds the
// wait; on expiry the error is returned and tasks keep draining in the
// background. After Shutdown returns, Spawn panics.
func (e *ThreadPerTask) Shutdown(ctx context.Context) error {
	e.stopMu.Lock()
	e.closed.Store(true)
	e.stopMu.Unlock()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
