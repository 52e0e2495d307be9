// Package executor provides the execution strategies behind deferred work.
//
// The Executor interface has a single method, Spawn, which accepts one Task
// for eventual execution. Three strategies are included:
//
//   - Inline         — runs the task synchronously on the calling goroutine
//   - ThreadPerTask  — one dedicated goroutine per task, joined on Shutdown
//   - Pool           — semaphore-bounded concurrency with panic isolation,
//     slog lifecycle logging and env-driven configuration
//
// ThreadPerTask and Pool guarantee that Shutdown returns only after every
// admitted task has finished (or the shutdown context expires), so no work
// outlives its executor. Submitting work after Shutdown is a programming
// error and panics.
//
// # Usage
//
//	exec := executor.NewPool(executor.WithPoolSize(8))
//	defer func() {
//	    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	    defer cancel()
//	    _ = exec.Shutdown(ctx)
//	}()
//
//	exec.Spawn(func() {
//	    // work
//	})
package executor
