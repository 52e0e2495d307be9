package executor

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Pool bounds task concurrency with a semaphore while keeping Spawn
// non-blocking: each task gets its own goroutine, but at most size of them
// run at once. Shutdown joins everything that was ever spawned.
type Pool struct {
	name   string
	id     uuid.UUID
	sem    chan struct{}
	logger *slog.Logger

	wg       sync.WaitGroup
	stopMu   sync.Mutex // serializes Spawn admission against Shutdown
	stopping atomic.Bool
	stopOnce sync.Once
}

// NewPool creates a bounded pool executor. Without options it runs at most
// DefaultPoolSize tasks concurrently and logs through slog.Default.
func NewPool(opts ...PoolOption) *Pool {
	options := &poolOptions{
		size:   DefaultPoolSize,
		name:   "pool",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	p := &Pool{
		name:   options.name,
		id:     uuid.New(),
		sem:    make(chan struct{}, options.size),
		logger: options.logger,
	}

	p.logger.Debug("executor pool created",
		slog.String("executor", p.name),
		slog.String("executor_id", p.id.String()),
		slog.Int("size", options.size))

	return p
}

// NewPoolFromConfig creates a pool from an env-loaded Config, with opts
// applied on top.
func NewPoolFromConfig(cfg Config, opts ...PoolOption) (*Pool, error) {
	if cfg.PoolSize <= 0 {
		return nil, ErrInvalidPoolSize
	}
	return NewPool(append([]PoolOption{WithPoolSize(cfg.PoolSize)}, opts...)...), nil
}

// Spawn admits task and returns without waiting for a slot; the task's
// goroutine blocks on the semaphore instead. Spawning after Shutdown is a
// programming error and panics.
func (p *Pool) Spawn(task Task) {
	p.stopMu.Lock()
	if p.stopping.Load() {
		p.stopMu.Unlock()
		panic("executor: Spawn called after Shutdown")
	}
	p.wg.Add(1)
	p.stopMu.Unlock()

	go func() {
		defer p.wg.Done()
		p.sem <- struct{}{}
		defer func() { <-p.sem }()
		p.run(task)
	}()
}

// run executes one task with panic isolation. A panicking task must not
// kill the process or wedge the semaphore slot.
func (p *Pool) run(task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("task panicked",
				slog.String("executor", p.name),
				slog.String("executor_id", p.id.String()),
				slog.Any("panic", r))
		}
	}()
	task()
}

// Shutdown stops admission and waits for all admitted tasks to finish. The
// context bounds the wait; on expiry the error is returned while remaining
// tasks drain in the background. Shutdown is idempotent.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() {
		p.stopMu.Lock()
		p.stopping.Store(true)
		p.stopMu.Unlock()

		p.logger.Debug("executor pool stopping",
			slog.String("executor", p.name),
			slog.String("executor_id", p.id.String()))
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Debug("executor pool stopped",
			slog.String("executor", p.name),
			slog.String("executor_id", p.id.String()))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
