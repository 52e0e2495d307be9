package executor

import "log/slog"

// DefaultPoolSize is the concurrency bound used when no size is configured.
const DefaultPoolSize = 4

// PoolOption is a functional option for configuring a Pool.
type PoolOption func(*poolOptions)

type poolOptions struct {
	size   int
	name   string
	logger *slog.Logger
}

// WithPoolSize sets the maximum number of concurrently running tasks.
func WithPoolSize(n int) PoolOption {
	return func(o *poolOptions) {
		if n > 0 {
			o.size = n
		}
	}
}

// WithName sets the pool name used in log records.
func WithName(name string) PoolOption {
	return func(o *poolOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger for pool lifecycle and task panic records.
func WithLogger(logger *slog.Logger) PoolOption {
	return func(o *poolOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
