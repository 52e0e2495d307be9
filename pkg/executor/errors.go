package executor

import "errors"

var (
	// ErrInvalidPoolSize is returned when a configured pool size is not a
	// positive number.
	ErrInvalidPoolSize = errors.New("executor: pool size must be positive")
)
