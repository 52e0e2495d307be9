package executor

import (
	"time"

	"github.com/dmitrymomot/futurekit/pkg/config"
)

// Config holds the environment-driven settings for a Pool executor.
type Config struct {
	PoolSize        int           `env:"EXECUTOR_POOL_SIZE" envDefault:"4"`
	ShutdownTimeout time.Duration `env:"EXECUTOR_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// LoadConfig reads the pool configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
