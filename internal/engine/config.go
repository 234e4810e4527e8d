package engine

import (
	"runtime"
)

// Config holds configuration for an analysis run.
type Config struct {
	// Workers bounds how many members are resolved concurrently.
	Workers int
	// Memoize caches oracle answers for the duration of the run.
	Memoize bool
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.GOMAXPROCS(0),
		Memoize: false,
	}
}

// workers returns the effective pool size.
func (c Config) workers() int {
	if c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return c.Workers
}
