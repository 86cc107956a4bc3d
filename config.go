package fiveq

// DefaultTrials is the conventional batch size per error rate.
const DefaultTrials = 1000

// Config controls how a sweep executes.
type Config struct {
	Workers int
	Seed    int64
	seeded  bool
}

func NewConfig() *Config {
	return &Config{
		Workers: 1,
	}
}

// SweepOption configures a sweep.
type SweepOption func(*Config)

// WithSeed pins the run-level seed so every trial draws a reproducible
// random stream. Without it each sweep draws a fresh seed.
func WithSeed(seed int64) SweepOption {
	return func(c *Config) {
		c.Seed = seed
		c.seeded = true
	}
}

// WithWorkers spreads the trials of a sweep across n workers.
func WithWorkers(n int) SweepOption {
	return func(c *Config) {
		c.Workers = n
	}
}
