package polycrypt

import (
	"crypto/rand"
	"io"
)

// Config holds configuration shared by all adapters.
type Config struct {
	// Rand is the entropy source consulted when a seed is omitted.
	Rand io.Reader
}

// Option configures an adapter at construction time.
type Option func(*Config)

// WithRand sets the randomness source used when a seed is omitted.
// Default: crypto/rand. Injecting a fixed reader makes key generation
// reproducible for tests.
func WithRand(r io.Reader) Option {
	return func(c *Config) {
		c.Rand = r
	}
}

// NewConfig applies opts over the defaults. Adapter constructors call this;
// it is exported so that group packages can share one options surface.
func NewConfig(opts ...Option) *Config {
	c := &Config{Rand: rand.Reader}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
