package vector

import (
	"github.com/go-kit/log"
)

var nopLogger = log.NewNopLogger()

// Option customizes a Vector at construction.
type Option func(*config)

type config struct {
	logger        log.Logger
	capacityLimit int // 0 means unlimited
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c *config) log() log.Logger {
	if c.logger == nil {
		return nopLogger
	}
	return c.logger
}

// WithLogger sets the logger receiving reallocation and allocation failure
// events. Defaults to a no-op logger.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithCapacityLimit caps the number of slots the vector may allocate.
// Growing past the limit fails with ErrAllocation. n <= 0 removes the limit.
func WithCapacityLimit(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.capacityLimit = n
	}
}
