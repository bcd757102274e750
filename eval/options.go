package eval

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ahmadiphy/ffx/internal/options"
)

// config holds the evaluator cache configuration.
type config struct {
	ttl     time.Duration
	cleanup time.Duration
}

// defaultConfig returns the default cache configuration: entries live for
// 5 minutes and expired entries are swept every 10 minutes.
func defaultConfig() config {
	return config{
		ttl:     5 * time.Minute,
		cleanup: 10 * time.Minute,
	}
}

// Option is a functional option for the evaluator configuration.
type Option = options.Option[*config]

// WithTTL sets how long a cached simulation vector stays valid.
func WithTTL(d time.Duration) Option {
	return options.New(func(cfg *config) error {
		if d <= 0 {
			return fmt.Errorf("ttl must be positive, got %v", d)
		}
		cfg.ttl = d

		return nil
	})
}

// WithCleanupInterval sets how often expired entries are swept. A zero or
// negative interval disables the sweeper; expired entries are then dropped
// lazily on access.
func WithCleanupInterval(d time.Duration) Option {
	return options.NoError(func(cfg *config) {
		cfg.cleanup = d
	})
}

// WithNoExpiration keeps cached vectors for the evaluator's lifetime.
// Appropriate when the dataset outlives every search generation.
func WithNoExpiration() Option {
	return options.NoError(func(cfg *config) {
		cfg.ttl = cache.NoExpiration
		cfg.cleanup = 0
	})
}
