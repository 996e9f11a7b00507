package arrayfunc

import "fmt"

// minParallelChunk is the smallest slice segment handed to a worker.
const minParallelChunk = 16384

// Option configures a single operation.
type Option func(*config) error

type config struct {
	ignoreErrors bool
	maxLen       int
	parallelism  int
}

func defaultConfig() config {
	return config{parallelism: 1}
}

func newConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// limit returns the number of elements to process out of n.
func (c config) limit(n int) int {
	if c.maxLen > 0 && c.maxLen < n {
		return c.maxLen
	}
	return n
}

// WithIgnoreErrors disables overflow and math-domain checks. Integer results
// wrap and float results keep their IEEE value. Division of integers by zero
// is still an error.
func WithIgnoreErrors() Option {
	return func(cfg *config) error {
		cfg.ignoreErrors = true
		return nil
	}
}

// WithMaxLen processes at most n elements. Zero means no limit.
func WithMaxLen(n int) Option {
	return func(cfg *config) error {
		if n < 0 {
			return fmt.Errorf("arrayfunc: max length must be >= 0: %d: %w", n, ErrOutOfRange)
		}
		cfg.maxLen = n
		return nil
	}
}

// WithParallelism splits large element-wise operations across up to n
// goroutines. The default is 1.
func WithParallelism(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("arrayfunc: parallelism must be >= 1: %d: %w", n, ErrOutOfRange)
		}
		cfg.parallelism = n
		return nil
	}
}
