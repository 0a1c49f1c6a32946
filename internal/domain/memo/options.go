package memo

// defaultMaxSize bounds the number of memoized entries.
const defaultMaxSize = 16

type config struct {
	maxSize int
}

// Option applies a configuration option to the cache.
type Option func(*config)

// WithMaxSize sets the maximum number of entries kept.
// If maxSize > 0: bounded mode, the oldest stored entry is evicted first.
// If maxSize <= 0: unbounded mode.
func WithMaxSize(maxSize int) Option {
	return func(c *config) {
		c.maxSize = maxSize
	}
}
