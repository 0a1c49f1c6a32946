package repository

import "time"

const defaultBusyTimeout = 5 * time.Second

// Option applies a configuration option to the SQLiteStore.
type Option func(*SQLiteStore)

// WithBusyTimeout sets how long SQLite waits on a locked database file.
func WithBusyTimeout(timeout time.Duration) Option {
	return func(s *SQLiteStore) {
		if timeout > 0 {
			s.busyTimeout = timeout
		}
	}
}
