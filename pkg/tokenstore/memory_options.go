package tokenstore

import "time"

// MemoryOption configures the in-memory store.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	sessionTTL      time.Duration
	cleanupInterval time.Duration
}

func defaultMemoryOptions() *memoryOptions {
	return &memoryOptions{
		sessionTTL:      0, // 0 = tokens live until Clear/Close
		cleanupInterval: time.Minute,
	}
}

// WithSessionTTL bounds the lifetime of stored tokens, approximating a browser
// session that ends after a period of inactivity. Setting a token restarts its
// TTL. Zero keeps tokens until Clear or Close.
// Default: 0.
func WithSessionTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.sessionTTL = d
	}
}

// WithCleanupInterval sets how often expired entries are removed
// by the background janitor goroutine.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}
