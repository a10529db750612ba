package tokenstore

import (
	"context"
	"sync"
	"time"
)

// entry holds a token with its expiration time.
type entry struct {
	expiresAt time.Time // zero value = lives until Clear/Close
	token     string
}

// isExpired reports whether the entry has passed its expiration time.
func (e entry) isExpired() bool {
	if e.expiresAt.IsZero() {
		return false
	}
	return time.Now().After(e.expiresAt)
}

// Memory is an in-memory Store. It models browser session storage: tokens
// live in process memory only and vanish when the store is cleared or closed,
// or when the configured session TTL elapses.
type Memory struct {
	items  map[string]entry
	done   chan struct{}
	opts   *memoryOptions
	mu     sync.Mutex
	closed bool
}

// NewMemory creates a new in-memory token store.
//
// Example:
//
//	s := tokenstore.NewMemory(
//	    tokenstore.WithSessionTTL(30 * time.Minute),
//	    tokenstore.WithCleanupInterval(time.Minute),
//	)
//	defer s.Close()
func NewMemory(opts ...MemoryOption) *Memory {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory{
		items: make(map[string]entry),
		opts:  o,
		done:  make(chan struct{}),
	}

	if o.sessionTTL > 0 && o.cleanupInterval > 0 {
		go m.runJanitor()
	}

	return m
}

// Get retrieves a token by key.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		return "", ErrNotFound
	}
	if e.isExpired() {
		delete(m.items, key)
		return "", ErrNotFound
	}

	return e.token, nil
}

// Set stores a token under the key, restarting the key's session TTL.
func (m *Memory) Set(_ context.Context, key, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	var expiresAt time.Time
	if m.opts.sessionTTL > 0 {
		expiresAt = time.Now().Add(m.opts.sessionTTL)
	}

	m.items[key] = entry{token: token, expiresAt: expiresAt}
	return nil
}

// Delete removes a key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	delete(m.items, key)
	return nil
}

// Clear removes all keys.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.items = make(map[string]entry)
	return nil
}

// Close drops all tokens and stops the janitor goroutine. Close is idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.closed = true
	m.items = nil
	close(m.done)
	return nil
}

// runJanitor periodically removes expired entries.
func (m *Memory) runJanitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

func (m *Memory) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for key, e := range m.items {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(m.items, key)
		}
	}
}

var _ Store = (*Memory)(nil)
