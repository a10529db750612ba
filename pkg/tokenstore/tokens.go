package tokenstore

import (
	"context"
	"errors"
)

// Storage keys for the two session scopes. Distinct keys keep the guest and
// admin sessions from ever colliding.
const (
	GuestTokenKey = "rsvp_token"
	AdminTokenKey = "rsvp_admin_token"
)

// Tokens exposes the guest and admin session tokens on top of a Store.
// Presence of a token is the sole signal of "logged in": there is no expiry
// metadata and no decoding of the token itself.
type Tokens struct {
	store Store
}

// NewTokens wraps a store. A nil store gets an unbounded in-memory one.
func NewTokens(store Store) *Tokens {
	if store == nil {
		store = NewMemory()
	}
	return &Tokens{store: store}
}

// Token returns the guest session token, or an empty string when absent.
// An absent token is not an error.
func (t *Tokens) Token(ctx context.Context) string {
	return t.get(ctx, GuestTokenKey)
}

// SetToken stores the guest session token.
func (t *Tokens) SetToken(ctx context.Context, token string) error {
	return t.store.Set(ctx, GuestTokenKey, token)
}

// ClearToken drops the guest session token.
func (t *Tokens) ClearToken(ctx context.Context) error {
	return t.store.Delete(ctx, GuestTokenKey)
}

// AdminToken returns the admin session token, or an empty string when absent.
func (t *Tokens) AdminToken(ctx context.Context) string {
	return t.get(ctx, AdminTokenKey)
}

// SetAdminToken stores the admin session token.
func (t *Tokens) SetAdminToken(ctx context.Context, token string) error {
	return t.store.Set(ctx, AdminTokenKey, token)
}

// ClearAdminToken drops the admin session token.
func (t *Tokens) ClearAdminToken(ctx context.Context) error {
	return t.store.Delete(ctx, AdminTokenKey)
}

// Close closes the underlying store.
func (t *Tokens) Close() error {
	return t.store.Close()
}

func (t *Tokens) get(ctx context.Context, key string) string {
	token, err := t.store.Get(ctx, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return ""
	}
	return token
}
