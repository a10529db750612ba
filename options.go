package rsvpkit

import (
	"log/slog"

	"github.com/weddingtools/rsvpkit/pkg/config"
	"github.com/weddingtools/rsvpkit/pkg/i18n"
	"github.com/weddingtools/rsvpkit/pkg/tokenstore"
)

// Option configures the client.
type Option func(*Client)

// WithConfig applies environment-driven settings: the default language, the
// session TTL for stored tokens, and the logger level/format. Explicit
// WithBundle/WithLogger/WithTokenStore options take precedence.
func WithConfig(cfg config.Config) Option {
	return func(c *Client) {
		c.cfg = &cfg
	}
}

// WithBundle replaces the embedded dictionaries.
func WithBundle(bundle *i18n.Bundle) Option {
	return func(c *Client) {
		if bundle != nil {
			c.bundle = bundle
		}
	}
}

// WithLogger sets the client logger.
// If not set, logging is disabled unless WithConfig enables it.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithTokenStore replaces the default in-memory token store.
func WithTokenStore(store tokenstore.Store) Option {
	return func(c *Client) {
		if store != nil {
			c.tokens = tokenstore.NewTokens(store)
		}
	}
}

// WithOnLanguageChange registers an observer notified after every accepted
// language switch, e.g. to mirror the language into the document markup.
func WithOnLanguageChange(fn func(lang string)) Option {
	return func(c *Client) {
		c.onChange = fn
	}
}
