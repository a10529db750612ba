package rsvpkit

import (
	"context"
	"log/slog"

	"github.com/weddingtools/rsvpkit/pkg/config"
	"github.com/weddingtools/rsvpkit/pkg/i18n"
	"github.com/weddingtools/rsvpkit/pkg/logger"
	"github.com/weddingtools/rsvpkit/pkg/tokenstore"
)

// Client bundles the pieces the RSVP pages work with: the localization
// resolver, the session token store, and a logger. Build one at application
// start and hand it to the views.
type Client struct {
	bundle   *i18n.Bundle
	resolver *i18n.Resolver
	tokens   *tokenstore.Tokens
	log      *slog.Logger

	cfg      *config.Config
	onChange func(lang string)
}

// New creates a Client. Without options it ships the embedded en/es/ro
// dictionaries, an unbounded in-memory token store, and a no-op logger.
func New(opts ...Option) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	if c.cfg != nil && c.log == nil {
		c.log = logger.New(
			logger.WithLevel(logger.ParseLevel(c.cfg.LogLevel)),
			logger.WithFormat(c.cfg.LogFormat),
			logger.WithExtractors(LanguageExtractor()),
		)
	}
	if c.log == nil {
		c.log = logger.NewNope()
	}

	if c.bundle == nil {
		var bundleOpts []i18n.Option
		if c.cfg != nil && c.cfg.DefaultLang != "" {
			bundleOpts = append(bundleOpts, i18n.WithDefaultLanguage(c.cfg.DefaultLang))
		}
		bundleOpts = append(bundleOpts, i18n.WithMissingKeyHandler(func(lang, key string) {
			c.log.Debug("missing translation",
				slog.String("lang", lang),
				slog.String("key", key))
		}))

		bundle, err := i18n.Default(bundleOpts...)
		if err != nil {
			return nil, err
		}
		c.bundle = bundle
	}

	resolverOpts := []i18n.ResolverOption{i18n.WithLogger(c.log)}
	if c.onChange != nil {
		resolverOpts = append(resolverOpts, i18n.WithOnChange(c.onChange))
	}
	c.resolver = i18n.NewResolver(c.bundle, resolverOpts...)

	if c.tokens == nil {
		var storeOpts []tokenstore.MemoryOption
		if c.cfg != nil && c.cfg.SessionTTL > 0 {
			storeOpts = append(storeOpts, tokenstore.WithSessionTTL(c.cfg.SessionTTL))
		}
		c.tokens = tokenstore.NewTokens(tokenstore.NewMemory(storeOpts...))
	}

	return c, nil
}

// I18n returns the localization resolver.
func (c *Client) I18n() *i18n.Resolver {
	return c.resolver
}

// Tokens returns the session token store.
func (c *Client) Tokens() *tokenstore.Tokens {
	return c.tokens
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.log
}

// T resolves a translation key through the client's resolver.
func (c *Client) T(key string, args ...any) string {
	return c.resolver.T(key, args...)
}

// SetLanguage switches the active language; unknown codes are ignored.
func (c *Client) SetLanguage(code string) {
	c.resolver.SetLanguage(code)
}

// Close releases the token store.
func (c *Client) Close() error {
	return c.tokens.Close()
}

// LanguageExtractor returns a logger extractor that annotates records with
// the active language of the resolver carried in the context, if any.
func LanguageExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if r, ok := i18n.FromContext(ctx); ok {
			return slog.String("lang", r.Language()), true
		}
		return slog.Attr{}, false
	}
}
