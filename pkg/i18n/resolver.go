package i18n

import (
	"context"
	"log/slog"
	"sync"
)

// Resolver tracks the active language and resolves keys against a Bundle.
// It is the single mutable piece of the package; consumers receive it as an
// explicit value (or via NewContext) instead of reading a hidden global.
type Resolver struct {
	bundle   *Bundle
	log      *slog.Logger
	onChange func(lang string)
	lang     string
	mu       sync.RWMutex
}

// ResolverOption configures a Resolver during construction.
type ResolverOption func(*Resolver)

// WithLanguage sets the initial active language. Tags the bundle does not
// carry are ignored, leaving the bundle's default language active.
func WithLanguage(lang string) ResolverOption {
	return func(r *Resolver) {
		if lang = NormalizeTag(lang); r.bundle.Has(lang) {
			r.lang = lang
		}
	}
}

// WithOnChange registers an observer invoked after every accepted language
// switch, e.g. to mirror the language into a document-level attribute.
func WithOnChange(fn func(lang string)) ResolverOption {
	return func(r *Resolver) {
		r.onChange = fn
	}
}

// WithLogger sets the logger used for language-switch traces.
func WithLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// NewResolver creates a Resolver bound to the bundle, starting at the
// bundle's default language.
func NewResolver(bundle *Bundle, opts ...ResolverOption) *Resolver {
	if bundle == nil {
		panic("i18n: bundle is not provided")
	}
	r := &Resolver{
		bundle: bundle,
		lang:   bundle.DefaultLanguage(),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Language returns the currently active language.
func (r *Resolver) Language() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lang
}

// SetLanguage switches the active language. Codes without a dictionary in the
// bundle are silently ignored and the active language stays unchanged; no
// error is reported.
func (r *Resolver) SetLanguage(code string) {
	code = NormalizeTag(code)
	if !r.bundle.Has(code) {
		r.log.Debug("ignoring unknown language", slog.String("lang", code))
		return
	}

	r.mu.Lock()
	changed := r.lang != code
	r.lang = code
	r.mu.Unlock()

	if changed && r.onChange != nil {
		r.onChange(code)
	}
}

// T resolves key for the active language and interpolates the positional
// arguments. It never fails: a missing key is returned verbatim, placeholders
// without a matching argument stay literal, and a language without its own
// dictionary falls back to the default one.
func (r *Resolver) T(key string, args ...any) string {
	lang := r.Language()

	e, ok := r.bundle.lookup(lang, key)
	if !ok {
		if r.bundle.missingKey != nil {
			r.bundle.missingKey(lang, key)
		}
		return key
	}

	return e.resolve(key, args)
}

// Bundle returns the bundle the resolver reads from.
func (r *Resolver) Bundle() *Bundle {
	return r.bundle
}

type ctxKey struct{}

// NewContext returns a context carrying the resolver.
func NewContext(ctx context.Context, r *Resolver) context.Context {
	return context.WithValue(ctx, ctxKey{}, r)
}

// FromContext extracts the resolver stored by NewContext.
func FromContext(ctx context.Context) (*Resolver, bool) {
	r, ok := ctx.Value(ctxKey{}).(*Resolver)
	return r, ok
}
