package i18n

import (
	"fmt"
	"sort"
)

// DefaultLang is the fallback language used when no default is configured.
const DefaultLang = "en"

// Bundle holds the per-language dictionaries. It is immutable after creation,
// making it safe for concurrent use.
type Bundle struct {
	// Flat dictionaries: language tag -> key -> entry.
	dicts map[string]map[string]Entry

	// Optional handler called when a key is not found in any dictionary.
	// Useful for spotting untranslated keys during development.
	missingKey func(lang, key string)

	// Default/fallback language.
	defaultLang string

	// Pre-computed list of available languages, default first.
	languages []string
}

// Option configures the Bundle during construction.
type Option func(*Bundle) error

// New creates a Bundle with the given options.
// All configuration happens during construction, so the bundle is immutable
// and thread-safe from creation.
func New(opts ...Option) (*Bundle, error) {
	b := &Bundle{
		dicts:       make(map[string]map[string]Entry),
		defaultLang: DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if b.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	b.languages = b.buildLanguagesList()

	return b, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(b *Bundle) error {
		lang = NormalizeTag(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		b.defaultLang = lang
		return nil
	}
}

// WithDictionary loads template strings for a language.
// Keys already present for the language are overwritten.
func WithDictionary(lang string, entries map[string]string) Option {
	return func(b *Bundle) error {
		lang = NormalizeTag(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		dict := b.dict(lang)
		for key, tmpl := range entries {
			if key == "" {
				return ErrEmptyKey
			}
			dict[key] = Template(tmpl)
		}
		return nil
	}
}

// WithEntries loads pre-built entries for a language, allowing a mix of
// templates and legacy callables.
func WithEntries(lang string, entries map[string]Entry) Option {
	return func(b *Bundle) error {
		lang = NormalizeTag(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		dict := b.dict(lang)
		for key, e := range entries {
			if key == "" {
				return ErrEmptyKey
			}
			dict[key] = e
		}
		return nil
	}
}

// WithLegacyFn registers a single legacy callable entry.
// Exists only to keep old dictionaries working; new entries should be templates.
func WithLegacyFn(lang, key string, fn LegacyFunc) Option {
	return func(b *Bundle) error {
		lang = NormalizeTag(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		if key == "" {
			return ErrEmptyKey
		}
		if fn == nil {
			return ErrNilLegacyFn
		}
		b.dict(lang)[key] = Legacy(fn)
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when a key is not found in the
// active language's dictionary nor in the default one.
func WithMissingKeyHandler(handler func(lang, key string)) Option {
	return func(b *Bundle) error {
		b.missingKey = handler
		return nil
	}
}

// Has reports whether the bundle carries a dictionary for the language.
func (b *Bundle) Has(lang string) bool {
	_, ok := b.dicts[NormalizeTag(lang)]
	return ok
}

// Languages returns the available languages, default language first.
func (b *Bundle) Languages() []string {
	return b.languages
}

// DefaultLanguage returns the default/fallback language.
func (b *Bundle) DefaultLanguage() string {
	return b.defaultLang
}

// lookup finds the entry for key using the language's dictionary, falling back
// to the default language's dictionary when the language has none at all.
func (b *Bundle) lookup(lang, key string) (Entry, bool) {
	dict, ok := b.dicts[lang]
	if !ok {
		dict = b.dicts[b.defaultLang]
	}
	e, ok := dict[key]
	return e, ok
}

// dict returns the mutable dictionary for a language, creating it if needed.
// Only called from options, before the bundle is published.
func (b *Bundle) dict(lang string) map[string]Entry {
	d, ok := b.dicts[lang]
	if !ok {
		d = make(map[string]Entry)
		b.dicts[lang] = d
	}
	return d
}

func (b *Bundle) buildLanguagesList() []string {
	langs := make([]string, 0, len(b.dicts)+1)
	langs = append(langs, b.defaultLang)
	for lang := range b.dicts {
		if lang != b.defaultLang {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs[1:])
	return langs
}
