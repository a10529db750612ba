package i18n

import (
	"embed"
	"io/fs"
)

//go:embed locales
var localesFS embed.FS

// Default creates a Bundle from the dictionaries shipped with the package
// (en, es, ro), with English as the fallback language. Extra options are
// applied on top, so callers can override entries or the default language.
func Default(opts ...Option) (*Bundle, error) {
	sub, err := fs.Sub(localesFS, "locales")
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithYAMLDir(sub)}, opts...)...)
}
