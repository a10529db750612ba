// Package i18n provides the localization layer of the RSVP application:
// immutable per-language dictionaries, a mutable resolver tracking the active
// language, and positional placeholder interpolation.
//
// # Basic Usage
//
// Build a Bundle with dictionaries and resolve keys through a Resolver:
//
//	bundle, err := i18n.New(
//		i18n.WithDefaultLanguage("es"),
//		i18n.WithDictionary("es", map[string]string{
//			"hello": "Hola {0}",
//		}),
//		i18n.WithDictionary("en", map[string]string{
//			"hello": "Hello {0}",
//		}),
//	)
//
//	r := i18n.NewResolver(bundle)
//	r.T("hello", "Ana") // "Hola Ana"
//
//	r.SetLanguage("en")
//	r.T("hello", "Ana") // "Hello Ana"
//	r.T("hello")        // "Hello {0}" — unsupplied placeholders stay literal
//
// Resolution never fails: a missing key comes back verbatim, an unknown
// language in SetLanguage is silently ignored, and a language without its own
// dictionary falls back to the default one.
//
// # Shipped Dictionaries
//
// Default returns a bundle preloaded with the application's en/es/ro
// dictionaries from embedded YAML assets:
//
//	bundle, err := i18n.Default()
//	r := i18n.NewResolver(bundle, i18n.WithLanguage("ro"))
//
// Custom dictionaries load from any fs.FS with WithYAMLDir or WithJSONDir;
// the file name (without extension) is the language tag and nested maps are
// flattened to dot-separated keys.
//
// # Legacy Entries
//
// A dictionary value is a tagged variant: a template string or a legacy
// callable kept for backward compatibility. Callables receive the positional
// arguments and return the final string, bypassing placeholder substitution:
//
//	i18n.WithLegacyFn("en", "countdown", func(args ...any) string {
//		return fmt.Sprintf("%v days to go!", args[0])
//	})
//
// # Language Negotiation
//
// ResolveLang applies the application's resolution chain (explicit payload
// language, guest preference, Accept-Language header, default) and
// ParseAcceptLanguage matches a raw header against the available languages.
package i18n
