package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// displayNames maps supported language tags to their menu labels.
var displayNames = map[string]string{
	"en": "English (EN)",
	"es": "Español (ES)",
	"ro": "Română (RO)",
}

// DisplayName returns the human-readable label for a language tag.
// Unknown tags are returned unchanged.
func DisplayName(lang string) string {
	if name, ok := displayNames[NormalizeTag(lang)]; ok {
		return name
	}
	return lang
}

// NormalizeTag lowercases and trims a language tag ("EN " -> "en").
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// ParseAcceptLanguage picks the best match for an Accept-Language header from
// the available languages. Quality values and region variants are handled by
// the x/text matcher ("en-US;q=0.9" matches an available "en"). The first
// available language wins when nothing matches or the header is unparseable.
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	wanted, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(wanted) == 0 {
		return available[0]
	}

	tags := make([]language.Tag, 0, len(available))
	langs := make([]string, 0, len(available))
	for _, lang := range available {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		langs = append(langs, lang)
	}
	if len(tags) == 0 {
		return available[0]
	}

	_, idx, conf := language.NewMatcher(tags).Match(wanted...)
	if conf == language.No {
		return available[0]
	}
	return langs[idx]
}

// ResolveLang applies the application's language-resolution chain: an explicit
// language from the request payload wins, then the guest's stored preference,
// then Accept-Language negotiation, then the bundle's default.
func ResolveLang(payloadLang, guestLang, acceptHeader string, bundle *Bundle) string {
	if lang := NormalizeTag(payloadLang); bundle.Has(lang) {
		return lang
	}
	if lang := NormalizeTag(guestLang); bundle.Has(lang) {
		return lang
	}
	if acceptHeader != "" {
		if lang := ParseAcceptLanguage(acceptHeader, bundle.Languages()); bundle.Has(lang) {
			return lang
		}
	}
	return bundle.DefaultLanguage()
}
