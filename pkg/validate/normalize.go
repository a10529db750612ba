package validate

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper decomposes characters and removes combining marks,
// so "José" folds to "Jose".
var diacriticStripper = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizePhone strips everything that is not a decimal digit:
// "+34 600-123" becomes "34600123". It does not validate length or country;
// an empty result is the caller's signal that nothing usable was entered.
func NormalizePhone(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// NormalizeName folds a name for comparison: diacritics removed, whitespace
// collapsed, case folded. "  María  José " and "maria jose" normalize equal.
func NormalizeName(s string) string {
	out, _, err := transform.String(diacriticStripper, strings.TrimSpace(s))
	if err != nil {
		out = strings.TrimSpace(s)
	}
	out = strings.Join(strings.Fields(out), " ")
	return cases.Fold().String(out)
}
