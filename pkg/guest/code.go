package guest

import (
	"crypto/rand"
	"strings"

	"github.com/weddingtools/rsvpkit/pkg/validate"
)

const (
	codeAlphabet    = "ABCDEFGHJKMNPQRSTUVWXYZ23456789" // skips 0/O, 1/I/L lookalikes
	codePrefixLen   = 7
	codeSuffixLen   = 4
	codePrefixEmpty = "GUEST"
	maxCodeAttempts = 100
)

// NewCode derives an invitation code from the guest's full name:
// a stable uppercase prefix of the name (up to 7 letters, diacritics and
// non-letters dropped) plus a hyphen and 4 random characters,
// e.g. "ANAGARC-8H2K".
func NewCode(fullName string) string {
	return codePrefix(fullName) + "-" + randomSuffix(codeSuffixLen)
}

// NewUniqueCode generates codes until isUnique accepts one, retrying with a
// fresh random suffix on every collision. It gives up after a bounded number
// of attempts and returns false, which in practice only happens when the
// caller's uniqueness check is broken.
func NewUniqueCode(fullName string, isUnique func(code string) bool) (string, bool) {
	for range maxCodeAttempts {
		code := NewCode(fullName)
		if isUnique(code) {
			return code, true
		}
	}
	return "", false
}

// codePrefix folds the name to uppercase ASCII letters and truncates it.
func codePrefix(fullName string) string {
	folded := strings.ToUpper(validate.NormalizeName(fullName))

	var sb strings.Builder
	for _, r := range folded {
		if r >= 'A' && r <= 'Z' {
			sb.WriteRune(r)
		}
		if sb.Len() == codePrefixLen {
			break
		}
	}

	if sb.Len() == 0 {
		return codePrefixEmpty
	}
	return sb.String()
}

func randomSuffix(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic("guest: reading random bytes: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
