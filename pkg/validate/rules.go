package validate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minNameLen = 2
	maxNameLen = 80

	minCodeLen = 4
	maxCodeLen = 12

	minPhoneDigits = 7
	maxPhoneDigits = 15
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// FullName validates a guest's full name: non-empty, 2-80 runes, and only
// letters (accented included), whitespace, and apostrophes.
func FullName(s string) Code {
	s = strings.TrimSpace(s)
	if s == "" {
		return CodeRequired
	}
	if n := utf8.RuneCountInString(s); n < minNameLen || n > maxNameLen {
		return CodeName
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '\'' && r != '’' {
			return CodeName
		}
	}
	return CodeValid
}

// Email validates an address against a standard local@domain.tld shape.
func Email(s string) Code {
	s = strings.TrimSpace(s)
	if s == "" {
		return CodeRequired
	}
	if !emailRe.MatchString(s) {
		return CodeEmail
	}
	return CodeValid
}

// Phone validates a full phone number with country code. Formatting
// characters (spaces, dashes, parentheses, a leading +) are tolerated; the
// digits themselves must number 7-15.
func Phone(s string) Code {
	s = strings.TrimSpace(s)
	if s == "" {
		return CodeRequired
	}
	for _, r := range s {
		if !strings.ContainsRune("+ ()-.", r) && (r < '0' || r > '9') {
			return CodePhone
		}
	}
	if n := len(NormalizePhone(s)); n < minPhoneDigits || n > maxPhoneDigits {
		return CodePhone
	}
	return CodeValid
}

// PhoneLast4 validates the "last 4 digits of your phone" field: exactly four
// decimal digits.
func PhoneLast4(s string) Code {
	s = strings.TrimSpace(s)
	if s == "" {
		return CodeRequired
	}
	if len(s) != 4 {
		return CodePhoneLast4
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return CodePhoneLast4
		}
	}
	return CodeValid
}

// GuestCode validates an invitation code: 4-12 characters, uppercase letters
// and digits only. Lowercase input is rejected rather than folded so the user
// sees the code exactly as it must be entered.
func GuestCode(s string) Code {
	s = strings.TrimSpace(s)
	if s == "" {
		return CodeRequired
	}
	if len(s) < minCodeLen || len(s) > maxCodeLen {
		return CodeGuestCode
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return CodeGuestCode
		}
	}
	return CodeValid
}

// Contact validates the combined "email or phone" login field: the value must
// be either a well-formed email or a well-formed phone number.
func Contact(s string) Code {
	if strings.TrimSpace(s) == "" {
		return CodeRequired
	}
	if Email(s).IsValid() || Phone(s).IsValid() {
		return CodeValid
	}
	return CodeContact
}
