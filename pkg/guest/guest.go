package guest

import (
	"strings"

	"github.com/weddingtools/rsvpkit/pkg/validate"
)

// CompanionType distinguishes adults from children for seating and menu counts.
type CompanionType string

const (
	CompanionAdult CompanionType = "adult"
	CompanionChild CompanionType = "child"
)

// Companion is one person accompanying the main guest.
type Companion struct {
	Name      string        `json:"name"`
	Type      CompanionType `json:"type"`
	Allergies string        `json:"allergies,omitempty"`
}

// Guest is an invited party's record as the client sees it: the main guest's
// identity and contact details, the invitation scope, and the current RSVP
// answer if one was given.
type Guest struct {
	Code          string      `json:"guest_code"`
	FullName      string      `json:"full_name"`
	Email         string      `json:"email,omitempty"`
	Phone         string      `json:"phone,omitempty"`
	Language      string      `json:"language,omitempty"`
	Invite        InviteType  `json:"invite_type"`
	MaxCompanions int         `json:"max_companions"`
	Attending     *bool       `json:"attending,omitempty"`
	Allergies     string      `json:"allergies,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	Consent       bool        `json:"consent"`
	Companions    []Companion `json:"companions,omitempty"`
}

// HasResponded reports whether the guest already answered the RSVP.
func (g Guest) HasResponded() bool {
	return g.Attending != nil
}

// NameMatches reports whether two names plausibly refer to the same person.
// Both names are normalized (diacritics stripped, case folded) and split into
// tokens; tokens of up to 2 runes (particles like "de", "y") are ignored. One
// shared significant token is enough — guests rarely type their name exactly
// as it appears on the invitation. No significant tokens on either side means
// no match.
func NameMatches(a, b string) bool {
	tokensA := significantTokens(a)
	tokensB := significantTokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return false
	}
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			return true
		}
	}
	return false
}

func significantTokens(name string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, token := range strings.Fields(validate.NormalizeName(name)) {
		if len([]rune(token)) > 2 {
			tokens[token] = struct{}{}
		}
	}
	return tokens
}

// MaskEmail hides most of an email's local part so addresses can appear in
// logs without exposing PII: "test@example.com" -> "te**@example.com".
func MaskEmail(email string) string {
	if email == "" {
		return "<empty>"
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		if len(email) > 2 {
			email = email[:2]
		}
		return email + "***"
	}
	masked := local
	if len(local) > 2 {
		masked = local[:2] + strings.Repeat("*", len(local)-2)
	}
	return masked + "@" + domain
}
