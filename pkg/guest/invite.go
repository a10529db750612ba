package guest

import "strings"

// InviteType scopes what a guest is invited to.
type InviteType string

const (
	// InviteFull covers both the ceremony and the reception.
	InviteFull InviteType = "full"

	// InviteParty covers the reception only.
	InviteParty InviteType = "party"
)

// ParseInviteType normalizes raw invitation values from imported guest lists.
// "full" and "party" pass through; the legacy "ceremony" value implied full
// access and maps accordingly. Anything else, including empty input, falls
// back to the reception-only scope.
func ParseInviteType(raw string) InviteType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "full", "ceremony":
		return InviteFull
	case "party":
		return InviteParty
	default:
		return InviteParty
	}
}

// InvitedToCeremony reports whether the invitation covers the ceremony.
func (t InviteType) InvitedToCeremony() bool {
	return t == InviteFull
}

// String returns the wire value of the invitation type.
func (t InviteType) String() string {
	return string(t)
}
