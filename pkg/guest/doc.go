// Package guest defines the data shapes the RSVP client works with: the
// invited party, its companions, the invitation scope, and the response
// payload with its form-level validation.
//
// It also carries the invitation-code helpers (NewCode, NewUniqueCode) and the
// fuzzy name matching used when a guest requests access without their code.
package guest
