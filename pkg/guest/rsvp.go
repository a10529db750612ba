package guest

import (
	"github.com/weddingtools/rsvpkit/pkg/validate"
)

// RSVP is the submission payload for the response form.
type RSVP struct {
	Attending  *bool       `json:"attending"`
	Email      string      `json:"email,omitempty"`
	Phone      string      `json:"phone,omitempty"`
	Allergies  string      `json:"allergies,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	Companions []Companion `json:"companions,omitempty"`
}

// Validate checks the payload against the client-side form rules.
// maxCompanions is the allowance from the guest's invitation. The returned
// collection is empty when the payload is valid.
//
// A "not attending" answer short-circuits the remaining rules: the form only
// needs the answer itself in that case.
func (r RSVP) Validate(maxCompanions int) validate.Errors {
	var errs validate.Errors

	if r.Attending == nil {
		errs.Add("attending", validate.CodeAttending)
		return errs
	}
	if !*r.Attending {
		return errs
	}

	if r.Email == "" && r.Phone == "" {
		errs.Add("contact", validate.CodeContactRequired)
	}
	if r.Email != "" {
		if code := validate.Email(r.Email); !code.IsValid() {
			errs.Add("email", code)
		}
	}
	if r.Phone != "" {
		if code := validate.Phone(r.Phone); !code.IsValid() {
			errs.Add("phone", code)
		}
	}

	if len(r.Companions) > maxCompanions {
		errs.Add("companions", validate.CodeCompanionsMax, maxCompanions)
	}
	for _, c := range r.Companions {
		if code := validate.FullName(c.Name); !code.IsValid() {
			errs.Add("companions", validate.CodeCompanionName)
			break
		}
	}

	return errs
}
