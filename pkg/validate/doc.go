// Package validate implements the RSVP form field validators.
//
// Each validator is a pure function from a raw input string to a Code: the
// empty code means the input is valid, any other code identifies the first
// rule that failed. Codes are stable strings that double as translation keys,
// so a caller typically renders them through the i18n layer:
//
//	if code := validate.Email(input); !code.IsValid() {
//		msg := resolver.T(code.Key())
//	}
//
// The Errors collection accumulates failures across a whole form and
// localizes them in one pass:
//
//	var errs validate.Errors
//	if code := validate.FullName(name); !code.IsValid() {
//		errs.Add("full_name", code)
//	}
//	errs.Translate(resolver.T)
//
// NormalizePhone and NormalizeName are the shared normalization helpers used
// when comparing user input against invitation records.
package validate
