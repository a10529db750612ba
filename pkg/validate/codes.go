package validate

// Code is a stable validation error code. The empty code means "valid".
// Codes double as translation keys so callers can display a localized
// message by resolving the code through the i18n layer.
type Code string

const (
	// CodeValid is the zero code: the input passed every rule.
	CodeValid Code = ""

	CodeRequired        Code = "val_required"
	CodeName            Code = "val_name"
	CodeEmail           Code = "val_email"
	CodePhone           Code = "val_phone"
	CodePhoneLast4      Code = "val_phone4"
	CodeGuestCode       Code = "val_guest_code"
	CodeContact         Code = "val_contact"
	CodeContactRequired Code = "val_contact_required"
	CodeAttending       Code = "val_attending"
	CodeCompanionName   Code = "val_companion_name"
	CodeCompanionsMax   Code = "val_companions_max"
)

// IsValid reports whether the code represents a passing validation.
func (c Code) IsValid() bool {
	return c == CodeValid
}

// Key returns the code as a translation key.
func (c Code) Key() string {
	return string(c)
}
