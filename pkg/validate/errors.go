package validate

// TranslateFunc converts an error code and optional positional arguments into
// a localized message. The signature matches (*i18n.Resolver).T, allowing
// direct use as:
//
//	errs.Translate(resolver.T)
type TranslateFunc func(key string, args ...any) string

// Error is a single field validation failure.
type Error struct {
	Field   string
	Message string
	Args    []any
	Code    Code
}

// Error implements the error interface, returning the localized message when
// set and the raw code otherwise.
func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code.Key()
}

// Errors is a collection of field validation failures.
type Errors []Error

// Add appends a failure for a field.
func (e *Errors) Add(field string, code Code, args ...any) {
	*e = append(*e, Error{Field: field, Code: code, Args: args})
}

// Has reports whether any failure was recorded for the field.
func (e Errors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Translate fills every error's Message in place using the provided function.
// A nil function is a no-op, leaving the raw codes as messages.
func (e Errors) Translate(fn TranslateFunc) {
	if fn == nil {
		return
	}
	for i := range e {
		e[i].Message = fn(e[i].Code.Key(), e[i].Args...)
	}
}

// Error implements the error interface for the collection.
func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msg := e[0].Error()
	if len(e) > 1 {
		msg += " (and more)"
	}
	return msg
}
