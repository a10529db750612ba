package i18n

// Kind identifies which variant an Entry holds.
type Kind int

const (
	// KindTemplate is a plain template string with positional {0}, {1}, ... placeholders.
	KindTemplate Kind = iota

	// KindLegacyFn is a callable that builds the string itself.
	// Retained for backward compatibility with old dictionary entries;
	// new entries should always be templates.
	KindLegacyFn
)

// LegacyFunc is the signature of a legacy dictionary callable.
// It receives the positional arguments and returns the final string.
type LegacyFunc func(args ...any) string

// Entry is a single dictionary value: either a template string or a legacy
// callable. The zero value is an empty template.
type Entry struct {
	fn       LegacyFunc
	template string
	kind     Kind
}

// Template creates a template entry.
func Template(s string) Entry {
	return Entry{kind: KindTemplate, template: s}
}

// Legacy creates a legacy callable entry.
func Legacy(fn LegacyFunc) Entry {
	return Entry{kind: KindLegacyFn, fn: fn}
}

// Kind returns the entry's variant tag.
func (e Entry) Kind() Kind {
	return e.kind
}

// resolve produces the final string for the entry.
// Template entries go through positional placeholder substitution.
// Legacy callables are invoked with the arguments; if the callable is nil or
// panics, the key is returned so translation never fails.
func (e Entry) resolve(key string, args []any) (out string) {
	switch e.kind {
	case KindLegacyFn:
		if e.fn == nil {
			return key
		}
		defer func() {
			if recover() != nil {
				out = key
			}
		}()
		return e.fn(args...)
	default:
		return ReplacePositional(e.template, args...)
	}
}
