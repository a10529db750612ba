package i18n

import "errors"

var (
	ErrEmptyLanguage = errors.New("i18n: language cannot be empty")
	ErrEmptyKey      = errors.New("i18n: dictionary key cannot be empty")
	ErrNilLegacyFn   = errors.New("i18n: legacy callable cannot be nil")
	ErrInvalidFile   = errors.New("i18n: invalid dictionary file")
)
