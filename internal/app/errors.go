package app

import "errors"

// Validation errors returned by store mutators. Invariant enforcement is
// consolidated here rather than split across store and screens.
var (
	ErrUnsupportedLanguage = errors.New("unsupported language code")
	ErrInvalidMode         = errors.New("invalid user mode")
	ErrInvalidPin          = errors.New("pin must be exactly 4 digits")
	ErrIncorrectPin        = errors.New("incorrect pin")
	ErrFontSizeRange       = errors.New("font size out of range")
)
