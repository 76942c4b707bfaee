package domain

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid flyer input")
	ErrFontUnavailable = errors.New("base font unavailable")
	ErrProviderFailure = errors.New("provider failure")
)
