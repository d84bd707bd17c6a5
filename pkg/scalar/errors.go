package scalar

import "errors"

var (
	// ErrSyntax is returned when a literal is not valid for the requested type.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange is returned when a literal does not fit the requested width.
	ErrRange = errors.New("value out of range")
)
