package schema

import "errors"

// Schema definition errors. They are reported before any value is looked up.
var (
	// ErrInvalidTarget is returned when the target is not a struct type.
	ErrInvalidTarget = errors.New("schema target must be a struct")

	// ErrUnsupportedType is returned for field types the decoder cannot handle.
	ErrUnsupportedType = errors.New("unsupported field type")

	// ErrInvalidDefault is returned when a default literal does not parse as the field type.
	ErrInvalidDefault = errors.New("invalid default value")

	// ErrInvalidTag is returned for malformed or misplaced struct tags.
	ErrInvalidTag = errors.New("invalid struct tag")

	// ErrDuplicateField is returned when two fields of one record resolve to the same name.
	ErrDuplicateField = errors.New("duplicate field name")
)
