package structenv

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNotExist is returned when a key is absent and the field has no default.
	ErrNotExist = errors.New("key does not exist")

	// ErrInvalidValue is returned when a present value does not conform to the field type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrNilSource is returned when decoding from a nil source.
	ErrNilSource = errors.New("nil source provided to decoder")
)

// FieldError reports which field failed to decode and why.
// Err is ErrNotExist or ErrInvalidValue; Cause holds the parse error, if any.
type FieldError struct {
	// Field is the dotted Go path of the field, e.g. "Database.Port".
	Field string
	// Key is the key that was looked up, or found.
	Key string
	// Value is the raw value for ErrInvalidValue.
	Value string
	// Index is the failing sequence element, or -1.
	Index int
	Err   error
	Cause error
}

func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString("structenv: field ")
	b.WriteString(e.Field)
	if e.Key != "" {
		b.WriteString(" (key ")
		b.WriteString(e.Key)
		b.WriteByte(')')
	}
	if e.Index >= 0 {
		b.WriteString(" element ")
		b.WriteString(strconv.Itoa(e.Index))
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *FieldError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
