package scalar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator delimits sequence elements.
const Separator = ","

// Bool reports whether s spells TRUE, ignoring letter case.
func Bool(s string) bool {
	return strings.EqualFold(s, "TRUE")
}

// StrictBool parses a boolean literal the way strconv.ParseBool does.
func StrictBool(s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, wrapNumError(s, err)
	}
	return b, nil
}

// Int parses a signed integer that must fit in bits.
func Int(s string, bits int) (int64, error) {
	sign, digits, base := splitBase(s)
	if !validDigits(digits) {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	n, err := strconv.ParseInt(sign+digits, base, bits)
	if err != nil {
		return 0, wrapNumError(s, err)
	}
	return n, nil
}

// Uint parses an unsigned integer that must fit in bits.
// A leading "+" is accepted, a leading "-" is not.
func Uint(s string, bits int) (uint64, error) {
	sign, digits, base := splitBase(s)
	if !validDigits(digits) || sign == "-" {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	n, err := strconv.ParseUint(digits, base, bits)
	if err != nil {
		return 0, wrapNumError(s, err)
	}
	return n, nil
}

// Float parses a decimal or scientific floating point literal at the given width.
func Float(s string, bits int) (float64, error) {
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, wrapNumError(s, err)
	}
	return f, nil
}

// Split breaks a raw sequence value into its elements.
func Split(s string) []string {
	return strings.Split(s, Separator)
}

// splitBase separates the sign and the base prefix from the digits.
func splitBase(s string) (sign, digits string, base int) {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return sign, s[2:], 16
		case 'o', 'O':
			return sign, s[2:], 8
		case 'b', 'B':
			return sign, s[2:], 2
		}
	}
	return sign, s, 10
}

// validDigits rejects empty digit runs and a second sign after a base prefix.
func validDigits(digits string) bool {
	return digits != "" && digits[0] != '+' && digits[0] != '-'
}

func wrapNumError(s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q: %w", ErrRange, s, err)
	}
	return fmt.Errorf("%w: %q: %w", ErrSyntax, s, err)
}
