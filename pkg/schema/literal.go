package schema

import (
	"fmt"
	"reflect"

	"github.com/Hanaasagi/struct-env/pkg/scalar"
)

// parseLiteral converts a default tag into a typed value of sh.Type.
// Booleans use the strict parser: a default is a schema constant, not input.
func parseLiteral(sh *Shape, lit string) (reflect.Value, error) {
	switch sh.Kind {
	case Record:
		return reflect.Value{}, fmt.Errorf("%w: record %s takes no default", ErrInvalidDefault, sh.Type)
	case Sequence:
		parts := scalar.Split(lit)
		out := reflect.MakeSlice(sh.Type, len(parts), len(parts))
		for i, part := range parts {
			v, err := parseScalarLiteral(sh.Elem, part)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			out.Index(i).Set(v)
		}
		return out, nil
	default:
		return parseScalarLiteral(sh, lit)
	}
}

func parseScalarLiteral(sh *Shape, lit string) (reflect.Value, error) {
	v := reflect.New(sh.Type).Elem()

	switch sh.Kind {
	case String:
		v.SetString(lit)
	case Enum:
		if !sh.HasVariant(lit) {
			return reflect.Value{}, fmt.Errorf("%w: %q is not one of %s", ErrInvalidDefault, lit, sh)
		}
		v.SetString(lit)
	case Bool:
		b, err := scalar.StrictBool(lit)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrInvalidDefault, err)
		}
		v.SetBool(b)
	case Int:
		if sh.Signed {
			n, err := scalar.Int(lit, sh.Bits)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("%w: %w", ErrInvalidDefault, err)
			}
			v.SetInt(n)
		} else {
			n, err := scalar.Uint(lit, sh.Bits)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("%w: %w", ErrInvalidDefault, err)
			}
			v.SetUint(n)
		}
	case Float:
		f, err := scalar.Float(lit, sh.Bits)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrInvalidDefault, err)
		}
		v.SetFloat(f)
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s takes no default", ErrInvalidDefault, sh)
	}

	return v, nil
}
