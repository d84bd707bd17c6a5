package structenv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/Hanaasagi/struct-env/pkg/envsource"
	"github.com/Hanaasagi/struct-env/pkg/logger"
	"github.com/Hanaasagi/struct-env/pkg/scalar"
	"github.com/Hanaasagi/struct-env/pkg/schema"
)

// Decode builds a T from src. T must be a struct type.
// On error the zero T is returned; no partially decoded value escapes.
func Decode[T any](src envsource.Source, opts ...Option) (T, error) {
	var out T
	if err := DecodeInto(src, &out, opts...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// DecodeInto decodes src into the struct pointed to by v.
// The target is assigned only when every field decoded successfully.
func DecodeInto(src envsource.Source, v any, opts ...Option) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", schema.ErrInvalidTarget)
	}
	if src == nil {
		return ErrNilSource
	}

	sh, err := schema.Of(rv.Elem().Type())
	if err != nil {
		return err
	}

	o := newOptions(opts)
	d := &decoder{log: o.logger}
	keys := keyResolver{prefix: o.prefix, src: src}

	d.log.Debug("structenv: decoding", slog.String("type", sh.Type.String()), logger.Prefix(o.prefix))

	// Fields are written into a copy of the target and published in one
	// assignment, so skipped and unexported fields keep their values.
	scratch := reflect.New(sh.Type).Elem()
	scratch.Set(rv.Elem())
	if err := d.record(sh, scratch, "", keys); err != nil {
		return err
	}
	rv.Elem().Set(scratch)
	return nil
}

type decoder struct {
	log *slog.Logger
}

// record decodes fields in declaration order and stops at the first failure.
func (d *decoder) record(sh *schema.Shape, dst reflect.Value, path string, keys keyResolver) error {
	for i := range sh.Fields {
		f := &sh.Fields[i]
		if err := d.decode(f.Shape, f, dst.Field(f.Index), joinPath(path, f.GoName), keys); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) decode(sh *schema.Shape, f *schema.Field, dst reflect.Value, path string, keys keyResolver) error {
	switch sh.Kind {
	case schema.Record:
		return d.record(sh, dst, path, keys.nest(f.Prefix))
	case schema.Optional:
		return d.optional(sh, f, dst, path, keys)
	default:
		return d.leaf(sh, f, dst, path, keys)
	}
}

// optional suppresses ErrNotExist from the inner shape and nothing else.
func (d *decoder) optional(sh *schema.Shape, f *schema.Field, dst reflect.Value, path string, keys keyResolver) error {
	inner := reflect.New(sh.Elem.Type)
	err := d.decode(sh.Elem, f, inner.Elem(), path, keys)
	switch {
	case err == nil:
		dst.Set(inner)
		return nil
	case errors.Is(err, ErrNotExist):
		d.log.Debug("structenv: optional field absent", logger.Field(path))
		dst.SetZero()
		return nil
	default:
		return err
	}
}

// leaf handles every keyed shape: scalars, enums and sequences.
func (d *decoder) leaf(sh *schema.Shape, f *schema.Field, dst reflect.Value, path string, keys keyResolver) error {
	raw, key, found := keys.lookup(keys.resolve(f.Name))
	if !found {
		def, ok := defaultOf(f)
		if !ok {
			return &FieldError{Field: path, Key: key, Index: -1, Err: ErrNotExist}
		}
		d.log.Debug("structenv: default applied", logger.Field(path), logger.Key(key))
		dst.Set(def)
		return nil
	}

	if d.log.Enabled(context.Background(), slog.LevelDebug) {
		d.log.Debug("structenv: key resolved", logger.Field(path), logger.Key(key), logger.Shape(sh.String()))
	}

	if sh.Kind == schema.Sequence {
		return d.sequence(sh, dst, raw, path, key)
	}
	if err := setScalar(sh, dst, raw); err != nil {
		return &FieldError{Field: path, Key: key, Value: raw, Index: -1, Err: ErrInvalidValue, Cause: err}
	}
	return nil
}

func (d *decoder) sequence(sh *schema.Shape, dst reflect.Value, raw, path, key string) error {
	parts := scalar.Split(raw)
	out := reflect.MakeSlice(sh.Type, len(parts), len(parts))
	for i, part := range parts {
		if err := setScalar(sh.Elem, out.Index(i), part); err != nil {
			return &FieldError{Field: path, Key: key, Value: part, Index: i, Err: ErrInvalidValue, Cause: err}
		}
	}
	dst.Set(out)
	return nil
}

// setScalar parses raw into dst according to sh. Strings are cloned so the
// decoded value does not share memory with the source.
func setScalar(sh *schema.Shape, dst reflect.Value, raw string) error {
	switch sh.Kind {
	case schema.String:
		dst.SetString(strings.Clone(raw))
	case schema.Bool:
		dst.SetBool(scalar.Bool(raw))
	case schema.Int:
		if sh.Signed {
			n, err := scalar.Int(raw, sh.Bits)
			if err != nil {
				return err
			}
			dst.SetInt(n)
		} else {
			n, err := scalar.Uint(raw, sh.Bits)
			if err != nil {
				return err
			}
			dst.SetUint(n)
		}
	case schema.Float:
		f, err := scalar.Float(raw, sh.Bits)
		if err != nil {
			return err
		}
		dst.SetFloat(f)
	case schema.Enum:
		if !sh.HasVariant(raw) {
			return fmt.Errorf("%q is not one of %s", raw, strings.Join(sh.Variants, ", "))
		}
		dst.SetString(strings.Clone(raw))
	default:
		return fmt.Errorf("%w: %s", schema.ErrUnsupportedType, sh)
	}
	return nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
