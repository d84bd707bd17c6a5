package schema

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Hanaasagi/struct-env/pkg/scalar"
)

// Struct tags understood by Of.
const (
	TagName    = "env"
	TagDefault = "default"
	TagEnum    = "enum"
	TagPrefix  = "prefix"
)

// Enumerator is implemented by string types that accept a closed set of values.
// Variants must have a value receiver.
type Enumerator interface {
	Variants() []string
}

var enumeratorType = reflect.TypeFor[Enumerator]()

// shapeCache stores derived record shapes keyed by struct type.
type shapeCache struct {
	mu     sync.RWMutex
	shapes map[reflect.Type]*Shape
}

var globalCache = &shapeCache{shapes: make(map[reflect.Type]*Shape)}

// For derives the record shape of T.
func For[T any]() (*Shape, error) {
	return Of(reflect.TypeFor[T]())
}

// Of derives the record shape of the struct type t. Results are cached per
// type, so the returned shape is shared and must not be modified.
func Of(t reflect.Type) (*Shape, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTarget, t)
	}
	return globalCache.get(t)
}

// ResetCache drops all cached shapes.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.shapes = make(map[reflect.Type]*Shape)
	globalCache.mu.Unlock()
}

func (c *shapeCache) get(t reflect.Type) (*Shape, error) {
	c.mu.RLock()
	sh, ok := c.shapes[t]
	c.mu.RUnlock()
	if ok {
		return sh, nil
	}

	b := &builder{visiting: make(map[reflect.Type]bool)}
	sh, err := b.record(t)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", t, err)
	}

	c.mu.Lock()
	if existing, ok := c.shapes[t]; ok {
		sh = existing
	} else {
		c.shapes[t] = sh
	}
	c.mu.Unlock()
	return sh, nil
}

// builder derives fresh shapes; nothing it returns is shared until cached.
type builder struct {
	visiting map[reflect.Type]bool
}

func (b *builder) record(t reflect.Type) (*Shape, error) {
	if b.visiting[t] {
		return nil, fmt.Errorf("%w: recursive type %s", ErrUnsupportedType, t)
	}
	b.visiting[t] = true
	defer delete(b.visiting, t)

	sh := &Shape{Kind: Record, Type: t}
	seen := make(map[string]string)

	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		f, skip, err := b.field(sf, i)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}
		if skip {
			continue
		}

		// Records carry no key of their own. Names are compared the way keys
		// are looked up, uppercase first.
		if f.Shape.Base().Kind != Record {
			key := cases.Upper(language.Und).String(f.Name)
			if other, dup := seen[key]; dup {
				return nil, fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateField, f.Name, other, sf.Name)
			}
			seen[key] = sf.Name
		}
		sh.Fields = append(sh.Fields, f)
	}
	return sh, nil
}

func (b *builder) field(sf reflect.StructField, index int) (Field, bool, error) {
	tag, hasTag := sf.Tag.Lookup(TagName)
	if tag == "-" {
		return Field{}, true, nil
	}
	name, _, _ := strings.Cut(tag, ",")
	if !hasTag || name == "" {
		name = sf.Name
	}

	sh, err := b.shape(sf.Type)
	if err != nil {
		return Field{}, false, err
	}

	if variants, ok := sf.Tag.Lookup(TagEnum); ok {
		if err := setVariants(sh.Base(), variants); err != nil {
			return Field{}, false, err
		}
	}

	f := Field{Name: name, GoName: sf.Name, Index: index, Shape: sh}

	if prefix, ok := sf.Tag.Lookup(TagPrefix); ok {
		if sh.Base().Kind != Record {
			return Field{}, false, fmt.Errorf("%w: %s tag on non-record %s", ErrInvalidTag, TagPrefix, sh)
		}
		f.Prefix = prefix
	}

	if lit, ok := sf.Tag.Lookup(TagDefault); ok {
		v, err := parseLiteral(sh.Base(), lit)
		if err != nil {
			return Field{}, false, err
		}
		f.def, f.hasDef = v, true
	}

	return f, false, nil
}

func (b *builder) shape(t reflect.Type) (*Shape, error) {
	if t.Kind() == reflect.String && t.Implements(enumeratorType) {
		variants := reflect.Zero(t).Interface().(Enumerator).Variants()
		if len(variants) == 0 {
			return nil, fmt.Errorf("%w: enum %s declares no variants", ErrUnsupportedType, t)
		}
		return &Shape{Kind: Enum, Type: t, Variants: slices.Clone(variants)}, nil
	}

	switch t.Kind() {
	case reflect.String:
		return &Shape{Kind: String, Type: t}, nil
	case reflect.Bool:
		return &Shape{Kind: Bool, Type: t}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Shape{Kind: Int, Type: t, Bits: t.Bits(), Signed: true}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Shape{Kind: Int, Type: t, Bits: t.Bits()}, nil
	case reflect.Float32, reflect.Float64:
		return &Shape{Kind: Float, Type: t, Bits: t.Bits()}, nil
	case reflect.Pointer:
		elem, err := b.shape(t.Elem())
		if err != nil {
			return nil, err
		}
		return &Shape{Kind: Optional, Type: t, Elem: elem}, nil
	case reflect.Slice:
		elem, err := b.shape(t.Elem())
		if err != nil {
			return nil, err
		}
		if !elem.Kind.Scalar() {
			return nil, fmt.Errorf("%w: sequence of %s", ErrUnsupportedType, elem)
		}
		return &Shape{Kind: Sequence, Type: t, Elem: elem}, nil
	case reflect.Struct:
		return b.record(t)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

func setVariants(sh *Shape, tag string) error {
	if sh.Kind != String && sh.Kind != Enum {
		return fmt.Errorf("%w: %s tag on %s", ErrInvalidTag, TagEnum, sh)
	}
	variants := scalar.Split(tag)
	if slices.Contains(variants, "") {
		return fmt.Errorf("%w: empty variant in %q", ErrInvalidTag, tag)
	}
	sh.Kind = Enum
	sh.Variants = variants
	return nil
}
