package schema

import (
	"reflect"
	"strconv"
	"strings"
)

// Kind enumerates the closed set of shapes a field can take.
type Kind uint8

const (
	Invalid Kind = iota
	String
	Bool
	Int
	Float
	Enum
	Optional
	Sequence
	Record
)

var kindNames = [...]string{
	Invalid:  "invalid",
	String:   "string",
	Bool:     "bool",
	Int:      "int",
	Float:    "float",
	Enum:     "enum",
	Optional: "optional",
	Sequence: "sequence",
	Record:   "record",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Scalar reports whether k may be used as a sequence element.
func (k Kind) Scalar() bool {
	switch k {
	case String, Bool, Int, Float:
		return true
	default:
		return false
	}
}

// Shape describes how a Go type is decoded. Shapes are built by Of and must
// be treated as read-only.
type Shape struct {
	Kind Kind
	// Type is the Go type the shape was derived from.
	Type reflect.Type
	// Bits is the width of Int and Float shapes.
	Bits int
	// Signed distinguishes signed from unsigned Int shapes.
	Signed bool
	// Variants lists the accepted names of an Enum shape.
	Variants []string
	// Elem is the wrapped shape of Optional and Sequence shapes.
	Elem *Shape
	// Fields lists the members of a Record shape in declaration order.
	Fields []Field
}

// Field describes one member of a record.
type Field struct {
	// Name is used for key derivation: the env tag or the Go field name.
	Name string
	// GoName is the struct field name.
	GoName string
	// Index is the position of the field in its struct.
	Index int
	Shape *Shape
	// Prefix extends the active key prefix for nested records.
	Prefix string

	def    reflect.Value
	hasDef bool
}

// Default returns the typed default literal of the field. The value has the
// type of the innermost non-optional shape. It must not be mutated; callers
// that hand it out should copy it first.
func (f Field) Default() (reflect.Value, bool) {
	return f.def, f.hasDef
}

// Base unwraps Optional shapes.
func (s *Shape) Base() *Shape {
	for s.Kind == Optional {
		s = s.Elem
	}
	return s
}

// HasVariant reports whether name is one of the enum variants.
func (s *Shape) HasVariant(name string) bool {
	for _, v := range s.Variants {
		if v == name {
			return true
		}
	}
	return false
}

func (s *Shape) String() string {
	var b strings.Builder
	s.write(&b)
	return b.String()
}

func (s *Shape) write(b *strings.Builder) {
	switch s.Kind {
	case Int:
		if !s.Signed {
			b.WriteByte('u')
		}
		b.WriteString("int")
		b.WriteString(strconv.Itoa(s.Bits))
	case Float:
		b.WriteString("float")
		b.WriteString(strconv.Itoa(s.Bits))
	case Enum:
		b.WriteString("enum{")
		b.WriteString(strings.Join(s.Variants, ","))
		b.WriteByte('}')
	case Optional, Sequence:
		b.WriteString(s.Kind.String())
		b.WriteByte('(')
		s.Elem.write(b)
		b.WriteByte(')')
	case Record:
		b.WriteString("record{")
		for i, f := range s.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteByte(' ')
			f.Shape.write(b)
		}
		b.WriteByte('}')
	default:
		b.WriteString(s.Kind.String())
	}
}
