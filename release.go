package structenv

import (
	"reflect"

	"github.com/Hanaasagi/struct-env/pkg/schema"
)

// Release clears a decoded value by walking it the same way Decode built it:
// every string, sequence and optional is dropped, then *v is reset to zero.
// Because defaults are copied on decode, releasing never affects schema
// defaults or other values. Release is nil-safe and may be called more than
// once. It is meant for values produced by Decode; pointers a caller stored
// into the value by hand are cleared through as well.
func Release[T any](v *T) {
	if v == nil {
		return
	}
	rv := reflect.ValueOf(v).Elem()
	if sh, err := schema.Of(rv.Type()); err == nil {
		release(sh, rv)
	}
	rv.SetZero()
}

func release(sh *schema.Shape, v reflect.Value) {
	switch sh.Kind {
	case schema.Record:
		for _, f := range sh.Fields {
			release(f.Shape, v.Field(f.Index))
		}
	case schema.Optional:
		if !v.IsNil() {
			release(sh.Elem, v.Elem())
		}
	case schema.Sequence:
		for i := range v.Len() {
			release(sh.Elem, v.Index(i))
		}
	}
	v.SetZero()
}
