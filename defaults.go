package structenv

import (
	"reflect"

	"github.com/Hanaasagi/struct-env/pkg/schema"
)

// defaultOf returns a freshly owned copy of the field's default.
// Slices are copied so that decoded values never alias schema literals and
// Release can treat every value the same way. Strings are immutable and
// shared as is.
func defaultOf(f *schema.Field) (reflect.Value, bool) {
	def, ok := f.Default()
	if !ok {
		return reflect.Value{}, false
	}
	if def.Kind() == reflect.Slice {
		out := reflect.MakeSlice(def.Type(), def.Len(), def.Len())
		reflect.Copy(out, def)
		return out, true
	}
	return def, true
}
