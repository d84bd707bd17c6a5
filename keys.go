package structenv

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Hanaasagi/struct-env/pkg/envsource"
)

// keyResolver derives lookup keys and queries the source.
type keyResolver struct {
	prefix string
	src    envsource.Source
}

// nest returns a resolver for a nested record with an extended prefix.
func (k keyResolver) nest(prefix string) keyResolver {
	k.prefix += prefix
	return k
}

func (k keyResolver) resolve(name string) string {
	return k.prefix + name
}

// lookup tries the uppercased key, then the key as derived. It returns the
// key form that matched, or the uppercased form on a miss.
func (k keyResolver) lookup(key string) (value, used string, found bool) {
	upper := upperKey(key)
	if v, ok := k.src.Lookup(upper); ok {
		return v, upper, true
	}
	if upper != key {
		if v, ok := k.src.Lookup(key); ok {
			return v, key, true
		}
	}
	return "", upper, false
}

// upperKey uppercases with a fresh caser; cases.Caser is stateful.
func upperKey(key string) string {
	return cases.Upper(language.Und).String(key)
}
