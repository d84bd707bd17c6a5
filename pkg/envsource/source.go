package envsource

import (
	"os"
	"strings"
	"sync"
)

// Source is a read-only lookup of string values by exact key.
type Source interface {
	Lookup(key string) (string, bool)
}

// Func adapts a lookup function to the Source interface.
type Func func(key string) (string, bool)

// Lookup implements Source.
func (f Func) Lookup(key string) (string, bool) {
	return f(key)
}

// Map is an in-memory Source.
type Map map[string]string

// Lookup implements Source.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Snapshot is an immutable copy of an environment taken at a point in time.
// It is safe for concurrent lookups.
type Snapshot struct {
	mu     sync.RWMutex
	values map[string]string
}

// Environ takes a snapshot of the current process environment.
func Environ() *Snapshot {
	return FromEnviron(os.Environ())
}

// FromEnviron builds a snapshot from "KEY=value" pairs as returned by os.Environ.
// Pairs without "=" are ignored. The first "=" separates the key from the value,
// so values may contain "=" themselves. Later duplicates win.
func FromEnviron(environ []string) *Snapshot {
	values := make(map[string]string, len(environ))
	for _, pair := range environ {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			continue
		}
		values[k] = v
	}
	return &Snapshot{values: values}
}

// Lookup implements Source. A closed snapshot holds no keys.
func (s *Snapshot) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of keys in the snapshot.
func (s *Snapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Close disposes of the snapshot. It is safe to call more than once.
func (s *Snapshot) Close() error {
	s.mu.Lock()
	s.values = nil
	s.mu.Unlock()
	return nil
}

type overlay []Source

// Overlay returns a Source that consults each source in order and returns the
// first hit. Nil sources are skipped.
func Overlay(sources ...Source) Source {
	chain := make(overlay, 0, len(sources))
	for _, src := range sources {
		if src != nil {
			chain = append(chain, src)
		}
	}
	return chain
}

func (o overlay) Lookup(key string) (string, bool) {
	for _, src := range o {
		if v, ok := src.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
