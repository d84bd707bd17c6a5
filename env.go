package structenv

import (
	"fmt"

	"github.com/Hanaasagi/struct-env/pkg/envsource"
)

// FromEnv decodes a T from a snapshot of the process environment.
// The snapshot is disposed of before FromEnv returns, on success or failure.
func FromEnv[T any](opts ...Option) (T, error) {
	snap := envsource.Environ()
	defer snap.Close()
	return Decode[T](snap, opts...)
}

// MustFromEnv works like FromEnv but panics if decoding fails.
// This is useful for configuration the program cannot start without.
func MustFromEnv[T any](opts ...Option) T {
	v, err := FromEnv[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("Failed to decode environment: %v", err))
	}
	return v
}
