package envsource

import (
	"errors"
	"fmt"
	"maps"

	"github.com/joho/godotenv"
)

// ErrReadDotenv is returned when a .env file cannot be read or parsed.
var ErrReadDotenv = errors.New("failed to read dotenv file")

// Dotenv reads the given .env files into a Map without modifying the process
// environment. Later files override earlier ones. With no paths it reads ".env"
// from the working directory.
func Dotenv(paths ...string) (Map, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	out := make(Map)
	for _, path := range paths {
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadDotenv, path, err)
		}
		maps.Copy(out, values)
	}
	return out, nil
}
