// Package config provides a generic and cached way to load application
// configuration from environment variables and .env files.
//
// It builds on the struct-env decoder and `github.com/joho/godotenv` to
// deliver a convenient API that:
//
//   - Reads values from one or multiple `.env` files (falling back to the
//     default `.env` in the current working directory) into a read-only layer
//     beneath the process environment. The environment itself is never changed.
//   - Decodes the layered environment into any Go struct using field tags.
//   - Caches each successfully loaded configuration type so it is only decoded
//     once for the lifetime of the process.
//   - Exposes helpers that panic on failure (`MustLoadEnv`, `MustLoad`) for
//     scenarios where configuration is critical.
//   - Allows explicit cache reset or force reload which is handy in tests.
//
// # Architecture
//
// Internally the package keeps a singleton `configCache` that stores decoded
// struct copies keyed by their reflect.Type. Each key also holds a `sync.Once`
// guaranteeing the decoding work is executed at most once per configuration
// type even when accessed from multiple goroutines concurrently. A failed
// decode releases its `sync.Once`, so a later call can retry.
//
// Lookups go through an envsource.Overlay of a fresh environment snapshot
// followed by the values read from .env files.
//
// # Usage
//
//	type DatabaseConfig struct {
//	    Host string `env:"DB_HOST"`
//	    Port uint16 `env:"DB_PORT" default:"5432"`
//	    User string `env:"DB_USER"`
//	    Pass string `env:"DB_PASS"`
//	}
//
//	import "github.com/Hanaasagi/struct-env/pkg/config"
//
//	func main() {
//	    // Optionally load one or many custom .env files before decoding.
//	    if err := config.LoadEnv("./config/.env" /* more files ... */); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    var db DatabaseConfig
//	    if err := config.Load(&db, structenv.WithPrefix("APP_")); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// Subsequent calls to `config.Load(&db)` are served from the in-memory cache.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`.
// They are joined with the underlying decoder error, so `structenv.ErrNotExist`
// and `structenv.ErrInvalidValue` match as well:
//
//   - `ErrParsingConfig`     – failed to decode env vars into struct.
//   - `ErrInvalidConfigType` – the configuration type is not a struct.
//   - `ErrConfigNotLoaded`   – requested config type has not been loaded yet.
//   - `ErrNilPointer`        – nil pointer passed to `Load`/`MustLoad`.
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the cache and loaded .env values between tests
// or `ForceReload(&cfg)` to decode a particular struct again after the process
// environment changes.
package config
