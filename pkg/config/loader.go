package config

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"sync"

	structenv "github.com/Hanaasagi/struct-env"
	"github.com/Hanaasagi/struct-env/pkg/envsource"
	"github.com/Hanaasagi/struct-env/pkg/schema"
)

// configCache stores decoded configurations keyed by their type.
type configCache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
	onces  map[reflect.Type]*sync.Once
}

// dotenvLayer holds values read from .env files. It sits below the process
// environment, so real variables always win.
type dotenvLayer struct {
	mu     sync.RWMutex
	values envsource.Map
}

var (
	globalCache = &configCache{
		values: make(map[reflect.Type]any),
		onces:  make(map[reflect.Type]*sync.Once),
	}

	dotenv = &dotenvLayer{values: make(envsource.Map)}

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded = new(sync.Once)
)

// LoadEnv reads .env files into the fallback layer used by Load. Later files
// override earlier ones; with no paths the default .env is read. The process
// environment is never modified.
func LoadEnv(paths ...string) error {
	values, err := envsource.Dotenv(paths...)
	if err != nil {
		return err
	}
	dotenv.mu.Lock()
	maps.Copy(dotenv.values, values)
	dotenv.mu.Unlock()
	return nil
}

// MustLoadEnv works like LoadEnv but panics if a file cannot be read.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Load decodes environment variables into the provided configuration struct.
// It ensures that each unique configuration type is only decoded once
// throughout the application lifecycle.
//
// The first call reads the default .env file, if present, into the fallback
// layer. Values are looked up in the process environment first and in the
// loaded .env files second. Once a configuration type is successfully loaded,
// subsequent calls for the same type return the cached copy; options passed
// to later calls are ignored, use ForceReload to decode again.
//
// Example:
//
//	type DatabaseConfig struct {
//		Host     string `env:"DB_HOST" default:"localhost"`
//		Port     uint16 `env:"DB_PORT" default:"5432"`
//		Username string `env:"DB_USER"`
//		Password string `env:"DB_PASS"`
//	}
//
//	var dbConfig DatabaseConfig
//	err := config.Load(&dbConfig)
//	if err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...structenv.Option) error {
	loadDefaultEnv()
	if v == nil {
		return ErrNilPointer
	}

	key := reflect.TypeFor[T]()

	if globalCache.get(key, v) {
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[key]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[key] = once
	}
	globalCache.mu.Unlock()

	var err error

	once.Do(func() {
		decoded, decodeErr := decode[T](opts)
		if decodeErr != nil {
			err = decodeErr
			// Allow a later call to retry once the environment is fixed.
			globalCache.mu.Lock()
			delete(globalCache.onces, key)
			globalCache.mu.Unlock()
			return
		}

		globalCache.mu.Lock()
		globalCache.values[key] = decoded
		globalCache.mu.Unlock()
	})

	if err != nil {
		return err
	}

	// Concurrent callers that lost the race read the stored copy.
	if globalCache.get(key, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
//
// Example:
//
//	var dbConfig DatabaseConfig
//	config.MustLoad(&dbConfig)
func MustLoad[T any](v *T, opts ...structenv.Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReload decodes T again, bypassing and then refreshing the cache.
func ForceReload[T any](v *T, opts ...structenv.Option) error {
	loadDefaultEnv()
	if v == nil {
		return ErrNilPointer
	}

	decoded, err := decode[T](opts)
	if err != nil {
		return err
	}

	key := reflect.TypeFor[T]()
	globalCache.mu.Lock()
	globalCache.values[key] = decoded
	globalCache.onces[key] = spentOnce()
	globalCache.mu.Unlock()

	*v = decoded
	return nil
}

// ResetCache clears cached configurations and the loaded .env values.
// The default .env file is read again by the next Load.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[reflect.Type]any)
	globalCache.onces = make(map[reflect.Type]*sync.Once)
	globalCache.mu.Unlock()

	dotenv.mu.Lock()
	dotenv.values = make(envsource.Map)
	dotenv.mu.Unlock()

	defaultEnvMu.Lock()
	defaultEnvLoaded = new(sync.Once)
	defaultEnvMu.Unlock()
}

func (c *configCache) get(key reflect.Type, v any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, ok := c.values[key]
	if !ok {
		return false
	}
	reflect.ValueOf(v).Elem().Set(reflect.ValueOf(cached))
	return true
}

func loadDefaultEnv() {
	defaultEnvMu.Lock()
	once := defaultEnvLoaded
	defaultEnvMu.Unlock()

	once.Do(func() {
		// The .env file is optional.
		_ = LoadEnv()
	})
}

// decode reads T from the process environment layered over the .env values.
func decode[T any](opts []structenv.Option) (T, error) {
	dotenv.mu.RLock()
	files := maps.Clone(dotenv.values)
	dotenv.mu.RUnlock()

	snap := envsource.Environ()
	defer snap.Close()

	v, err := structenv.Decode[T](envsource.Overlay(snap, files), opts...)
	if err != nil {
		if errors.Is(err, schema.ErrInvalidTarget) {
			return v, errors.Join(ErrInvalidConfigType, err)
		}
		return v, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}

func spentOnce() *sync.Once {
	once := new(sync.Once)
	once.Do(func() {})
	return once
}
