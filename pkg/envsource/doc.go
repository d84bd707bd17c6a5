// Package envsource provides the read-only key-value sources the decoder
// consumes.
//
// A Source answers a single question: is there a value for this exact key?
// The package ships several implementations:
//
//   - Map, a plain map[string]string, handy in tests and fixtures.
//   - Snapshot, an immutable copy of the process environment taken by Environ.
//     Call Close when decoding is done to dispose of it.
//   - Dotenv, which reads one or more .env files through github.com/joho/godotenv
//     without touching the process environment.
//   - Overlay, which chains sources so the first one holding a key wins.
//   - Func, an adapter for lookup functions such as os.LookupEnv.
//
// Usage:
//
//	snap := envsource.Environ()
//	defer snap.Close()
//
//	files, err := envsource.Dotenv(".env", ".env.local")
//	if err != nil {
//		return err
//	}
//
//	src := envsource.Overlay(snap, files)
//	home, ok := src.Lookup("HOME")
//
// Sources are never mutated by the decoder.
package envsource
