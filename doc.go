// Package structenv populates Go structs from environment variables.
//
// Each field's declared type decides how its string value is parsed, validated
// and defaulted, so calling code never converts strings or checks for
// existence by hand.
//
// Key Features:
//
//   - Keys derived from field names, optionally prefixed, looked up uppercased
//     first and verbatim second
//   - Strings, booleans, sized integers, floats and enums
//   - Optional fields as pointers: a missing key leaves them nil
//   - Comma separated sequences of scalars
//   - Nested records with optional per-record prefixes
//   - Typed defaults parsed once when the schema is derived
//   - All-or-nothing decoding: the first failing field aborts the call
//
// Basic Usage:
//
//	type Level string
//
//	func (Level) Variants() []string { return []string{"debug", "info"} }
//
//	type Config struct {
//		Job     string   `env:"job"`
//		Home    string   `default:"/home/milet"`
//		Workers uint8    `default:"4"`
//		Verbose bool
//		Level   Level    `default:"info"`
//		Token   *string
//		Animes  []string `default:"KonoSuba,Attack on Titan"`
//		DB      struct {
//			Host string `default:"localhost"`
//			Port uint16 `default:"5432"`
//		} `prefix:"DB_"`
//	}
//
//	cfg, err := structenv.FromEnv[Config](structenv.WithPrefix("GITHUB_"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer structenv.Release(&cfg)
//
// With the prefix above the Job field is read from GITHUB_JOB, falling back to
// GITHUB_job, and DB.Host from GITHUB_DB_HOST.
//
// # Struct tags
//
//   - `env:"name"` overrides the field name used for the key; `env:"-"` skips the field.
//   - `default:"literal"` supplies a value when the key is absent. Sequences take
//     a comma separated literal. A key that is present but empty is not absent.
//   - `enum:"A,B,C"` restricts a string field to the listed variants. String
//     types implementing schema.Enumerator are enums without the tag.
//   - `prefix:"DB_"` extends the key prefix for a nested struct.
//
// # Value rules
//
// Booleans are true only for TRUE in any letter case; every other string,
// including "1" and "yes", is false. Integers accept 0x, 0o and 0b prefixes
// and are otherwise decimal; they must fit the field width. Enum matching is
// case sensitive. Sequences split on "," without trimming or escaping.
//
// # Error Handling
//
// Decoding fails with a *FieldError whose Err is one of:
//
//   - ErrNotExist: the key is absent and the field has no default.
//   - ErrInvalidValue: the key is present but its value does not parse.
//
// Optional fields turn ErrNotExist into nil and never hide ErrInvalidValue.
// Schema problems (unsupported field types, bad defaults, bad tags) are
// reported before any lookup with the errors of package schema.
//
// # Sources
//
// Decode reads from any envsource.Source. FromEnv snapshots the process
// environment, decodes and disposes of the snapshot. Tests usually pass an
// envsource.Map.
package structenv
