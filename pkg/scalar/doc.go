// Package scalar parses the textual form of environment values into Go scalars.
//
// It is shared by the schema package, which parses default literals once when
// a schema is derived, and by the decoder, which parses values looked up in a
// source. The two sides differ only for booleans:
//
//   - Bool implements the narrow truthiness rule used for looked-up values:
//     "TRUE" in any letter case is true, every other string is false.
//   - StrictBool parses schema literals and rejects anything strconv.ParseBool
//     does not accept.
//
// Integers honour an optional base prefix after the sign: 0x/0X for base 16,
// 0o/0O for base 8 and 0b/0B for base 2. Without a prefix the base is 10, so a
// leading zero does not switch to octal.
//
// Sequences are split on a literal comma with no trimming and no escaping.
package scalar
