// Package bytesutil provides pure, stateless byte and big-integer helpers
// used by the algorithm adapters: fixed-width big-endian/little-endian
// integer codecs, concatenation, constant-time equality, bit-level
// accessors, and buffer wiping.
//
// All numeric inputs are restricted to non-negative integers; a negative
// value is a contract violation and fails immediately. Encoding never
// truncates: a value that does not fit the requested width fails with
// [ErrOverflow].
package bytesutil
