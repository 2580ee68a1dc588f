package polycrypt

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrTypeMismatch is returned when an argument has the wrong shape
	// (not a byte slice, string, or JSON-serializable object).
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrLengthMismatch is returned when an argument has the right shape
	// but the wrong byte length for the target algorithm.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrFormat is returned when a string or object input cannot be
	// normalized into canonical bytes.
	ErrFormat = errors.New("format error")

	// ErrPrimitive is returned when the underlying cryptographic provider
	// rejects otherwise well-formed input (e.g. point not on curve).
	ErrPrimitive = errors.New("primitive failure")
)

// PolycryptError is implemented by all library errors.
type PolycryptError interface {
	error
	PolycryptError() // marker method
}

// TypeMismatchError reports an argument whose dynamic shape is not one of
// the accepted ones. Validation surfaces it before any length check.
type TypeMismatchError struct {
	// Argument is the name of the offending argument.
	Argument string
	// Expected describes the accepted shapes.
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: must be %s", e.Argument, e.Expected)
}

// Is implements errors.Is for sentinel error matching.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// PolycryptError implements the PolycryptError interface.
func (e *TypeMismatchError) PolycryptError() {}

// LengthMismatchError reports an argument with the right shape but the
// wrong byte length for the target algorithm.
type LengthMismatchError struct {
	Argument string
	Want     int
	Got      int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s: must be %d bytes, got %d", e.Argument, e.Want, e.Got)
}

// Is implements errors.Is for sentinel error matching.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// PolycryptError implements the PolycryptError interface.
func (e *LengthMismatchError) PolycryptError() {}

// FormatError reports input that cannot be normalized into canonical bytes,
// such as an object that is not JSON-serializable.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("format error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("format error: %s", e.Reason)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// PolycryptError implements the PolycryptError interface.
func (e *FormatError) PolycryptError() {}

// PrimitiveError wraps a rejection from the underlying cryptographic
// provider. It is propagated as-is, never swallowed or retried.
type PrimitiveError struct {
	// Algorithm is the adapter name, e.g. "secp256k1".
	Algorithm string
	Err       error
}

func (e *PrimitiveError) Error() string {
	return fmt.Sprintf("%s: primitive failure: %v", e.Algorithm, e.Err)
}

// Unwrap returns the underlying error.
func (e *PrimitiveError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *PrimitiveError) Is(target error) bool {
	return target == ErrPrimitive
}

// PolycryptError implements the PolycryptError interface.
func (e *PrimitiveError) PolycryptError() {}
