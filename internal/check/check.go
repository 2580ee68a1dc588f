// Package check implements the argument validation discipline shared by
// every adapter: type checks surface before length checks, and both surface
// before any delegation to an underlying primitive.
package check

import (
	"fmt"
	"io"

	polycrypt "github.com/polycrypt/polycrypt-go"
)

// ByteArg validates a required byte argument against its fixed length.
// A nil slice is a type violation, not a length one.
func ByteArg(name string, b []byte, want int) error {
	if b == nil {
		return &polycrypt.TypeMismatchError{Argument: name, Expected: "a non-nil byte slice"}
	}
	if len(b) != want {
		return &polycrypt.LengthMismatchError{Argument: name, Want: want, Got: len(b)}
	}
	return nil
}

// Seed validates an optional seed. It reports whether a seed was supplied;
// a nil seed means the caller wants fresh entropy.
func Seed(name string, seed []byte, want int) (bool, error) {
	if seed == nil {
		return false, nil
	}
	if len(seed) != want {
		return false, &polycrypt.LengthMismatchError{Argument: name, Want: want, Got: len(seed)}
	}
	return true, nil
}

// Digest validates the message argument of a digest-only algorithm: it must
// already be a byte slice of exactly want bytes. No normalization applies.
func Digest(name string, message any, want int) ([]byte, error) {
	b, ok := message.([]byte)
	if !ok || b == nil {
		return nil, &polycrypt.TypeMismatchError{
			Argument: name,
			Expected: fmt.Sprintf("a pre-hashed digest of %d bytes", want),
		}
	}
	if len(b) != want {
		return nil, &polycrypt.LengthMismatchError{Argument: name, Want: want, Got: len(b)}
	}
	out := make([]byte, want)
	copy(out, b)
	return out, nil
}

// Random draws n fresh bytes from r.
func Random(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	return b, nil
}
