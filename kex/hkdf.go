package kex

import (
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/hkdf"

	polycrypt "github.com/polycrypt/polycrypt-go"
)

// Expand derives length bytes of keying material from a raw shared secret
// using HKDF-SHA-512, with context as the domain-separation info string.
// Hand the result, never the raw secret, to a cipher.
func Expand(sharedSecret []byte, context string, length int) ([]byte, error) {
	if sharedSecret == nil {
		return nil, &polycrypt.TypeMismatchError{Argument: "shared secret", Expected: "a non-nil byte slice"}
	}
	if length <= 0 || length > 255*sha512.Size {
		return nil, &polycrypt.LengthMismatchError{Argument: "output length", Want: 255 * sha512.Size, Got: length}
	}

	salt := make([]byte, sha512.Size)
	reader := hkdf.New(sha512.New, sharedSecret, salt, []byte(context))

	out := make([]byte, length)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: "hkdf_sha512", Err: err}
	}
	return out, nil
}
