package bytesutil

import (
	"crypto/subtle"
	"errors"
	"math/big"
)

var (
	// ErrNegative is returned when a negative integer is passed where only
	// non-negative values are valid.
	ErrNegative = errors.New("negative number")

	// ErrOverflow is returned when a value does not fit the requested
	// byte length. Truncation is never performed silently.
	ErrOverflow = errors.New("number does not fit requested length")

	// ErrLength is returned when a requested byte length is negative.
	ErrLength = errors.New("invalid byte length")
)

// NumberToBytesBE encodes n as a fixed-width big-endian byte slice.
func NumberToBytesBE(n *big.Int, length int) ([]byte, error) {
	if length < 0 {
		return nil, ErrLength
	}
	if n.Sign() < 0 {
		return nil, ErrNegative
	}
	if (n.BitLen() + 7) / 8 > length {
		return nil, ErrOverflow
	}
	out := make([]byte, length)
	n.FillBytes(out)
	return out, nil
}

// NumberToBytesLE encodes n as a fixed-width little-endian byte slice.
func NumberToBytesLE(n *big.Int, length int) ([]byte, error) {
	out, err := NumberToBytesBE(n, length)
	if err != nil {
		return nil, err
	}
	reverse(out)
	return out, nil
}

// BytesToNumberBE decodes a big-endian byte slice into a non-negative
// integer.
func BytesToNumberBE(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// BytesToNumberLE decodes a little-endian byte slice into a non-negative
// integer.
func BytesToNumberLE(b []byte) *big.Int {
	be := make([]byte, len(b))
	copy(be, b)
	reverse(be)
	return new(big.Int).SetBytes(be)
}

// Concat returns the concatenation of the given byte slices in order.
func Concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Equal reports whether a and b have identical contents. The comparison of
// equal-length slices runs in constant time; length itself is not hidden.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Wipe zeroes b in place. Use it to scrub key material once it is no
// longer needed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
