package pq

import (
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"

	polycrypt "github.com/polycrypt/polycrypt-go"
)

const (
	// Dilithium65SeedSize is the ML-DSA-65 seed length in bytes.
	Dilithium65SeedSize = 32
	// Dilithium65PrivateKeySize is the ML-DSA-65 private key length in bytes.
	Dilithium65PrivateKeySize = 4032
	// Dilithium65PublicKeySize is the ML-DSA-65 public key length in bytes.
	Dilithium65PublicKeySize = 1952
	// Dilithium65SignatureSize is the ML-DSA-65 signature length in bytes.
	Dilithium65SignatureSize = 3309

	// Dilithium87SeedSize is the ML-DSA-87 seed length in bytes.
	Dilithium87SeedSize = 32
	// Dilithium87PrivateKeySize is the ML-DSA-87 private key length in bytes.
	Dilithium87PrivateKeySize = 4896
	// Dilithium87PublicKeySize is the ML-DSA-87 public key length in bytes.
	Dilithium87PublicKeySize = 2592
	// Dilithium87SignatureSize is the ML-DSA-87 signature length in bytes.
	Dilithium87SignatureSize = 4627
)

// NewDilithium65 constructs an ML-DSA-65 adapter (NIST security category 3).
func NewDilithium65(opts ...polycrypt.Option) *Scheme {
	return newScheme("dilithium65", mldsa65.Scheme(), opts...)
}

// NewDilithium87 constructs an ML-DSA-87 adapter (NIST security category 5).
func NewDilithium87(opts ...polycrypt.Option) *Scheme {
	return newScheme("dilithium87", mldsa87.Scheme(), opts...)
}
