package classic

import polycrypt "github.com/polycrypt/polycrypt-go"

// Default adapter instances. All are stateless and safe for concurrent use.
var (
	// Secp256k1 signs over the secp256k1 curve (Keccak-256 message hashing).
	Secp256k1 = NewSecp256k1()
	// ECDSA is an alias for Secp256k1.
	ECDSA = Secp256k1

	// Ed25519 signs with Ed25519 (RFC 8032).
	Ed25519 = NewEd25519()
	// EdDSA is an alias for Ed25519.
	EdDSA = Ed25519

	// P256 signs 32-byte digests over NIST P-256.
	P256 = NewP256()
	// P384 signs 48-byte digests over NIST P-384.
	P384 = NewP384()
	// P521 signs 66-byte digests over NIST P-521.
	P521 = NewP521()

	// BLS12381 signs with BLS over BLS12-381 and supports aggregation.
	BLS12381 = NewBLS12381()
	// BLS is an alias for BLS12381.
	BLS = BLS12381
)

// Compile-time contract conformance.
var (
	_ polycrypt.Signer = (*Secp256k1Scheme)(nil)
	_ polycrypt.Signer = (*Ed25519Scheme)(nil)
	_ polycrypt.Signer = (*ECDSAScheme)(nil)
	_ polycrypt.Signer = (*BLSScheme)(nil)
)
