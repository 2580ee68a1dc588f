package kex

import polycrypt "github.com/polycrypt/polycrypt-go"

// Default adapter instances. All are stateless and safe for concurrent use.
var (
	// ECDH groups the Diffie-Hellman curves and defaults to X25519.
	ECDH = NewECDH()
	// Kyber768 encapsulates with ML-KEM-768 (NIST security category 3).
	Kyber768 = NewKyber768()
	// Kyber1024 encapsulates with ML-KEM-1024 (NIST security category 5).
	Kyber1024 = NewKyber1024()
)

// Policy aliases. Each is a reference to one adapter above, not a distinct
// implementation.
var (
	// Recommended is the highest-margin KEM.
	Recommended polycrypt.KEM = Kyber1024
	// Fast is the best-performing KEM at an acceptable security floor.
	Fast polycrypt.KEM = Kyber768
	// Classic is the pre-quantum default (X25519).
	Classic polycrypt.SharedSecretDeriver = ECDH
)

// Compile-time contract conformance.
var (
	_ polycrypt.SharedSecretDeriver = (*X25519Scheme)(nil)
	_ polycrypt.SharedSecretDeriver = (*NISTECDHScheme)(nil)
	_ polycrypt.SharedSecretDeriver = (*ECDHFamily)(nil)
	_ polycrypt.KEM                 = (*KyberScheme)(nil)
)
