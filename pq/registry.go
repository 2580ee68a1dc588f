package pq

import polycrypt "github.com/polycrypt/polycrypt-go"

// Default adapter instances. All are stateless and safe for concurrent use.
var (
	// Dilithium65 signs with ML-DSA-65 (NIST security category 3).
	Dilithium65 = NewDilithium65()
	// Dilithium87 signs with ML-DSA-87 (NIST security category 5).
	Dilithium87 = NewDilithium87()
	// Sphincs192 is the SLH-DSA-SHAKE-192 family, defaulting to fast.
	Sphincs192 = NewSphincs192()
	// Sphincs256 is the SLH-DSA-SHAKE-256 family, defaulting to fast.
	Sphincs256 = NewSphincs256()
)

// Policy aliases. Each is a reference to one adapter above, not a distinct
// implementation.
var (
	// Recommended is the highest-margin lattice scheme.
	Recommended polycrypt.Signer = Dilithium87
	// Fast is the best-performing scheme at an acceptable security floor.
	Fast polycrypt.Signer = Dilithium65
	// Conservative is the smallest hash-based signature at the top
	// security level.
	Conservative polycrypt.Signer = Sphincs256.Small
)

// Compile-time contract conformance.
var (
	_ polycrypt.Signer = (*Scheme)(nil)
	_ polycrypt.Signer = (*SphincsFamily)(nil)
)
