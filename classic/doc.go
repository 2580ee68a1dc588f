// Package classic provides the elliptic-curve signing adapters: secp256k1,
// Ed25519, the NIST curves P-256/P-384/P-521, and BLS12-381 with signature
// and public-key aggregation.
//
// All adapters satisfy the polycrypt.Signer contract. secp256k1, Ed25519,
// and BLS12-381 accept flexible message shapes (see the format package);
// secp256k1 hashes the normalized message with Keccak-256 before signing.
// The NIST curves are digest-only: they require a pre-hashed digest of the
// curve order size (32/48/66 bytes) and perform no normalization.
//
// Signatures are always fixed-length compact (r‖s), never DER. secp256k1
// public keys are 33-byte compressed points; the recovery byte of its
// signatures is stripped.
package classic
