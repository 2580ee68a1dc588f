// Package kex provides the key-exchange adapters: Diffie-Hellman style
// shared-secret derivation over X25519 and the NIST curves, and ML-KEM
// (Kyber) encapsulation at the 768 and 1024 parameter sets.
//
// ECDH adapters satisfy polycrypt.SharedSecretDeriver; Kyber adapters
// satisfy polycrypt.KEM. kex.ECDH groups the curves and defaults to
// X25519: kex.ECDH.DeriveSharedSecret uses X25519, kex.ECDH.P384 the
// corresponding NIST curve.
//
// Shared secrets are raw key-exchange output. Use [Expand] to turn one
// into domain-separated keying material before handing it to a cipher.
package kex
