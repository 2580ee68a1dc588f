// Package polycrypt provides a uniform capability contract for signing,
// verification, key derivation, and key encapsulation across classical
// elliptic-curve schemes (secp256k1, Ed25519, P-256/384/521, BLS12-381,
// X25519) and post-quantum schemes (ML-DSA/Dilithium, SLH-DSA/SPHINCS+,
// ML-KEM/Kyber).
//
// Every algorithm is exposed as an adapter satisfying one of three
// capability contracts:
//
//   - [KeyGenerator]: deterministic seed-based (or random) key derivation.
//   - [Signer]: KeyGenerator plus Sign/Verify.
//   - [SharedSecretDeriver] / [KEM]: KeyGenerator plus Diffie-Hellman or
//     encapsulate/decapsulate key exchange.
//
// Adapters live in three group packages mirroring the algorithm families:
//
//	classic: secp256k1, ed25519, p256, p384, p521, bls12_381
//	pq:      dilithium65, dilithium87, sphincs192, sphincs256
//	kex:     ecdh (x25519, p256, p384, p521), kyber768, kyber1024
//
// Basic usage:
//
//	kp, err := classic.Ed25519.GenerateKeyPair(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := classic.Ed25519.Sign("hello", kp.PrivateKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := classic.Ed25519.Verify(sig, "hello", kp.PublicKey)
//
// Messages may be byte slices, strings (strict hex is decoded, anything
// else is UTF-8 encoded), or JSON-serializable maps and structs; see the
// format package. Digest-only algorithms (P-256/384/521) require a byte
// slice of the exact digest length instead.
//
// Every operation is a pure function of its arguments. Randomness is used
// only when a seed is omitted (nil) and defaults to crypto/rand; it can be
// replaced per adapter with [WithRand] for deterministic tests.
//
// The package performs no key storage, no transport, and no logging. All
// failures are immediate and synchronous; see [PolycryptError] and the
// sentinel errors for the taxonomy.
package polycrypt
