// Package pq provides the post-quantum signing adapters: ML-DSA (Dilithium)
// at security categories 3 and 5, and SLH-DSA (SPHINCS+) at the 192- and
// 256-bit levels, each with a fast and a small sub-variant trading signature
// size against signing speed.
//
// All adapters satisfy the polycrypt.Signer contract and accept flexible
// message shapes (see the format package). Key generation is deterministic
// in the supplied seed; hash-based signatures are large (16–50 KB) and
// signing takes tens of milliseconds for the small variants.
//
// The SPHINCS+ families expose both sub-variants and default to fast:
// pq.Sphincs256 signs with the fast variant, pq.Sphincs256.Small with the
// small one.
package pq
