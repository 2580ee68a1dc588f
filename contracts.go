package polycrypt

// KeyPair holds a freshly derived private/public key pair. Both slices are
// owned by the caller; the adapter keeps no reference.
type KeyPair struct {
	// PrivateKey is the raw private key bytes, fixed length per algorithm.
	PrivateKey []byte
	// PublicKey is the raw public key bytes, fixed length per algorithm.
	PublicKey []byte
}

// Encapsulation is the output of a KEM encapsulation.
type Encapsulation struct {
	// Ciphertext is transmitted to the holder of the secret key.
	Ciphertext []byte
	// SharedSecret is the locally derived shared secret.
	SharedSecret []byte
}

// Algorithm describes an adapter's fixed byte-length contract.
type Algorithm interface {
	// Name returns the canonical algorithm name, e.g. "ed25519".
	Name() string
	// SeedSize returns the required seed length in bytes.
	SeedSize() int
	// PrivateKeySize returns the private key length in bytes.
	PrivateKeySize() int
	// PublicKeySize returns the public key length in bytes.
	PublicKeySize() int
}

// KeyGenerator is the key-generation capability every adapter provides.
//
// A nil seed means "draw fresh entropy from the adapter's randomness
// source". A non-nil seed is used verbatim after length validation, never
// combined with additional entropy: identical seed yields identical keys.
type KeyGenerator interface {
	Algorithm

	// GeneratePrivateKey derives a private key from seed, or from fresh
	// entropy when seed is nil.
	GeneratePrivateKey(seed []byte) ([]byte, error)

	// GenerateKeyPair derives a key pair from seed, or from fresh entropy
	// when seed is nil.
	GenerateKeyPair(seed []byte) (*KeyPair, error)

	// PublicKey recomputes the public key from the private key alone.
	PublicKey(privateKey []byte) ([]byte, error)
}

// Signer is the signing capability.
//
// The message argument accepts a byte slice, a string (strict hex decoded,
// otherwise UTF-8), or a JSON-serializable map/struct, except for
// digest-only algorithms which require a byte slice of the exact digest
// length. The canonical argument order is Sign(message, privateKey) and
// Verify(signature, message, publicKey) for every adapter.
type Signer interface {
	KeyGenerator

	// SignatureSize returns the signature length in bytes.
	SignatureSize() int

	// Sign produces a fixed-length compact signature over message.
	Sign(message any, privateKey []byte) ([]byte, error)

	// Verify reports whether signature is valid for message under
	// publicKey. Well-typed, well-sized inputs that fail cryptographically
	// yield (false, nil); type and length violations yield an error.
	Verify(signature []byte, message any, publicKey []byte) (bool, error)
}

// SharedSecretDeriver is the Diffie-Hellman style key-exchange capability.
type SharedSecretDeriver interface {
	KeyGenerator

	// SharedSecretSize returns the shared secret length in bytes.
	SharedSecretSize() int

	// DeriveSharedSecret computes the shared secret between privateKey and
	// the peer's public key.
	DeriveSharedSecret(privateKey, peerPublicKey []byte) ([]byte, error)
}

// KEM is the encapsulation style key-exchange capability.
type KEM interface {
	KeyGenerator

	// CiphertextSize returns the encapsulation ciphertext length in bytes.
	CiphertextSize() int

	// SharedSecretSize returns the shared secret length in bytes.
	SharedSecretSize() int

	// Encapsulate derives a fresh shared secret for publicKey along with
	// the ciphertext that transports it.
	Encapsulate(publicKey []byte) (*Encapsulation, error)

	// Decapsulate recovers the shared secret from ciphertext using
	// secretKey.
	Decapsulate(ciphertext, secretKey []byte) ([]byte, error)
}
