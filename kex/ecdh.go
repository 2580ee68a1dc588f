package kex

import (
	"crypto/ecdh"
	"io"

	"golang.org/x/crypto/curve25519"

	polycrypt "github.com/polycrypt/polycrypt-go"
	"github.com/polycrypt/polycrypt-go/internal/check"
)

const (
	// X25519SeedSize is the seed length in bytes.
	X25519SeedSize = 32
	// X25519PrivateKeySize is the private key length in bytes.
	X25519PrivateKeySize = 32
	// X25519PublicKeySize is the public key length in bytes.
	X25519PublicKeySize = 32
	// X25519SharedSecretSize is the shared secret length in bytes.
	X25519SharedSecretSize = 32
)

// X25519Scheme derives shared secrets over Curve25519 (RFC 7748).
type X25519Scheme struct {
	rng io.Reader
}

// NewX25519 constructs an X25519 adapter.
func NewX25519(opts ...polycrypt.Option) *X25519Scheme {
	return &X25519Scheme{rng: polycrypt.NewConfig(opts...).Rand}
}

// Name implements polycrypt.Algorithm.
func (s *X25519Scheme) Name() string { return "x25519" }

// SeedSize implements polycrypt.Algorithm.
func (s *X25519Scheme) SeedSize() int { return X25519SeedSize }

// PrivateKeySize implements polycrypt.Algorithm.
func (s *X25519Scheme) PrivateKeySize() int { return X25519PrivateKeySize }

// PublicKeySize implements polycrypt.Algorithm.
func (s *X25519Scheme) PublicKeySize() int { return X25519PublicKeySize }

// SharedSecretSize implements polycrypt.SharedSecretDeriver.
func (s *X25519Scheme) SharedSecretSize() int { return X25519SharedSecretSize }

// GeneratePrivateKey derives a private key from seed, or from fresh entropy
// when seed is nil. Any 32-byte value is a valid key; clamping happens
// inside the scalar multiplication.
func (s *X25519Scheme) GeneratePrivateKey(seed []byte) ([]byte, error) {
	supplied, err := check.Seed("seed", seed, X25519SeedSize)
	if err != nil {
		return nil, err
	}
	if !supplied {
		return check.Random(s.rng, X25519SeedSize)
	}
	out := make([]byte, X25519SeedSize)
	copy(out, seed)
	return out, nil
}

// GenerateKeyPair derives a key pair from seed, or from fresh entropy when
// seed is nil.
func (s *X25519Scheme) GenerateKeyPair(seed []byte) (*polycrypt.KeyPair, error) {
	priv, err := s.GeneratePrivateKey(seed)
	if err != nil {
		return nil, err
	}
	pub, err := s.PublicKey(priv)
	if err != nil {
		return nil, err
	}
	return &polycrypt.KeyPair{PrivateKey: priv, PublicKey: pub}, nil
}

// PublicKey recomputes the public key from the private key.
func (s *X25519Scheme) PublicKey(privateKey []byte) ([]byte, error) {
	if err := check.ByteArg("private key", privateKey, X25519PrivateKeySize); err != nil {
		return nil, err
	}
	pub, err := curve25519.X25519(privateKey, curve25519.Basepoint)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.Name(), Err: err}
	}
	return pub, nil
}

// DeriveSharedSecret computes the X25519 shared secret. Low-order peer
// points are rejected by the provider.
func (s *X25519Scheme) DeriveSharedSecret(privateKey, peerPublicKey []byte) ([]byte, error) {
	if err := check.ByteArg("private key", privateKey, X25519PrivateKeySize); err != nil {
		return nil, err
	}
	if err := check.ByteArg("peer public key", peerPublicKey, X25519PublicKeySize); err != nil {
		return nil, err
	}
	ss, err := curve25519.X25519(privateKey, peerPublicKey)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.Name(), Err: err}
	}
	return ss, nil
}

// NISTECDHScheme derives shared secrets over a NIST curve. Public keys are
// uncompressed points (65/97/133 bytes); shared secrets are the X
// coordinate (32/48/66 bytes).
type NISTECDHScheme struct {
	name    string
	curve   ecdh.Curve
	keySize int
	pubSize int
	rng     io.Reader
}

// NewECDHP256 constructs a P-256 Diffie-Hellman adapter.
func NewECDHP256(opts ...polycrypt.Option) *NISTECDHScheme {
	return &NISTECDHScheme{name: "ecdh_p256", curve: ecdh.P256(), keySize: 32, pubSize: 65, rng: polycrypt.NewConfig(opts...).Rand}
}

// NewECDHP384 constructs a P-384 Diffie-Hellman adapter.
func NewECDHP384(opts ...polycrypt.Option) *NISTECDHScheme {
	return &NISTECDHScheme{name: "ecdh_p384", curve: ecdh.P384(), keySize: 48, pubSize: 97, rng: polycrypt.NewConfig(opts...).Rand}
}

// NewECDHP521 constructs a P-521 Diffie-Hellman adapter.
func NewECDHP521(opts ...polycrypt.Option) *NISTECDHScheme {
	return &NISTECDHScheme{name: "ecdh_p521", curve: ecdh.P521(), keySize: 66, pubSize: 133, rng: polycrypt.NewConfig(opts...).Rand}
}

// Name implements polycrypt.Algorithm.
func (s *NISTECDHScheme) Name() string { return s.name }

// SeedSize implements polycrypt.Algorithm.
func (s *NISTECDHScheme) SeedSize() int { return s.keySize }

// PrivateKeySize implements polycrypt.Algorithm.
func (s *NISTECDHScheme) PrivateKeySize() int { return s.keySize }

// PublicKeySize returns the uncompressed point length.
func (s *NISTECDHScheme) PublicKeySize() int { return s.pubSize }

// SharedSecretSize implements polycrypt.SharedSecretDeriver.
func (s *NISTECDHScheme) SharedSecretSize() int { return s.keySize }

// GeneratePrivateKey derives a private key from seed, or from fresh entropy
// when seed is nil. A supplied seed must encode a valid scalar.
func (s *NISTECDHScheme) GeneratePrivateKey(seed []byte) ([]byte, error) {
	supplied, err := check.Seed("seed", seed, s.keySize)
	if err != nil {
		return nil, err
	}
	if supplied {
		if _, err := s.curve.NewPrivateKey(seed); err != nil {
			return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
		}
		out := make([]byte, s.keySize)
		copy(out, seed)
		return out, nil
	}
	priv, err := s.curve.GenerateKey(s.rng)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	return priv.Bytes(), nil
}

// GenerateKeyPair derives a key pair from seed, or from fresh entropy when
// seed is nil.
func (s *NISTECDHScheme) GenerateKeyPair(seed []byte) (*polycrypt.KeyPair, error) {
	priv, err := s.GeneratePrivateKey(seed)
	if err != nil {
		return nil, err
	}
	pub, err := s.PublicKey(priv)
	if err != nil {
		return nil, err
	}
	return &polycrypt.KeyPair{PrivateKey: priv, PublicKey: pub}, nil
}

// PublicKey recomputes the uncompressed public key.
func (s *NISTECDHScheme) PublicKey(privateKey []byte) ([]byte, error) {
	if err := check.ByteArg("private key", privateKey, s.keySize); err != nil {
		return nil, err
	}
	priv, err := s.curve.NewPrivateKey(privateKey)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	return priv.PublicKey().Bytes(), nil
}

// DeriveSharedSecret computes the ECDH shared secret with the peer's
// uncompressed public key.
func (s *NISTECDHScheme) DeriveSharedSecret(privateKey, peerPublicKey []byte) ([]byte, error) {
	if err := check.ByteArg("private key", privateKey, s.keySize); err != nil {
		return nil, err
	}
	if err := check.ByteArg("peer public key", peerPublicKey, s.pubSize); err != nil {
		return nil, err
	}
	priv, err := s.curve.NewPrivateKey(privateKey)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	peer, err := s.curve.NewPublicKey(peerPublicKey)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	ss, err := priv.ECDH(peer)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	return ss, nil
}

// ECDHFamily groups the Diffie-Hellman adapters by curve and defaults to
// X25519: the family itself is a SharedSecretDeriver backed by X25519.
type ECDHFamily struct {
	*X25519Scheme

	// P256, P384, P521 are the NIST-curve variants.
	P256 *NISTECDHScheme
	P384 *NISTECDHScheme
	P521 *NISTECDHScheme
}

// NewECDH constructs the ECDH family.
func NewECDH(opts ...polycrypt.Option) *ECDHFamily {
	return &ECDHFamily{
		X25519Scheme: NewX25519(opts...),
		P256:         NewECDHP256(opts...),
		P384:         NewECDHP384(opts...),
		P521:         NewECDHP521(opts...),
	}
}
