package kex

import (
	"fmt"
	"io"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"

	polycrypt "github.com/polycrypt/polycrypt-go"
	"github.com/polycrypt/polycrypt-go/internal/check"
)

const (
	// Kyber768SeedSize is the ML-KEM-768 key generation seed length in bytes.
	Kyber768SeedSize = 64
	// Kyber768PrivateKeySize is the ML-KEM-768 secret key length in bytes.
	Kyber768PrivateKeySize = 2400
	// Kyber768PublicKeySize is the ML-KEM-768 public key length in bytes.
	Kyber768PublicKeySize = 1184
	// Kyber768CiphertextSize is the ML-KEM-768 ciphertext length in bytes.
	Kyber768CiphertextSize = 1088

	// Kyber1024SeedSize is the ML-KEM-1024 key generation seed length in bytes.
	Kyber1024SeedSize = 64
	// Kyber1024PrivateKeySize is the ML-KEM-1024 secret key length in bytes.
	Kyber1024PrivateKeySize = 3168
	// Kyber1024PublicKeySize is the ML-KEM-1024 public key length in bytes.
	Kyber1024PublicKeySize = 1568
	// Kyber1024CiphertextSize is the ML-KEM-1024 ciphertext length in bytes.
	Kyber1024CiphertextSize = 1568

	// KyberSharedSecretSize is the shared secret length for both parameter
	// sets in bytes.
	KyberSharedSecretSize = 32
)

// KyberScheme adapts an ML-KEM parameter set to the polycrypt.KEM contract.
type KyberScheme struct {
	name   string
	scheme kem.Scheme
	rng    io.Reader
}

// NewKyber768 constructs an ML-KEM-768 adapter (NIST security category 3).
func NewKyber768(opts ...polycrypt.Option) *KyberScheme {
	return &KyberScheme{name: "kyber768", scheme: mlkem768.Scheme(), rng: polycrypt.NewConfig(opts...).Rand}
}

// NewKyber1024 constructs an ML-KEM-1024 adapter (NIST security category 5).
func NewKyber1024(opts ...polycrypt.Option) *KyberScheme {
	return &KyberScheme{name: "kyber1024", scheme: mlkem1024.Scheme(), rng: polycrypt.NewConfig(opts...).Rand}
}

// Name implements polycrypt.Algorithm.
func (s *KyberScheme) Name() string { return s.name }

// SeedSize implements polycrypt.Algorithm.
func (s *KyberScheme) SeedSize() int { return s.scheme.SeedSize() }

// PrivateKeySize implements polycrypt.Algorithm.
func (s *KyberScheme) PrivateKeySize() int { return s.scheme.PrivateKeySize() }

// PublicKeySize implements polycrypt.Algorithm.
func (s *KyberScheme) PublicKeySize() int { return s.scheme.PublicKeySize() }

// CiphertextSize implements polycrypt.KEM.
func (s *KyberScheme) CiphertextSize() int { return s.scheme.CiphertextSize() }

// SharedSecretSize implements polycrypt.KEM.
func (s *KyberScheme) SharedSecretSize() int { return s.scheme.SharedKeySize() }

// EncapsulationSeedSize returns the seed length accepted by
// EncapsulateDeterministic.
func (s *KyberScheme) EncapsulationSeedSize() int { return s.scheme.EncapsulationSeedSize() }

// GeneratePrivateKey derives a secret key from the 64-byte seed, or from
// fresh entropy when seed is nil.
func (s *KyberScheme) GeneratePrivateKey(seed []byte) ([]byte, error) {
	kp, err := s.GenerateKeyPair(seed)
	if err != nil {
		return nil, err
	}
	return kp.PrivateKey, nil
}

// GenerateKeyPair derives a key pair from the 64-byte seed, or from fresh
// entropy when seed is nil.
func (s *KyberScheme) GenerateKeyPair(seed []byte) (*polycrypt.KeyPair, error) {
	supplied, err := check.Seed("seed", seed, s.scheme.SeedSize())
	if err != nil {
		return nil, err
	}
	if !supplied {
		if seed, err = check.Random(s.rng, s.scheme.SeedSize()); err != nil {
			return nil, err
		}
	}
	pub, priv := s.scheme.DeriveKeyPair(seed)

	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	privBytes, err := priv.MarshalBinary()
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	return &polycrypt.KeyPair{PrivateKey: privBytes, PublicKey: pubBytes}, nil
}

// PublicKey recomputes the public key embedded in the secret key.
func (s *KyberScheme) PublicKey(privateKey []byte) ([]byte, error) {
	priv, err := s.privateKey(privateKey)
	if err != nil {
		return nil, err
	}
	out, err := priv.Public().MarshalBinary()
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	return out, nil
}

// Encapsulate derives a fresh shared secret for publicKey.
func (s *KyberScheme) Encapsulate(publicKey []byte) (*polycrypt.Encapsulation, error) {
	pub, err := s.publicKey(publicKey)
	if err != nil {
		return nil, err
	}
	ct, ss, err := s.scheme.Encapsulate(pub)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	return &polycrypt.Encapsulation{Ciphertext: ct, SharedSecret: ss}, nil
}

// EncapsulateDeterministic encapsulates with a caller-supplied seed, making
// the ciphertext and shared secret reproducible. Intended for test
// transcripts; use Encapsulate everywhere else.
func (s *KyberScheme) EncapsulateDeterministic(publicKey, seed []byte) (*polycrypt.Encapsulation, error) {
	pub, err := s.publicKey(publicKey)
	if err != nil {
		return nil, err
	}
	if err := check.ByteArg("encapsulation seed", seed, s.scheme.EncapsulationSeedSize()); err != nil {
		return nil, err
	}
	ct, ss, err := s.scheme.EncapsulateDeterministically(pub, seed)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	return &polycrypt.Encapsulation{Ciphertext: ct, SharedSecret: ss}, nil
}

// Decapsulate recovers the shared secret from ciphertext. A tampered
// ciphertext of the right length yields the implicit-rejection secret, not
// an error.
func (s *KyberScheme) Decapsulate(ciphertext, secretKey []byte) ([]byte, error) {
	if err := check.ByteArg("ciphertext", ciphertext, s.scheme.CiphertextSize()); err != nil {
		return nil, err
	}
	priv, err := s.privateKey(secretKey)
	if err != nil {
		return nil, err
	}
	ss, err := s.scheme.Decapsulate(priv, ciphertext)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	return ss, nil
}

func (s *KyberScheme) privateKey(b []byte) (kem.PrivateKey, error) {
	if err := check.ByteArg("secret key", b, s.scheme.PrivateKeySize()); err != nil {
		return nil, err
	}
	priv, err := s.scheme.UnmarshalBinaryPrivateKey(b)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	return priv, nil
}

func (s *KyberScheme) publicKey(b []byte) (kem.PublicKey, error) {
	if err := check.ByteArg("public key", b, s.scheme.PublicKeySize()); err != nil {
		return nil, err
	}
	pub, err := s.scheme.UnmarshalBinaryPublicKey(b)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	return pub, nil
}

// String implements fmt.Stringer.
func (s *KyberScheme) String() string {
	return fmt.Sprintf("%s (%s)", s.name, s.scheme.Name())
}
