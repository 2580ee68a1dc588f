package classic

import (
	"io"

	"github.com/cloudflare/circl/sign/ed25519"

	polycrypt "github.com/polycrypt/polycrypt-go"
	"github.com/polycrypt/polycrypt-go/bytesutil"
	"github.com/polycrypt/polycrypt-go/format"
	"github.com/polycrypt/polycrypt-go/internal/check"
)

const (
	// Ed25519SeedSize is the seed length in bytes.
	Ed25519SeedSize = 32
	// Ed25519PrivateKeySize is the private key length in bytes. The public
	// API works with the 32-byte seed form; the expanded 64-byte form stays
	// internal to each call.
	Ed25519PrivateKeySize = 32
	// Ed25519PublicKeySize is the public key length in bytes.
	Ed25519PublicKeySize = 32
	// Ed25519SignatureSize is the signature length in bytes.
	Ed25519SignatureSize = 64
)

// Ed25519Scheme signs arbitrary messages with Ed25519 (RFC 8032).
type Ed25519Scheme struct {
	rng io.Reader
}

// NewEd25519 constructs an Ed25519 adapter.
func NewEd25519(opts ...polycrypt.Option) *Ed25519Scheme {
	return &Ed25519Scheme{rng: polycrypt.NewConfig(opts...).Rand}
}

// Name implements polycrypt.Algorithm.
func (s *Ed25519Scheme) Name() string { return "ed25519" }

// SeedSize implements polycrypt.Algorithm.
func (s *Ed25519Scheme) SeedSize() int { return Ed25519SeedSize }

// PrivateKeySize implements polycrypt.Algorithm.
func (s *Ed25519Scheme) PrivateKeySize() int { return Ed25519PrivateKeySize }

// PublicKeySize implements polycrypt.Algorithm.
func (s *Ed25519Scheme) PublicKeySize() int { return Ed25519PublicKeySize }

// SignatureSize implements polycrypt.Signer.
func (s *Ed25519Scheme) SignatureSize() int { return Ed25519SignatureSize }

// GeneratePrivateKey derives a private key from seed, or from fresh entropy
// when seed is nil. The private key is the seed itself.
func (s *Ed25519Scheme) GeneratePrivateKey(seed []byte) ([]byte, error) {
	supplied, err := check.Seed("seed", seed, Ed25519SeedSize)
	if err != nil {
		return nil, err
	}
	if !supplied {
		return check.Random(s.rng, Ed25519SeedSize)
	}
	out := make([]byte, Ed25519SeedSize)
	copy(out, seed)
	return out, nil
}

// GenerateKeyPair derives a key pair from seed, or from fresh entropy when
// seed is nil.
func (s *Ed25519Scheme) GenerateKeyPair(seed []byte) (*polycrypt.KeyPair, error) {
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
func (s *Ed25519Scheme) PublicKey(privateKey []byte) ([]byte, error) {
	if err := check.ByteArg("private key", privateKey, Ed25519PrivateKeySize); err != nil {
		return nil, err
	}
	key := ed25519.NewKeyFromSeed(privateKey)
	defer bytesutil.Wipe(key)
	pub := key.Public().(ed25519.PublicKey)
	out := make([]byte, Ed25519PublicKeySize)
	copy(out, pub)
	return out, nil
}

// Sign produces a 64-byte signature over the normalized message.
func (s *Ed25519Scheme) Sign(message any, privateKey []byte) ([]byte, error) {
	if err := check.ByteArg("private key", privateKey, Ed25519PrivateKeySize); err != nil {
		return nil, err
	}
	msg, err := format.Message(message)
	if err != nil {
		return nil, err
	}
	key := ed25519.NewKeyFromSeed(privateKey)
	defer bytesutil.Wipe(key)
	return ed25519.Sign(key, msg), nil
}

// Verify reports whether signature is valid for message under publicKey.
func (s *Ed25519Scheme) Verify(signature []byte, message any, publicKey []byte) (bool, error) {
	if err := check.ByteArg("signature", signature, Ed25519SignatureSize); err != nil {
		return false, err
	}
	if err := check.ByteArg("public key", publicKey, Ed25519PublicKeySize); err != nil {
		return false, err
	}
	msg, err := format.Message(message)
	if err != nil {
		return false, err
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), msg, signature), nil
}
