package classic

import (
	"errors"
	"io"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	polycrypt "github.com/polycrypt/polycrypt-go"
	"github.com/polycrypt/polycrypt-go/format"
	"github.com/polycrypt/polycrypt-go/internal/check"
)

const (
	// Secp256k1SeedSize is the seed length in bytes.
	Secp256k1SeedSize = 32
	// Secp256k1PrivateKeySize is the private key length in bytes.
	Secp256k1PrivateKeySize = 32
	// Secp256k1PublicKeySize is the compressed public key length in bytes.
	Secp256k1PublicKeySize = 33
	// Secp256k1SignatureSize is the compact (r‖s) signature length in bytes.
	Secp256k1SignatureSize = 64
)

// keygenAttempts bounds rejection sampling of random scalars. Each draw
// fails with probability below 2^-127, so the bound is never reached.
const keygenAttempts = 128

// Secp256k1Scheme signs arbitrary messages with ECDSA over secp256k1. The
// normalized message is hashed with Keccak-256 before signing.
type Secp256k1Scheme struct {
	rng io.Reader
}

// NewSecp256k1 constructs a secp256k1 adapter.
func NewSecp256k1(opts ...polycrypt.Option) *Secp256k1Scheme {
	return &Secp256k1Scheme{rng: polycrypt.NewConfig(opts...).Rand}
}

// Name implements polycrypt.Algorithm.
func (s *Secp256k1Scheme) Name() string { return "secp256k1" }

// SeedSize implements polycrypt.Algorithm.
func (s *Secp256k1Scheme) SeedSize() int { return Secp256k1SeedSize }

// PrivateKeySize implements polycrypt.Algorithm.
func (s *Secp256k1Scheme) PrivateKeySize() int { return Secp256k1PrivateKeySize }

// PublicKeySize implements polycrypt.Algorithm.
func (s *Secp256k1Scheme) PublicKeySize() int { return Secp256k1PublicKeySize }

// SignatureSize implements polycrypt.Signer.
func (s *Secp256k1Scheme) SignatureSize() int { return Secp256k1SignatureSize }

// GeneratePrivateKey derives a private key from seed, or from fresh entropy
// when seed is nil. A supplied seed must be a valid scalar for the curve.
func (s *Secp256k1Scheme) GeneratePrivateKey(seed []byte) ([]byte, error) {
	supplied, err := check.Seed("seed", seed, Secp256k1SeedSize)
	if err != nil {
		return nil, err
	}
	if supplied {
		if _, err := ethcrypto.ToECDSA(seed); err != nil {
			return nil, &polycrypt.PrimitiveError{Algorithm: s.Name(), Err: err}
		}
		out := make([]byte, Secp256k1PrivateKeySize)
		copy(out, seed)
		return out, nil
	}

	for range keygenAttempts {
		b, err := check.Random(s.rng, Secp256k1SeedSize)
		if err != nil {
			return nil, err
		}
		if _, err := ethcrypto.ToECDSA(b); err == nil {
			return b, nil
		}
	}
	return nil, &polycrypt.PrimitiveError{Algorithm: s.Name(), Err: errors.New("no valid scalar found")}
}

// GenerateKeyPair derives a key pair from seed, or from fresh entropy when
// seed is nil.
func (s *Secp256k1Scheme) GenerateKeyPair(seed []byte) (*polycrypt.KeyPair, error) {
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

// PublicKey recomputes the 33-byte compressed public key.
func (s *Secp256k1Scheme) PublicKey(privateKey []byte) ([]byte, error) {
	if err := check.ByteArg("private key", privateKey, Secp256k1PrivateKeySize); err != nil {
		return nil, err
	}
	key, err := ethcrypto.ToECDSA(privateKey)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.Name(), Err: err}
	}
	return ethcrypto.CompressPubkey(&key.PublicKey), nil
}

// Sign hashes the normalized message with Keccak-256 and produces a 64-byte
// compact signature. The recovery byte is stripped.
func (s *Secp256k1Scheme) Sign(message any, privateKey []byte) ([]byte, error) {
	if err := check.ByteArg("private key", privateKey, Secp256k1PrivateKeySize); err != nil {
		return nil, err
	}
	msg, err := format.Message(message)
	if err != nil {
		return nil, err
	}
	key, err := ethcrypto.ToECDSA(privateKey)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.Name(), Err: err}
	}
	sig, err := ethcrypto.Sign(ethcrypto.Keccak256(msg), key)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.Name(), Err: err}
	}
	return sig[:Secp256k1SignatureSize], nil
}

// Verify reports whether signature is valid for message under publicKey.
func (s *Secp256k1Scheme) Verify(signature []byte, message any, publicKey []byte) (bool, error) {
	if err := check.ByteArg("signature", signature, Secp256k1SignatureSize); err != nil {
		return false, err
	}
	if err := check.ByteArg("public key", publicKey, Secp256k1PublicKeySize); err != nil {
		return false, err
	}
	msg, err := format.Message(message)
	if err != nil {
		return false, err
	}
	return ethcrypto.VerifySignature(publicKey, ethcrypto.Keccak256(msg), signature), nil
}
