package classic

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"errors"
	"io"
	"math/big"

	polycrypt "github.com/polycrypt/polycrypt-go"
	"github.com/polycrypt/polycrypt-go/bytesutil"
	"github.com/polycrypt/polycrypt-go/internal/check"
)

// ECDSAScheme signs pre-hashed digests with ECDSA over a NIST curve. Unlike
// the flexible-message adapters it performs no normalization: the message
// must be a digest of exactly DigestSize bytes (the curve order size).
type ECDSAScheme struct {
	name    string
	curve   elliptic.Curve
	keySize int
	rng     io.Reader
}

// NewP256 constructs a P-256 adapter (32-byte digests, 64-byte signatures).
func NewP256(opts ...polycrypt.Option) *ECDSAScheme {
	return &ECDSAScheme{name: "p256", curve: elliptic.P256(), keySize: 32, rng: polycrypt.NewConfig(opts...).Rand}
}

// NewP384 constructs a P-384 adapter (48-byte digests, 96-byte signatures).
func NewP384(opts ...polycrypt.Option) *ECDSAScheme {
	return &ECDSAScheme{name: "p384", curve: elliptic.P384(), keySize: 48, rng: polycrypt.NewConfig(opts...).Rand}
}

// NewP521 constructs a P-521 adapter (66-byte digests, 132-byte signatures).
func NewP521(opts ...polycrypt.Option) *ECDSAScheme {
	return &ECDSAScheme{name: "p521", curve: elliptic.P521(), keySize: 66, rng: polycrypt.NewConfig(opts...).Rand}
}

// Name implements polycrypt.Algorithm.
func (s *ECDSAScheme) Name() string { return s.name }

// SeedSize implements polycrypt.Algorithm.
func (s *ECDSAScheme) SeedSize() int { return s.keySize }

// PrivateKeySize implements polycrypt.Algorithm.
func (s *ECDSAScheme) PrivateKeySize() int { return s.keySize }

// PublicKeySize returns the compressed point length.
func (s *ECDSAScheme) PublicKeySize() int { return s.keySize + 1 }

// SignatureSize returns the fixed-width (r‖s) length.
func (s *ECDSAScheme) SignatureSize() int { return 2 * s.keySize }

// DigestSize returns the required pre-hashed message length.
func (s *ECDSAScheme) DigestSize() int { return s.keySize }

// scalar validates that b encodes a scalar in [1, N).
func (s *ECDSAScheme) scalar(b []byte) (*big.Int, error) {
	d := bytesutil.BytesToNumberBE(b)
	if d.Sign() == 0 || d.Cmp(s.curve.Params().N) >= 0 {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: errors.New("private key scalar out of range")}
	}
	return d, nil
}

// GeneratePrivateKey derives a private key from seed, or from fresh entropy
// when seed is nil. A supplied seed must encode a scalar in [1, N).
func (s *ECDSAScheme) GeneratePrivateKey(seed []byte) ([]byte, error) {
	supplied, err := check.Seed("seed", seed, s.keySize)
	if err != nil {
		return nil, err
	}
	if supplied {
		if _, err := s.scalar(seed); err != nil {
			return nil, err
		}
		out := make([]byte, s.keySize)
		copy(out, seed)
		return out, nil
	}

	// Mask excess high bits (P-521 keys are not byte-aligned), then
	// rejection-sample.
	excess := s.keySize*8 - s.curve.Params().N.BitLen()
	for range keygenAttempts {
		b, err := check.Random(s.rng, s.keySize)
		if err != nil {
			return nil, err
		}
		b[0] >>= excess
		if _, err := s.scalar(b); err == nil {
			return b, nil
		}
	}
	return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: errors.New("no valid scalar found")}
}

// GenerateKeyPair derives a key pair from seed, or from fresh entropy when
// seed is nil.
func (s *ECDSAScheme) GenerateKeyPair(seed []byte) (*polycrypt.KeyPair, error) {
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

// PublicKey recomputes the compressed public key from the private scalar.
func (s *ECDSAScheme) PublicKey(privateKey []byte) ([]byte, error) {
	if err := check.ByteArg("private key", privateKey, s.keySize); err != nil {
		return nil, err
	}
	if _, err := s.scalar(privateKey); err != nil {
		return nil, err
	}
	x, y := s.curve.ScalarBaseMult(privateKey)
	return elliptic.MarshalCompressed(s.curve, x, y), nil
}

// Sign produces a fixed-width (r‖s) signature over a pre-hashed digest.
func (s *ECDSAScheme) Sign(message any, privateKey []byte) ([]byte, error) {
	if err := check.ByteArg("private key", privateKey, s.keySize); err != nil {
		return nil, err
	}
	digest, err := check.Digest("message", message, s.keySize)
	if err != nil {
		return nil, err
	}
	d, err := s.scalar(privateKey)
	if err != nil {
		return nil, err
	}
	x, y := s.curve.ScalarBaseMult(privateKey)
	key := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: s.curve, X: x, Y: y},
		D:         d,
	}

	r, v, err := ecdsa.Sign(s.rng, key, digest)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	rb, err := bytesutil.NumberToBytesBE(r, s.keySize)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	vb, err := bytesutil.NumberToBytesBE(v, s.keySize)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	return bytesutil.Concat(rb, vb), nil
}

// Verify reports whether signature is valid for the digest under publicKey.
func (s *ECDSAScheme) Verify(signature []byte, message any, publicKey []byte) (bool, error) {
	if err := check.ByteArg("signature", signature, 2*s.keySize); err != nil {
		return false, err
	}
	if err := check.ByteArg("public key", publicKey, s.keySize+1); err != nil {
		return false, err
	}
	digest, err := check.Digest("message", message, s.keySize)
	if err != nil {
		return false, err
	}

	x, y := elliptic.UnmarshalCompressed(s.curve, publicKey)
	if x == nil {
		// well-sized but not a point on the curve
		return false, nil
	}
	r := bytesutil.BytesToNumberBE(signature[:s.keySize])
	v := bytesutil.BytesToNumberBE(signature[s.keySize:])
	pub := &ecdsa.PublicKey{Curve: s.curve, X: x, Y: y}
	return ecdsa.Verify(pub, digest, r, v), nil
}
