package pq

import (
	"io"

	"github.com/cloudflare/circl/sign"

	polycrypt "github.com/polycrypt/polycrypt-go"
	"github.com/polycrypt/polycrypt-go/format"
	"github.com/polycrypt/polycrypt-go/internal/check"
)

// Scheme adapts one sign.Scheme implementation to the polycrypt.Signer
// contract. All post-quantum adapters share this core; they differ only in
// the underlying parameter set.
type Scheme struct {
	name   string
	scheme sign.Scheme
	rng    io.Reader
}

// newScheme wires a concrete scheme value. Constructors pass scheme values
// directly, so a wiring mistake is a compile error rather than anything an
// importer could observe.
func newScheme(name string, sch sign.Scheme, opts ...polycrypt.Option) *Scheme {
	return &Scheme{name: name, scheme: sch, rng: polycrypt.NewConfig(opts...).Rand}
}

// Name implements polycrypt.Algorithm.
func (s *Scheme) Name() string { return s.name }

// SeedSize implements polycrypt.Algorithm.
func (s *Scheme) SeedSize() int { return s.scheme.SeedSize() }

// PrivateKeySize implements polycrypt.Algorithm.
func (s *Scheme) PrivateKeySize() int { return s.scheme.PrivateKeySize() }

// PublicKeySize implements polycrypt.Algorithm.
func (s *Scheme) PublicKeySize() int { return s.scheme.PublicKeySize() }

// SignatureSize implements polycrypt.Signer.
func (s *Scheme) SignatureSize() int { return s.scheme.SignatureSize() }

// GeneratePrivateKey derives a private key from seed, or from fresh entropy
// when seed is nil.
func (s *Scheme) GeneratePrivateKey(seed []byte) ([]byte, error) {
	kp, err := s.GenerateKeyPair(seed)
	if err != nil {
		return nil, err
	}
	return kp.PrivateKey, nil
}

// GenerateKeyPair derives a key pair from seed, or from fresh entropy when
// seed is nil.
func (s *Scheme) GenerateKeyPair(seed []byte) (*polycrypt.KeyPair, error) {
	supplied, err := check.Seed("seed", seed, s.scheme.SeedSize())
	if err != nil {
		return nil, err
	}
	if !supplied {
		if seed, err = check.Random(s.rng, s.scheme.SeedSize()); err != nil {
			return nil, err
		}
	}
	pub, priv := s.scheme.DeriveKey(seed)

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

// PublicKey recomputes the public key embedded in the private key.
func (s *Scheme) PublicKey(privateKey []byte) ([]byte, error) {
	priv, err := s.privateKey(privateKey)
	if err != nil {
		return nil, err
	}
	out, err := priv.Public().(sign.PublicKey).MarshalBinary()
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	return out, nil
}

// Sign produces a fixed-length signature over the normalized message.
func (s *Scheme) Sign(message any, privateKey []byte) ([]byte, error) {
	priv, err := s.privateKey(privateKey)
	if err != nil {
		return nil, err
	}
	msg, err := format.Message(message)
	if err != nil {
		return nil, err
	}
	return s.scheme.Sign(priv, msg, nil), nil
}

// Verify reports whether signature is valid for message under publicKey.
func (s *Scheme) Verify(signature []byte, message any, publicKey []byte) (bool, error) {
	if err := check.ByteArg("signature", signature, s.scheme.SignatureSize()); err != nil {
		return false, err
	}
	if err := check.ByteArg("public key", publicKey, s.scheme.PublicKeySize()); err != nil {
		return false, err
	}
	msg, err := format.Message(message)
	if err != nil {
		return false, err
	}
	pub, err := s.scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		// well-sized but structurally invalid
		return false, nil
	}
	return s.scheme.Verify(pub, msg, signature, nil), nil
}

func (s *Scheme) privateKey(b []byte) (sign.PrivateKey, error) {
	if err := check.ByteArg("private key", b, s.scheme.PrivateKeySize()); err != nil {
		return nil, err
	}
	priv, err := s.scheme.UnmarshalBinaryPrivateKey(b)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.name, Err: err}
	}
	return priv, nil
}
