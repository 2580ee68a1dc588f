package classic

import (
	"io"

	"github.com/cloudflare/circl/ecc/bls12381"
	"github.com/cloudflare/circl/sign/bls"

	polycrypt "github.com/polycrypt/polycrypt-go"
	"github.com/polycrypt/polycrypt-go/format"
	"github.com/polycrypt/polycrypt-go/internal/check"
)

const (
	// BLSSeedSize is the key material (IKM) length in bytes.
	BLSSeedSize = 32
	// BLSPrivateKeySize is the private scalar length in bytes.
	BLSPrivateKeySize = 32
	// BLSPublicKeySize is the compressed G1 public key length in bytes.
	BLSPublicKeySize = 48
	// BLSSignatureSize is the compressed G2 signature length in bytes.
	BLSSignatureSize = 96
)

// BLSScheme signs arbitrary messages with BLS over BLS12-381 in the
// minimal-pubkey setting: 48-byte G1 public keys, 96-byte G2 signatures.
// Signatures over the same message aggregate into a single signature that
// verifies against the aggregated public key.
type BLSScheme struct {
	rng io.Reader
}

// NewBLS12381 constructs a BLS12-381 adapter.
func NewBLS12381(opts ...polycrypt.Option) *BLSScheme {
	return &BLSScheme{rng: polycrypt.NewConfig(opts...).Rand}
}

// Name implements polycrypt.Algorithm.
func (s *BLSScheme) Name() string { return "bls12_381" }

// SeedSize implements polycrypt.Algorithm.
func (s *BLSScheme) SeedSize() int { return BLSSeedSize }

// PrivateKeySize implements polycrypt.Algorithm.
func (s *BLSScheme) PrivateKeySize() int { return BLSPrivateKeySize }

// PublicKeySize implements polycrypt.Algorithm.
func (s *BLSScheme) PublicKeySize() int { return BLSPublicKeySize }

// SignatureSize implements polycrypt.Signer.
func (s *BLSScheme) SignatureSize() int { return BLSSignatureSize }

func (s *BLSScheme) privateKey(b []byte) (*bls.PrivateKey[bls.G1], error) {
	priv := new(bls.PrivateKey[bls.G1])
	if err := priv.UnmarshalBinary(b); err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.Name(), Err: err}
	}
	return priv, nil
}

// GeneratePrivateKey derives a private key from the 32-byte seed (used as
// IKM for the RFC 9380 keygen), or from fresh entropy when seed is nil.
func (s *BLSScheme) GeneratePrivateKey(seed []byte) ([]byte, error) {
	supplied, err := check.Seed("seed", seed, BLSSeedSize)
	if err != nil {
		return nil, err
	}
	ikm := seed
	if !supplied {
		if ikm, err = check.Random(s.rng, BLSSeedSize); err != nil {
			return nil, err
		}
	}
	priv, err := bls.KeyGen[bls.G1](ikm, nil, nil)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.Name(), Err: err}
	}
	out, err := priv.MarshalBinary()
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.Name(), Err: err}
	}
	return out, nil
}

// GenerateKeyPair derives a key pair from seed, or from fresh entropy when
// seed is nil.
func (s *BLSScheme) GenerateKeyPair(seed []byte) (*polycrypt.KeyPair, error) {
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

// PublicKey recomputes the compressed G1 public key.
func (s *BLSScheme) PublicKey(privateKey []byte) ([]byte, error) {
	if err := check.ByteArg("private key", privateKey, BLSPrivateKeySize); err != nil {
		return nil, err
	}
	priv, err := s.privateKey(privateKey)
	if err != nil {
		return nil, err
	}
	out, err := priv.PublicKey().MarshalBinary()
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.Name(), Err: err}
	}
	return out, nil
}

// Sign produces a 96-byte G2 signature over the normalized message.
func (s *BLSScheme) Sign(message any, privateKey []byte) ([]byte, error) {
	if err := check.ByteArg("private key", privateKey, BLSPrivateKeySize); err != nil {
		return nil, err
	}
	msg, err := format.Message(message)
	if err != nil {
		return nil, err
	}
	priv, err := s.privateKey(privateKey)
	if err != nil {
		return nil, err
	}
	return bls.Sign(priv, msg), nil
}

// Verify reports whether signature is valid for message under publicKey.
func (s *BLSScheme) Verify(signature []byte, message any, publicKey []byte) (bool, error) {
	if err := check.ByteArg("signature", signature, BLSSignatureSize); err != nil {
		return false, err
	}
	if err := check.ByteArg("public key", publicKey, BLSPublicKeySize); err != nil {
		return false, err
	}
	msg, err := format.Message(message)
	if err != nil {
		return false, err
	}
	pub := new(bls.PublicKey[bls.G1])
	if err := pub.UnmarshalBinary(publicKey); err != nil {
		// well-sized but not a valid G1 point
		return false, nil
	}
	return bls.Verify(pub, msg, signature), nil
}

// AggregateSignatures combines signatures over the same message into one
// 96-byte signature verifiable against the aggregated public key.
func (s *BLSScheme) AggregateSignatures(signatures ...[]byte) ([]byte, error) {
	if len(signatures) == 0 {
		return nil, &polycrypt.TypeMismatchError{Argument: "signatures", Expected: "at least one signature"}
	}
	sigs := make([]bls.Signature, 0, len(signatures))
	for _, sig := range signatures {
		if err := check.ByteArg("signature", sig, BLSSignatureSize); err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}
	agg, err := bls.Aggregate(bls.G1{}, sigs)
	if err != nil {
		return nil, &polycrypt.PrimitiveError{Algorithm: s.Name(), Err: err}
	}
	return agg, nil
}

// AggregatePublicKeys combines public keys by G1 point addition.
func (s *BLSScheme) AggregatePublicKeys(publicKeys ...[]byte) ([]byte, error) {
	if len(publicKeys) == 0 {
		return nil, &polycrypt.TypeMismatchError{Argument: "public keys", Expected: "at least one public key"}
	}
	agg := new(bls12381.G1)
	agg.SetIdentity()
	for _, pk := range publicKeys {
		if err := check.ByteArg("public key", pk, BLSPublicKeySize); err != nil {
			return nil, err
		}
		p := new(bls12381.G1)
		if err := p.SetBytes(pk); err != nil {
			return nil, &polycrypt.PrimitiveError{Algorithm: s.Name(), Err: err}
		}
		agg.Add(agg, p)
	}
	return agg.BytesCompressed(), nil
}

// VerifyAggregate reports whether an aggregated signature is valid for the
// given public keys and their respective (distinct) messages.
func (s *BLSScheme) VerifyAggregate(publicKeys [][]byte, messages []any, signature []byte) (bool, error) {
	if err := check.ByteArg("signature", signature, BLSSignatureSize); err != nil {
		return false, err
	}
	if len(publicKeys) == 0 || len(publicKeys) != len(messages) {
		return false, &polycrypt.TypeMismatchError{
			Argument: "public keys",
			Expected: "one public key per message",
		}
	}
	pubs := make([]*bls.PublicKey[bls.G1], 0, len(publicKeys))
	msgs := make([][]byte, 0, len(messages))
	for i, pk := range publicKeys {
		if err := check.ByteArg("public key", pk, BLSPublicKeySize); err != nil {
			return false, err
		}
		pub := new(bls.PublicKey[bls.G1])
		if err := pub.UnmarshalBinary(pk); err != nil {
			return false, nil
		}
		msg, err := format.Message(messages[i])
		if err != nil {
			return false, err
		}
		pubs = append(pubs, pub)
		msgs = append(msgs, msg)
	}
	return bls.VerifyAggregate(pubs, msgs, signature), nil
}
