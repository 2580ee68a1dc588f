package slhdsa

import (
	"bytes"
	"crypto"
	"errors"
	"io"

	"github.com/cloudflare/circl/sign"
)

// PublicKey is an SLH-DSA public key: PK.seed || PK.root.
type PublicKey struct {
	p    *params
	seed []byte
	root []byte
}

// Scheme implements sign.PublicKey.
func (pk *PublicKey) Scheme() sign.Scheme { return pk.p }

// MarshalBinary implements encoding.BinaryMarshaler.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, pk.p.PublicKeySize())
	out = append(out, pk.seed...)
	out = append(out, pk.root...)
	return out, nil
}

// Equal implements sign.PublicKey.
func (pk *PublicKey) Equal(other crypto.PublicKey) bool {
	o, ok := other.(*PublicKey)
	return ok && pk.p == o.p && bytes.Equal(pk.seed, o.seed) && bytes.Equal(pk.root, o.root)
}

// PrivateKey is an SLH-DSA private key: SK.seed || SK.prf || PK.seed ||
// PK.root.
type PrivateKey struct {
	p    *params
	seed []byte
	prf  []byte
	pk   PublicKey
}

// Scheme implements sign.PrivateKey.
func (sk *PrivateKey) Scheme() sign.Scheme { return sk.p }

// Public implements crypto.Signer.
func (sk *PrivateKey) Public() crypto.PublicKey {
	pub := sk.pk
	return &pub
}

// Sign implements crypto.Signer. Signing is deterministic; the entropy
// source is unused. Pre-hashed messages are not supported.
func (sk *PrivateKey) Sign(_ io.Reader, message []byte, opts crypto.SignerOpts) ([]byte, error) {
	if opts != nil && opts.HashFunc() != crypto.Hash(0) {
		return nil, errors.New("slhdsa: cannot sign pre-hashed message")
	}
	return sk.p.signInternal(sk, pureMessage("", message)), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (sk *PrivateKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, sk.p.PrivateKeySize())
	out = append(out, sk.seed...)
	out = append(out, sk.prf...)
	out = append(out, sk.pk.seed...)
	out = append(out, sk.pk.root...)
	return out, nil
}

// Equal implements sign.PrivateKey.
func (sk *PrivateKey) Equal(other crypto.PrivateKey) bool {
	o, ok := other.(*PrivateKey)
	return ok && sk.p == o.p &&
		bytes.Equal(sk.seed, o.seed) && bytes.Equal(sk.prf, o.prf) &&
		bytes.Equal(sk.pk.seed, o.pk.seed) && bytes.Equal(sk.pk.root, o.pk.root)
}
