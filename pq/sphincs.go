package pq

import (
	polycrypt "github.com/polycrypt/polycrypt-go"
	"github.com/polycrypt/polycrypt-go/internal/slhdsa"
)

const (
	// Sphincs192SeedSize is the SLH-DSA-192 seed length in bytes.
	Sphincs192SeedSize = 72
	// Sphincs192PrivateKeySize is the SLH-DSA-192 private key length in bytes.
	Sphincs192PrivateKeySize = 96
	// Sphincs192PublicKeySize is the SLH-DSA-192 public key length in bytes.
	Sphincs192PublicKeySize = 48
	// Sphincs192FastSignatureSize is the SLH-DSA-SHAKE-192f signature length.
	Sphincs192FastSignatureSize = 35664
	// Sphincs192SmallSignatureSize is the SLH-DSA-SHAKE-192s signature length.
	Sphincs192SmallSignatureSize = 16224

	// Sphincs256SeedSize is the SLH-DSA-256 seed length in bytes.
	Sphincs256SeedSize = 96
	// Sphincs256PrivateKeySize is the SLH-DSA-256 private key length in bytes.
	Sphincs256PrivateKeySize = 128
	// Sphincs256PublicKeySize is the SLH-DSA-256 public key length in bytes.
	Sphincs256PublicKeySize = 64
	// Sphincs256FastSignatureSize is the SLH-DSA-SHAKE-256f signature length.
	Sphincs256FastSignatureSize = 49856
	// Sphincs256SmallSignatureSize is the SLH-DSA-SHAKE-256s signature length.
	Sphincs256SmallSignatureSize = 29792
)

// SphincsFamily groups the fast and small sub-variants of one SLH-DSA
// security level. The family embeds the fast variant, so it can be used as
// a Signer directly; the small variant is reached explicitly.
type SphincsFamily struct {
	*Scheme

	// Fast trades signature size for signing speed (the default).
	Fast *Scheme
	// Small trades signing speed for roughly half the signature size.
	Small *Scheme
}

// Variant returns the sub-variant registered under name ("fast" or
// "small").
func (f *SphincsFamily) Variant(name string) (*Scheme, bool) {
	switch name {
	case "fast":
		return f.Fast, true
	case "small":
		return f.Small, true
	}
	return nil, false
}

// Variants lists the registered sub-variant names.
func (f *SphincsFamily) Variants() []string {
	return []string{"fast", "small"}
}

// NewSphincs192 constructs the SLH-DSA-SHAKE-192 family.
func NewSphincs192(opts ...polycrypt.Option) *SphincsFamily {
	fast := newScheme("sphincs192_fast", slhdsa.SHAKE192f, opts...)
	small := newScheme("sphincs192_small", slhdsa.SHAKE192s, opts...)
	return &SphincsFamily{Scheme: fast, Fast: fast, Small: small}
}

// NewSphincs256 constructs the SLH-DSA-SHAKE-256 family.
func NewSphincs256(opts ...polycrypt.Option) *SphincsFamily {
	fast := newScheme("sphincs256_fast", slhdsa.SHAKE256f, opts...)
	small := newScheme("sphincs256_small", slhdsa.SHAKE256s, opts...)
	return &SphincsFamily{Scheme: fast, Fast: fast, Small: small}
}
