package slhdsa

import (
	"bytes"
	"testing"

	"github.com/cloudflare/circl/sign"
)

func allSchemes() []sign.Scheme {
	return []sign.Scheme{SHAKE192s, SHAKE192f, SHAKE256s, SHAKE256f}
}

func TestSizes(t *testing.T) {
	tests := []struct {
		scheme               sign.Scheme
		seed, priv, pub, sig int
	}{
		{SHAKE192s, 72, 96, 48, 16224},
		{SHAKE192f, 72, 96, 48, 35664},
		{SHAKE256s, 96, 128, 64, 29792},
		{SHAKE256f, 96, 128, 64, 49856},
	}
	for _, tt := range tests {
		t.Run(tt.scheme.Name(), func(t *testing.T) {
			if got := tt.scheme.SeedSize(); got != tt.seed {
				t.Errorf("SeedSize() = %d, want %d", got, tt.seed)
			}
			if got := tt.scheme.PrivateKeySize(); got != tt.priv {
				t.Errorf("PrivateKeySize() = %d, want %d", got, tt.priv)
			}
			if got := tt.scheme.PublicKeySize(); got != tt.pub {
				t.Errorf("PublicKeySize() = %d, want %d", got, tt.pub)
			}
			if got := tt.scheme.SignatureSize(); got != tt.sig {
				t.Errorf("SignatureSize() = %d, want %d", got, tt.sig)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// the fast variants keep the hypertrees shallow enough for a quick test
	for _, s := range []sign.Scheme{SHAKE192f, SHAKE256f} {
		t.Run(s.Name(), func(t *testing.T) {
			pub, priv := s.DeriveKey(bytes.Repeat([]byte{0x5c}, s.SeedSize()))
			msg := []byte("hash-based signatures")

			sig := s.Sign(priv, msg, nil)
			if len(sig) != s.SignatureSize() {
				t.Fatalf("signature size = %d, want %d", len(sig), s.SignatureSize())
			}
			if !s.Verify(pub, msg, sig, nil) {
				t.Error("Verify() = false for a valid signature")
			}
			if s.Verify(pub, []byte("hash-based signaturez"), sig, nil) {
				t.Error("Verify() = true for a different message")
			}

			bad := bytes.Clone(sig)
			bad[len(bad)/2] ^= 0x01
			if s.Verify(pub, msg, bad, nil) {
				t.Error("Verify() = true for a tampered signature")
			}
		})
	}
}

func TestDeterministicDeriveAndSign(t *testing.T) {
	s := SHAKE192f
	seed := bytes.Repeat([]byte{0xa7}, s.SeedSize())

	pubA, privA := s.DeriveKey(seed)
	pubB, privB := s.DeriveKey(seed)
	if !pubA.Equal(pubB) || !privA.Equal(privB) {
		t.Fatal("identical seeds derived different keys")
	}

	msg := []byte("deterministic")
	if !bytes.Equal(s.Sign(privA, msg, nil), s.Sign(privB, msg, nil)) {
		t.Error("identical keys produced different signatures")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	for _, s := range allSchemes() {
		t.Run(s.Name(), func(t *testing.T) {
			pub, priv := s.DeriveKey(bytes.Repeat([]byte{0x31}, s.SeedSize()))

			pubBytes, err := pub.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary() error = %v", err)
			}
			pub2, err := s.UnmarshalBinaryPublicKey(pubBytes)
			if err != nil {
				t.Fatalf("UnmarshalBinaryPublicKey() error = %v", err)
			}
			if !pub.Equal(pub2) {
				t.Error("public key round trip lost information")
			}

			privBytes, err := priv.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary() error = %v", err)
			}
			priv2, err := s.UnmarshalBinaryPrivateKey(privBytes)
			if err != nil {
				t.Fatalf("UnmarshalBinaryPrivateKey() error = %v", err)
			}
			if !priv.Equal(priv2) {
				t.Error("private key round trip lost information")
			}

			pub3 := priv2.Public().(sign.PublicKey)
			if !pub.Equal(pub3) {
				t.Error("Public() does not match the derived public key")
			}

			if _, err := s.UnmarshalBinaryPublicKey(pubBytes[:len(pubBytes)-1]); err == nil {
				t.Error("expected error for truncated public key")
			}
			if _, err := s.UnmarshalBinaryPrivateKey(privBytes[:len(privBytes)-1]); err == nil {
				t.Error("expected error for truncated private key")
			}
		})
	}
}

func TestContext(t *testing.T) {
	s := SHAKE192f
	pub, priv := s.DeriveKey(bytes.Repeat([]byte{0x09}, s.SeedSize()))
	msg := []byte("with context")

	sig := s.Sign(priv, msg, &sign.SignatureOpts{Context: "app:v1"})
	if !s.Verify(pub, msg, sig, &sign.SignatureOpts{Context: "app:v1"}) {
		t.Error("Verify() = false under the signing context")
	}
	if s.Verify(pub, msg, sig, nil) {
		t.Error("Verify() = true without the signing context")
	}
	if s.Verify(pub, msg, sig, &sign.SignatureOpts{Context: "app:v2"}) {
		t.Error("Verify() = true under a different context")
	}
}
