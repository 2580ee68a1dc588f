package kex

import (
	"bytes"
	"errors"
	"testing"

	polycrypt "github.com/polycrypt/polycrypt-go"
)

func kyberAdapters() []*KyberScheme {
	return []*KyberScheme{Kyber768, Kyber1024}
}

func TestKyber_Sizes(t *testing.T) {
	tests := []struct {
		scheme              *KyberScheme
		seed, priv, pub, ct int
	}{
		{Kyber768, Kyber768SeedSize, Kyber768PrivateKeySize, Kyber768PublicKeySize, Kyber768CiphertextSize},
		{Kyber1024, Kyber1024SeedSize, Kyber1024PrivateKeySize, Kyber1024PublicKeySize, Kyber1024CiphertextSize},
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
			if got := tt.scheme.CiphertextSize(); got != tt.ct {
				t.Errorf("CiphertextSize() = %d, want %d", got, tt.ct)
			}
			if got := tt.scheme.SharedSecretSize(); got != KyberSharedSecretSize {
				t.Errorf("SharedSecretSize() = %d, want %d", got, KyberSharedSecretSize)
			}
		})
	}
}

func TestKyber_RoundTrip(t *testing.T) {
	for _, s := range kyberAdapters() {
		t.Run(s.Name(), func(t *testing.T) {
			kp, err := s.GenerateKeyPair(nil)
			if err != nil {
				t.Fatalf("GenerateKeyPair() error = %v", err)
			}
			if len(kp.PrivateKey) != s.PrivateKeySize() {
				t.Errorf("private key size = %d, want %d", len(kp.PrivateKey), s.PrivateKeySize())
			}
			if len(kp.PublicKey) != s.PublicKeySize() {
				t.Errorf("public key size = %d, want %d", len(kp.PublicKey), s.PublicKeySize())
			}

			enc, err := s.Encapsulate(kp.PublicKey)
			if err != nil {
				t.Fatalf("Encapsulate() error = %v", err)
			}
			if len(enc.Ciphertext) != s.CiphertextSize() {
				t.Errorf("ciphertext size = %d, want %d", len(enc.Ciphertext), s.CiphertextSize())
			}
			if len(enc.SharedSecret) != s.SharedSecretSize() {
				t.Errorf("shared secret size = %d, want %d", len(enc.SharedSecret), s.SharedSecretSize())
			}

			ss, err := s.Decapsulate(enc.Ciphertext, kp.PrivateKey)
			if err != nil {
				t.Fatalf("Decapsulate() error = %v", err)
			}
			if !bytes.Equal(ss, enc.SharedSecret) {
				t.Error("decapsulated secret does not match encapsulated secret")
			}
		})
	}
}

func TestKyber_DeterministicKeyGeneration(t *testing.T) {
	for _, s := range kyberAdapters() {
		t.Run(s.Name(), func(t *testing.T) {
			seed := bytes.Repeat([]byte{0x17}, s.SeedSize())

			a, err := s.GenerateKeyPair(seed)
			if err != nil {
				t.Fatalf("GenerateKeyPair() error = %v", err)
			}
			b, err := s.GenerateKeyPair(seed)
			if err != nil {
				t.Fatalf("GenerateKeyPair() error = %v", err)
			}

			if !bytes.Equal(a.PrivateKey, b.PrivateKey) || !bytes.Equal(a.PublicKey, b.PublicKey) {
				t.Error("identical seeds produced different key pairs")
			}

			pub, err := s.PublicKey(a.PrivateKey)
			if err != nil {
				t.Fatalf("PublicKey() error = %v", err)
			}
			if !bytes.Equal(pub, a.PublicKey) {
				t.Error("PublicKey() does not match generated public key")
			}
		})
	}
}

func TestKyber_EncapsulateDeterministic(t *testing.T) {
	for _, s := range kyberAdapters() {
		t.Run(s.Name(), func(t *testing.T) {
			kp, err := s.GenerateKeyPair(nil)
			if err != nil {
				t.Fatalf("GenerateKeyPair() error = %v", err)
			}
			seed := bytes.Repeat([]byte{0x2a}, s.EncapsulationSeedSize())

			a, err := s.EncapsulateDeterministic(kp.PublicKey, seed)
			if err != nil {
				t.Fatalf("EncapsulateDeterministic() error = %v", err)
			}
			b, err := s.EncapsulateDeterministic(kp.PublicKey, seed)
			if err != nil {
				t.Fatalf("EncapsulateDeterministic() error = %v", err)
			}

			if !bytes.Equal(a.Ciphertext, b.Ciphertext) || !bytes.Equal(a.SharedSecret, b.SharedSecret) {
				t.Error("identical seeds produced different encapsulations")
			}

			ss, err := s.Decapsulate(a.Ciphertext, kp.PrivateKey)
			if err != nil {
				t.Fatalf("Decapsulate() error = %v", err)
			}
			if !bytes.Equal(ss, a.SharedSecret) {
				t.Error("decapsulated secret does not match encapsulated secret")
			}
		})
	}
}

func TestKyber_ImplicitRejection(t *testing.T) {
	s := Kyber768
	kp, err := s.GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	enc, err := s.Encapsulate(kp.PublicKey)
	if err != nil {
		t.Fatalf("Encapsulate() error = %v", err)
	}

	tampered := make([]byte, len(enc.Ciphertext))
	copy(tampered, enc.Ciphertext)
	tampered[0] ^= 0x01

	ss, err := s.Decapsulate(tampered, kp.PrivateKey)
	if err != nil {
		t.Fatalf("Decapsulate() error = %v", err)
	}
	if bytes.Equal(ss, enc.SharedSecret) {
		t.Error("tampered ciphertext yielded the original shared secret")
	}
	if len(ss) != s.SharedSecretSize() {
		t.Errorf("rejection secret size = %d, want %d", len(ss), s.SharedSecretSize())
	}
}

func TestKyber_Validation(t *testing.T) {
	s := Kyber768
	kp, err := s.GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}

	if _, err := s.GenerateKeyPair(make([]byte, 16)); !errors.Is(err, polycrypt.ErrLengthMismatch) {
		t.Errorf("short seed: expected ErrLengthMismatch, got %v", err)
	}
	if _, err := s.Encapsulate(nil); !errors.Is(err, polycrypt.ErrTypeMismatch) {
		t.Errorf("nil public key: expected ErrTypeMismatch, got %v", err)
	}
	if _, err := s.Encapsulate(make([]byte, 100)); !errors.Is(err, polycrypt.ErrLengthMismatch) {
		t.Errorf("short public key: expected ErrLengthMismatch, got %v", err)
	}
	if _, err := s.Decapsulate(make([]byte, 10), kp.PrivateKey); !errors.Is(err, polycrypt.ErrLengthMismatch) {
		t.Errorf("short ciphertext: expected ErrLengthMismatch, got %v", err)
	}
	if _, err := s.Decapsulate(nil, kp.PrivateKey); !errors.Is(err, polycrypt.ErrTypeMismatch) {
		t.Errorf("nil ciphertext: expected ErrTypeMismatch, got %v", err)
	}

	// wrong parameter set: sizes differ, so the length check fires first
	if _, err := Kyber1024.Decapsulate(make([]byte, Kyber768CiphertextSize), kp.PrivateKey); !errors.Is(err, polycrypt.ErrLengthMismatch) {
		t.Errorf("cross-scheme ciphertext: expected ErrLengthMismatch, got %v", err)
	}
}
