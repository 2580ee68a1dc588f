package classic

import (
	"bytes"
	"errors"
	"testing"

	polycrypt "github.com/polycrypt/polycrypt-go"
)

func TestSecp256k1_RoundTrip(t *testing.T) {
	kp, err := Secp256k1.GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}

	messages := []any{
		[]byte("raw bytes"),
		"plain text",
		"cafe01", // hex path
		map[string]int{"amount": 5},
	}

	for _, msg := range messages {
		sig, err := Secp256k1.Sign(msg, kp.PrivateKey)
		if err != nil {
			t.Fatalf("Sign(%v) error = %v", msg, err)
		}
		if len(sig) != Secp256k1SignatureSize {
			t.Errorf("signature size = %d, want %d", len(sig), Secp256k1SignatureSize)
		}

		ok, err := Secp256k1.Verify(sig, msg, kp.PublicKey)
		if err != nil {
			t.Fatalf("Verify(%v) error = %v", msg, err)
		}
		if !ok {
			t.Errorf("Verify(%v) = false, want true", msg)
		}
	}
}

func TestSecp256k1_SeedDeterminism(t *testing.T) {
	seed := bytes.Repeat([]byte{0x11}, Secp256k1SeedSize)

	a, err := Secp256k1.GeneratePrivateKey(seed)
	if err != nil {
		t.Fatalf("GeneratePrivateKey() error = %v", err)
	}
	b, err := Secp256k1.GeneratePrivateKey(seed)
	if err != nil {
		t.Fatalf("GeneratePrivateKey() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical seeds produced different private keys")
	}
	if !bytes.Equal(a, seed) {
		t.Error("supplied seed was not used verbatim")
	}
}

func TestSecp256k1_Sizes(t *testing.T) {
	kp, err := Secp256k1.GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	if len(kp.PrivateKey) != Secp256k1PrivateKeySize {
		t.Errorf("private key size = %d, want %d", len(kp.PrivateKey), Secp256k1PrivateKeySize)
	}
	if len(kp.PublicKey) != Secp256k1PublicKeySize {
		t.Errorf("public key size = %d, want %d", len(kp.PublicKey), Secp256k1PublicKeySize)
	}
	// compressed point prefix
	if kp.PublicKey[0] != 0x02 && kp.PublicKey[0] != 0x03 {
		t.Errorf("public key prefix = %#x, want 0x02 or 0x03", kp.PublicKey[0])
	}
}

func TestSecp256k1_InvalidSeed(t *testing.T) {
	if _, err := Secp256k1.GeneratePrivateKey(make([]byte, 16)); !errors.Is(err, polycrypt.ErrLengthMismatch) {
		t.Errorf("short seed: expected ErrLengthMismatch, got %v", err)
	}

	// zero scalar is rejected by the provider
	if _, err := Secp256k1.GeneratePrivateKey(make([]byte, 32)); !errors.Is(err, polycrypt.ErrPrimitive) {
		t.Errorf("zero seed: expected ErrPrimitive, got %v", err)
	}
}

func TestSecp256k1_TamperedInputs(t *testing.T) {
	kp, err := Secp256k1.GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	sig, err := Secp256k1.Sign("test", kp.PrivateKey)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	bad := bytes.Clone(sig)
	bad[10] ^= 0x01
	ok, err := Secp256k1.Verify(bad, "test", kp.PublicKey)
	if err != nil || ok {
		t.Errorf("tampered signature: ok=%v err=%v, want false nil", ok, err)
	}

	ok, err = Secp256k1.Verify(sig, "tost", kp.PublicKey)
	if err != nil || ok {
		t.Errorf("tampered message: ok=%v err=%v, want false nil", ok, err)
	}

	if _, err := Secp256k1.Verify(sig[:63], "test", kp.PublicKey); !errors.Is(err, polycrypt.ErrLengthMismatch) {
		t.Errorf("short signature: expected ErrLengthMismatch, got %v", err)
	}
}
