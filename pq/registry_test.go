package pq

import (
	"testing"

	polycrypt "github.com/polycrypt/polycrypt-go"
)

// The defaults are package-level vars, so a broken adapter constructor
// would surface as an import-time failure in every dependent package. This
// touches each one directly so the failure lands here first.
func TestRegistryDefaultsConstructed(t *testing.T) {
	adapters := []polycrypt.Signer{
		Dilithium65,
		Dilithium87,
		Sphincs192,
		Sphincs192.Fast,
		Sphincs192.Small,
		Sphincs256,
		Sphincs256.Fast,
		Sphincs256.Small,
		Recommended,
		Fast,
		Conservative,
	}
	for _, s := range adapters {
		if s == nil {
			t.Fatal("registry default is nil")
		}
		if s.Name() == "" {
			t.Error("registry default has an empty name")
		}
		if s.SeedSize() <= 0 || s.PrivateKeySize() <= 0 || s.PublicKeySize() <= 0 || s.SignatureSize() <= 0 {
			t.Errorf("%s: registry default reports a non-positive size", s.Name())
		}
	}
}
