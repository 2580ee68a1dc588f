package format

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"

	polycrypt "github.com/polycrypt/polycrypt-go"
)

// ToHex encodes bytes as a lowercase hex string.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes a strict hex string to bytes.
func FromHex(s string) ([]byte, error) {
	if !IsHex(s) {
		return nil, &polycrypt.FormatError{Reason: "invalid hex string"}
	}
	out, err := hex.DecodeString(s)
	if err != nil {
		return nil, &polycrypt.FormatError{Reason: "invalid hex string", Err: err}
	}
	return out, nil
}

// ToJSON serializes v to canonical JSON text.
func ToJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &polycrypt.FormatError{Reason: "value is not JSON-serializable", Err: err}
	}
	return data, nil
}

// FromJSON deserializes JSON text into v.
func FromJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &polycrypt.FormatError{Reason: "invalid JSON", Err: err}
	}
	return nil
}

// ToUTF8 interprets bytes as a UTF-8 string.
func ToUTF8(data []byte) string {
	return string(data)
}

// FromUTF8 encodes a string as UTF-8 bytes.
func FromUTF8(s string) []byte {
	return []byte(s)
}

// ToBase64URL encodes bytes to URL-safe base64 without padding.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64 (handles missing padding).
func FromBase64URL(s string) ([]byte, error) {
	out, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, &polycrypt.FormatError{Reason: "invalid base64url string", Err: err}
	}
	return out, nil
}

// ToBase64 encodes bytes to standard base64 with padding.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard base64 (with padding) to bytes.
func FromBase64(s string) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &polycrypt.FormatError{Reason: "invalid base64 string", Err: err}
	}
	return out, nil
}
