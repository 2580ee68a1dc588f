package format

import (
	"encoding/hex"
	"encoding/json"
	"reflect"
	"regexp"

	polycrypt "github.com/polycrypt/polycrypt-go"
)

// MessageHashSize is the digest length enforced by MessageHash.
const MessageHashSize = 32

// acceptedShapes names the three input shapes Message accepts. Type errors
// quote it so callers learn the contract from the failure itself.
const acceptedShapes = "a byte slice, a string, or a JSON-serializable map or struct"

// Strict hex: non-empty, even length, hex characters only.
var hexPattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{2})+$`)

// IsHex reports whether s matches the strict hex pattern used by Message
// to decide between hex decoding and UTF-8 encoding.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Message normalizes input into canonical bytes.
//
// Byte slices are copied and returned unchanged. Strings matching the
// strict hex pattern are hex-decoded; all other strings are UTF-8 encoded.
// Maps and structs are serialized to canonical JSON. Any other input fails
// with a TypeMismatchError.
func Message(input any) ([]byte, error) {
	switch v := input.(type) {
	case []byte:
		out := make([]byte, len(v))
		copy(out, v)
		return out, nil
	case string:
		if IsHex(v) {
			out, err := hex.DecodeString(v)
			if err != nil {
				return nil, &polycrypt.FormatError{Reason: "invalid hex string", Err: err}
			}
			return out, nil
		}
		return []byte(v), nil
	case nil:
		return nil, &polycrypt.TypeMismatchError{Argument: "message", Expected: acceptedShapes}
	}

	rv := reflect.ValueOf(input)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, &polycrypt.TypeMismatchError{Argument: "message", Expected: acceptedShapes}
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Map || rv.Kind() == reflect.Struct {
		data, err := json.Marshal(rv.Interface())
		if err != nil {
			return nil, &polycrypt.FormatError{Reason: "object is not JSON-serializable", Err: err}
		}
		return data, nil
	}

	return nil, &polycrypt.TypeMismatchError{Argument: "message", Expected: acceptedShapes}
}

// MessageHash normalizes input like Message and additionally enforces the
// fixed 32-byte message-hash shape.
func MessageHash(input any) ([]byte, error) {
	out, err := Message(input)
	if err != nil {
		return nil, err
	}
	if len(out) != MessageHashSize {
		return nil, &polycrypt.LengthMismatchError{Argument: "message hash", Want: MessageHashSize, Got: len(out)}
	}
	return out, nil
}
