package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	polycrypt "github.com/polycrypt/polycrypt-go"
)

func TestMessage_Bytes(t *testing.T) {
	in := []byte{1, 2, 3}
	out, err := Message(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// returned buffer is a copy
	out[0] = 9
	assert.Equal(t, byte(1), in[0])
}

func TestMessage_Strings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"hex path", "cafe01", []byte{0xca, 0xfe, 0x01}},
		{"uppercase hex", "CAFE01", []byte{0xca, 0xfe, 0x01}},
		{"odd length falls back to utf-8", "cafe0", []byte("cafe0")},
		{"non-hex characters", "tests", []byte("tests")},
		{"empty string", "", []byte{}},
		{"plain text", "hello world", []byte("hello world")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Message(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMessage_Objects(t *testing.T) {
	out, err := Message(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), out)

	// map keys serialize sorted
	out, err = Message(map[string]int{"b": 2, "a": 1})
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1,"b":2}`), out)

	type payload struct {
		A int `json:"a"`
	}
	out, err = Message(payload{A: 1})
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), out)

	out, err = Message(&payload{A: 1})
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), out)
}

func TestMessage_TypeErrors(t *testing.T) {
	inputs := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"int", 42},
		{"float", 1.5},
		{"bool", true},
		{"int slice", []int{1, 2}},
		{"array", [2]byte{1, 2}},
		{"nil pointer", (*struct{})(nil)},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Message(tt.in)
			assert.ErrorIs(t, err, polycrypt.ErrTypeMismatch)
			assert.Contains(t, err.Error(), "byte slice")
		})
	}
}

func TestMessage_FormatError(t *testing.T) {
	// channels are not JSON-serializable
	_, err := Message(map[string]any{"ch": make(chan int)})
	assert.ErrorIs(t, err, polycrypt.ErrFormat)
}

func TestMessageHash(t *testing.T) {
	digest := make([]byte, 32)
	out, err := MessageHash(digest)
	require.NoError(t, err)
	assert.Len(t, out, 32)

	// 64 hex chars decode to exactly 32 bytes
	out, err = MessageHash("6aa2f9e83f8ab5b1cd1a27ecbee0bd1b8151bcda1b3f96d4a56fc6cb9ca4a2b7")
	require.NoError(t, err)
	assert.Len(t, out, 32)

	_, err = MessageHash(make([]byte, 31))
	assert.ErrorIs(t, err, polycrypt.ErrLengthMismatch)

	_, err = MessageHash("too short")
	assert.ErrorIs(t, err, polycrypt.ErrLengthMismatch)

	// type errors surface before length errors
	_, err = MessageHash(42)
	assert.ErrorIs(t, err, polycrypt.ErrTypeMismatch)
}

func TestIsHex(t *testing.T) {
	assert.True(t, IsHex("cafe01"))
	assert.True(t, IsHex("AB"))
	assert.False(t, IsHex("cafe0"))
	assert.False(t, IsHex(""))
	assert.False(t, IsHex("zz"))
	assert.False(t, IsHex("0xcafe"))
}
