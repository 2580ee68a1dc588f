package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	polycrypt "github.com/polycrypt/polycrypt-go"
)

func TestHexRoundTrip(t *testing.T) {
	data := []byte{0xca, 0xfe, 0x00, 0x01}
	s := ToHex(data)
	assert.Equal(t, "cafe0001", s)

	out, err := FromHex(s)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestFromHex_Invalid(t *testing.T) {
	for _, s := range []string{"cafe0", "zz", "", "0xcafe"} {
		_, err := FromHex(s)
		assert.ErrorIs(t, err, polycrypt.ErrFormat, "input %q", s)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := map[string]int{"a": 1}
	data, err := ToJSON(in)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), data)

	var out map[string]int
	require.NoError(t, FromJSON(data, &out))
	assert.Equal(t, in, out)

	_, err = ToJSON(make(chan int))
	assert.ErrorIs(t, err, polycrypt.ErrFormat)

	err = FromJSON([]byte("{"), &out)
	assert.ErrorIs(t, err, polycrypt.ErrFormat)
}

func TestUTF8(t *testing.T) {
	assert.Equal(t, []byte("héllo"), FromUTF8("héllo"))
	assert.Equal(t, "héllo", ToUTF8([]byte("héllo")))
}

func TestBase64(t *testing.T) {
	data := []byte{0xfb, 0xff, 0x00}

	s := ToBase64URL(data)
	out, err := FromBase64URL(s)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	s = ToBase64(data)
	out, err = FromBase64(s)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	_, err = FromBase64URL("!!!")
	assert.ErrorIs(t, err, polycrypt.ErrFormat)

	_, err = FromBase64("!!!")
	assert.ErrorIs(t, err, polycrypt.ErrFormat)
}
