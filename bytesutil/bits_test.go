package bytesutil

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitLen(t *testing.T) {
	assert.Equal(t, 0, BitLen(big.NewInt(0)))
	assert.Equal(t, 1, BitLen(big.NewInt(1)))
	assert.Equal(t, 8, BitLen(big.NewInt(255)))
	assert.Equal(t, 9, BitLen(big.NewInt(256)))
}

func TestGetBit(t *testing.T) {
	n := big.NewInt(0b1010)

	bit, err := GetBit(n, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), bit)

	bit, err = GetBit(n, 0)
	require.NoError(t, err)
	assert.Equal(t, uint(0), bit)

	_, err = GetBit(big.NewInt(-1), 0)
	assert.ErrorIs(t, err, ErrNegative)

	_, err = GetBit(n, -1)
	assert.ErrorIs(t, err, ErrLength)
}

func TestSetBit(t *testing.T) {
	n := big.NewInt(0b1000)

	got, err := SetBit(n, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0b1001), got.Int64())
	// original untouched
	assert.Equal(t, int64(0b1000), n.Int64())

	got, err = SetBit(got, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0b0001), got.Int64())

	_, err = SetBit(big.NewInt(-1), 0, 1)
	assert.ErrorIs(t, err, ErrNegative)
}

func TestBitMask(t *testing.T) {
	mask, err := BitMask(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), mask.Int64())

	mask, err = BitMask(8)
	require.NoError(t, err)
	assert.Equal(t, int64(255), mask.Int64())

	_, err = BitMask(-1)
	assert.ErrorIs(t, err, ErrLength)
}
