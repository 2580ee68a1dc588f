package bytesutil

import "math/big"

// BitLen returns the minimal number of bits needed to represent n.
// BitLen(0) == 0, matching math/big.
func BitLen(n *big.Int) int {
	return n.BitLen()
}

// GetBit returns bit i of n (0 = least significant).
func GetBit(n *big.Int, i int) (uint, error) {
	if n.Sign() < 0 {
		return 0, ErrNegative
	}
	if i < 0 {
		return 0, ErrLength
	}
	return n.Bit(i), nil
}

// SetBit returns a copy of n with bit i set to v (0 or 1).
func SetBit(n *big.Int, i int, v uint) (*big.Int, error) {
	if n.Sign() < 0 {
		return nil, ErrNegative
	}
	if i < 0 {
		return nil, ErrLength
	}
	return new(big.Int).SetBit(n, i, v&1), nil
}

// BitMask returns a mask with the low bits bits set: 2^bits - 1.
func BitMask(bits int) (*big.Int, error) {
	if bits < 0 {
		return nil, ErrLength
	}
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return mask.Sub(mask, big.NewInt(1)), nil
}
