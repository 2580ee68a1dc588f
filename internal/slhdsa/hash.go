package slhdsa

import "golang.org/x/crypto/sha3"

// shake writes SHAKE256(in_0 || in_1 || ...) into out. All SLH-DSA-SHAKE
// hash functions (F, H, T_l, PRF, PRF_msg, H_msg) reduce to this with the
// operand order fixed by FIPS 205 section 11.2.
func shake(out []byte, in ...[]byte) {
	h := sha3.NewShake256()
	for _, b := range in {
		h.Write(b)
	}
	h.Read(out)
}

// hashN is the keyed tweakable hash: SHAKE256(PK.seed || ADRS || data, 8n).
// It covers F (one data block), H (two blocks) and T_l (l blocks).
func (p *params) hashN(out, pkSeed []byte, adrs *address, data ...[]byte) {
	h := sha3.NewShake256()
	h.Write(pkSeed)
	h.Write(adrs[:])
	for _, d := range data {
		h.Write(d)
	}
	h.Read(out[:p.n])
}

// prf derives a WOTS+ or FORS secret value:
// SHAKE256(PK.seed || ADRS || SK.seed, 8n).
func (p *params) prf(out, pkSeed, skSeed []byte, adrs *address) {
	p.hashN(out, pkSeed, adrs, skSeed)
}

// base2b splits x into outLen b-bit big-endian values (FIPS 205
// algorithm 4). b never exceeds the FORS tree height, so values fit
// comfortably in a uint32.
func base2b(x []byte, b, outLen int) []uint32 {
	out := make([]uint32, outLen)
	in, bits := 0, 0
	var total uint64
	mask := uint64(1)<<uint(b) - 1
	for i := range out {
		for bits < b {
			total = total<<8 | uint64(x[in])
			in++
			bits += 8
		}
		bits -= b
		out[i] = uint32(total >> uint(bits) & mask)
	}
	return out
}

// toInt interprets up to 8 bytes as a big-endian integer.
func toInt(x []byte) uint64 {
	var v uint64
	for _, b := range x {
		v = v<<8 | uint64(b)
	}
	return v
}
