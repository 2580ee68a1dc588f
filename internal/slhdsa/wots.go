package slhdsa

// WOTS+ one-time signatures (FIPS 205 section 5) with w = 16: each chain
// covers one message nibble, plus three checksum chains.

const (
	wotsW    = 16
	wotsLen2 = 3
)

// chainLengths maps an n-byte message to the per-chain start positions:
// len1 nibbles followed by the len2 checksum nibbles (FIPS 205
// algorithms 5/6 steps 1-7).
func (p *params) chainLengths(msg []byte) []uint32 {
	lengths := base2b(msg, 4, 2*p.n)
	csum := uint32(0)
	for _, v := range lengths {
		csum += wotsW - 1 - v
	}
	// left-align the 12 checksum bits in two bytes
	csum <<= 4
	csumBytes := []byte{byte(csum >> 8), byte(csum)}
	return append(lengths, base2b(csumBytes, 4, wotsLen2)...)
}

// chain applies F steps times starting from position start (FIPS 205
// algorithm 5). out and x may alias.
func (p *params) chain(out, x []byte, start, steps uint32, pkSeed []byte, adrs address) {
	copy(out[:p.n], x)
	for j := start; j < start+steps; j++ {
		adrs.setHash(j)
		p.hashN(out, pkSeed, &adrs, out[:p.n])
	}
}

// wotsPKGen computes the compressed WOTS+ public key (FIPS 205
// algorithm 6). adrs must carry type WOTS_HASH and the key pair address.
func (p *params) wotsPKGen(out, skSeed, pkSeed []byte, adrs address) {
	skAdrs := adrs
	skAdrs.setType(addrWOTSPRF)
	skAdrs.setKeyPair(adrs.keyPair())

	tmp := make([]byte, p.wotsLen()*p.n)
	sk := make([]byte, p.n)
	for i := 0; i < p.wotsLen(); i++ {
		skAdrs.setChain(uint32(i))
		p.prf(sk, pkSeed, skSeed, &skAdrs)
		adrs.setChain(uint32(i))
		p.chain(tmp[i*p.n:(i+1)*p.n], sk, 0, wotsW-1, pkSeed, adrs)
	}

	pkAdrs := adrs
	pkAdrs.setType(addrWOTSPK)
	pkAdrs.setKeyPair(adrs.keyPair())
	p.hashN(out, pkSeed, &pkAdrs, tmp)
}

// wotsSign writes the len*n signature over an n-byte message (FIPS 205
// algorithm 7).
func (p *params) wotsSign(sig, msg, skSeed, pkSeed []byte, adrs address) {
	lengths := p.chainLengths(msg)

	skAdrs := adrs
	skAdrs.setType(addrWOTSPRF)
	skAdrs.setKeyPair(adrs.keyPair())

	sk := make([]byte, p.n)
	for i, l := range lengths {
		skAdrs.setChain(uint32(i))
		p.prf(sk, pkSeed, skSeed, &skAdrs)
		adrs.setChain(uint32(i))
		p.chain(sig[i*p.n:(i+1)*p.n], sk, 0, l, pkSeed, adrs)
	}
}

// wotsPKFromSig recomputes the compressed public key from a signature
// (FIPS 205 algorithm 8).
func (p *params) wotsPKFromSig(out, sig, msg, pkSeed []byte, adrs address) {
	lengths := p.chainLengths(msg)

	tmp := make([]byte, p.wotsLen()*p.n)
	for i, l := range lengths {
		adrs.setChain(uint32(i))
		p.chain(tmp[i*p.n:(i+1)*p.n], sig[i*p.n:(i+1)*p.n], l, wotsW-1-l, pkSeed, adrs)
	}

	pkAdrs := adrs
	pkAdrs.setType(addrWOTSPK)
	pkAdrs.setKeyPair(adrs.keyPair())
	p.hashN(out, pkSeed, &pkAdrs, tmp)
}
