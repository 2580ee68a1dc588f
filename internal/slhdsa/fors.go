package slhdsa

// FORS few-time signatures (FIPS 205 section 8): k trees of height a over
// the FORS message digest, rooted under the first hypertree leaf.

// forsSKGen derives the FORS secret value for absolute leaf index idx
// (FIPS 205 algorithm 14).
func (p *params) forsSKGen(out, skSeed, pkSeed []byte, adrs address, idx uint32) {
	skAdrs := adrs
	skAdrs.setType(addrFORSPRF)
	skAdrs.setKeyPair(adrs.keyPair())
	skAdrs.setTreeIndex(idx)
	p.prf(out, pkSeed, skSeed, &skAdrs)
}

// forsNode computes the root of the subtree of height z at absolute index
// i within the FORS forest (FIPS 205 algorithm 15).
func (p *params) forsNode(out, skSeed, pkSeed []byte, i uint32, z int, adrs address) {
	if z == 0 {
		sk := make([]byte, p.n)
		p.forsSKGen(sk, skSeed, pkSeed, adrs, i)
		adrs.setTreeHeight(0)
		adrs.setTreeIndex(i)
		p.hashN(out, pkSeed, &adrs, sk)
		return
	}
	l := make([]byte, p.n)
	r := make([]byte, p.n)
	p.forsNode(l, skSeed, pkSeed, 2*i, z-1, adrs)
	p.forsNode(r, skSeed, pkSeed, 2*i+1, z-1, adrs)
	adrs.setTreeHeight(uint32(z))
	adrs.setTreeIndex(i)
	p.hashN(out, pkSeed, &adrs, l, r)
}

// forsSign writes k (secret value || authentication path) blocks for the
// digest md (FIPS 205 algorithm 16).
func (p *params) forsSign(sig, md, skSeed, pkSeed []byte, adrs address) {
	indices := base2b(md, p.a, p.k)
	step := (p.a + 1) * p.n
	for i := 0; i < p.k; i++ {
		idx := indices[i]
		block := sig[i*step : (i+1)*step]
		p.forsSKGen(block[:p.n], skSeed, pkSeed, adrs, uint32(i)<<uint(p.a)+idx)
		for j := 0; j < p.a; j++ {
			sibling := idx>>uint(j) ^ 1
			p.forsNode(block[(j+1)*p.n:(j+2)*p.n], skSeed, pkSeed,
				uint32(i)<<uint(p.a-j)+sibling, j, adrs)
		}
	}
}

// forsPKFromSig recomputes the k tree roots from a signature and
// compresses them into the FORS public key (FIPS 205 algorithm 17).
func (p *params) forsPKFromSig(out, sig, md, pkSeed []byte, adrs address) {
	indices := base2b(md, p.a, p.k)
	step := (p.a + 1) * p.n
	roots := make([]byte, p.k*p.n)
	node := make([]byte, p.n)

	for i := 0; i < p.k; i++ {
		idx := indices[i]
		block := sig[i*step : (i+1)*step]

		adrs.setTreeHeight(0)
		adrs.setTreeIndex(uint32(i)<<uint(p.a) + idx)
		p.hashN(node, pkSeed, &adrs, block[:p.n])

		for j := 0; j < p.a; j++ {
			adrs.setTreeHeight(uint32(j + 1))
			sibling := block[(j+1)*p.n : (j+2)*p.n]
			if idx>>uint(j)&1 == 0 {
				adrs.setTreeIndex(adrs.treeIndex() / 2)
				p.hashN(node, pkSeed, &adrs, node, sibling)
			} else {
				adrs.setTreeIndex((adrs.treeIndex() - 1) / 2)
				p.hashN(node, pkSeed, &adrs, sibling, node)
			}
		}
		copy(roots[i*p.n:], node)
	}

	pkAdrs := adrs
	pkAdrs.setType(addrFORSRoots)
	pkAdrs.setKeyPair(adrs.keyPair())
	p.hashN(out, pkSeed, &pkAdrs, roots)
}
