package slhdsa

import "crypto/subtle"

// XMSS Merkle trees and the hypertree built from them (FIPS 205
// sections 6 and 7).

// xmssNode computes the root of the subtree of height z whose leftmost
// leaf is leaf i*2^z (FIPS 205 algorithm 9). The trees are small (at most
// 2^9 leaves), so plain recursion suffices.
func (p *params) xmssNode(out, skSeed, pkSeed []byte, i uint32, z int, adrs address) {
	if z == 0 {
		adrs.setType(addrWOTSHash)
		adrs.setKeyPair(i)
		p.wotsPKGen(out, skSeed, pkSeed, adrs)
		return
	}
	l := make([]byte, p.n)
	r := make([]byte, p.n)
	p.xmssNode(l, skSeed, pkSeed, 2*i, z-1, adrs)
	p.xmssNode(r, skSeed, pkSeed, 2*i+1, z-1, adrs)
	adrs.setType(addrTree)
	adrs.setTreeHeight(uint32(z))
	adrs.setTreeIndex(i)
	p.hashN(out, pkSeed, &adrs, l, r)
}

// xmssSign writes the WOTS+ signature over msg followed by the
// authentication path for leaf idx (FIPS 205 algorithm 10).
func (p *params) xmssSign(sig, msg, skSeed, pkSeed []byte, idx uint32, adrs address) {
	auth := sig[p.wotsLen()*p.n:]
	for j := 0; j < p.hp; j++ {
		sibling := idx>>uint(j) ^ 1
		p.xmssNode(auth[j*p.n:(j+1)*p.n], skSeed, pkSeed, sibling, j, adrs)
	}
	adrs.setType(addrWOTSHash)
	adrs.setKeyPair(idx)
	p.wotsSign(sig[:p.wotsLen()*p.n], msg, skSeed, pkSeed, adrs)
}

// xmssPKFromSig recomputes the tree root from a signature and leaf index
// (FIPS 205 algorithm 11). out and msg may alias.
func (p *params) xmssPKFromSig(out []byte, idx uint32, sig, msg, pkSeed []byte, adrs address) {
	adrs.setType(addrWOTSHash)
	adrs.setKeyPair(idx)
	node := make([]byte, p.n)
	p.wotsPKFromSig(node, sig[:p.wotsLen()*p.n], msg, pkSeed, adrs)

	auth := sig[p.wotsLen()*p.n:]
	adrs.setType(addrTree)
	adrs.setTreeIndex(idx)
	for k := 0; k < p.hp; k++ {
		adrs.setTreeHeight(uint32(k + 1))
		sibling := auth[k*p.n : (k+1)*p.n]
		if idx>>uint(k)&1 == 0 {
			adrs.setTreeIndex(adrs.treeIndex() / 2)
			p.hashN(node, pkSeed, &adrs, node, sibling)
		} else {
			adrs.setTreeIndex((adrs.treeIndex() - 1) / 2)
			p.hashN(node, pkSeed, &adrs, sibling, node)
		}
	}
	copy(out, node)
}

// htSign writes the d-layer hypertree signature over msg (FIPS 205
// algorithm 12).
func (p *params) htSign(sig, msg, skSeed, pkSeed []byte, idxTree uint64, idxLeaf uint32) {
	root := make([]byte, p.n)
	copy(root, msg)

	var adrs address
	for j := 0; j < p.d; j++ {
		adrs.setLayer(uint32(j))
		adrs.setTree(idxTree)
		layerSig := sig[j*p.xmssSigSize() : (j+1)*p.xmssSigSize()]
		p.xmssSign(layerSig, root, skSeed, pkSeed, idxLeaf, adrs)
		if j < p.d-1 {
			p.xmssPKFromSig(root, idxLeaf, layerSig, root, pkSeed, adrs)
			idxLeaf = uint32(idxTree & (uint64(1)<<uint(p.hp) - 1))
			idxTree >>= uint(p.hp)
		}
	}
}

// htVerify chains the layer roots up to the hypertree root and compares it
// to PK.root (FIPS 205 algorithm 13).
func (p *params) htVerify(msg, sig, pkSeed []byte, idxTree uint64, idxLeaf uint32, pkRoot []byte) bool {
	node := make([]byte, p.n)
	copy(node, msg)

	var adrs address
	for j := 0; j < p.d; j++ {
		adrs.setLayer(uint32(j))
		adrs.setTree(idxTree)
		p.xmssPKFromSig(node, idxLeaf, sig[j*p.xmssSigSize():(j+1)*p.xmssSigSize()], node, pkSeed, adrs)
		idxLeaf = uint32(idxTree & (uint64(1)<<uint(p.hp) - 1))
		idxTree >>= uint(p.hp)
	}
	return subtle.ConstantTimeCompare(node, pkRoot) == 1
}
