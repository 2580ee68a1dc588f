// Package slhdsa implements SLH-DSA (Stateless Hash-Based Digital
// Signature Algorithm) as specified in FIPS 205, for the SHAKE parameter
// sets at the 192- and 256-bit security levels.
//
// Each parameter set carries a small (s) and a fast (f) variant trading
// signature size against signing speed:
//   - SLH-DSA-SHAKE-192s / 192f: NIST security category 3
//   - SLH-DSA-SHAKE-256s / 256f: NIST security category 5
//
// The parameter sets satisfy the github.com/cloudflare/circl/sign.Scheme
// interface, so they slot in next to the circl-provided lattice schemes.
// Signing is the deterministic variant of FIPS 205 (opt_rand = PK.seed).
package slhdsa

import (
	"crypto/rand"
	"io"

	"github.com/cloudflare/circl/sign"
)

// params holds one SLH-DSA parameter set (FIPS 205 table 2). The Winternitz
// parameter is fixed at w = 16 (lg_w = 4) for every approved set.
type params struct {
	name string
	n    int // hash output length in bytes
	h    int // total hypertree height
	d    int // hypertree layers
	hp   int // height of each XMSS tree (h / d)
	a    int // FORS tree height
	k    int // FORS tree count
	m    int // message digest length in bytes
}

// Parameter sets. Each value is a complete scheme instance.
var (
	SHAKE192s sign.Scheme = &params{name: "SLH-DSA-SHAKE-192s", n: 24, h: 63, d: 7, hp: 9, a: 14, k: 17, m: 39}
	SHAKE192f sign.Scheme = &params{name: "SLH-DSA-SHAKE-192f", n: 24, h: 66, d: 22, hp: 3, a: 8, k: 33, m: 42}
	SHAKE256s sign.Scheme = &params{name: "SLH-DSA-SHAKE-256s", n: 32, h: 64, d: 8, hp: 8, a: 14, k: 22, m: 47}
	SHAKE256f sign.Scheme = &params{name: "SLH-DSA-SHAKE-256f", n: 32, h: 68, d: 17, hp: 4, a: 9, k: 35, m: 49}
)

// wotsLen is the number of WOTS+ chains: len1 + len2 = 2n + 3 for w = 16.
func (p *params) wotsLen() int { return 2*p.n + 3 }

// forsMsgBytes is the length of the FORS message digest slice.
func (p *params) forsMsgBytes() int { return (p.k*p.a + 7) / 8 }

func (p *params) forsSigSize() int { return p.k * (p.a + 1) * p.n }

func (p *params) xmssSigSize() int { return (p.wotsLen() + p.hp) * p.n }

// Name implements sign.Scheme.
func (p *params) Name() string { return p.name }

// SeedSize implements sign.Scheme. The seed supplies SK.seed, SK.prf and
// PK.seed, n bytes each.
func (p *params) SeedSize() int { return 3 * p.n }

// PublicKeySize implements sign.Scheme: PK.seed || PK.root.
func (p *params) PublicKeySize() int { return 2 * p.n }

// PrivateKeySize implements sign.Scheme: SK.seed || SK.prf || PK.seed ||
// PK.root.
func (p *params) PrivateKeySize() int { return 4 * p.n }

// SignatureSize implements sign.Scheme: randomizer, FORS signature, and
// hypertree signature.
func (p *params) SignatureSize() int {
	return p.n + p.forsSigSize() + (p.h+p.d*p.wotsLen())*p.n
}

// SupportsContext implements sign.Scheme. FIPS 205 pure signing admits a
// context string of up to 255 bytes.
func (p *params) SupportsContext() bool { return true }

// GenerateKey implements sign.Scheme.
func (p *params) GenerateKey() (sign.PublicKey, sign.PrivateKey, error) {
	seed := make([]byte, p.SeedSize())
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, nil, err
	}
	pub, priv := p.DeriveKey(seed)
	return pub, priv, nil
}

// DeriveKey implements sign.Scheme (FIPS 205 algorithm 18). Panics if the
// seed has the wrong length.
func (p *params) DeriveKey(seed []byte) (sign.PublicKey, sign.PrivateKey) {
	if len(seed) != p.SeedSize() {
		panic(sign.ErrSeedSize)
	}
	skSeed := append([]byte(nil), seed[:p.n]...)
	skPrf := append([]byte(nil), seed[p.n:2*p.n]...)
	pkSeed := append([]byte(nil), seed[2*p.n:]...)

	var adrs address
	adrs.setLayer(uint32(p.d - 1))
	root := make([]byte, p.n)
	p.xmssNode(root, skSeed, pkSeed, 0, p.hp, adrs)

	pub := &PublicKey{p: p, seed: pkSeed, root: root}
	return pub, &PrivateKey{p: p, seed: skSeed, prf: skPrf, pk: *pub}
}

// digest computes H_msg and splits it into the FORS message, the hypertree
// tree index, and the leaf index (FIPS 205 algorithm 19, steps 7-10).
func (p *params) digest(r, pkSeed, pkRoot, msg []byte) (md []byte, idxTree uint64, idxLeaf uint32) {
	dg := make([]byte, p.m)
	shake(dg, r, pkSeed, pkRoot, msg)

	mdLen := p.forsMsgBytes()
	treeBits := p.h - p.hp
	treeBytes := (treeBits + 7) / 8
	leafBytes := (p.hp + 7) / 8

	md = dg[:mdLen]
	idxTree = toInt(dg[mdLen : mdLen+treeBytes])
	if treeBits < 64 {
		idxTree &= uint64(1)<<uint(treeBits) - 1
	}
	idxLeaf = uint32(toInt(dg[mdLen+treeBytes:mdLen+treeBytes+leafBytes])) & (1<<uint(p.hp) - 1)
	return md, idxTree, idxLeaf
}

// signInternal is FIPS 205 algorithm 19 with opt_rand = PK.seed, making
// signatures deterministic in (key, message).
func (p *params) signInternal(sk *PrivateKey, msg []byte) []byte {
	sig := make([]byte, p.SignatureSize())

	r := sig[:p.n]
	shake(r, sk.prf, sk.pk.seed, msg)
	md, idxTree, idxLeaf := p.digest(r, sk.pk.seed, sk.pk.root, msg)

	var adrs address
	adrs.setTree(idxTree)
	adrs.setType(addrFORSTree)
	adrs.setKeyPair(idxLeaf)

	forsSig := sig[p.n : p.n+p.forsSigSize()]
	p.forsSign(forsSig, md, sk.seed, sk.pk.seed, adrs)

	pkFors := make([]byte, p.n)
	p.forsPKFromSig(pkFors, forsSig, md, sk.pk.seed, adrs)

	p.htSign(sig[p.n+p.forsSigSize():], pkFors, sk.seed, sk.pk.seed, idxTree, idxLeaf)
	return sig
}

// verifyInternal is FIPS 205 algorithm 20.
func (p *params) verifyInternal(pk *PublicKey, msg, sig []byte) bool {
	if len(sig) != p.SignatureSize() {
		return false
	}
	r := sig[:p.n]
	md, idxTree, idxLeaf := p.digest(r, pk.seed, pk.root, msg)

	var adrs address
	adrs.setTree(idxTree)
	adrs.setType(addrFORSTree)
	adrs.setKeyPair(idxLeaf)

	pkFors := make([]byte, p.n)
	p.forsPKFromSig(pkFors, sig[p.n:p.n+p.forsSigSize()], md, pk.seed, adrs)

	return p.htVerify(pkFors, sig[p.n+p.forsSigSize():], pk.seed, idxTree, idxLeaf, pk.root)
}

// pureMessage prepends the pure-signing domain separator and context
// (FIPS 205 algorithms 22/24): 0x00 || len(ctx) || ctx || M.
func pureMessage(ctx string, msg []byte) []byte {
	m := make([]byte, 0, 2+len(ctx)+len(msg))
	m = append(m, 0, byte(len(ctx)))
	m = append(m, ctx...)
	m = append(m, msg...)
	return m
}

// Sign implements sign.Scheme. Panics on a key of the wrong type or a
// context longer than 255 bytes, per the interface contract.
func (p *params) Sign(sk sign.PrivateKey, message []byte, opts *sign.SignatureOpts) []byte {
	priv, ok := sk.(*PrivateKey)
	if !ok || priv.p != p {
		panic(sign.ErrTypeMismatch)
	}
	var ctx string
	if opts != nil {
		ctx = opts.Context
	}
	if len(ctx) > 255 {
		panic(sign.ErrContextTooLong)
	}
	return p.signInternal(priv, pureMessage(ctx, message))
}

// Verify implements sign.Scheme.
func (p *params) Verify(pk sign.PublicKey, message, signature []byte, opts *sign.SignatureOpts) bool {
	pub, ok := pk.(*PublicKey)
	if !ok || pub.p != p {
		panic(sign.ErrTypeMismatch)
	}
	var ctx string
	if opts != nil {
		ctx = opts.Context
	}
	if len(ctx) > 255 {
		panic(sign.ErrContextTooLong)
	}
	return p.verifyInternal(pub, pureMessage(ctx, message), signature)
}

// UnmarshalBinaryPublicKey implements sign.Scheme.
func (p *params) UnmarshalBinaryPublicKey(data []byte) (sign.PublicKey, error) {
	if len(data) != p.PublicKeySize() {
		return nil, sign.ErrPubKeySize
	}
	return &PublicKey{
		p:    p,
		seed: append([]byte(nil), data[:p.n]...),
		root: append([]byte(nil), data[p.n:]...),
	}, nil
}

// UnmarshalBinaryPrivateKey implements sign.Scheme. The cached PK.root is
// taken from the encoding rather than recomputed.
func (p *params) UnmarshalBinaryPrivateKey(data []byte) (sign.PrivateKey, error) {
	if len(data) != p.PrivateKeySize() {
		return nil, sign.ErrPrivKeySize
	}
	return &PrivateKey{
		p:    p,
		seed: append([]byte(nil), data[:p.n]...),
		prf:  append([]byte(nil), data[p.n:2*p.n]...),
		pk: PublicKey{
			p:    p,
			seed: append([]byte(nil), data[2*p.n:3*p.n]...),
			root: append([]byte(nil), data[3*p.n:]...),
		},
	}, nil
}
