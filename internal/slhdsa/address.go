package slhdsa

import "encoding/binary"

// address is the 32-byte hash address of FIPS 205 section 4.2. Layout:
// layer (4) || tree (12) || type (4) || type-specific (12).
type address [32]byte

// Address types (FIPS 205 table 1).
const (
	addrWOTSHash  = 0
	addrWOTSPK    = 1
	addrTree      = 2
	addrFORSTree  = 3
	addrFORSRoots = 4
	addrWOTSPRF   = 5
	addrFORSPRF   = 6
)

func (a *address) setLayer(l uint32) {
	binary.BigEndian.PutUint32(a[0:4], l)
}

func (a *address) setTree(t uint64) {
	clear(a[4:8])
	binary.BigEndian.PutUint64(a[8:16], t)
}

// setType sets the address type and zeroes the type-specific words, as
// every ADRS.setTypeAndClear call in FIPS 205 does.
func (a *address) setType(t uint32) {
	binary.BigEndian.PutUint32(a[16:20], t)
	clear(a[20:32])
}

func (a *address) setKeyPair(i uint32) {
	binary.BigEndian.PutUint32(a[20:24], i)
}

func (a *address) keyPair() uint32 {
	return binary.BigEndian.Uint32(a[20:24])
}

func (a *address) setChain(i uint32) {
	binary.BigEndian.PutUint32(a[24:28], i)
}

// setTreeHeight shares the chain-address word.
func (a *address) setTreeHeight(i uint32) {
	binary.BigEndian.PutUint32(a[24:28], i)
}

func (a *address) setHash(i uint32) {
	binary.BigEndian.PutUint32(a[28:32], i)
}

// setTreeIndex shares the hash-address word.
func (a *address) setTreeIndex(i uint32) {
	binary.BigEndian.PutUint32(a[28:32], i)
}

func (a *address) treeIndex() uint32 {
	return binary.BigEndian.Uint32(a[28:32])
}
