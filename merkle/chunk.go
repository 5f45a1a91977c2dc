// Package merkle implements the immutable binary Merkle tree that backs
// every typed view: 32-byte chunks, the Leaf/Pair/Virtual/RootOnly node
// variants, generalized-index addressed get/set, and the merkleization
// primitives (padding, length/selector mixing) that the SSZ type layer
// builds on.
package merkle

import (
	sha256simd "github.com/minio/sha256-simd"
)

// Chunk is the universal 32-byte Merkle leaf payload.
type Chunk [32]byte

// ZeroChunk is the all-zero leaf.
var ZeroChunk Chunk

// maxZeroHashDepth matches the teacher's OptimalMaxTreeCacheDepth
// rationale: 64 covers every depth a uint64-addressed generalized index
// can reach.
const maxZeroHashDepth = 64

// ZeroHash is the precomputed root of a perfect binary tree of 2^d zero
// chunks, indexed by depth. ZeroHash[0] is the zero chunk itself.
var ZeroHash [maxZeroHashDepth + 1]Chunk

func init() {
	for d := 1; d <= maxZeroHashDepth; d++ {
		ZeroHash[d] = HashPair(ZeroHash[d-1], ZeroHash[d-1])
	}
}

// HashPair computes H(left || right) for a single Pair node. It uses
// sha256-simd rather than crypto/sha256, the accelerated drop-in the
// rest of the domain's node software reaches for.
func HashPair(left, right Chunk) (out Chunk) {
	h := sha256simd.New()
	h.Write(left[:])
	h.Write(right[:])
	h.Sum(out[:0])
	return out
}

// MixInLength returns H(root || u256_le(length)).
func MixInLength(root Chunk, length uint64) Chunk {
	return HashPair(root, Uint64Chunk(length))
}

// MixInSelector returns H(root || u256_le(selector)).
func MixInSelector(root Chunk, selector uint64) Chunk {
	return HashPair(root, Uint64Chunk(selector))
}

// Uint64Chunk packs a uint64 little-endian into the low 8 bytes of a
// chunk, zero-padded above it — the chunk form of u256_le(v) for any v
// that fits in 64 bits (lengths and selectors always do).
func Uint64Chunk(v uint64) (c Chunk) {
	for i := 0; i < 8; i++ {
		c[i] = byte(v >> (8 * i))
	}
	return c
}
