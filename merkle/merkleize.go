package merkle

import (
	"github.com/gfx-labs/sszview/merkle/bufpool"
	"github.com/prysmaticlabs/gohashtree"
)

// Merkleize pads chunks with zero chunks up to NextPowerOfTwo(limit)
// leaves and pairwise-hashes them down to a single root, exactly as
// spec.md §4.1 defines it. limit == 0 always yields ZeroHash[0].
//
// Hashing is batched through gohashtree, the teacher's accelerated
// pairwise hasher (see merkle_root.go's ComputeMerkleRootRange), with
// scratch layers borrowed from bufpool instead of allocated per call.
func Merkleize(chunks []Chunk, limit uint64) Chunk {
	if limit == 0 {
		return ZeroHash[0]
	}
	leafCount := NextPowerOfTwo(limit)
	depth := Depth(leafCount)
	if len(chunks) == 0 {
		return ZeroHash[depth]
	}

	totalBytes := int(leafCount) * 32
	buf := bufpool.Get(totalBytes)
	defer bufpool.Put(buf)

	layer := buf.B
	for i, c := range chunks {
		copy(layer[i*32:(i+1)*32], c[:])
	}
	// Remaining leaf slots are already zero: bufpool hands out either a
	// freshly allocated slice or one that was zeroed on Put.

	for d := uint8(0); d < depth; d++ {
		outLen := len(layer) / 2
		if err := gohashtree.HashByteSlice(layer[:outLen], layer); err != nil {
			panic(err)
		}
		layer = layer[:outLen]
	}

	var out Chunk
	copy(out[:], layer[:32])
	return out
}

// ChunkCountForPacked returns the number of 32-byte chunks needed to
// pack count elements of byteSize bytes each, per spec.md §4.3's basic
// vector/list packing rule.
func ChunkCountForPacked(count, byteSize int) uint64 {
	totalBytes := count * byteSize
	return uint64((totalBytes + 31) / 32)
}

// BitfieldChunkLimit returns the chunk limit for a bitvector/bitlist of
// the given bit capacity: ceil(bits/256).
func BitfieldChunkLimit(bits uint64) uint64 {
	return (bits + 255) / 256
}
