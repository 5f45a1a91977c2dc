package merkle

// BuildTree builds the actual Node structure (not just the root hash)
// for a composite's chunk layer: leaves padded with zero chunks up to
// NextPowerOfTwo(limit), paired bottom-up. Its Root() always equals
// Merkleize applied to the same leaves' roots and limit — BuildTree
// just keeps the intermediate Pair nodes around so fields/elements
// stay individually addressable by generalized index, which a flat
// root computation throws away.
func BuildTree(leaves []Node, limit uint64) Node {
	if limit == 0 {
		return NewLeaf(ZeroHash[0])
	}
	leafCount := NextPowerOfTwo(limit)
	depth := Depth(leafCount)

	layer := make([]Node, leafCount)
	copy(layer, leaves)
	for i := len(leaves); i < int(leafCount); i++ {
		layer[i] = NewLeaf(ZeroHash[0])
	}

	for d := uint8(0); d < depth; d++ {
		next := make([]Node, len(layer)/2)
		for i := range next {
			next[i] = NewPair(layer[2*i], layer[2*i+1])
		}
		layer = next
	}
	return layer[0]
}

// PackBytes slices data into 32-byte leaf chunks, zero-padding the
// final chunk, without introducing any outer merkleization limit. It
// is the chunk layer every packed-basic vector/list, bitvector/bitlist
// content, and byte-vector/byte-list builds on top of.
func PackBytes(data []byte) []Node {
	if len(data) == 0 {
		return nil
	}
	n := (len(data) + 31) / 32
	leaves := make([]Node, n)
	for i := 0; i < n; i++ {
		var c Chunk
		start := i * 32
		end := start + 32
		if end > len(data) {
			end = len(data)
		}
		copy(c[:], data[start:end])
		leaves[i] = NewLeaf(c)
	}
	return leaves
}

// LengthMixedPair builds the Pair(contentTree, lengthLeaf) layout
// spec.md §4.3 defines for List/BitList/ByteList backings: the root of
// the resulting node equals MixInLength(contentTree.Root(), length) by
// construction.
func LengthMixedPair(contentTree Node, length uint64) Node {
	return NewPair(contentTree, NewLeaf(Uint64Chunk(length)))
}

// SelectorMixedPair builds the Pair(valueBacking, selectorLeaf) layout
// spec.md §4.4 defines for union backings.
func SelectorMixedPair(valueBacking Node, selector uint64) Node {
	return NewPair(valueBacking, NewLeaf(Uint64Chunk(selector)))
}
