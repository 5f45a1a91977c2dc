package view

import "github.com/gfx-labs/sszview/merkle"

// gindexConcat composes an outer generalized index (a position within
// a view's own backing) with an inner one (a position within the
// subtree rooted at that outer position), yielding the single
// generalized index that addresses the same node directly from the
// outer backing's root. It is the standard generalized-index
// concatenation identity; gindexConcat(1, inner) == inner, which is
// why container and vector fields/elements (whose own backing root is
// already the chunk tree) use leafGIndex directly, while list/bitlist
// elements (whose backing wraps a content subtree at position 2) pass
// 2 as outer.
func gindexConcat(outer, inner uint64) uint64 {
	d := merkle.GIndexDepth(inner)
	mask := uint64(1)<<d - 1
	return outer<<d | (inner & mask)
}

// leafGIndex returns the generalized index of leaf i (0-based) among a
// perfect binary tree of leafCount = NextPowerOfTwo(limit) leaves.
func leafGIndex(limit uint64, i int) uint64 {
	leafCount := merkle.NextPowerOfTwo(limit)
	return leafCount + uint64(i)
}
