package schema

import (
	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
)

// Basic describes a boolean or fixed-width unsigned integer: the
// leaves of every composite type. Its root, per spec.md §3, is the
// little-endian value zero-padded to 32 bytes — which is exactly a
// Leaf node's chunk when the value occupies a whole chunk by itself.
type Basic struct {
	fixedSize
	kind ssz.Kind
}

func (b *Basic) Kind() ssz.Kind   { return b.kind }
func (b *Basic) String() string   { return string(b.kind) }
func (b *Basic) ChunkLimit() uint64 { return 0 }

func (b *Basic) DefaultNode() merkle.Node {
	return merkle.NewLeaf(merkle.ZeroChunk)
}

// ByteSize is the basic type's fixed wire width, the same number
// FixedByteLength reports, exposed under the name most call sites for
// packed chunk layout actually want.
func (b *Basic) ByteSize() int { return b.length }

var (
	Bool    = &Basic{fixedSize: fixedSize{1}, kind: ssz.KindBool}
	Uint8   = &Basic{fixedSize: fixedSize{1}, kind: ssz.KindUint8}
	Uint16  = &Basic{fixedSize: fixedSize{2}, kind: ssz.KindUint16}
	Uint32  = &Basic{fixedSize: fixedSize{4}, kind: ssz.KindUint32}
	Uint64  = &Basic{fixedSize: fixedSize{8}, kind: ssz.KindUint64}
	Uint128 = &Basic{fixedSize: fixedSize{16}, kind: ssz.KindUint128}
	Uint256 = &Basic{fixedSize: fixedSize{32}, kind: ssz.KindUint256}
)

// IsBasic reports whether d is one of the singleton basic descriptors
// above, the question every packed-element vector/list needs answered
// before it decides to pack elements into shared chunks instead of
// merkleizing one chunk per element.
func IsBasic(d Descriptor) bool {
	_, ok := d.(*Basic)
	return ok
}
