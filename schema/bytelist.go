package schema

import (
	"fmt"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
)

// ByteList describes a variable-length byte string bounded by limit
// bytes, ByteList[L] — spec.md's shorthand for List[uint8, L].
type ByteList struct {
	limit uint64
}

// NewByteList builds a byte-list descriptor of the given byte limit.
func NewByteList(limit uint64) *ByteList {
	return &ByteList{limit: limit}
}

func (b *ByteList) Kind() ssz.Kind { return ssz.KindByteList }
func (b *ByteList) String() string { return fmt.Sprintf("ByteList[%d]", b.limit) }
func (b *ByteList) Limit() uint64  { return b.limit }

func (b *ByteList) IsVariableSize() bool { return true }
func (b *ByteList) FixedByteLength() int { return 0 }
func (b *ByteList) MinByteLength() int   { return 0 }
func (b *ByteList) MaxByteLength() int   { return int(b.limit) }

func (b *ByteList) ChunkLimit() uint64 {
	return merkle.ChunkCountForPacked(int(b.limit), 1)
}

func (b *ByteList) DefaultNode() merkle.Node {
	content := merkle.BuildTree(nil, b.ChunkLimit())
	return merkle.LengthMixedPair(content, 0)
}
