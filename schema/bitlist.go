package schema

import (
	"fmt"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
)

// BitList describes a variable-length bitfield bounded by limit bits,
// BitList[L]. limit may be zero (an always-empty bitlist).
type BitList struct {
	limit uint64
}

// NewBitList builds a bitlist descriptor of the given bit limit.
func NewBitList(limit uint64) *BitList {
	return &BitList{limit: limit}
}

func (b *BitList) Kind() ssz.Kind   { return ssz.KindBitList }
func (b *BitList) String() string   { return fmt.Sprintf("BitList[%d]", b.limit) }
func (b *BitList) Limit() uint64    { return b.limit }

func (b *BitList) IsVariableSize() bool { return true }
func (b *BitList) FixedByteLength() int { return 0 }

// MinByteLength is 1: even an empty bitlist carries the delimiter byte
// (spec.md §8's 0x01 example).
func (b *BitList) MinByteLength() int { return 1 }

func (b *BitList) MaxByteLength() int {
	return int(b.limit/8) + 1
}

func (b *BitList) ChunkLimit() uint64 {
	return merkle.BitfieldChunkLimit(b.limit)
}

func (b *BitList) DefaultNode() merkle.Node {
	content := merkle.BuildTree(nil, b.ChunkLimit())
	return merkle.LengthMixedPair(content, 0)
}
