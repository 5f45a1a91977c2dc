package schema

import (
	"fmt"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
)

// BitVector describes a fixed-length bitfield, BitVector[N]. N must be
// positive (spec.md §6.3).
type BitVector struct {
	fixedSize
	bits uint64
}

// NewBitVector builds a bitvector descriptor of the given bit length.
func NewBitVector(bits uint64) (*BitVector, error) {
	if bits == 0 {
		return nil, fmt.Errorf("sszview/schema: bitvector length must be positive")
	}
	return &BitVector{fixedSize: fixedSize{int((bits + 7) / 8)}, bits: bits}, nil
}

func (b *BitVector) Kind() ssz.Kind   { return ssz.KindBitVector }
func (b *BitVector) String() string   { return fmt.Sprintf("BitVector[%d]", b.bits) }
func (b *BitVector) Bits() uint64     { return b.bits }
func (b *BitVector) ChunkLimit() uint64 {
	return merkle.BitfieldChunkLimit(b.bits)
}

func (b *BitVector) DefaultNode() merkle.Node {
	data := make([]byte, b.length)
	return merkle.BuildTree(merkle.PackBytes(data), b.ChunkLimit())
}
