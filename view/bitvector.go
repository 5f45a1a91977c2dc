package view

import (
	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
)

// BitVectorView is the view over a fixed-length bitfield
// (schema.BitVector). Individual bits are addressed bit-within-byte,
// byte-within-chunk, chunk-by-generalized-index, mirroring how a
// packed basic Vector addresses elements.
type BitVectorView struct {
	typ *schema.BitVector
	base
}

func newBitVectorView(typ *schema.BitVector, backing merkle.Node, hook Hook) *BitVectorView {
	return &BitVectorView{typ: typ, base: base{backing: backing, hook: hook}}
}

func (v *BitVectorView) Type() schema.Descriptor { return v.typ }

// Len is the bitvector's fixed bit length.
func (v *BitVectorView) Len() int { return int(v.typ.Bits()) }

// Bit returns the value of bit i.
func (v *BitVectorView) Bit(i int) (bool, error) {
	if i < 0 || uint64(i) >= v.typ.Bits() {
		return false, ssz.NewIndexOutOfRangeError(i, int(v.typ.Bits()))
	}
	chunkIdx, byteOff, bitOff := bitPosition(i)
	g := leafGIndex(v.typ.ChunkLimit(), chunkIdx)
	chunk, err := merkle.Getter(v.base.backing, g)
	if err != nil {
		return false, err
	}
	root := chunk.Root()
	return (root[byteOff]>>bitOff)&1 == 1, nil
}

// SetBit sets the value of bit i.
func (v *BitVectorView) SetBit(i int, val bool) error {
	if i < 0 || uint64(i) >= v.typ.Bits() {
		return ssz.NewIndexOutOfRangeError(i, int(v.typ.Bits()))
	}
	chunkIdx, byteOff, bitOff := bitPosition(i)
	g := leafGIndex(v.typ.ChunkLimit(), chunkIdx)
	chunk, err := merkle.Getter(v.base.backing, g)
	if err != nil {
		return err
	}
	c := chunk.Root()
	if val {
		c[byteOff] |= 1 << bitOff
	} else {
		c[byteOff] &^= 1 << bitOff
	}
	newBacking, err := merkle.Setter(v.base.backing, g, merkle.NewLeaf(c))
	if err != nil {
		return err
	}
	v.base.rebind(newBacking)
	return nil
}

// Bits materializes every bit into a []bool of length Len().
func (v *BitVectorView) Bits() ([]bool, error) {
	out := make([]bool, v.Len())
	for i := range out {
		b, err := v.Bit(i)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// bitPosition decomposes a bit index into its chunk index, the byte
// offset within that chunk, and the bit offset within that byte
// (LSB-first, matching spec.md's bit-packing convention).
func bitPosition(i int) (chunkIdx, byteOff, bitOff int) {
	byteIdx := i / 8
	return byteIdx / 32, byteIdx % 32, i % 8
}
