package view

import (
	"encoding/binary"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
)

// BitListView is the view over a variable-length bitfield bounded by a
// limit (schema.BitList). Its backing is Pair(contentTree, lengthLeaf)
// exactly like ListView, with the length leaf holding the current bit
// count rather than an element count.
type BitListView struct {
	typ *schema.BitList
	base
}

func newBitListView(typ *schema.BitList, backing merkle.Node, hook Hook) *BitListView {
	return &BitListView{typ: typ, base: base{backing: backing, hook: hook}}
}

func (v *BitListView) Type() schema.Descriptor { return v.typ }

// Len returns the bitlist's current bit count.
func (v *BitListView) Len() (int, error) {
	n, err := merkle.Getter(v.base.backing, lengthGIndex)
	if err != nil {
		return 0, err
	}
	root := n.Root()
	return int(binary.LittleEndian.Uint64(root[:8])), nil
}

func (v *BitListView) setLength(n int) error {
	newBacking, err := merkle.Setter(v.base.backing, lengthGIndex, merkle.NewLeaf(merkle.Uint64Chunk(uint64(n))))
	if err != nil {
		return err
	}
	v.base.rebind(newBacking)
	return nil
}

// Bit returns the value of bit i. i must be < current length.
func (v *BitListView) Bit(i int) (bool, error) {
	n, err := v.Len()
	if err != nil {
		return false, err
	}
	if i < 0 || i >= n {
		return false, ssz.NewIndexOutOfRangeError(i, n)
	}
	chunk, err := v.chunkFor(i)
	if err != nil {
		return false, err
	}
	_, byteOff, bitOff := bitPosition(i)
	root := chunk.Root()
	return (root[byteOff]>>bitOff)&1 == 1, nil
}

// SetBit sets the value of bit i. i must be < current length.
func (v *BitListView) SetBit(i int, val bool) error {
	n, err := v.Len()
	if err != nil {
		return err
	}
	if i < 0 || i >= n {
		return ssz.NewIndexOutOfRangeError(i, n)
	}
	chunk, err := v.chunkFor(i)
	if err != nil {
		return err
	}
	_, byteOff, bitOff := bitPosition(i)
	c := chunk.Root()
	if val {
		c[byteOff] |= 1 << bitOff
	} else {
		c[byteOff] &^= 1 << bitOff
	}
	g := v.chunkGIndex(i)
	newBacking, err := merkle.Setter(v.base.backing, g, merkle.NewLeaf(c))
	if err != nil {
		return err
	}
	v.base.rebind(newBacking)
	return nil
}

// Append grows the bitlist by one bit, set to val. It fails with
// ListOverflowError at the declared limit.
func (v *BitListView) Append(val bool) error {
	n, err := v.Len()
	if err != nil {
		return err
	}
	if uint64(n) >= v.typ.Limit() {
		return ssz.NewListOverflowError(int(v.typ.Limit()))
	}
	if err := v.setLength(n + 1); err != nil {
		return err
	}
	return v.SetBit(n, val)
}

// Pop removes the bitlist's last bit, zeroing its backing slot.
// Popping an empty bitlist reports IndexOutOfRangeError.
func (v *BitListView) Pop() error {
	n, err := v.Len()
	if err != nil {
		return err
	}
	if n == 0 {
		return ssz.NewIndexOutOfRangeError(-1, 0)
	}
	last := n - 1
	if err := v.clearBit(last); err != nil {
		return err
	}
	return v.setLength(last)
}

func (v *BitListView) clearBit(i int) error {
	chunk, err := v.chunkFor(i)
	if err != nil {
		return err
	}
	_, byteOff, bitOff := bitPosition(i)
	c := chunk.Root()
	c[byteOff] &^= 1 << bitOff
	newBacking, err := merkle.Setter(v.base.backing, v.chunkGIndex(i), merkle.NewLeaf(c))
	if err != nil {
		return err
	}
	v.base.rebind(newBacking)
	return nil
}

func (v *BitListView) chunkGIndex(i int) uint64 {
	chunkIdx, _, _ := bitPosition(i)
	return gindexConcat(contentGIndex, leafGIndex(v.typ.ChunkLimit(), chunkIdx))
}

func (v *BitListView) chunkFor(i int) (merkle.Node, error) {
	return merkle.Getter(v.base.backing, v.chunkGIndex(i))
}
