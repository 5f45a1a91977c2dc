package view

import (
	"encoding/binary"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
)

// contentGIndex is the generalized index of the content subtree's root
// within a List/BitList/ByteList's own Pair(content, length) backing.
const contentGIndex = 2

// lengthGIndex is the generalized index of the length leaf within the
// same backing.
const lengthGIndex = 3

// ListView is the view over a variable-length homogeneous sequence
// bounded by a limit (schema.List). Its backing is always
// Pair(contentTree, lengthLeaf); contentTree keeps its full
// ChunkLimit() shape regardless of the list's current length, so
// appending never reshapes the tree — it only writes a new leaf and
// bumps the length leaf.
type ListView struct {
	typ *schema.List
	base
}

func newListView(typ *schema.List, backing merkle.Node, hook Hook) *ListView {
	return &ListView{typ: typ, base: base{backing: backing, hook: hook}}
}

func (v *ListView) Type() schema.Descriptor { return v.typ }

// Len returns the list's current element count, read from the length
// leaf.
func (v *ListView) Len() (int, error) {
	n, err := v.lengthNode()
	if err != nil {
		return 0, err
	}
	root := n.Root()
	return int(binary.LittleEndian.Uint64(root[:8])), nil
}

func (v *ListView) lengthNode() (merkle.Node, error) {
	return merkle.Getter(v.base.backing, lengthGIndex)
}

func (v *ListView) setLength(n int) error {
	newBacking, err := merkle.Setter(v.base.backing, lengthGIndex, merkle.NewLeaf(merkle.Uint64Chunk(uint64(n))))
	if err != nil {
		return err
	}
	v.base.rebind(newBacking)
	return nil
}

// Get returns the view for element i. i must be < current length.
func (v *ListView) Get(i int) (View, error) {
	n, err := v.Len()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= n {
		return nil, ssz.NewIndexOutOfRangeError(i, n)
	}
	if v.typ.IsPacked() {
		basic := v.typ.Elem().(*schema.Basic)
		return newPackedElementView(basic, v.packedReader(i, basic), v.packedWriter(i, basic)), nil
	}
	g := gindexConcat(contentGIndex, leafGIndex(v.typ.ChunkLimit(), i))
	child, err := merkle.Getter(v.base.backing, g)
	if err != nil {
		return nil, err
	}
	return New(v.typ.Elem(), child, childHook(&v.base, g)), nil
}

// Append grows the list by one element, returning a view over the new
// (zero-valued) slot for the caller to populate. It fails with
// ListOverflowError if the list is already at its limit.
func (v *ListView) Append() (View, error) {
	n, err := v.Len()
	if err != nil {
		return nil, err
	}
	if uint64(n) >= v.typ.Limit() {
		return nil, ssz.NewListOverflowError(int(v.typ.Limit()))
	}
	if !v.typ.IsPacked() {
		g := gindexConcat(contentGIndex, leafGIndex(v.typ.ChunkLimit(), n))
		newBacking, err := merkle.Setter(v.base.backing, g, v.typ.Elem().DefaultNode())
		if err != nil {
			return nil, err
		}
		v.base.rebind(newBacking)
	}
	if err := v.setLength(n + 1); err != nil {
		return nil, err
	}
	return v.Get(n)
}

// Pop removes the list's last element, zeroing its backing slot.
// Popping an empty list reports IndexOutOfRangeError.
func (v *ListView) Pop() error {
	n, err := v.Len()
	if err != nil {
		return err
	}
	if n == 0 {
		return ssz.NewIndexOutOfRangeError(-1, 0)
	}
	last := n - 1
	if v.typ.IsPacked() {
		basic := v.typ.Elem().(*schema.Basic)
		if err := v.packedWriter(last, basic)(make([]byte, basic.ByteSize())); err != nil {
			return err
		}
	} else {
		g := gindexConcat(contentGIndex, leafGIndex(v.typ.ChunkLimit(), last))
		// Pad with the zero chunk, not the element's default backing,
		// so a popped slot hashes identically to the same slot as built
		// by merkle.PackBytes/decodeList's padding when the list is
		// decoded directly at the shorter length.
		newBacking, err := merkle.Setter(v.base.backing, g, merkle.NewLeaf(merkle.ZeroChunk))
		if err != nil {
			return err
		}
		v.base.rebind(newBacking)
	}
	return v.setLength(last)
}

func (v *ListView) elemsPerChunk(byteSize int) int { return 32 / byteSize }

func (v *ListView) packedReader(i int, basic *schema.Basic) func() []byte {
	byteSize := basic.ByteSize()
	perChunk := v.elemsPerChunk(byteSize)
	chunkIdx := i / perChunk
	offset := (i % perChunk) * byteSize
	return func() []byte {
		g := gindexConcat(contentGIndex, leafGIndex(v.typ.ChunkLimit(), chunkIdx))
		chunk, err := merkle.Getter(v.base.backing, g)
		if err != nil {
			panic(err)
		}
		root := chunk.Root()
		out := make([]byte, byteSize)
		copy(out, root[offset:offset+byteSize])
		return out
	}
}

func (v *ListView) packedWriter(i int, basic *schema.Basic) func([]byte) error {
	byteSize := basic.ByteSize()
	perChunk := v.elemsPerChunk(byteSize)
	chunkIdx := i / perChunk
	offset := (i % perChunk) * byteSize
	return func(raw []byte) error {
		g := gindexConcat(contentGIndex, leafGIndex(v.typ.ChunkLimit(), chunkIdx))
		chunk, err := merkle.Getter(v.base.backing, g)
		if err != nil {
			return err
		}
		c := chunk.Root()
		copy(c[offset:offset+byteSize], raw)
		newBacking, err := merkle.Setter(v.base.backing, g, merkle.NewLeaf(c))
		if err != nil {
			return err
		}
		v.base.rebind(newBacking)
		return nil
	}
}
