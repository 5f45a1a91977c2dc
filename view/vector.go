package view

import (
	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
)

// VectorView is the view over a fixed-length homogeneous sequence
// (schema.Vector). Basic elements are packed several-per-chunk; Get
// returns a transient BasicView for them instead of an independently
// addressable child.
type VectorView struct {
	typ *schema.Vector
	base
}

func newVectorView(typ *schema.Vector, backing merkle.Node, hook Hook) *VectorView {
	return &VectorView{typ: typ, base: base{backing: backing, hook: hook}}
}

func (v *VectorView) Type() schema.Descriptor { return v.typ }

// Len is the vector's fixed length.
func (v *VectorView) Len() int { return int(v.typ.Length()) }

// Get returns the view for element i.
func (v *VectorView) Get(i int) (View, error) {
	if i < 0 || uint64(i) >= v.typ.Length() {
		return nil, ssz.NewIndexOutOfRangeError(i, int(v.typ.Length()))
	}
	if v.typ.IsPacked() {
		basic := v.typ.Elem().(*schema.Basic)
		return newPackedElementView(basic, v.packedReader(i, basic), v.packedWriter(i, basic)), nil
	}
	g := leafGIndex(v.typ.ChunkLimit(), i)
	child, err := merkle.Getter(v.backing, g)
	if err != nil {
		return nil, err
	}
	return New(v.typ.Elem(), child, childHook(&v.base, g)), nil
}

func (v *VectorView) elemsPerChunk(byteSize int) int { return 32 / byteSize }

func (v *VectorView) packedReader(i int, basic *schema.Basic) func() []byte {
	byteSize := basic.ByteSize()
	perChunk := v.elemsPerChunk(byteSize)
	chunkIdx := i / perChunk
	offset := (i % perChunk) * byteSize
	return func() []byte {
		g := leafGIndex(v.typ.ChunkLimit(), chunkIdx)
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

func (v *VectorView) packedWriter(i int, basic *schema.Basic) func([]byte) error {
	byteSize := basic.ByteSize()
	perChunk := v.elemsPerChunk(byteSize)
	chunkIdx := i / perChunk
	offset := (i % perChunk) * byteSize
	return func(raw []byte) error {
		g := leafGIndex(v.typ.ChunkLimit(), chunkIdx)
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
