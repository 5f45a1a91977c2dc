package schema

import (
	"fmt"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
)

// Vector describes a fixed-length homogeneous sequence, Vector[T, N]
// in spec.md's notation. Length zero is rejected (spec.md §6.3).
type Vector struct {
	elem   Descriptor
	length uint64
	packed bool // elem is Basic: elements share 32-byte chunks
}

// NewVector builds a vector descriptor. length must be positive.
func NewVector(elem Descriptor, length uint64) (*Vector, error) {
	if length == 0 {
		return nil, fmt.Errorf("sszview/schema: vector length must be positive")
	}
	return &Vector{elem: elem, length: length, packed: IsBasic(elem)}, nil
}

func (v *Vector) Kind() ssz.Kind { return ssz.KindVector }
func (v *Vector) String() string {
	return fmt.Sprintf("Vector[%s, %d]", v.elem.String(), v.length)
}

func (v *Vector) IsVariableSize() bool { return v.elem.IsVariableSize() }

func (v *Vector) FixedByteLength() int {
	if v.elem.IsVariableSize() {
		return 0
	}
	return v.elem.FixedByteLength() * int(v.length)
}

func (v *Vector) MinByteLength() int {
	if !v.elem.IsVariableSize() {
		return v.FixedByteLength()
	}
	return int(v.length) * 4
}

func (v *Vector) MaxByteLength() int {
	if !v.elem.IsVariableSize() {
		return v.FixedByteLength()
	}
	return int(v.length) * (4 + v.elem.MaxByteLength())
}

func (v *Vector) ChunkLimit() uint64 {
	if v.packed {
		return merkle.ChunkCountForPacked(int(v.length), v.elem.(*Basic).ByteSize())
	}
	return v.length
}

func (v *Vector) Elem() Descriptor { return v.elem }
func (v *Vector) Length() uint64   { return v.length }
func (v *Vector) IsPacked() bool   { return v.packed }

func (v *Vector) DefaultNode() merkle.Node {
	if v.packed {
		basic := v.elem.(*Basic)
		data := make([]byte, basic.ByteSize()*int(v.length))
		return merkle.BuildTree(merkle.PackBytes(data), v.ChunkLimit())
	}
	leaves := make([]merkle.Node, v.length)
	def := v.elem.DefaultNode()
	for i := range leaves {
		leaves[i] = def
	}
	return merkle.BuildTree(leaves, v.ChunkLimit())
}
