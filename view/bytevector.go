package view

import (
	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
)

// ByteVectorView is the view over a fixed-length byte string
// (schema.ByteVector). Unlike a generic packed Vector[uint8, N] it
// exposes whole-value byte-slice accessors instead of per-element
// uint8 views, since that is how every caller actually wants to use a
// byte string.
type ByteVectorView struct {
	typ *schema.ByteVector
	base
}

func newByteVectorView(typ *schema.ByteVector, backing merkle.Node, hook Hook) *ByteVectorView {
	return &ByteVectorView{typ: typ, base: base{backing: backing, hook: hook}}
}

func (v *ByteVectorView) Type() schema.Descriptor { return v.typ }

// Len is the byte vector's fixed length.
func (v *ByteVectorView) Len() int { return v.typ.FixedByteLength() }

// Bytes materializes the vector's current value.
func (v *ByteVectorView) Bytes() []byte {
	n := v.Len()
	out := make([]byte, 0, n)
	for c := range merkle.LeafIter(v.base.backing) {
		out = append(out, c[:]...)
	}
	return out[:n]
}

// SetBytes replaces the vector's value. data must have exactly Len()
// bytes.
func (v *ByteVectorView) SetBytes(data []byte) error {
	if len(data) != v.Len() {
		return ssz.NewLengthMismatchError(v.Len(), len(data))
	}
	newBacking := merkle.BuildTree(merkle.PackBytes(data), v.typ.ChunkLimit())
	v.base.rebind(newBacking)
	return nil
}
