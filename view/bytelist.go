package view

import (
	"encoding/binary"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
)

// ByteListView is the view over a variable-length byte string bounded
// by a limit (schema.ByteList). Its backing is Pair(contentTree,
// lengthLeaf) with the length leaf holding the current byte count.
type ByteListView struct {
	typ *schema.ByteList
	base
}

func newByteListView(typ *schema.ByteList, backing merkle.Node, hook Hook) *ByteListView {
	return &ByteListView{typ: typ, base: base{backing: backing, hook: hook}}
}

func (v *ByteListView) Type() schema.Descriptor { return v.typ }

// Len returns the byte list's current length.
func (v *ByteListView) Len() (int, error) {
	n, err := merkle.Getter(v.base.backing, lengthGIndex)
	if err != nil {
		return 0, err
	}
	root := n.Root()
	return int(binary.LittleEndian.Uint64(root[:8])), nil
}

// Bytes materializes the list's current value.
func (v *ByteListView) Bytes() ([]byte, error) {
	n, err := v.Len()
	if err != nil {
		return nil, err
	}
	content, err := merkle.Getter(v.base.backing, contentGIndex)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, n)
	for c := range merkle.LeafIter(content) {
		out = append(out, c[:]...)
	}
	return out[:n], nil
}

// SetBytes replaces the list's value. len(data) must not exceed the
// declared limit.
func (v *ByteListView) SetBytes(data []byte) error {
	if uint64(len(data)) > v.typ.Limit() {
		return ssz.NewListOverflowError(int(v.typ.Limit()))
	}
	content := merkle.BuildTree(merkle.PackBytes(data), v.typ.ChunkLimit())
	newBacking := merkle.LengthMixedPair(content, uint64(len(data)))
	v.base.rebind(newBacking)
	return nil
}
