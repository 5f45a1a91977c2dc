package schema

import (
	"fmt"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
)

// List describes a variable-length homogeneous sequence bounded by
// limit, List[T, L] in spec.md's notation. limit == 0 is legal (an
// always-empty list), per spec.md §6.3.
type List struct {
	elem   Descriptor
	limit  uint64
	packed bool
}

// NewList builds a list descriptor. limit is the maximum element
// count; zero is allowed.
func NewList(elem Descriptor, limit uint64) *List {
	return &List{elem: elem, limit: limit, packed: IsBasic(elem)}
}

func (l *List) Kind() ssz.Kind { return ssz.KindList }
func (l *List) String() string {
	return fmt.Sprintf("List[%s, %d]", l.elem.String(), l.limit)
}

func (l *List) IsVariableSize() bool { return true }
func (l *List) FixedByteLength() int { return 0 }
func (l *List) MinByteLength() int   { return 0 }

func (l *List) MaxByteLength() int {
	if !l.elem.IsVariableSize() {
		return int(l.limit) * l.elem.FixedByteLength()
	}
	return int(l.limit) * (4 + l.elem.MaxByteLength())
}

func (l *List) ChunkLimit() uint64 {
	if l.packed {
		basic := l.elem.(*Basic)
		return merkle.ChunkCountForPacked(int(l.limit), basic.ByteSize())
	}
	return l.limit
}

func (l *List) Elem() Descriptor { return l.elem }
func (l *List) Limit() uint64    { return l.limit }
func (l *List) IsPacked() bool   { return l.packed }

func (l *List) DefaultNode() merkle.Node {
	content := merkle.BuildTree(nil, l.ChunkLimit())
	return merkle.LengthMixedPair(content, 0)
}
