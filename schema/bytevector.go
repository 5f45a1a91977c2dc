package schema

import (
	"fmt"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
)

// ByteVector describes a fixed-length byte string, ByteVector[N] —
// spec.md's shorthand for Vector[uint8, N], given its own descriptor
// so values expose byte-slice accessors instead of per-element uint8
// views.
type ByteVector struct {
	fixedSize
}

// NewByteVector builds a byte-vector descriptor of the given length.
func NewByteVector(n uint64) (*ByteVector, error) {
	if n == 0 {
		return nil, fmt.Errorf("sszview/schema: byte vector length must be positive")
	}
	return &ByteVector{fixedSize{int(n)}}, nil
}

func (b *ByteVector) Kind() ssz.Kind { return ssz.KindByteVector }
func (b *ByteVector) String() string { return fmt.Sprintf("ByteVector[%d]", b.length) }

func (b *ByteVector) ChunkLimit() uint64 {
	return merkle.ChunkCountForPacked(b.length, 1)
}

func (b *ByteVector) DefaultNode() merkle.Node {
	return merkle.BuildTree(merkle.PackBytes(make([]byte, b.length)), b.ChunkLimit())
}
