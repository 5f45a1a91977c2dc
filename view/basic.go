package view

import (
	"encoding/binary"

	"github.com/holiman/uint256"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
)

// BasicView is the view over a bool or fixed-width unsigned integer.
// It is used both for a standalone basic value — a container field, a
// top-level value, or a non-packed element — and, in packed mode, for
// a single element of a Vector/List[basic] that shares a 32-byte chunk
// with its neighbors (spec.md §4.3's packing rule).
//
// In packed mode BasicView has no Backing of its own; Backing returns
// a standalone Leaf carrying just this element's bytes, useful for
// inspection but not addressable within the parent's tree by itself.
type BasicView struct {
	typ *schema.Basic

	packed   bool
	readRaw  func() []byte
	writeRaw func([]byte) error

	base
}

// newBasicView builds a standalone (non-packed) basic view bound to
// its own leaf position within a parent tree.
func newBasicView(typ *schema.Basic, backing merkle.Node, hook Hook) *BasicView {
	return &BasicView{typ: typ, base: base{backing: backing, hook: hook}}
}

// newPackedElementView builds a transient view over one element inside
// a shared chunk: reads and writes go through readRaw/writeRaw instead
// of a hook, since the element has no generalized index of its own.
func newPackedElementView(typ *schema.Basic, readRaw func() []byte, writeRaw func([]byte) error) *BasicView {
	return &BasicView{typ: typ, packed: true, readRaw: readRaw, writeRaw: writeRaw}
}

func (v *BasicView) Type() schema.Descriptor { return v.typ }

// Backing returns the element's own leaf in standalone mode. In packed
// mode it synthesizes a throwaway leaf from the element's current
// bytes, since the element does not own an addressable node.
func (v *BasicView) Backing() merkle.Node {
	if !v.packed {
		return v.base.backing
	}
	var c merkle.Chunk
	copy(c[:], v.readRaw())
	return merkle.NewLeaf(c)
}

func (v *BasicView) HashTreeRoot() ([32]byte, error) {
	return [32]byte(v.Backing().Root()), nil
}

func (v *BasicView) rawBytes() []byte {
	if v.packed {
		return v.readRaw()
	}
	chunk := v.base.backing.Root()
	return chunk[:v.typ.ByteSize()]
}

// commit writes raw (exactly typ.ByteSize() bytes) back through
// whichever path applies: the packed write-through closure, or a
// rebind of a freshly built standalone leaf.
func (v *BasicView) commit(raw []byte) error {
	if v.packed {
		return v.writeRaw(raw)
	}
	var c merkle.Chunk
	copy(c[:], raw)
	v.base.rebind(merkle.NewLeaf(c))
	return nil
}

// Bool returns the view's value as a boolean. It is only meaningful
// when Type().Kind() == ssz.KindBool.
func (v *BasicView) Bool() (bool, error) {
	if v.typ.Kind() != ssz.KindBool {
		return false, ssz.NewTypeMismatchError("bool", string(v.typ.Kind()))
	}
	b := v.rawBytes()[0]
	if b > 1 {
		return false, ssz.NewInvalidBooleanError(b)
	}
	return b == 1, nil
}

// SetBool sets the view's value. It is only meaningful when
// Type().Kind() == ssz.KindBool.
func (v *BasicView) SetBool(val bool) error {
	if v.typ.Kind() != ssz.KindBool {
		return ssz.NewTypeMismatchError("bool", string(v.typ.Kind()))
	}
	raw := make([]byte, 1)
	if val {
		raw[0] = 1
	}
	return v.commit(raw)
}

// Uint returns the view's value widened to uint64. It is only
// meaningful for KindUint8/16/32/64.
func (v *BasicView) Uint() (uint64, error) {
	switch v.typ.Kind() {
	case ssz.KindUint8:
		return uint64(v.rawBytes()[0]), nil
	case ssz.KindUint16:
		return uint64(binary.LittleEndian.Uint16(v.rawBytes())), nil
	case ssz.KindUint32:
		return uint64(binary.LittleEndian.Uint32(v.rawBytes())), nil
	case ssz.KindUint64:
		return binary.LittleEndian.Uint64(v.rawBytes()), nil
	default:
		return 0, ssz.NewTypeMismatchError("uint8/16/32/64", string(v.typ.Kind()))
	}
}

// SetUint sets the view's value from a uint64, truncated to the type's
// width. It is only meaningful for KindUint8/16/32/64.
func (v *BasicView) SetUint(val uint64) error {
	raw := make([]byte, v.typ.ByteSize())
	switch v.typ.Kind() {
	case ssz.KindUint8:
		raw[0] = byte(val)
	case ssz.KindUint16:
		binary.LittleEndian.PutUint16(raw, uint16(val))
	case ssz.KindUint32:
		binary.LittleEndian.PutUint32(raw, uint32(val))
	case ssz.KindUint64:
		binary.LittleEndian.PutUint64(raw, val)
	default:
		return ssz.NewTypeMismatchError("uint8/16/32/64", string(v.typ.Kind()))
	}
	return v.commit(raw)
}

// Uint256 returns the view's value as a uint256.Int. It is only
// meaningful for KindUint128/256.
func (v *BasicView) Uint256() (*uint256.Int, error) {
	switch v.typ.Kind() {
	case ssz.KindUint128, ssz.KindUint256:
		return uint256FromLE(v.rawBytes()), nil
	default:
		return nil, ssz.NewTypeMismatchError("uint128/uint256", string(v.typ.Kind()))
	}
}

// SetUint256 sets the view's value from a uint256.Int, truncated to
// the type's width. It is only meaningful for KindUint128/256.
func (v *BasicView) SetUint256(val *uint256.Int) error {
	switch v.typ.Kind() {
	case ssz.KindUint128, ssz.KindUint256:
		return v.commit(uint256ToLE(val, v.typ.ByteSize()))
	default:
		return ssz.NewTypeMismatchError("uint128/uint256", string(v.typ.Kind()))
	}
}

// uint256FromLE reconstructs a uint256.Int from a little-endian byte
// slice using only uint256's exported arithmetic, since the library's
// native SetBytes expects big-endian input.
func uint256FromLE(b []byte) *uint256.Int {
	z := new(uint256.Int)
	for i := len(b) - 1; i >= 0; i-- {
		z.Lsh(z, 8)
		z.Or(z, uint256.NewInt(uint64(b[i])))
	}
	return z
}

// uint256ToLE renders v as an n-byte little-endian slice.
func uint256ToLE(v *uint256.Int, n int) []byte {
	out := make([]byte, n)
	tmp := new(uint256.Int).Set(v)
	mask := uint256.NewInt(0xff)
	for i := 0; i < n; i++ {
		b := new(uint256.Int).And(tmp, mask)
		out[i] = byte(b.Uint64())
		tmp.Rsh(tmp, 8)
	}
	return out
}
