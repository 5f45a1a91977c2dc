// Package codec implements the SSZ wire format on top of view.View and
// schema.Descriptor: the two-pass fixed/offset-table encoding spec.md
// §4.2 and §4.3 describe, the matching decoder with its monotonic-
// offset and in-bounds-length checks, bitlist's delimiter-bit wire
// convention, and bitvector's zero-padding check.
//
// The encoder is a direct two-buffer specialization of the teacher's
// flexssz.Builder stack+heap technique (see flexssz/encoder.go): the
// "stack" is the fixed-section buffer, the "heap" is the variable
// payload buffer, and an offset recorded in the stack is patched with
// the heap cursor's value at the moment each variable part is queued,
// rather than deferred through a closure chain — view.View's backing
// values are already fully known up front, so there is nothing to
// stream lazily.
package codec

import (
	"encoding/binary"
	"io"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
	"github.com/gfx-labs/sszview/view"
)

// Encode serializes v to its SSZ wire representation.
func Encode(v view.View) ([]byte, error) {
	switch t := v.Type().(type) {
	case *schema.Basic:
		return encodeBasic(t, v.(*view.BasicView))
	case *schema.Container:
		return encodeContainer(t, v.(*view.ContainerView))
	case *schema.Vector:
		return encodeVector(t, v.(*view.VectorView))
	case *schema.List:
		return encodeList(t, v.(*view.ListView))
	case *schema.BitVector:
		return encodeBitVector(t, v.(*view.BitVectorView))
	case *schema.BitList:
		return encodeBitList(t, v.(*view.BitListView))
	case *schema.ByteVector:
		return v.(*view.ByteVectorView).Bytes(), nil
	case *schema.ByteList:
		return v.(*view.ByteListView).Bytes()
	case *schema.Union:
		return encodeUnion(t, v.(*view.UnionView))
	default:
		return nil, ssz.NewTypeMismatchError("known descriptor", t.String())
	}
}

// Serialize writes v's SSZ encoding to w and returns the number of
// bytes written.
func Serialize(w io.Writer, v view.View) (int, error) {
	enc, err := Encode(v)
	if err != nil {
		return 0, err
	}
	return w.Write(enc)
}

// ByteLength returns len(Encode(v)). It is the codec package's answer
// to spec.md §4.2's byte_length(value); it obtains the length by
// encoding v in full, not from the type's and value's sizes alone.
func ByteLength(v view.View) (int, error) {
	enc, err := Encode(v)
	if err != nil {
		return 0, err
	}
	return len(enc), nil
}

func encodeBasic(t *schema.Basic, bv *view.BasicView) ([]byte, error) {
	switch t.Kind() {
	case ssz.KindBool:
		b, err := bv.Bool()
		if err != nil {
			return nil, err
		}
		if b {
			return []byte{1}, nil
		}
		return []byte{0}, nil
	case ssz.KindUint8:
		u, err := bv.Uint()
		if err != nil {
			return nil, err
		}
		return []byte{byte(u)}, nil
	case ssz.KindUint16:
		u, err := bv.Uint()
		if err != nil {
			return nil, err
		}
		out := make([]byte, 2)
		binary.LittleEndian.PutUint16(out, uint16(u))
		return out, nil
	case ssz.KindUint32:
		u, err := bv.Uint()
		if err != nil {
			return nil, err
		}
		out := make([]byte, 4)
		binary.LittleEndian.PutUint32(out, uint32(u))
		return out, nil
	case ssz.KindUint64:
		u, err := bv.Uint()
		if err != nil {
			return nil, err
		}
		out := make([]byte, 8)
		binary.LittleEndian.PutUint64(out, u)
		return out, nil
	case ssz.KindUint128, ssz.KindUint256:
		u, err := bv.Uint256()
		if err != nil {
			return nil, err
		}
		return uint256ToLEBytes(u, t.ByteSize()), nil
	default:
		return nil, ssz.NewTypeMismatchError("basic kind", string(t.Kind()))
	}
}

func encodeContainer(t *schema.Container, cv *view.ContainerView) ([]byte, error) {
	fields := t.Fields()
	fixedSectionLen := 0
	for _, f := range fields {
		if f.Type.IsVariableSize() {
			fixedSectionLen += 4
		} else {
			fixedSectionLen += f.Type.FixedByteLength()
		}
	}

	fixed := make([]byte, 0, fixedSectionLen)
	var variable []byte
	cursor := fixedSectionLen

	for i, f := range fields {
		fv, err := cv.FieldAt(i)
		if err != nil {
			return nil, err
		}
		enc, err := Encode(fv)
		if err != nil {
			return nil, err
		}
		if f.Type.IsVariableSize() {
			off := make([]byte, 4)
			binary.LittleEndian.PutUint32(off, uint32(cursor))
			fixed = append(fixed, off...)
			variable = append(variable, enc...)
			cursor += len(enc)
		} else {
			fixed = append(fixed, enc...)
		}
	}
	return append(fixed, variable...), nil
}

func encodeVector(t *schema.Vector, vv *view.VectorView) ([]byte, error) {
	if t.IsPacked() {
		return packedLeafBytes(vv.Backing(), t.ChunkLimit(), t.FixedByteLength()), nil
	}
	n := vv.Len()
	if !t.Elem().IsVariableSize() {
		var out []byte
		for i := 0; i < n; i++ {
			ev, err := vv.Get(i)
			if err != nil {
				return nil, err
			}
			enc, err := Encode(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, enc...)
		}
		return out, nil
	}
	fixed := make([]byte, 0, n*4)
	var variable []byte
	cursor := n * 4
	for i := 0; i < n; i++ {
		ev, err := vv.Get(i)
		if err != nil {
			return nil, err
		}
		enc, err := Encode(ev)
		if err != nil {
			return nil, err
		}
		off := make([]byte, 4)
		binary.LittleEndian.PutUint32(off, uint32(cursor))
		fixed = append(fixed, off...)
		variable = append(variable, enc...)
		cursor += len(enc)
	}
	return append(fixed, variable...), nil
}

func encodeList(t *schema.List, lv *view.ListView) ([]byte, error) {
	n, err := lv.Len()
	if err != nil {
		return nil, err
	}
	if t.IsPacked() {
		basic := t.Elem().(*schema.Basic)
		content, err := listContent(lv)
		if err != nil {
			return nil, err
		}
		return packedLeafBytes(content, t.ChunkLimit(), n*basic.ByteSize()), nil
	}
	if !t.Elem().IsVariableSize() {
		var out []byte
		for i := 0; i < n; i++ {
			ev, err := lv.Get(i)
			if err != nil {
				return nil, err
			}
			enc, err := Encode(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, enc...)
		}
		return out, nil
	}
	fixed := make([]byte, 0, n*4)
	var variable []byte
	cursor := n * 4
	for i := 0; i < n; i++ {
		ev, err := lv.Get(i)
		if err != nil {
			return nil, err
		}
		enc, err := Encode(ev)
		if err != nil {
			return nil, err
		}
		off := make([]byte, 4)
		binary.LittleEndian.PutUint32(off, uint32(cursor))
		fixed = append(fixed, off...)
		variable = append(variable, enc...)
		cursor += len(enc)
	}
	return append(fixed, variable...), nil
}

func encodeBitVector(t *schema.BitVector, bv *view.BitVectorView) ([]byte, error) {
	bits, err := bv.Bits()
	if err != nil {
		return nil, err
	}
	return packBits(bits), nil
}

func encodeBitList(t *schema.BitList, bv *view.BitListView) ([]byte, error) {
	n, err := bv.Len()
	if err != nil {
		return nil, err
	}
	bits := make([]bool, n)
	for i := range bits {
		b, err := bv.Bit(i)
		if err != nil {
			return nil, err
		}
		bits[i] = b
	}
	out := packBits(bits)
	// append the delimiter bit immediately after the data bits.
	delimIdx := n
	need := delimIdx/8 + 1
	for len(out) < need {
		out = append(out, 0)
	}
	out[delimIdx/8] |= 1 << (delimIdx % 8)
	return out, nil
}

func encodeUnion(t *schema.Union, uv *view.UnionView) ([]byte, error) {
	selector, err := uv.Selector()
	if err != nil {
		return nil, err
	}
	out := []byte{byte(selector)}
	if selector == 0 {
		return out, nil
	}
	val, err := uv.Value()
	if err != nil {
		return nil, err
	}
	enc, err := Encode(val)
	if err != nil {
		return nil, err
	}
	return append(out, enc...), nil
}

// packBits renders bits into the minimal byte slice holding them,
// LSB-first within each byte, with no delimiter bit appended.
func packBits(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}

// packedLeafBytes walks root's leaves left to right and truncates the
// concatenated chunk bytes to byteLen — the wire encoding of any
// packed-basic/byte/bit content tree.
func packedLeafBytes(root merkle.Node, limit uint64, byteLen int) []byte {
	out := make([]byte, 0, merkle.NextPowerOfTwo(limit)*32)
	for c := range merkle.LeafIter(root) {
		out = append(out, c[:]...)
	}
	if byteLen > len(out) {
		byteLen = len(out)
	}
	return out[:byteLen]
}

// listContent returns the content subtree of a list-shaped backing
// (List/BitList/ByteList all wrap Pair(content, length)).
func listContent(lv *view.ListView) (merkle.Node, error) {
	return merkle.Getter(lv.Backing(), 2)
}
