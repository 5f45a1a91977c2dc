package codec

import (
	"encoding/binary"
	"math/bits"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
	"github.com/gfx-labs/sszview/view"
)

// Decode parses data as an SSZ-encoded value of type typ, returning a
// standalone root view over the result.
func Decode(typ schema.Descriptor, data []byte) (view.View, error) {
	node, err := decodeNode(typ, data)
	if err != nil {
		return nil, err
	}
	return view.New(typ, node, nil), nil
}

// decodeNode builds the backing node for typ's value directly,
// bypassing view mutation entirely: every decoder branch below
// constructs exactly the tree schema.Descriptor.DefaultNode would
// build for the same value, just with the decoded bytes in place of
// zeros.
func decodeNode(typ schema.Descriptor, data []byte) (merkle.Node, error) {
	switch t := typ.(type) {
	case *schema.Basic:
		return decodeBasic(t, data)
	case *schema.Container:
		return decodeContainer(t, data)
	case *schema.Vector:
		return decodeVector(t, data)
	case *schema.List:
		return decodeList(t, data)
	case *schema.BitVector:
		return decodeBitVector(t, data)
	case *schema.BitList:
		return decodeBitList(t, data)
	case *schema.ByteVector:
		return decodeByteVector(t, data)
	case *schema.ByteList:
		return decodeByteList(t, data)
	case *schema.Union:
		return decodeUnion(t, data)
	default:
		return nil, ssz.NewTypeMismatchError("known descriptor", t.String())
	}
}

func decodeBasic(t *schema.Basic, data []byte) (merkle.Node, error) {
	if len(data) != t.ByteSize() {
		return nil, ssz.NewLengthMismatchError(t.ByteSize(), len(data))
	}
	if t.Kind() == ssz.KindBool && data[0] > 1 {
		return nil, ssz.NewInvalidBooleanError(data[0])
	}
	var c merkle.Chunk
	copy(c[:], data)
	return merkle.NewLeaf(c), nil
}

// fixedSectionLen is the byte width of the fixed section of a
// container or fixed-length vector-of-variable-size-elements: 4 bytes
// (an offset) per variable field/element, the field's own fixed width
// otherwise.
func fixedSectionLen(types []schema.Descriptor) int {
	n := 0
	for _, t := range types {
		if t.IsVariableSize() {
			n += 4
		} else {
			n += t.FixedByteLength()
		}
	}
	return n
}

// readOffsetTable reads n consecutive 4-byte little-endian offsets
// starting at data[0], validating that the first equals
// wantFirstOffset, offsets are non-decreasing, and the last does not
// exceed len(data).
func readOffsetTable(data []byte, n int, wantFirstOffset int) ([]int, error) {
	if len(data) < n*4 {
		return nil, ssz.NewDecodeError(len(data), "truncated offset table")
	}
	offsets := make([]int, n)
	for i := 0; i < n; i++ {
		offsets[i] = int(binary.LittleEndian.Uint32(data[i*4 : i*4+4]))
	}
	if n > 0 {
		if offsets[0] != wantFirstOffset {
			return nil, ssz.NewDecodeError(offsets[0], "first offset must equal the fixed section length")
		}
		for i := 1; i < n; i++ {
			if offsets[i] < offsets[i-1] {
				return nil, ssz.NewDecodeError(offsets[i], "offsets must be non-decreasing")
			}
		}
		if offsets[n-1] > len(data) {
			return nil, ssz.NewDecodeError(offsets[n-1], "offset exceeds available data")
		}
	}
	return offsets, nil
}

func decodeContainer(t *schema.Container, data []byte) (merkle.Node, error) {
	fields := t.Fields()
	types := make([]schema.Descriptor, len(fields))
	for i, f := range fields {
		types[i] = f.Type
	}
	fixedLen := fixedSectionLen(types)
	if len(data) < fixedLen {
		return nil, ssz.NewDecodeError(len(data), "truncated fixed section")
	}

	leaves := make([]merkle.Node, len(fields))
	var varIndices []int
	var offsets []int
	cursor := 0
	for i, f := range fields {
		if f.Type.IsVariableSize() {
			off := int(binary.LittleEndian.Uint32(data[cursor : cursor+4]))
			offsets = append(offsets, off)
			varIndices = append(varIndices, i)
			cursor += 4
			continue
		}
		w := f.Type.FixedByteLength()
		n, err := decodeNode(f.Type, data[cursor:cursor+w])
		if err != nil {
			return nil, err
		}
		leaves[i] = n
		cursor += w
	}
	if len(offsets) > 0 {
		if offsets[0] != fixedLen {
			return nil, ssz.NewDecodeError(offsets[0], "first offset must equal the fixed section length")
		}
		for i := 1; i < len(offsets); i++ {
			if offsets[i] < offsets[i-1] {
				return nil, ssz.NewDecodeError(offsets[i], "offsets must be non-decreasing")
			}
		}
		if offsets[len(offsets)-1] > len(data) {
			return nil, ssz.NewDecodeError(offsets[len(offsets)-1], "offset exceeds available data")
		}
	}
	for k, i := range varIndices {
		start := offsets[k]
		end := len(data)
		if k+1 < len(varIndices) {
			end = offsets[k+1]
		}
		n, err := decodeNode(fields[i].Type, data[start:end])
		if err != nil {
			return nil, err
		}
		leaves[i] = n
	}
	return merkle.BuildTree(leaves, t.ChunkLimit()), nil
}

func decodeVector(t *schema.Vector, data []byte) (merkle.Node, error) {
	n := int(t.Length())
	if t.IsPacked() {
		if len(data) != t.FixedByteLength() {
			return nil, ssz.NewLengthMismatchError(t.FixedByteLength(), len(data))
		}
		return merkle.BuildTree(merkle.PackBytes(append([]byte(nil), data...)), t.ChunkLimit()), nil
	}
	if !t.Elem().IsVariableSize() {
		elemW := t.Elem().FixedByteLength()
		if len(data) != elemW*n {
			return nil, ssz.NewLengthMismatchError(elemW*n, len(data))
		}
		leaves := make([]merkle.Node, n)
		for i := 0; i < n; i++ {
			el, err := decodeNode(t.Elem(), data[i*elemW:(i+1)*elemW])
			if err != nil {
				return nil, err
			}
			leaves[i] = el
		}
		return merkle.BuildTree(leaves, t.ChunkLimit()), nil
	}
	offsets, err := readOffsetTable(data, n, n*4)
	if err != nil {
		return nil, err
	}
	leaves := make([]merkle.Node, n)
	for i := 0; i < n; i++ {
		start := offsets[i]
		end := len(data)
		if i+1 < n {
			end = offsets[i+1]
		}
		if end < start {
			return nil, ssz.NewDecodeError(start, "negative-length element segment")
		}
		el, err := decodeNode(t.Elem(), data[start:end])
		if err != nil {
			return nil, err
		}
		leaves[i] = el
	}
	return merkle.BuildTree(leaves, t.ChunkLimit()), nil
}

func decodeList(t *schema.List, data []byte) (merkle.Node, error) {
	if t.IsPacked() {
		basic := t.Elem().(*schema.Basic)
		if len(data)%basic.ByteSize() != 0 {
			return nil, ssz.NewDecodeError(len(data), "length not a multiple of element size")
		}
		count := len(data) / basic.ByteSize()
		if uint64(count) > t.Limit() {
			return nil, ssz.NewListOverflowError(int(t.Limit()))
		}
		content := merkle.BuildTree(merkle.PackBytes(append([]byte(nil), data...)), t.ChunkLimit())
		return merkle.LengthMixedPair(content, uint64(count)), nil
	}
	if !t.Elem().IsVariableSize() {
		elemW := t.Elem().FixedByteLength()
		if elemW == 0 {
			if len(data) != 0 {
				return nil, ssz.NewDecodeError(len(data), "unexpected data for zero-width element type")
			}
			return merkle.LengthMixedPair(merkle.BuildTree(nil, t.ChunkLimit()), 0), nil
		}
		if len(data)%elemW != 0 {
			return nil, ssz.NewDecodeError(len(data), "length not a multiple of element size")
		}
		count := len(data) / elemW
		if uint64(count) > t.Limit() {
			return nil, ssz.NewListOverflowError(int(t.Limit()))
		}
		leaves := make([]merkle.Node, count)
		for i := 0; i < count; i++ {
			el, err := decodeNode(t.Elem(), data[i*elemW:(i+1)*elemW])
			if err != nil {
				return nil, err
			}
			leaves[i] = el
		}
		content := merkle.BuildTree(leaves, t.ChunkLimit())
		return merkle.LengthMixedPair(content, uint64(count)), nil
	}
	if len(data) == 0 {
		return merkle.LengthMixedPair(merkle.BuildTree(nil, t.ChunkLimit()), 0), nil
	}
	if len(data) < 4 {
		return nil, ssz.NewDecodeError(len(data), "truncated offset table")
	}
	firstOffset := int(binary.LittleEndian.Uint32(data[0:4]))
	if firstOffset < 4 || firstOffset%4 != 0 {
		return nil, ssz.NewDecodeError(firstOffset, "invalid first offset for variable-size list")
	}
	count := firstOffset / 4
	if uint64(count) > t.Limit() {
		return nil, ssz.NewListOverflowError(int(t.Limit()))
	}
	offsets, err := readOffsetTable(data, count, firstOffset)
	if err != nil {
		return nil, err
	}
	leaves := make([]merkle.Node, count)
	for i := 0; i < count; i++ {
		start := offsets[i]
		end := len(data)
		if i+1 < count {
			end = offsets[i+1]
		}
		if end < start {
			return nil, ssz.NewDecodeError(start, "negative-length element segment")
		}
		el, err := decodeNode(t.Elem(), data[start:end])
		if err != nil {
			return nil, err
		}
		leaves[i] = el
	}
	content := merkle.BuildTree(leaves, t.ChunkLimit())
	return merkle.LengthMixedPair(content, uint64(count)), nil
}

func decodeBitVector(t *schema.BitVector, data []byte) (merkle.Node, error) {
	want := int((t.Bits() + 7) / 8)
	if len(data) != want {
		return nil, ssz.NewLengthMismatchError(want, len(data))
	}
	if rem := t.Bits() % 8; rem != 0 {
		mask := byte(0xff << rem)
		if data[len(data)-1]&mask != 0 {
			return nil, ssz.NewInvalidBitfieldError("trailing bits beyond declared length must be zero")
		}
	}
	return merkle.BuildTree(merkle.PackBytes(append([]byte(nil), data...)), t.ChunkLimit()), nil
}

// decodeBitList validates and strips the trailing delimiter bit
// fastssz's ValidateBitlist (flexssz/encoder.go) checks for, then
// builds the content tree from the remaining data bits.
func decodeBitList(t *schema.BitList, data []byte) (merkle.Node, error) {
	if len(data) == 0 {
		return nil, ssz.NewInvalidBitfieldError("bitlist is empty, missing delimiter bit")
	}
	last := data[len(data)-1]
	if last == 0 {
		return nil, ssz.NewInvalidBitfieldError("trailing byte is zero, no delimiter bit set")
	}
	msb := bits.Len8(last)
	numBits := uint64(8*(len(data)-1) + msb - 1)
	if numBits > t.Limit() {
		return nil, ssz.NewInvalidBitfieldError("bit count exceeds declared limit")
	}
	content := append([]byte(nil), data...)
	content[len(content)-1] &^= 1 << (msb - 1)
	contentTree := merkle.BuildTree(merkle.PackBytes(content), t.ChunkLimit())
	return merkle.LengthMixedPair(contentTree, numBits), nil
}

func decodeByteVector(t *schema.ByteVector, data []byte) (merkle.Node, error) {
	if len(data) != t.FixedByteLength() {
		return nil, ssz.NewLengthMismatchError(t.FixedByteLength(), len(data))
	}
	return merkle.BuildTree(merkle.PackBytes(append([]byte(nil), data...)), t.ChunkLimit()), nil
}

func decodeByteList(t *schema.ByteList, data []byte) (merkle.Node, error) {
	if uint64(len(data)) > t.Limit() {
		return nil, ssz.NewListOverflowError(int(t.Limit()))
	}
	content := merkle.BuildTree(merkle.PackBytes(data), t.ChunkLimit())
	return merkle.LengthMixedPair(content, uint64(len(data))), nil
}

func decodeUnion(t *schema.Union, data []byte) (merkle.Node, error) {
	if len(data) < 1 {
		return nil, ssz.NewDecodeError(0, "union encoding is empty, missing selector byte")
	}
	selector := uint64(data[0])
	variant, ok := t.VariantAt(selector)
	if !ok {
		return nil, ssz.NewTypeMismatchError("valid union selector", "out of range")
	}
	if selector == 0 {
		if len(data) != 1 {
			return nil, ssz.NewDecodeError(1, "None variant must carry no value bytes")
		}
		return merkle.SelectorMixedPair(variant.DefaultNode(), 0), nil
	}
	val, err := decodeNode(variant, data[1:])
	if err != nil {
		return nil, err
	}
	return merkle.SelectorMixedPair(val, selector), nil
}
