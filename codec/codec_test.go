package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gfx-labs/sszview/codec"
	"github.com/gfx-labs/sszview/schema"
	"github.com/gfx-labs/sszview/view"
)

func TestEncodeDecodeUint64(t *testing.T) {
	v := view.NewRoot(schema.Uint64)
	bv := v.(*view.BasicView)
	require.NoError(t, bv.SetUint(0x0100000000000000))

	enc, err := codec.Encode(v)
	require.NoError(t, err)
	require.Len(t, enc, 8)

	decoded, err := codec.Decode(schema.Uint64, enc)
	require.NoError(t, err)
	got, err := decoded.(*view.BasicView).Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0100000000000000), got)
}

func TestEncodeBitList(t *testing.T) {
	bitListType := schema.NewBitList(8)
	v := view.NewRoot(bitListType)
	bl := v.(*view.BitListView)
	require.NoError(t, bl.Append(true))
	require.NoError(t, bl.Append(false))
	require.NoError(t, bl.Append(true))

	enc, err := codec.Encode(v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x0d}, enc)

	decoded, err := codec.Decode(bitListType, enc)
	require.NoError(t, err)
	dbl := decoded.(*view.BitListView)
	n, err := dbl.Len()
	require.NoError(t, err)
	require.Equal(t, 3, n)
	for i, want := range []bool{true, false, true} {
		got, err := dbl.Bit(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestDecodeBitVectorRejectsExtraBits(t *testing.T) {
	bitVecType, err := schema.NewBitVector(4)
	require.NoError(t, err)

	v := view.NewRoot(bitVecType)
	bv := v.(*view.BitVectorView)
	require.NoError(t, bv.SetBit(0, true))
	require.NoError(t, bv.SetBit(1, true))
	enc, err := codec.Encode(v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x03}, enc)

	_, err = codec.Decode(bitVecType, []byte{0x13})
	require.Error(t, err, "0x13 sets bit 4, which does not exist in a 4-bit vector")
}

func TestEncodeListOfUint16(t *testing.T) {
	listType := schema.NewList(schema.Uint16, 4)
	v := view.NewRoot(listType)
	lv := v.(*view.ListView)
	el, err := lv.Append()
	require.NoError(t, err)
	require.NoError(t, el.(*view.BasicView).SetUint(1))
	el, err = lv.Append()
	require.NoError(t, err)
	require.NoError(t, el.(*view.BasicView).SetUint(2))

	enc, err := codec.Encode(v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x00, 0x02, 0x00}, enc)

	decoded, err := codec.Decode(listType, enc)
	require.NoError(t, err)
	dlv := decoded.(*view.ListView)
	n, err := dlv.Len()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestEncodeContainerWithVariableField(t *testing.T) {
	byteListType := schema.NewByteList(4)
	containerType, err := schema.NewContainer("example",
		schema.FieldDef{Name: "a", Type: schema.Uint8},
		schema.FieldDef{Name: "b", Type: byteListType},
	)
	require.NoError(t, err)

	v := view.NewRoot(containerType)
	cv := v.(*view.ContainerView)
	a, err := cv.Field("a")
	require.NoError(t, err)
	require.NoError(t, a.(*view.BasicView).SetUint(7))
	b, err := cv.Field("b")
	require.NoError(t, err)
	require.NoError(t, b.(*view.ByteListView).SetBytes([]byte{1, 2, 3}))

	enc, err := codec.Encode(v)
	require.NoError(t, err)
	// a (1 byte) + offset (4 bytes) + payload (3 bytes) = 8 bytes.
	require.Equal(t, []byte{7, 5, 0, 0, 0, 1, 2, 3}, enc)

	decoded, err := codec.Decode(containerType, enc)
	require.NoError(t, err)
	dcv := decoded.(*view.ContainerView)
	da, err := dcv.Field("a")
	require.NoError(t, err)
	gotA, err := da.(*view.BasicView).Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(7), gotA)
	db, err := dcv.Field("b")
	require.NoError(t, err)
	gotB, err := db.(*view.ByteListView).Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, gotB)
}

func TestEncodeUnion(t *testing.T) {
	unionType, err := schema.NewUnion(schema.Uint32)
	require.NoError(t, err)
	v := view.NewRoot(unionType)
	uv := v.(*view.UnionView)
	val, err := uv.SetVariant(1)
	require.NoError(t, err)
	require.NoError(t, val.(*view.BasicView).SetUint(7))

	enc, err := codec.Encode(v)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 7, 0, 0, 0}, enc)

	decoded, err := codec.Decode(unionType, enc)
	require.NoError(t, err)
	duv := decoded.(*view.UnionView)
	sel, err := duv.Selector()
	require.NoError(t, err)
	require.Equal(t, uint64(1), sel)
	dv, err := duv.Value()
	require.NoError(t, err)
	n, err := dv.(*view.BasicView).Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(7), n)
}

func TestDecodeContainerRejectsBadOffset(t *testing.T) {
	byteListType := schema.NewByteList(4)
	containerType, err := schema.NewContainer("example",
		schema.FieldDef{Name: "a", Type: schema.Uint8},
		schema.FieldDef{Name: "b", Type: byteListType},
	)
	require.NoError(t, err)

	// first offset should be 5 (1 fixed byte + 4 offset bytes); 99 is
	// out of bounds for an 8-byte payload.
	_, err = codec.Decode(containerType, []byte{7, 99, 0, 0, 0, 1, 2, 3})
	require.Error(t, err)
}
