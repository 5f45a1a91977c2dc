package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gfx-labs/sszview/schema"
	"github.com/gfx-labs/sszview/view"
)

func TestBasicViewUint64RoundTrip(t *testing.T) {
	v := view.NewRoot(schema.Uint64)
	bv := v.(*view.BasicView)

	require.NoError(t, bv.SetUint(0x0100000000000000))
	got, err := bv.Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0100000000000000), got)

	root, err := bv.HashTreeRoot()
	require.NoError(t, err)
	want := [32]byte{}
	want[7] = 0x01
	require.Equal(t, want, root)
}

func TestBasicViewBool(t *testing.T) {
	v := view.NewRoot(schema.Bool)
	bv := v.(*view.BasicView)

	got, err := bv.Bool()
	require.NoError(t, err)
	require.False(t, got)

	require.NoError(t, bv.SetBool(true))
	got, err = bv.Bool()
	require.NoError(t, err)
	require.True(t, got)
}

func TestListOfUint16(t *testing.T) {
	listType := schema.NewList(schema.Uint16, 4)
	v := view.NewRoot(listType)
	lv := v.(*view.ListView)

	n, err := lv.Len()
	require.NoError(t, err)
	require.Equal(t, 0, n)

	el, err := lv.Append()
	require.NoError(t, err)
	require.NoError(t, el.(*view.BasicView).SetUint(1))

	el, err = lv.Append()
	require.NoError(t, err)
	require.NoError(t, el.(*view.BasicView).SetUint(2))

	n, err = lv.Len()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	first, err := lv.Get(0)
	require.NoError(t, err)
	got, err := first.(*view.BasicView).Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(1), got)

	second, err := lv.Get(1)
	require.NoError(t, err)
	got, err = second.(*view.BasicView).Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(2), got)
}

func TestListAppendPastLimitOverflows(t *testing.T) {
	listType := schema.NewList(schema.Uint8, 1)
	v := view.NewRoot(listType)
	lv := v.(*view.ListView)

	_, err := lv.Append()
	require.NoError(t, err)
	_, err = lv.Append()
	require.Error(t, err)
}

func TestListPopOnEmptyIsIndexOutOfRange(t *testing.T) {
	listType := schema.NewList(schema.Uint8, 4)
	v := view.NewRoot(listType)
	lv := v.(*view.ListView)

	err := lv.Pop()
	require.Error(t, err)
}

func TestBitListRoundTrip(t *testing.T) {
	bitListType := schema.NewBitList(8)
	v := view.NewRoot(bitListType)
	bl := v.(*view.BitListView)

	require.NoError(t, bl.Append(true))
	require.NoError(t, bl.Append(false))
	require.NoError(t, bl.Append(true))

	n, err := bl.Len()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	for i, want := range []bool{true, false, true} {
		got, err := bl.Bit(i)
		require.NoError(t, err)
		require.Equal(t, want, got, "bit %d", i)
	}
}

func TestBitVectorRoundTrip(t *testing.T) {
	bitVecType, err := schema.NewBitVector(4)
	require.NoError(t, err)
	v := view.NewRoot(bitVecType)
	bv := v.(*view.BitVectorView)

	require.NoError(t, bv.SetBit(0, true))
	require.NoError(t, bv.SetBit(1, true))
	require.NoError(t, bv.SetBit(2, false))
	require.NoError(t, bv.SetBit(3, false))

	bits, err := bv.Bits()
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false, false}, bits)
}

func TestContainerFieldMutationPreservesSiblings(t *testing.T) {
	byteListType := schema.NewByteList(4)
	containerType, err := schema.NewContainer("example",
		schema.FieldDef{Name: "a", Type: schema.Uint8},
		schema.FieldDef{Name: "b", Type: byteListType},
	)
	require.NoError(t, err)

	v := view.NewRoot(containerType)
	cv := v.(*view.ContainerView)

	aBefore, err := cv.Field("a")
	require.NoError(t, err)
	require.NoError(t, aBefore.(*view.BasicView).SetUint(7))

	bBefore, err := cv.Field("b")
	require.NoError(t, err)
	require.NoError(t, bBefore.(*view.ByteListView).SetBytes([]byte{1, 2, 3}))

	aAfter, err := cv.Field("a")
	require.NoError(t, err)
	got, err := aAfter.(*view.BasicView).Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(7), got, "setting b must not disturb a")

	bAfter, err := cv.Field("b")
	require.NoError(t, err)
	gotBytes, err := bAfter.(*view.ByteListView).Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, gotBytes)
}

func TestUnionSelectorSwitch(t *testing.T) {
	unionType, err := schema.NewUnion(schema.Uint32)
	require.NoError(t, err)
	v := view.NewRoot(unionType)
	uv := v.(*view.UnionView)

	sel, err := uv.Selector()
	require.NoError(t, err)
	require.Equal(t, uint64(0), sel)

	val, err := uv.SetVariant(1)
	require.NoError(t, err)
	require.NoError(t, val.(*view.BasicView).SetUint(7))

	sel, err = uv.Selector()
	require.NoError(t, err)
	require.Equal(t, uint64(1), sel)

	got, err := uv.Value()
	require.NoError(t, err)
	n, err := got.(*view.BasicView).Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(7), n)
}

func TestTrackedRootRecordsHistory(t *testing.T) {
	v, history := view.NewTrackedRoot(schema.Uint64)
	bv := v.(*view.BasicView)

	require.Equal(t, 0, history.Len())
	require.NoError(t, bv.SetUint(1))
	require.Equal(t, 1, history.Len())
	require.NoError(t, bv.SetUint(2))
	require.Equal(t, 2, history.Len())

	records := history.Records()
	require.NotEqual(t, records[0].Old.Root(), records[0].New.Root())
}

func TestVectorPackedElements(t *testing.T) {
	vecType, err := schema.NewVector(schema.Uint8, 40)
	require.NoError(t, err)
	v := view.NewRoot(vecType)
	vv := v.(*view.VectorView)

	el, err := vv.Get(35)
	require.NoError(t, err)
	require.NoError(t, el.(*view.BasicView).SetUint(9))

	got, err := el.(*view.BasicView).Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(9), got)

	other, err := vv.Get(0)
	require.NoError(t, err)
	gotOther, err := other.(*view.BasicView).Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(0), gotOther, "writing element 35 must not disturb element 0")
}
