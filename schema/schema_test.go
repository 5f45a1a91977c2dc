package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gfx-labs/sszview/schema"
)

func TestContainerRejectsDuplicateFieldNames(t *testing.T) {
	_, err := schema.NewContainer("dup",
		schema.FieldDef{Name: "a", Type: schema.Uint8},
		schema.FieldDef{Name: "a", Type: schema.Uint16},
	)
	require.Error(t, err)
}

func TestExtendAppendsFieldsAfterBase(t *testing.T) {
	base, err := schema.NewContainer("base",
		schema.FieldDef{Name: "a", Type: schema.Uint8},
	)
	require.NoError(t, err)

	extended, err := schema.Extend("extended", base,
		schema.FieldDef{Name: "b", Type: schema.Uint16},
	)
	require.NoError(t, err)

	require.Equal(t, 2, extended.NumFields())
	idx, ok := extended.FieldIndex("b")
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

func TestExtendRejectsRedeclaredField(t *testing.T) {
	base, err := schema.NewContainer("base",
		schema.FieldDef{Name: "a", Type: schema.Uint8},
	)
	require.NoError(t, err)

	_, err = schema.Extend("extended", base,
		schema.FieldDef{Name: "a", Type: schema.Uint16},
	)
	require.Error(t, err)
}

func TestVectorRejectsZeroLength(t *testing.T) {
	_, err := schema.NewVector(schema.Uint8, 0)
	require.Error(t, err)
}

func TestBitVectorRejectsZeroBits(t *testing.T) {
	_, err := schema.NewBitVector(0)
	require.Error(t, err)
}

func TestListLimitZeroIsAllowed(t *testing.T) {
	l := schema.NewList(schema.Uint8, 0)
	require.Equal(t, uint64(0), l.Limit())
	require.True(t, l.IsVariableSize())
}

func TestUnionRequiresAtLeastOneValueVariant(t *testing.T) {
	_, err := schema.NewUnion()
	require.Error(t, err)

	u, err := schema.NewUnion(schema.Uint32)
	require.NoError(t, err)
	require.Equal(t, 2, u.NumVariants())
	v0, ok := u.VariantAt(0)
	require.True(t, ok)
	require.Equal(t, schema.None, v0)
}

func TestContainerVariableSizePropagatesFromFields(t *testing.T) {
	byteListType := schema.NewByteList(4)
	fixed, err := schema.NewContainer("fixed",
		schema.FieldDef{Name: "a", Type: schema.Uint8},
	)
	require.NoError(t, err)
	require.False(t, fixed.IsVariableSize())
	require.Equal(t, 1, fixed.FixedByteLength())

	variable, err := schema.NewContainer("variable",
		schema.FieldDef{Name: "a", Type: schema.Uint8},
		schema.FieldDef{Name: "b", Type: byteListType},
	)
	require.NoError(t, err)
	require.True(t, variable.IsVariableSize())
	require.Equal(t, 0, variable.FixedByteLength())
}

func TestVectorOfBasicIsPacked(t *testing.T) {
	v, err := schema.NewVector(schema.Uint8, 40)
	require.NoError(t, err)
	require.True(t, v.IsPacked())
	// 40 uint8s pack 32 per chunk -> 2 chunks.
	require.Equal(t, uint64(2), v.ChunkLimit())
}

func TestBuildResolvesRefAndExtends(t *testing.T) {
	doc := schema.Document{
		Package: "example",
		Types: []schema.Field{
			{Name: "Base", Type: "container", Children: []schema.Field{
				{Name: "a", Type: "uint8"},
			}},
			{Name: "Derived", Type: "container", Extends: "Base", Children: []schema.Field{
				{Name: "b", Type: "uint16"},
			}},
			{Name: "List", Type: "list", Limit: 4, Children: []schema.Field{
				{Name: "element", Type: "ref", Ref: "Base"},
			}},
		},
	}

	built, err := schema.Build(doc)
	require.NoError(t, err)

	derived := built["Derived"].(*schema.Container)
	require.Equal(t, 2, derived.NumFields())

	list := built["List"].(*schema.List)
	require.Equal(t, built["Base"], list.Elem())
}
