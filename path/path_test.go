package path_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gfx-labs/sszview/path"
	"github.com/gfx-labs/sszview/schema"
	"github.com/gfx-labs/sszview/view"
)

func TestPathGIndexContainerField(t *testing.T) {
	innerType, err := schema.NewContainer("inner",
		schema.FieldDef{Name: "x", Type: schema.Uint32},
		schema.FieldDef{Name: "y", Type: schema.Uint32},
	)
	require.NoError(t, err)
	outerType, err := schema.NewContainer("outer",
		schema.FieldDef{Name: "a", Type: schema.Uint8},
		schema.FieldDef{Name: "inner", Type: innerType},
	)
	require.NoError(t, err)

	g, err := path.New(outerType).Field("inner").Field("y").GIndex()
	require.NoError(t, err)

	v := view.NewRoot(outerType)
	cv := v.(*view.ContainerView)
	innerField, err := cv.Field("inner")
	require.NoError(t, err)
	innerCV := innerField.(*view.ContainerView)
	yField, err := innerCV.Field("y")
	require.NoError(t, err)
	require.NoError(t, yField.(*view.BasicView).SetUint(42))

	node, err := path.Get(v.Backing(), path.New(outerType).Field("inner").Field("y"))
	require.NoError(t, err)
	require.Equal(t, yField.Backing().Root(), node.Root())

	// The same two steps folded independently must agree on g.
	g2, err := path.New(outerType).Field("inner").Field("y").GIndex()
	require.NoError(t, err)
	require.Equal(t, g, g2)
}

func TestResolveMatchesTypedNavigation(t *testing.T) {
	listType := schema.NewList(schema.Uint16, 4)
	containerType, err := schema.NewContainer("c",
		schema.FieldDef{Name: "items", Type: listType},
	)
	require.NoError(t, err)

	v := view.NewRoot(containerType)
	cv := v.(*view.ContainerView)
	itemsField, err := cv.Field("items")
	require.NoError(t, err)
	lv := itemsField.(*view.ListView)
	el, err := lv.Append()
	require.NoError(t, err)
	require.NoError(t, el.(*view.BasicView).SetUint(5))

	resolved, err := path.Resolve(v, path.FieldStep("items"), path.IndexStep(0))
	require.NoError(t, err)
	got, err := resolved.(*view.BasicView).Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(5), got)
}

func TestPathRejectsWrongStepKind(t *testing.T) {
	containerType, err := schema.NewContainer("c",
		schema.FieldDef{Name: "a", Type: schema.Uint8},
	)
	require.NoError(t, err)

	_, err = path.New(containerType).Index(0).GIndex()
	require.Error(t, err)
}
