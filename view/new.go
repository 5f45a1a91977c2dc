package view

import (
	"fmt"

	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
)

// New builds the concrete view for typ over backing, installing hook
// so mutations propagate to whatever owns backing. hook may be nil for
// a standalone top-level value with nothing to propagate to.
//
// New is the runtime counterpart of schema.Build's compile-time type
// switch: every composite view's Get/Field method calls back into New
// to construct its children, so a single dispatch point here is all
// that is needed to support arbitrarily nested schemas.
func New(typ schema.Descriptor, backing merkle.Node, hook Hook) View {
	switch t := typ.(type) {
	case *schema.Basic:
		return newBasicView(t, backing, hook)
	case *schema.Container:
		return newContainerView(t, backing, hook)
	case *schema.Vector:
		return newVectorView(t, backing, hook)
	case *schema.List:
		return newListView(t, backing, hook)
	case *schema.BitVector:
		return newBitVectorView(t, backing, hook)
	case *schema.BitList:
		return newBitListView(t, backing, hook)
	case *schema.ByteVector:
		return newByteVectorView(t, backing, hook)
	case *schema.ByteList:
		return newByteListView(t, backing, hook)
	case *schema.Union:
		return newUnionView(t, backing, hook)
	default:
		panic(fmt.Sprintf("sszview/view: unhandled descriptor type %T", typ))
	}
}

// NewRoot builds a top-level, standalone view over typ's default
// (zero) value, with no parent to propagate mutations to.
func NewRoot(typ schema.Descriptor) View {
	return New(typ, typ.DefaultNode(), nil)
}
