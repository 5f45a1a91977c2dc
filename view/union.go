package view

import (
	"encoding/binary"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
)

// unionValueGIndex and unionSelectorGIndex are the generalized indices
// of a union's two children within its Pair(value, selector) backing.
// They happen to share the numeric values List/BitList/ByteList use
// for their Pair(content, length) backing, since both are the same
// two-child layout; they are named separately here because "value"
// and "selector" are what a union's children actually are.
const (
	unionValueGIndex    = 2
	unionSelectorGIndex = 3
)

// UnionView is the view over a tagged choice between selector 0
// (None) and one or more value variants (schema.Union).
type UnionView struct {
	typ *schema.Union
	base
}

func newUnionView(typ *schema.Union, backing merkle.Node, hook Hook) *UnionView {
	return &UnionView{typ: typ, base: base{backing: backing, hook: hook}}
}

func (v *UnionView) Type() schema.Descriptor { return v.typ }

// Selector returns the union's current selector.
func (v *UnionView) Selector() (uint64, error) {
	n, err := merkle.Getter(v.base.backing, unionSelectorGIndex)
	if err != nil {
		return 0, err
	}
	root := n.Root()
	return binary.LittleEndian.Uint64(root[:8]), nil
}

// Value returns the view over the union's current value, typed to
// whichever variant the current selector names. Selector 0 (None)
// yields a noneView instead of recursing into New, since None is not
// a real composable type.
func (v *UnionView) Value() (View, error) {
	selector, err := v.Selector()
	if err != nil {
		return nil, err
	}
	variant, ok := v.typ.VariantAt(selector)
	if !ok {
		return nil, ssz.NewTypeMismatchError("valid union selector", "out of range")
	}
	node, err := merkle.Getter(v.base.backing, unionValueGIndex)
	if err != nil {
		return nil, err
	}
	if selector == 0 {
		return &noneView{backing: node}, nil
	}
	return New(variant, node, childHook(&v.base, unionValueGIndex)), nil
}

// SetVariant switches the union to selector, replacing its value with
// that variant's zero value and returning a view over the new value
// slot for the caller to populate. Switching to selector 0 (None)
// discards whatever value was previously held.
func (v *UnionView) SetVariant(selector uint64) (View, error) {
	variant, ok := v.typ.VariantAt(selector)
	if !ok {
		return nil, ssz.NewTypeMismatchError("valid union selector", "out of range")
	}
	newBacking := merkle.SelectorMixedPair(variant.DefaultNode(), selector)
	v.base.rebind(newBacking)
	return v.Value()
}

// noneView is the degenerate view over union selector 0: a fixed
// zero-chunk root with no further structure.
type noneView struct {
	backing merkle.Node
}

func (n *noneView) Backing() merkle.Node        { return n.backing }
func (n *noneView) Type() schema.Descriptor     { return schema.None }
func (n *noneView) HashTreeRoot() ([32]byte, error) {
	return [32]byte(n.backing.Root()), nil
}
