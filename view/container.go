package view

import (
	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
)

// ContainerView is the view over a fixed-order set of named,
// heterogeneously typed fields (schema.Container).
type ContainerView struct {
	typ *schema.Container
	base
}

func newContainerView(typ *schema.Container, backing merkle.Node, hook Hook) *ContainerView {
	return &ContainerView{typ: typ, base: base{backing: backing, hook: hook}}
}

func (v *ContainerView) Type() schema.Descriptor { return v.typ }

// NumFields is the container's declared field count.
func (v *ContainerView) NumFields() int { return v.typ.NumFields() }

// Field returns the named field's current view.
func (v *ContainerView) Field(name string) (View, error) {
	idx, ok := v.typ.FieldIndex(name)
	if !ok {
		return nil, ssz.NewUnknownFieldError(name)
	}
	return v.FieldAt(idx)
}

// FieldAt returns the view for the field at declaration index idx.
func (v *ContainerView) FieldAt(idx int) (View, error) {
	fields := v.typ.Fields()
	if idx < 0 || idx >= len(fields) {
		return nil, ssz.NewIndexOutOfRangeError(idx, len(fields))
	}
	g := leafGIndex(v.typ.ChunkLimit(), idx)
	child, err := merkle.Getter(v.backing, g)
	if err != nil {
		return nil, err
	}
	return New(fields[idx].Type, child, childHook(&v.base, g)), nil
}
