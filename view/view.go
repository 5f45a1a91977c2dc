// Package view implements the typed, mutable façade over immutable
// backings: spec.md's View. Every concrete view embeds base, which
// holds the backing Node and the optional hook a parent installs so a
// child's mutation propagates upward as a straight-line rebind rather
// than an event; each view keeps its own type descriptor beside it.
package view

import (
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
)

// Hook is called with a view's new backing every time a mutation
// replaces it. A hook installed by a composite parent closes over the
// child's generalized index and rebinds the parent's own backing at
// that position, then (if the parent itself has a hook) propagates
// further upward — spec.md §4.7's rebind chain.
type Hook func(newBacking merkle.Node)

// View is the common interface every concrete view satisfies: a
// typed façade that can report its backing, its type, and its root.
type View interface {
	// Backing returns the view's current backing node. After any
	// mutation of this view or one of its descendants, Backing's
	// root reflects the change.
	Backing() merkle.Node
	// Type returns the view's static type descriptor.
	Type() schema.Descriptor
	// HashTreeRoot returns the view's current 32-byte Merkle root.
	HashTreeRoot() ([32]byte, error)
}

// base is embedded by every concrete view. It is not itself a View
// (no Type method) because each concrete view's descriptor field has
// a more specific static type than schema.Descriptor.
type base struct {
	backing merkle.Node
	hook    Hook
}

func (b *base) Backing() merkle.Node { return b.backing }

func (b *base) HashTreeRoot() ([32]byte, error) {
	return [32]byte(b.backing.Root()), nil
}

// rebind replaces the view's backing and, if a hook is installed,
// invokes it with the new backing — the two steps spec.md §4.7
// describes as the entirety of mutation.
func (b *base) rebind(n merkle.Node) {
	b.backing = n
	if b.hook != nil {
		b.hook(n)
	}
}

// childHook builds the hook a composite view installs on a sub-view
// at local generalized index g: when called with the child's new
// backing, it rebinds the parent's own backing at g via
// merkle.Setter, then runs the parent's own rebind (which in turn
// calls the parent's own hook, if any).
func childHook(parent *base, g uint64) Hook {
	return func(childBacking merkle.Node) {
		newParentBacking, err := merkle.Setter(parent.backing, g, childBacking)
		if err != nil {
			// Setter only fails if g is malformed, which can't happen
			// for a gindex this package itself computed from the
			// type's own field/element layout.
			panic(err)
		}
		parent.rebind(newParentBacking)
	}
}
