// Package path implements spec.md §5's path navigation: building a
// generalized index from a sequence of named/positional steps over a
// type's descriptor, plus partial-backing-aware fetch/replace through
// a view's backing at the resulting index. The conversion runs one way
// only: nothing here recovers a step sequence from a generalized index.
package path

import (
	"fmt"
	"iter"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
	"github.com/gfx-labs/sszview/schema"
	"github.com/gfx-labs/sszview/view"
)

// Step is one navigation step: a container field by name, a
// vector/list element by index, or a union value by selector.
type Step struct {
	Field    string
	Index    int
	Selector uint64
	kind     stepKind
}

type stepKind int

const (
	stepField stepKind = iota
	stepIndex
	stepVariant
)

// FieldStep builds a container-field navigation step.
func FieldStep(name string) Step { return Step{Field: name, kind: stepField} }

// IndexStep builds a vector/list element navigation step.
func IndexStep(i int) Step { return Step{Index: i, kind: stepIndex} }

// VariantStep builds a union-selector navigation step.
func VariantStep(selector uint64) Step { return Step{Selector: selector, kind: stepVariant} }

// Path accumulates steps against a root type and folds them into a
// single generalized index.
type Path struct {
	root  schema.Descriptor
	steps []Step
}

// New starts a path over root.
func New(root schema.Descriptor) *Path { return &Path{root: root} }

// Field appends a container-field step.
func (p *Path) Field(name string) *Path {
	p.steps = append(p.steps, FieldStep(name))
	return p
}

// Index appends a vector/list-element step.
func (p *Path) Index(i int) *Path {
	p.steps = append(p.steps, IndexStep(i))
	return p
}

// Variant appends a union-selector step.
func (p *Path) Variant(selector uint64) *Path {
	p.steps = append(p.steps, VariantStep(selector))
	return p
}

// Steps returns the accumulated steps, oldest first.
func (p *Path) Steps() []Step { return append([]Step(nil), p.steps...) }

// GIndex folds the path's steps into the single generalized index
// that addresses the same position directly from root's own backing,
// per spec.md §5's g = 1; g = g*2^depth(step) + local_offset rule.
func (p *Path) GIndex() (uint64, error) {
	g := uint64(1)
	cur := p.root
	for _, s := range p.steps {
		next, local, err := step(cur, s)
		if err != nil {
			return 0, err
		}
		g = concat(g, local)
		cur = next
	}
	return g, nil
}

// Type returns the descriptor the path currently points at, after
// folding every accumulated step.
func (p *Path) Type() (schema.Descriptor, error) {
	cur := p.root
	for _, s := range p.steps {
		next, _, err := step(cur, s)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// step resolves one navigation step against cur, returning the
// descriptor it lands on and the generalized index local to cur's own
// backing root (1).
func step(cur schema.Descriptor, s Step) (schema.Descriptor, uint64, error) {
	switch t := cur.(type) {
	case *schema.Container:
		if s.kind != stepField {
			return nil, 0, ssz.NewNavigationError("container step requires a field name")
		}
		idx, ok := t.FieldIndex(s.Field)
		if !ok {
			return nil, 0, ssz.NewUnknownFieldError(s.Field)
		}
		return t.Fields()[idx].Type, leafGIndex(t.ChunkLimit(), idx), nil

	case *schema.Vector:
		if s.kind != stepIndex {
			return nil, 0, ssz.NewNavigationError("vector step requires an element index")
		}
		if s.Index < 0 || uint64(s.Index) >= t.Length() {
			return nil, 0, ssz.NewIndexOutOfRangeError(s.Index, int(t.Length()))
		}
		if t.IsPacked() {
			return nil, 0, ssz.NewNavigationError("cannot path below a packed basic element; address its chunk instead")
		}
		return t.Elem(), leafGIndex(t.ChunkLimit(), s.Index), nil

	case *schema.List:
		if s.kind != stepIndex {
			return nil, 0, ssz.NewNavigationError("list step requires an element index")
		}
		if t.IsPacked() {
			return nil, 0, ssz.NewNavigationError("cannot path below a packed basic element; address its chunk instead")
		}
		return t.Elem(), concat(2, leafGIndex(t.ChunkLimit(), s.Index)), nil

	case *schema.Union:
		if s.kind != stepVariant {
			return nil, 0, ssz.NewNavigationError("union step requires a selector")
		}
		variant, ok := t.VariantAt(s.Selector)
		if !ok {
			return nil, 0, ssz.NewTypeMismatchError("valid union selector", "out of range")
		}
		return variant, 2, nil

	default:
		return nil, 0, ssz.NewNavigationError(fmt.Sprintf("cannot navigate further into %s", cur.String()))
	}
}

// leafGIndex is the generalized index of leaf i among
// NextPowerOfTwo(limit) leaves.
func leafGIndex(limit uint64, i int) uint64 {
	return merkle.NextPowerOfTwo(limit) + uint64(i)
}

// concat composes an outer generalized index with one local to the
// subtree rooted at that position (see view.gindexConcat; duplicated
// here to keep path free of a view dependency for this arithmetic).
func concat(outer, inner uint64) uint64 {
	d := merkle.GIndexDepth(inner)
	mask := uint64(1)<<d - 1
	return outer<<d | (inner & mask)
}

// Get fetches the node at p's generalized index within root's
// backing.
func Get(root merkle.Node, p *Path) (merkle.Node, error) {
	g, err := p.GIndex()
	if err != nil {
		return nil, err
	}
	return merkle.Getter(root, g)
}

// Set returns a new backing identical to root except that the subtree
// at p's generalized index has been replaced by newNode.
func Set(root merkle.Node, p *Path, newNode merkle.Node) (merkle.Node, error) {
	g, err := p.GIndex()
	if err != nil {
		return nil, err
	}
	return merkle.Setter(root, g, newNode)
}

// Resolve walks v's view tree step by step instead of folding a
// generalized index, so it benefits from view's typed accessors (and
// fails with ssz.PartialBackingError precisely where a partial backing
// actually runs out of data, rather than only at the final index).
func Resolve(v view.View, steps ...Step) (view.View, error) {
	cur := v
	for _, s := range steps {
		var err error
		cur, err = resolveOne(cur, s)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func resolveOne(v view.View, s Step) (view.View, error) {
	switch t := v.(type) {
	case *view.ContainerView:
		if s.kind != stepField {
			return nil, ssz.NewNavigationError("container step requires a field name")
		}
		return t.Field(s.Field)
	case *view.VectorView:
		if s.kind != stepIndex {
			return nil, ssz.NewNavigationError("vector step requires an element index")
		}
		return t.Get(s.Index)
	case *view.ListView:
		if s.kind != stepIndex {
			return nil, ssz.NewNavigationError("list step requires an element index")
		}
		return t.Get(s.Index)
	case *view.UnionView:
		if s.kind != stepVariant {
			return nil, ssz.NewNavigationError("union step requires a selector")
		}
		sel, err := t.Selector()
		if err != nil {
			return nil, err
		}
		if sel != s.Selector {
			return nil, ssz.NewTypeMismatchError(fmt.Sprintf("selector %d", s.Selector), fmt.Sprintf("selector %d", sel))
		}
		return t.Value()
	default:
		return nil, ssz.NewNavigationError(fmt.Sprintf("cannot navigate further into %s", v.Type().String()))
	}
}

// Leaves re-exposes merkle.LeafIter for callers working with
// path/view types without importing merkle directly.
func Leaves(root merkle.Node) iter.Seq[merkle.Chunk] {
	return merkle.LeafIter(root)
}

// Diff re-exposes merkle.TreeDiff.
func Diff(a, b merkle.Node) iter.Seq[merkle.Diff] {
	return merkle.TreeDiff(a, b)
}
