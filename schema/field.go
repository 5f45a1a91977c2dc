package schema

import (
	"fmt"

	ssz "github.com/gfx-labs/sszview"
)

// Field is a declarative, serializable type-descriptor source: the
// adapted successor of the teacher's types.go Field/TypeName pair.
// Where the teacher fed this shape to a Go code generator, schemaio
// feeds it directly to Build below to produce live Descriptor values.
type Field struct {
	Name string   `json:"name"`
	Type ssz.Kind `json:"type"`

	Size  uint64 `json:"size,omitempty"`
	Limit uint64 `json:"limit,omitempty"`

	// Ref names another top-level Field in the same Document by name,
	// for container fields and vector/list elements that reuse a
	// previously declared type.
	Ref string `json:"ref,omitempty"`

	// Extends names a previously declared container Field whose
	// fields this one appends to (spec.md §6.3's single-level,
	// append-only container inheritance).
	Extends string `json:"extends,omitempty"`

	Children []Field `json:"children,omitempty"`
}

// Document is a named collection of top-level Field declarations, the
// unit schemaio loads from one YAML or JSON source.
type Document struct {
	Package string  `json:"package"`
	Types   []Field `json:"types"`
}

// maxBuildDepth bounds recursive Ref/Extends resolution, the same
// cycle guard the teacher's isVariable/isValid apply via an iteration
// counter.
const maxBuildDepth = 1000

// Build resolves every top-level Field in doc into a live Descriptor,
// returning a lookup by name. Top-level types may reference each other
// by name via Ref or Extends in any order; Build resolves dependencies
// depth-first and caches each named type once built.
func Build(doc Document) (map[string]Descriptor, error) {
	b := &builder{
		byName: make(map[string]Field, len(doc.Types)),
		built:  make(map[string]Descriptor, len(doc.Types)),
	}
	for _, f := range doc.Types {
		if f.Name == "" {
			return nil, fmt.Errorf("sszview/schema: top-level type with empty name")
		}
		if _, dup := b.byName[f.Name]; dup {
			return nil, fmt.Errorf("sszview/schema: type %q declared twice", f.Name)
		}
		b.byName[f.Name] = f
	}
	for _, f := range doc.Types {
		if _, err := b.resolveNamed(f.Name, 0); err != nil {
			return nil, err
		}
	}
	return b.built, nil
}

type builder struct {
	byName map[string]Field
	built  map[string]Descriptor
}

func (b *builder) resolveNamed(name string, depth int) (Descriptor, error) {
	if d, ok := b.built[name]; ok {
		return d, nil
	}
	if depth >= maxBuildDepth {
		return nil, fmt.Errorf("sszview/schema: max depth reached resolving %q - possible circular reference", name)
	}
	f, ok := b.byName[name]
	if !ok {
		return nil, fmt.Errorf("sszview/schema: type %q not found", name)
	}
	d, err := b.build(f, depth+1)
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", name, err)
	}
	b.built[name] = d
	return d, nil
}

func (b *builder) build(f Field, depth int) (Descriptor, error) {
	if depth >= maxBuildDepth {
		return nil, fmt.Errorf("max depth reached - possible circular reference")
	}

	switch f.Type {
	case ssz.KindBool:
		return Bool, nil
	case ssz.KindUint8:
		return Uint8, nil
	case ssz.KindUint16:
		return Uint16, nil
	case ssz.KindUint32:
		return Uint32, nil
	case ssz.KindUint64:
		return Uint64, nil
	case ssz.KindUint128:
		return Uint128, nil
	case ssz.KindUint256:
		return Uint256, nil

	case ssz.KindContainer:
		var base *Container
		if f.Extends != "" {
			baseDesc, err := b.resolveNamed(f.Extends, depth)
			if err != nil {
				return nil, err
			}
			bc, ok := baseDesc.(*Container)
			if !ok {
				return nil, fmt.Errorf("extends %q which is not a container", f.Extends)
			}
			base = bc
		}
		fields := make([]FieldDef, 0, len(f.Children))
		for _, child := range f.Children {
			ct, err := b.resolveChild(child, depth)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", child.Name, err)
			}
			fields = append(fields, FieldDef{Name: child.Name, Type: ct})
		}
		if base != nil {
			return Extend(f.Name, base, fields...)
		}
		return NewContainer(f.Name, fields...)

	case ssz.KindVector:
		elem, err := b.vectorElem(f, depth)
		if err != nil {
			return nil, err
		}
		return NewVector(elem, f.Size)

	case ssz.KindList:
		elem, err := b.vectorElem(f, depth)
		if err != nil {
			return nil, err
		}
		return NewList(elem, f.Limit), nil

	case ssz.KindBitVector:
		return NewBitVector(f.Size)

	case ssz.KindBitList:
		return NewBitList(f.Limit), nil

	case ssz.KindByteVector:
		return NewByteVector(f.Size)

	case ssz.KindByteList:
		return NewByteList(f.Limit), nil

	case ssz.KindUnion:
		variants := make([]Descriptor, 0, len(f.Children))
		for _, child := range f.Children {
			ct, err := b.resolveChild(child, depth)
			if err != nil {
				return nil, err
			}
			variants = append(variants, ct)
		}
		return NewUnion(variants...)

	default:
		return nil, fmt.Errorf("unknown field type %q", f.Type)
	}
}

// vectorElem resolves a vector/list's single element type, which is
// declared as the lone entry in Children (by value) or via Ref.
func (b *builder) vectorElem(f Field, depth int) (Descriptor, error) {
	if f.Ref != "" {
		return b.resolveNamed(f.Ref, depth)
	}
	if len(f.Children) != 1 {
		return nil, fmt.Errorf("%s %q must declare exactly one element via children or ref", f.Type, f.Name)
	}
	return b.resolveChild(f.Children[0], depth)
}

func (b *builder) resolveChild(f Field, depth int) (Descriptor, error) {
	if f.Ref != "" {
		return b.resolveNamed(f.Ref, depth)
	}
	return b.build(f, depth)
}
