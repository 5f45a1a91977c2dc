package schema

import (
	"fmt"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
)

// FieldDef names one container field and its type, in declaration
// order — order is significant, it is the order fields are chunked,
// encoded, and addressed by index.
type FieldDef struct {
	Name string
	Type Descriptor
}

// Container describes a fixed-order set of named, heterogeneously
// typed fields, laid out as the leaves of a tree of depth
// ceil(log2(N)) per spec.md §4.3.
type Container struct {
	name   string
	fields []FieldDef
	index  map[string]int

	variable bool
	min, max int
}

// NewContainer builds a container descriptor. Field names must be
// unique; this is validated eagerly so a malformed schema fails at
// construction time rather than on first use.
func NewContainer(name string, fields ...FieldDef) (*Container, error) {
	c := &Container{
		name:   name,
		fields: append([]FieldDef(nil), fields...),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range c.fields {
		if f.Name == "" {
			return nil, fmt.Errorf("sszview/schema: container %q field %d has empty name", name, i)
		}
		if _, dup := c.index[f.Name]; dup {
			return nil, fmt.Errorf("sszview/schema: container %q declares field %q twice", name, f.Name)
		}
		c.index[f.Name] = i
	}
	c.computeBounds()
	return c, nil
}

// Extend builds a new container that appends extra fields after
// base's own fields — the single-level, append-only inheritance
// spec.md §6.3 describes. Re-declaring a field base already has is
// rejected, matching the source's append-only behavior (spec.md §9
// Open Questions).
func Extend(name string, base *Container, extra ...FieldDef) (*Container, error) {
	combined := append(append([]FieldDef(nil), base.fields...), extra...)
	return NewContainer(name, combined...)
}

func (c *Container) computeBounds() {
	min, max := 0, 0
	variable := false
	for _, f := range c.fields {
		if f.Type.IsVariableSize() {
			variable = true
			min += 4
			max += 4 + f.Type.MaxByteLength()
		} else {
			min += f.Type.FixedByteLength()
			max += f.Type.FixedByteLength()
		}
	}
	c.variable, c.min, c.max = variable, min, max
}

func (c *Container) Kind() ssz.Kind { return ssz.KindContainer }
func (c *Container) String() string {
	if c.name != "" {
		return c.name
	}
	return "container"
}

func (c *Container) IsVariableSize() bool { return c.variable }
func (c *Container) FixedByteLength() int {
	if c.variable {
		return 0
	}
	return c.min
}
func (c *Container) MinByteLength() int { return c.min }
func (c *Container) MaxByteLength() int { return c.max }
func (c *Container) ChunkLimit() uint64 { return uint64(len(c.fields)) }

func (c *Container) DefaultNode() merkle.Node {
	leaves := make([]merkle.Node, len(c.fields))
	for i, f := range c.fields {
		leaves[i] = f.Type.DefaultNode()
	}
	return merkle.BuildTree(leaves, c.ChunkLimit())
}

// Fields returns the container's fields in declaration order.
func (c *Container) Fields() []FieldDef { return c.fields }

// FieldIndex returns the position of the named field, if any.
func (c *Container) FieldIndex(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// NumFields is len(Fields()), the container's chunk limit before
// rounding to a power of two.
func (c *Container) NumFields() int { return len(c.fields) }
