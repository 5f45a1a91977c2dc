// Package schema holds the per-type static metadata spec.md calls a
// "type descriptor": default backing, serialization bounds, chunk
// layout, and root-mixing rules for every SSZ type category. It is the
// adapted, runtime-value successor of the teacher's declarative
// types.go Field/TypeName pair — instead of feeding a code generator it
// is consumed directly by the view and codec packages.
package schema

import (
	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
)

// Descriptor is the static, immutable metadata for one SSZ type. Every
// concrete descriptor (Basic, Container, Vector, List, BitVector,
// BitList, ByteVector, ByteList, Union) implements it.
type Descriptor interface {
	// Kind identifies which concrete descriptor this is.
	Kind() ssz.Kind
	// String names the type for diagnostics (not part of the wire
	// format).
	String() string
	// IsVariableSize reports whether the type's encoded length
	// depends on its value (list, bitlist, union, or a container/
	// vector holding one).
	IsVariableSize() bool
	// FixedByteLength is only meaningful when !IsVariableSize(); it
	// is the type's exact encoded length.
	FixedByteLength() int
	// MinByteLength and MaxByteLength bound byte_length(value) for
	// every legal value of this type.
	MinByteLength() int
	MaxByteLength() int
	// DefaultNode returns the backing of this type's zero value.
	DefaultNode() merkle.Node
	// ChunkLimit is the merkleization limit (spec.md §4.1's
	// merkleize(chunks, limit)) used when computing this type's
	// hash-tree-root. Basic types return 0 (they are never
	// merkleized: a basic value's root is its own zero-padded chunk,
	// whether it stands alone or is packed into a parent's chunk).
	ChunkLimit() uint64
}

// fixedSize is embedded by descriptors whose encoded length never
// varies, to avoid repeating the same three-method stub everywhere.
type fixedSize struct {
	length int
}

func (f fixedSize) IsVariableSize() bool { return false }
func (f fixedSize) FixedByteLength() int { return f.length }
func (f fixedSize) MinByteLength() int   { return f.length }
func (f fixedSize) MaxByteLength() int   { return f.length }

// variableSize is embedded by descriptors whose encoded length depends
// on the value.
type variableSize struct {
	min, max int
}

func (v variableSize) IsVariableSize() bool { return true }
func (v variableSize) FixedByteLength() int { return 0 }
func (v variableSize) MinByteLength() int   { return v.min }
func (v variableSize) MaxByteLength() int   { return v.max }
