package schema

import (
	"fmt"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
)

// noneDescriptor is the synthetic type of union selector 0: no value,
// a zero-depth subtree as its backing.
type noneDescriptor struct{}

func (noneDescriptor) Kind() ssz.Kind          { return ssz.KindUnion }
func (noneDescriptor) String() string          { return "None" }
func (noneDescriptor) IsVariableSize() bool     { return false }
func (noneDescriptor) FixedByteLength() int     { return 0 }
func (noneDescriptor) MinByteLength() int       { return 0 }
func (noneDescriptor) MaxByteLength() int       { return 0 }
func (noneDescriptor) ChunkLimit() uint64       { return 0 }
func (noneDescriptor) DefaultNode() merkle.Node { return merkle.NewLeaf(merkle.ZeroChunk) }

// None is the descriptor every Union reserves for selector 0.
var None Descriptor = noneDescriptor{}

// Union describes a tagged choice between selector 0 (None, no value)
// and one or more value variants at selectors 1..K-1.
type Union struct {
	// variants[0] is always None; variants[1:] are the caller's value
	// types in selector order.
	variants []Descriptor
}

// NewUnion builds a union descriptor over valueTypes, which become
// selectors 1..len(valueTypes). Selector 0 (None) is implicit.
// spec.md §6.3 requires at least 2 total variants, so at least one
// value type must be given.
func NewUnion(valueTypes ...Descriptor) (*Union, error) {
	if len(valueTypes) == 0 {
		return nil, fmt.Errorf("sszview/schema: union needs at least one value variant besides None")
	}
	variants := make([]Descriptor, 0, len(valueTypes)+1)
	variants = append(variants, None)
	variants = append(variants, valueTypes...)
	return &Union{variants: variants}, nil
}

func (u *Union) Kind() ssz.Kind { return ssz.KindUnion }
func (u *Union) String() string { return fmt.Sprintf("Union(%d variants)", len(u.variants)) }

func (u *Union) IsVariableSize() bool { return true }
func (u *Union) FixedByteLength() int { return 0 }
func (u *Union) MinByteLength() int   { return 1 }

func (u *Union) MaxByteLength() int {
	max := 0
	for _, v := range u.variants {
		if v.MaxByteLength() > max {
			max = v.MaxByteLength()
		}
	}
	return 1 + max
}

// ChunkLimit does not apply to unions: their backing is a single
// Pair(value, selector), never a merkleized chunk list.
func (u *Union) ChunkLimit() uint64 { return 0 }

func (u *Union) DefaultNode() merkle.Node {
	return merkle.SelectorMixedPair(None.DefaultNode(), 0)
}

// Variants returns the full variant list, with Variants()[0] == None.
func (u *Union) Variants() []Descriptor { return u.variants }

// NumVariants is K, the total selector count including None.
func (u *Union) NumVariants() int { return len(u.variants) }

// VariantAt returns the descriptor for selector, and whether selector
// is in range.
func (u *Union) VariantAt(selector uint64) (Descriptor, bool) {
	if selector >= uint64(len(u.variants)) {
		return nil, false
	}
	return u.variants[selector], true
}
