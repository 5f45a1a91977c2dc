package ssz

// Kind identifies the shape of an SSZ type descriptor. It is the
// adapted, runtime-facing counterpart of the teacher's schema TypeName:
// instead of driving code generation it drives which constructor the
// schema and view packages dispatch to.
type Kind string

const (
	KindBool    Kind = "bool"
	KindUint8   Kind = "uint8"
	KindUint16  Kind = "uint16"
	KindUint32  Kind = "uint32"
	KindUint64  Kind = "uint64"
	KindUint128 Kind = "uint128"
	KindUint256 Kind = "uint256"

	KindContainer Kind = "container"

	KindVector Kind = "vector"
	KindList   Kind = "list"

	KindBitVector Kind = "bitvector"
	KindBitList   Kind = "bitlist"

	KindByteVector Kind = "bytevector"
	KindByteList   Kind = "bytelist"

	KindUnion Kind = "union"
)

// HashableSSZ is implemented by any value capable of reporting its own
// hash-tree-root, independent of which concrete view/backing produced
// it. Basic views, composite views, and Prehash all satisfy it.
type HashableSSZ interface {
	HashTreeRoot() ([32]byte, error)
}

// Prehash lets a caller splice an already-computed root into a position
// that expects a HashableSSZ, e.g. when reconstructing a proof subtree
// whose interior was discarded.
type Prehash [32]byte

func (p *Prehash) HashTreeRoot() ([32]byte, error) {
	return *p, nil
}
