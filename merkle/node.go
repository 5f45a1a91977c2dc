package merkle

import (
	"errors"
	"sync/atomic"
)

// Node is the tagged-variant Merkle tree node: Leaf, Pair, Virtual, or
// RootOnly all satisfy it. Per the teacher's "polymorphism over node
// variants" idiom (see DESIGN.md), there is no class hierarchy — every
// variant is a small struct implementing this interface directly.
type Node interface {
	// Root returns the node's 32-byte Merkle root. Pure function of
	// content; for Pair it is memoized on first call.
	Root() Chunk
	// IsLeaf reports whether the node has no descendable children
	// (true for both Leaf and RootOnly).
	IsLeaf() bool
	// Left and Right return the node's children. A Leaf or RootOnly
	// returns errNotTraversable; a Virtual whose factory cannot
	// resolve the branch returns errUnresolvedVirtual.
	Left() (Node, error)
	Right() (Node, error)
}

var (
	errNotTraversable   = errors.New("merkle: node has no children to traverse")
	errUnresolvedVirtual = errors.New("merkle: virtual node's child factory has no data")
)

// leafNode owns a chunk directly; it is the payload-bearing leaf of a
// real (non-proof) tree.
type leafNode struct {
	chunk Chunk
}

// NewLeaf wraps a chunk as a tree leaf.
func NewLeaf(c Chunk) Node { return &leafNode{chunk: c} }

func (l *leafNode) Root() Chunk          { return l.chunk }
func (l *leafNode) IsLeaf() bool         { return true }
func (l *leafNode) Left() (Node, error)  { return nil, errNotTraversable }
func (l *leafNode) Right() (Node, error) { return nil, errNotTraversable }

// pairNode owns two children; its root is H(left.root || right.root),
// computed lazily and cached once on first demand. Pair nodes are
// immutable once constructed, so the cache is never invalidated.
type pairNode struct {
	left, right Node

	rootComputed atomic.Bool
	cachedRoot   Chunk
}

// NewPair builds a branch node over two children. It does not hash
// eagerly; Root() computes and memoizes lazily.
func NewPair(left, right Node) Node {
	return &pairNode{left: left, right: right}
}

func (p *pairNode) Root() Chunk {
	if p.rootComputed.Load() {
		return p.cachedRoot
	}
	root := HashPair(p.left.Root(), p.right.Root())
	// Concurrent computation is benign: HashPair is a pure function of
	// immutable children, so a racing writer settles on the same
	// value. No lock needed, just a flag to skip recomputation once set.
	p.cachedRoot = root
	p.rootComputed.Store(true)
	return p.cachedRoot
}

func (p *pairNode) IsLeaf() bool         { return false }
func (p *pairNode) Left() (Node, error)  { return p.left, nil }
func (p *pairNode) Right() (Node, error) { return p.right, nil }

// virtualNode carries a precomputed root and resolves children lazily
// through a factory, the substitute for lazy attribute access used by
// partial (proof) trees. A factory that returns ok=false means the
// branch genuinely has no data backing it; callers see
// ssz.PartialBackingError at the generalized index they asked for.
type virtualNode struct {
	root    Chunk
	resolve func() (left, right Node, ok bool)
}

// NewVirtual builds a node whose root is already known but whose
// children are resolved on demand (or not at all, for partial trees).
func NewVirtual(root Chunk, resolve func() (left, right Node, ok bool)) Node {
	return &virtualNode{root: root, resolve: resolve}
}

func (v *virtualNode) Root() Chunk  { return v.root }
func (v *virtualNode) IsLeaf() bool { return false }

func (v *virtualNode) Left() (Node, error) {
	left, _, ok := v.resolve()
	if !ok {
		return nil, errUnresolvedVirtual
	}
	return left, nil
}

func (v *virtualNode) Right() (Node, error) {
	_, right, ok := v.resolve()
	if !ok {
		return nil, errUnresolvedVirtual
	}
	return right, nil
}

// rootOnlyNode is a terminal proof leaf: it carries a root with no
// recoverable children at all (unlike Virtual, there is no factory to
// ask). Produced by SummarizeInto when collapsing a subtree.
type rootOnlyNode struct {
	root Chunk
}

// NewRootOnly wraps a bare root as a terminal node.
func NewRootOnly(root Chunk) Node { return &rootOnlyNode{root: root} }

func (r *rootOnlyNode) Root() Chunk          { return r.root }
func (r *rootOnlyNode) IsLeaf() bool         { return true }
func (r *rootOnlyNode) Left() (Node, error)  { return nil, errNotTraversable }
func (r *rootOnlyNode) Right() (Node, error) { return nil, errNotTraversable }

// IsRootOnly reports whether n is a collapsed terminal node, as opposed
// to a genuine data-bearing Leaf. Proof tooling uses this to tell "we
// never had this data" apart from "this is really a 32-byte value".
func IsRootOnly(n Node) bool {
	_, ok := n.(*rootOnlyNode)
	return ok
}
