package merkle

import (
	"errors"
	"iter"

	ssz "github.com/gfx-labs/sszview"
)

// pathBits decomposes a generalized index into the left(false)/right(true)
// steps taken from the root to reach it, most significant first. g's
// leading bit is the implicit root marker and is not itself a step.
func pathBits(g uint64) []bool {
	depth := GIndexDepth(g)
	bits := make([]bool, depth)
	for i := uint8(0); i < depth; i++ {
		shift := depth - 1 - i
		bits[i] = (g>>shift)&1 == 1
	}
	return bits
}

// Getter returns the node at generalized index g within root's tree.
func Getter(root Node, g uint64) (Node, error) {
	if g == 0 {
		return nil, ssz.NewNavigationError("generalized index must be >= 1")
	}
	node := root
	cur := uint64(1)
	for _, goRight := range pathBits(g) {
		if node.IsLeaf() {
			if IsRootOnly(node) {
				return nil, ssz.NewPartialBackingError(cur)
			}
			return nil, ssz.NewNavigationError("path continues past a leaf")
		}
		var next Node
		var err error
		if goRight {
			next, err = node.Right()
			cur = RightChild(cur)
		} else {
			next, err = node.Left()
			cur = LeftChild(cur)
		}
		if err != nil {
			if errors.Is(err, errUnresolvedVirtual) {
				return nil, ssz.NewPartialBackingError(cur)
			}
			return nil, err
		}
		node = next
	}
	return node, nil
}

// Setter returns a new tree identical to root except that the subtree
// at g has been replaced by newNode. Every untouched sibling subtree is
// shared by reference with the original.
func Setter(root Node, g uint64, newNode Node) (Node, error) {
	if g == 0 {
		return nil, ssz.NewNavigationError("generalized index must be >= 1")
	}
	if g == 1 {
		return newNode, nil
	}
	return setterRec(root, pathBits(g), newNode, 1)
}

func setterRec(node Node, bits []bool, newNode Node, cur uint64) (Node, error) {
	if len(bits) == 0 {
		return newNode, nil
	}
	if node.IsLeaf() {
		if IsRootOnly(node) {
			return nil, ssz.NewPartialBackingError(cur)
		}
		return nil, ssz.NewNavigationError("setter path continues past a leaf")
	}
	left, err := node.Left()
	if err != nil {
		return nil, wrapVirtualErr(err, LeftChild(cur))
	}
	right, err := node.Right()
	if err != nil {
		return nil, wrapVirtualErr(err, RightChild(cur))
	}
	if bits[0] {
		newRight, err := setterRec(right, bits[1:], newNode, RightChild(cur))
		if err != nil {
			return nil, err
		}
		return NewPair(left, newRight), nil
	}
	newLeft, err := setterRec(left, bits[1:], newNode, LeftChild(cur))
	if err != nil {
		return nil, err
	}
	return NewPair(newLeft, right), nil
}

func wrapVirtualErr(err error, g uint64) error {
	if errors.Is(err, errUnresolvedVirtual) {
		return ssz.NewPartialBackingError(g)
	}
	return err
}

// SummarizeInto collapses the subtree at g to a root-only node carrying
// that subtree's root, discarding interior detail while leaving the
// overall tree's root unchanged.
func SummarizeInto(root Node, g uint64) (Node, error) {
	sub, err := Getter(root, g)
	if err != nil {
		return nil, err
	}
	return Setter(root, g, NewRootOnly(sub.Root()))
}

// LeafIter returns a lazy left-to-right sequence of the tree's leaves.
// Traversal silently stops descending into any branch whose children
// cannot be resolved (an unresolved virtual node in a partial tree);
// no leaves are yielded from beneath it.
func LeafIter(root Node) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		var walk func(Node) bool
		walk = func(n Node) bool {
			if n.IsLeaf() {
				return yield(n.Root())
			}
			left, err := n.Left()
			if err != nil {
				return true
			}
			if !walk(left) {
				return false
			}
			right, err := n.Right()
			if err != nil {
				return true
			}
			return walk(right)
		}
		walk(root)
	}
}

// Diff is one differing position reported by TreeDiff: a leaf, or a
// node whose children cannot be resolved, where a and b's roots
// disagree.
type Diff struct {
	GIndex uint64
	A, B   Node
}

// TreeDiff returns a lazy sequence of (gindex, a, b) pairs for every
// leaf-level position where a and b's roots disagree. Whenever two
// subtrees' roots are equal, TreeDiff prunes — it never descends into
// them — so the cost of a diff is proportional to the actual amount of
// change, not to the size of either tree.
func TreeDiff(a, b Node) iter.Seq[Diff] {
	return func(yield func(Diff) bool) {
		var walk func(Node, Node, uint64) bool
		walk = func(an, bn Node, g uint64) bool {
			if an.Root() == bn.Root() {
				return true
			}
			if an.IsLeaf() || bn.IsLeaf() {
				return yield(Diff{GIndex: g, A: an, B: bn})
			}
			al, errA := an.Left()
			ar, errA2 := an.Right()
			bl, errB := bn.Left()
			br, errB2 := bn.Right()
			if errA != nil || errA2 != nil || errB != nil || errB2 != nil {
				return yield(Diff{GIndex: g, A: an, B: bn})
			}
			if !walk(al, bl, LeftChild(g)) {
				return false
			}
			return walk(ar, br, RightChild(g))
		}
		if a.Root() != b.Root() {
			walk(a, b, 1)
		}
	}
}
