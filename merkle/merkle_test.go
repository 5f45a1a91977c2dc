package merkle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/merkle"
)

func leaf(b byte) merkle.Node {
	var c merkle.Chunk
	c[0] = b
	return merkle.NewLeaf(c)
}

func TestGetterSetterRoundTrip(t *testing.T) {
	// gindex 4,5,6,7 address leaves 0..3 in order: leaf(1),leaf(2),leaf(3),leaf(4).
	tree := merkle.BuildTree([]merkle.Node{leaf(1), leaf(2), leaf(3), leaf(4)}, 4)

	got, err := merkle.Getter(tree, 5) // leaf index 1
	require.NoError(t, err)
	require.Equal(t, leaf(2).Root(), got.Root())

	replaced, err := merkle.Setter(tree, 5, leaf(99))
	require.NoError(t, err)

	got, err = merkle.Getter(replaced, 5)
	require.NoError(t, err)
	require.Equal(t, leaf(99).Root(), got.Root())

	// Sibling leaf is shared by reference, not rebuilt.
	unchanged, err := merkle.Getter(replaced, 4)
	require.NoError(t, err)
	require.Equal(t, leaf(1).Root(), unchanged.Root())

	require.NotEqual(t, tree.Root(), replaced.Root())
}

func TestSummarizeIntoPreservesRootAndHidesDetail(t *testing.T) {
	tree := merkle.BuildTree([]merkle.Node{leaf(1), leaf(2), leaf(3), leaf(4)}, 4)

	summarized, err := merkle.SummarizeInto(tree, 2) // left half: leaf indices 0,1
	require.NoError(t, err)
	require.Equal(t, tree.Root(), summarized.Root())

	_, err = merkle.Getter(summarized, 4) // inside the collapsed subtree
	require.Error(t, err)
	require.ErrorAs(t, err, new(*ssz.PartialBackingError))

	got, err := merkle.Getter(summarized, 6) // outside it, still resolvable
	require.NoError(t, err)
	require.Equal(t, leaf(3).Root(), got.Root())
}

func TestLeafIterYieldsInOrder(t *testing.T) {
	tree := merkle.BuildTree([]merkle.Node{leaf(1), leaf(2), leaf(3)}, 4)

	var got []byte
	for c := range merkle.LeafIter(tree) {
		got = append(got, c[0])
	}
	require.Equal(t, []byte{1, 2, 3, 0}, got)
}

func TestTreeDiffPrunesEqualSubtrees(t *testing.T) {
	a := merkle.BuildTree([]merkle.Node{leaf(1), leaf(2), leaf(3), leaf(4)}, 4)
	b, err := merkle.Setter(a, 5, leaf(200)) // change only leaf index 1 (gindex 5)
	require.NoError(t, err)

	var diffs []merkle.Diff
	for d := range merkle.TreeDiff(a, b) {
		diffs = append(diffs, d)
	}
	require.Len(t, diffs, 1)
	require.Equal(t, uint64(5), diffs[0].GIndex)
	require.Equal(t, leaf(2).Root(), diffs[0].A.Root())
	require.Equal(t, leaf(200).Root(), diffs[0].B.Root())
}

func TestTreeDiffEmptyWhenRootsEqual(t *testing.T) {
	a := merkle.BuildTree([]merkle.Node{leaf(1), leaf(2)}, 2)
	b := merkle.BuildTree([]merkle.Node{leaf(1), leaf(2)}, 2)

	count := 0
	for range merkle.TreeDiff(a, b) {
		count++
	}
	require.Equal(t, 0, count)
}

func TestMixInLengthAndSelectorChangeRoot(t *testing.T) {
	content := merkle.BuildTree([]merkle.Node{leaf(1)}, 1)
	withLength := merkle.LengthMixedPair(content, 3)
	withSelector := merkle.SelectorMixedPair(content, 1)

	require.NotEqual(t, content.Root(), withLength.Root())
	require.NotEqual(t, content.Root(), withSelector.Root())
	require.NotEqual(t, withLength.Root(), withSelector.Root())
}

func TestPackBytesPacksIntoChunksOf32(t *testing.T) {
	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(i)
	}
	leaves := merkle.PackBytes(data)
	require.Len(t, leaves, 2)
	require.Equal(t, byte(0), leaves[0].Root()[0])
	require.Equal(t, byte(32), leaves[1].Root()[0])
}

func TestNextPowerOfTwoAndDepth(t *testing.T) {
	require.Equal(t, uint64(1), merkle.NextPowerOfTwo(0))
	require.Equal(t, uint64(1), merkle.NextPowerOfTwo(1))
	require.Equal(t, uint64(4), merkle.NextPowerOfTwo(3))
	require.Equal(t, uint64(4), merkle.NextPowerOfTwo(4))
	require.Equal(t, uint8(2), merkle.Depth(4))
}
