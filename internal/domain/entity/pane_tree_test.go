package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("c%d", n)
	}
}

func sampleTree() *PaneNode {
	return NewSplit("root", AxisHorizontal, 0.5,
		NewLeaf("a", ContentTimeline),
		NewSplit("inner", AxisVertical, 0.4,
			NewLeaf("b", ContentGraphEditor),
			NewLeaf("c", ContentPianoRoll),
		),
	)
}

func assertUniqueIDs(t *testing.T, root *PaneNode) {
	t.Helper()
	seen := map[PaneNodeID]bool{}
	for _, id := range root.IDs() {
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestUpdateNode_CopiesOnlyPathToTarget(t *testing.T) {
	root := sampleTree()
	oldA := root.Children[0]
	oldInner := root.Children[1]
	oldC := oldInner.Children[1]

	updated := UpdateNode(root, "b", func(n *PaneNode) *PaneNode {
		return NewLeaf(n.ID, ContentNodeInspector)
	})

	require.NotSame(t, root, updated)
	assert.Same(t, oldA, updated.Children[0], "untouched sibling must be shared")
	assert.NotSame(t, oldInner, updated.Children[1], "ancestor must be copied")
	assert.Same(t, oldC, updated.Children[1].Children[1])
	assert.Equal(t, ContentNodeInspector, updated.Find("b").ContentType)

	// Original tree is left intact.
	assert.Equal(t, ContentGraphEditor, root.Find("b").ContentType)
}

func TestUpdateNode_MissingTargetIsNoOp(t *testing.T) {
	root := sampleTree()
	called := false

	updated := UpdateNode(root, "missing", func(n *PaneNode) *PaneNode {
		called = true
		return n
	})

	assert.False(t, called)
	assert.Same(t, root, updated)
	assert.True(t, sampleTree().Equal(updated))
}

func TestSplitNode(t *testing.T) {
	root := NewRootLayout(ContentTimeline)

	updated := SplitNode(root, RootPaneID, AxisHorizontal, 0.5, sequentialIDs())

	require.True(t, updated.IsSplit())
	assert.Equal(t, RootPaneID, updated.ID, "split keeps the leaf's id")
	assert.Equal(t, AxisHorizontal, updated.Axis)
	assert.Equal(t, 0.5, updated.Size)
	assert.Equal(t, PaneNodeID("c1"), updated.First().ID)
	assert.Equal(t, PaneNodeID("c2"), updated.Second().ID)
	assert.Equal(t, ContentTimeline, updated.First().ContentType)
	assert.Equal(t, ContentTimeline, updated.Second().ContentType)
	assertUniqueIDs(t, updated)
	assert.True(t, root.IsLeaf(), "input tree is not mutated")
}

func TestSplitNode_OnSplitIsNoOp(t *testing.T) {
	root := sampleTree()
	gen := sequentialIDs()

	updated := SplitNode(root, "inner", AxisHorizontal, 0.5, gen)

	assert.True(t, sampleTree().Equal(updated))
	assert.Equal(t, "c1", gen(), "no ids are minted for a rejected split")
}

func TestResizeNode(t *testing.T) {
	root := sampleTree()

	updated := ResizeNode(root, "inner", 0.7)

	assert.Equal(t, 0.7, updated.Find("inner").Size)
	assert.Equal(t, root.IDs(), updated.IDs(), "resize never changes ids or structure")
	assert.Same(t, root.Children[0], updated.Children[0])
}

func TestMergeNode(t *testing.T) {
	tests := []struct {
		name      string
		parentID  PaneNodeID
		remaining PaneNodeID
		check     func(t *testing.T, merged *PaneNode)
	}{
		{
			name:      "keep first child",
			parentID:  "inner",
			remaining: "b",
			check: func(t *testing.T, merged *PaneNode) {
				node := merged.Find("inner")
				require.NotNil(t, node)
				assert.True(t, node.IsLeaf())
				assert.Equal(t, ContentGraphEditor, node.ContentType)
				assert.Nil(t, merged.Find("b"))
				assert.Nil(t, merged.Find("c"))
			},
		},
		{
			name:      "keep second child",
			parentID:  "inner",
			remaining: "c",
			check: func(t *testing.T, merged *PaneNode) {
				node := merged.Find("inner")
				require.NotNil(t, node)
				assert.Equal(t, ContentPianoRoll, node.ContentType)
			},
		},
		{
			name:      "keep subtree at root",
			parentID:  "root",
			remaining: "inner",
			check: func(t *testing.T, merged *PaneNode) {
				assert.Equal(t, RootPaneID, merged.ID)
				require.True(t, merged.IsSplit())
				assert.Equal(t, AxisVertical, merged.Axis)
				assert.Equal(t, 0.4, merged.Size)
				assert.Equal(t, PaneNodeID("b"), merged.First().ID)
				assert.Nil(t, merged.Find("a"))
				assert.Nil(t, merged.Find("inner"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := sampleTree()
			merged := MergeNode(root, tt.parentID, tt.remaining)
			tt.check(t, merged)
			assertUniqueIDs(t, merged)
			require.NoError(t, merged.Validate())
		})
	}
}

func TestMergeNode_NotDirectChildIsNoOp(t *testing.T) {
	root := sampleTree()

	assert.True(t, sampleTree().Equal(MergeNode(root, "root", "b")), "grandchild is not a direct child")
	assert.True(t, sampleTree().Equal(MergeNode(root, "root", "missing")))
}

func TestLeafTargetedOperationsAreNoOps(t *testing.T) {
	for _, size := range []float64{-1, 0, 0.25, 1, 42} {
		root := sampleTree()
		assert.True(t, sampleTree().Equal(ResizeNode(root, "a", size)), "resize leaf %v", size)
	}
	for _, remaining := range []PaneNodeID{"a", "b", "root", ""} {
		root := sampleTree()
		assert.True(t, sampleTree().Equal(MergeNode(root, "a", remaining)), "merge leaf toward %q", remaining)
	}
	root := sampleTree()
	assert.True(t, sampleTree().Equal(SetContentType(root, "inner", ContentTimeline)), "content type on split")
}

func TestSplitThenMergeRestoresLeaf(t *testing.T) {
	for _, keepFirst := range []bool{true, false} {
		root := NewLeaf("L", ContentNodeInspector)
		split := SplitNode(root, "L", AxisVertical, 0.3, sequentialIDs())

		survivor := split.Second().ID
		if keepFirst {
			survivor = split.First().ID
		}
		merged := MergeNode(split, "L", survivor)

		assert.True(t, merged.IsLeaf())
		assert.Equal(t, PaneNodeID("L"), merged.ID)
		assert.Equal(t, ContentNodeInspector, merged.ContentType)
	}
}

func TestEndToEndLayoutScenario(t *testing.T) {
	root := NewRootLayout(ContentTimeline)

	root = SplitNode(root, RootPaneID, AxisHorizontal, 0.5, sequentialIDs())
	require.True(t, root.IsSplit())
	assert.Equal(t, PaneNodeID("c1"), root.First().ID)
	assert.Equal(t, PaneNodeID("c2"), root.Second().ID)

	before := root.IDs()
	root = SetContentType(root, "c2", ContentGraphEditor)
	assert.Equal(t, before, root.IDs(), "content reassignment preserves shape")
	assert.Equal(t, ContentGraphEditor, root.Find("c2").ContentType)
	assert.Equal(t, ContentTimeline, root.Find("c1").ContentType)

	root = MergeNode(root, RootPaneID, "c1")
	require.True(t, root.IsLeaf())
	assert.Equal(t, RootPaneID, root.ID)
	assert.Equal(t, ContentTimeline, root.ContentType)
	assert.Nil(t, root.Find("c2"))
}

func TestRepeatedOperationsKeepIDsUnique(t *testing.T) {
	gen := sequentialIDs()
	root := NewRootLayout(ContentTimeline)

	root = SplitNode(root, RootPaneID, AxisHorizontal, 0.5, gen)
	root = SplitNode(root, "c1", AxisVertical, 0.5, gen)
	root = SplitNode(root, "c4", AxisHorizontal, 0.5, gen)
	assertUniqueIDs(t, root)

	root = MergeNode(root, "c1", "c3")
	assertUniqueIDs(t, root)
	root = SplitNode(root, "c1", AxisHorizontal, 0.6, gen)
	assertUniqueIDs(t, root)
	require.NoError(t, root.Validate())
}
