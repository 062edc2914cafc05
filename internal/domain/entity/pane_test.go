package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaneNode_Predicates(t *testing.T) {
	tests := []struct {
		name      string
		node      *PaneNode
		wantLeaf  bool
		wantSplit bool
	}{
		{
			name:     "leaf",
			node:     NewLeaf("a", ContentTimeline),
			wantLeaf: true,
		},
		{
			name:      "split",
			node:      NewSplit("s", AxisHorizontal, 0.5, NewLeaf("a", ContentTimeline), NewLeaf("b", ContentTimeline)),
			wantSplit: true,
		},
		{
			name: "nil node",
			node: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLeaf, tt.node.IsLeaf())
			assert.Equal(t, tt.wantSplit, tt.node.IsSplit())
		})
	}
}

func TestPaneNode_FindAndParent(t *testing.T) {
	inner := NewSplit("inner", AxisVertical, 0.3, NewLeaf("c", ContentPianoRoll), NewLeaf("d", ContentNodeInspector))
	root := NewSplit("root", AxisHorizontal, 0.5, NewLeaf("a", ContentTimeline), inner)

	assert.Same(t, inner, root.Find("inner"))
	assert.Nil(t, root.Find("missing"))
	assert.Same(t, inner, root.Parent("d"))
	assert.Same(t, root, root.Parent("a"))
	assert.Nil(t, root.Parent("root"))
}

func TestPaneNode_LeavesOrder(t *testing.T) {
	root := NewSplit("root", AxisHorizontal, 0.5,
		NewLeaf("a", ContentTimeline),
		NewSplit("inner", AxisVertical, 0.5, NewLeaf("b", ContentGraphEditor), NewLeaf("c", ContentPianoRoll)),
	)

	var ids []PaneNodeID
	for _, leaf := range root.Leaves() {
		ids = append(ids, leaf.ID)
	}
	assert.Equal(t, []PaneNodeID{"a", "b", "c"}, ids)
	assert.Equal(t, 3, root.LeafCount())
	assert.Equal(t, []PaneNodeID{"root", "a", "inner", "b", "c"}, root.IDs())
}

func TestPaneNode_Validate(t *testing.T) {
	t.Run("valid tree", func(t *testing.T) {
		root := NewSplit("root", AxisHorizontal, 0.5, NewLeaf("a", ContentTimeline), NewLeaf("b", ContentTimeline))
		require.NoError(t, root.Validate())
	})

	t.Run("duplicate id", func(t *testing.T) {
		root := NewSplit("root", AxisHorizontal, 0.5, NewLeaf("a", ContentTimeline), NewLeaf("a", ContentTimeline))
		assert.ErrorIs(t, root.Validate(), ErrDuplicateID)
	})

	t.Run("one child", func(t *testing.T) {
		root := &PaneNode{ID: "root", Children: []*PaneNode{NewLeaf("a", ContentTimeline)}}
		assert.ErrorIs(t, root.Validate(), ErrMalformedNode)
	})

	t.Run("nil child", func(t *testing.T) {
		root := NewSplit("root", AxisHorizontal, 0.5, NewLeaf("a", ContentTimeline), nil)
		assert.ErrorIs(t, root.Validate(), ErrMalformedNode)
	})
}

func TestPaneNode_Equal(t *testing.T) {
	build := func(size float64) *PaneNode {
		return NewSplit("root", AxisHorizontal, size, NewLeaf("a", ContentTimeline), NewLeaf("b", ContentGraphEditor))
	}

	assert.True(t, build(0.5).Equal(build(0.5)))
	assert.False(t, build(0.5).Equal(build(0.6)))
	assert.False(t, build(0.5).Equal(NewLeaf("root", ContentTimeline)))
	assert.True(t, (*PaneNode)(nil).Equal(nil))
}

func TestContentType_ParseAndNext(t *testing.T) {
	tests := []struct {
		in   string
		want ContentType
	}{
		{"Timeline", ContentTimeline},
		{"graph_editor", ContentGraphEditor},
		{"Node Inspector", ContentNodeInspector},
		{"piano-roll", ContentPianoRoll},
	}
	for _, tt := range tests {
		got, err := ParseContentType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseContentType("mixer")
	assert.Error(t, err)

	assert.Equal(t, ContentGraphEditor, ContentTimeline.Next())
	assert.Equal(t, ContentTimeline, ContentPianoRoll.Next())
	assert.False(t, ContentType(42).Valid())
}

func TestRect_Split(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 400, H: 200}

	left, right := r.Split(AxisHorizontal, 0.25)
	assert.Equal(t, Rect{X: 10, Y: 20, W: 100, H: 200}, left)
	assert.Equal(t, Rect{X: 110, Y: 20, W: 300, H: 200}, right)

	top, bottom := r.Split(AxisVertical, 0.5)
	assert.Equal(t, Rect{X: 10, Y: 20, W: 400, H: 100}, top)
	assert.Equal(t, Rect{X: 10, Y: 120, W: 400, H: 100}, bottom)

	assert.True(t, r.Contains(Point{X: 10, Y: 20}))
	assert.False(t, r.Contains(Point{X: 410, Y: 20}))
	assert.Equal(t, 400.0, r.Extent(AxisHorizontal))
	assert.Equal(t, 200.0, r.Extent(AxisVertical))
}
