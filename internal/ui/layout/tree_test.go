package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/ui/layout"
)

type fixedOverride map[entity.PaneNodeID]float64

func (f fixedOverride) PreviewSize(id entity.PaneNodeID) (float64, bool) {
	size, ok := f[id]
	return size, ok
}

func nestedTree() *entity.PaneNode {
	return entity.NewSplit(entity.RootPaneID, entity.AxisHorizontal, 0.5,
		entity.NewLeaf("c1", entity.ContentTimeline),
		entity.NewSplit("c2", entity.AxisVertical, 0.5,
			entity.NewLeaf("c3", entity.ContentGraphEditor),
			entity.NewLeaf("c4", entity.ContentPianoRoll),
		),
	)
}

func newLaidOutRenderer(t *testing.T, override layout.SizeOverride) *layout.TreeRenderer {
	t.Helper()
	tr := layout.NewTreeRenderer(context.Background(), testCell, 1)
	require.NoError(t, tr.Layout(nestedTree(), entity.Rect{W: 640, H: 480}, override))
	return tr
}

func TestTreeRenderer_LayoutNilRoot(t *testing.T) {
	tr := layout.NewTreeRenderer(context.Background(), testCell, 1)

	err := tr.Layout(nil, entity.Rect{W: 100, H: 100}, nil)

	assert.ErrorIs(t, err, layout.ErrNilRoot)
}

func TestTreeRenderer_MeasuresEveryNode(t *testing.T) {
	// Arrange
	tr := newLaidOutRenderer(t, nil)

	// Act & Assert
	tests := []struct {
		id   entity.PaneNodeID
		want entity.Rect
	}{
		{id: entity.RootPaneID, want: entity.Rect{W: 640, H: 480}},
		{id: "c1", want: entity.Rect{W: 320, H: 480}},
		{id: "c2", want: entity.Rect{X: 328, W: 312, H: 480}},
		{id: "c3", want: entity.Rect{X: 328, W: 312, H: 240}},
		{id: "c4", want: entity.Rect{X: 328, Y: 256, W: 312, H: 224}},
	}
	for _, tt := range tests {
		got, ok := tr.Measure(tt.id)
		require.True(t, ok, string(tt.id))
		assert.Equal(t, tt.want, got, string(tt.id))
	}

	_, ok := tr.Measure("missing")
	assert.False(t, ok)
}

func TestTreeRenderer_LeavesAndSplitsOrder(t *testing.T) {
	tr := newLaidOutRenderer(t, nil)

	var leaves, splits []entity.PaneNodeID
	for _, b := range tr.Leaves() {
		leaves = append(leaves, b.ID)
	}
	for _, b := range tr.Splits() {
		splits = append(splits, b.ID)
	}

	assert.Equal(t, []entity.PaneNodeID{"c1", "c3", "c4"}, leaves)
	assert.Equal(t, []entity.PaneNodeID{entity.RootPaneID, "c2"}, splits)

	box, ok := tr.Box("c2")
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 328, Y: 240, W: 312, H: 16}, box.Handle)
	assert.Equal(t, entity.PaneNodeID("c3"), box.First)
	assert.Equal(t, 1, box.Depth)
}

func TestTreeRenderer_OverrideWinsOverCommittedSize(t *testing.T) {
	tr := newLaidOutRenderer(t, fixedOverride{entity.RootPaneID: 0.25})

	got, ok := tr.Measure("c1")
	require.True(t, ok)
	assert.Equal(t, 160.0, got.W)

	box, _ := tr.Box(entity.RootPaneID)
	assert.Equal(t, 0.25, box.Size)
}

func TestTreeRenderer_HitTest(t *testing.T) {
	tr := newLaidOutRenderer(t, nil)

	tests := []struct {
		name  string
		point entity.Point
		want  layout.Hit
	}{
		{name: "root handle", point: entity.Point{X: 324, Y: 100}, want: layout.Hit{Kind: layout.HitHandle, PaneID: entity.RootPaneID}},
		{name: "nested handle", point: entity.Point{X: 400, Y: 248}, want: layout.Hit{Kind: layout.HitHandle, PaneID: "c2"}},
		{name: "left edge of c3", point: entity.Point{X: 330, Y: 100}, want: layout.Hit{Kind: layout.HitEdge, PaneID: "c3", Edge: layout.EdgeLeft}},
		{name: "top edge of c3", point: entity.Point{X: 400, Y: 8}, want: layout.Hit{Kind: layout.HitEdge, PaneID: "c3", Edge: layout.EdgeTop}},
		{name: "bottom edge of c4", point: entity.Point{X: 400, Y: 470}, want: layout.Hit{Kind: layout.HitEdge, PaneID: "c4", Edge: layout.EdgeBottom}},
		{name: "header of c3", point: entity.Point{X: 400, Y: 20}, want: layout.Hit{Kind: layout.HitHeader, PaneID: "c3"}},
		{name: "body of c1", point: entity.Point{X: 100, Y: 200}, want: layout.Hit{Kind: layout.HitBody, PaneID: "c1"}},
		{name: "outside", point: entity.Point{X: 700, Y: 10}, want: layout.Hit{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.HitTest(tt.point))
		})
	}
}

func TestTreeRenderer_HitTestOutsideLaidOutBounds(t *testing.T) {
	tr := layout.NewTreeRenderer(context.Background(), testCell, 1)
	assert.Equal(t, layout.Hit{}, tr.HitTest(entity.Point{X: 4, Y: 8}), "nothing laid out yet")

	require.NoError(t, tr.Layout(entity.NewLeaf(entity.RootPaneID, entity.ContentTimeline), entity.Rect{W: 0, H: 480}, nil))
	assert.Equal(t, layout.Hit{}, tr.HitTest(entity.Point{X: 0, Y: 8}))

	require.NoError(t, tr.Layout(entity.NewLeaf(entity.RootPaneID, entity.ContentTimeline), entity.Rect{W: 640, H: 480}, nil))
	assert.Equal(t, layout.Hit{}, tr.HitTest(entity.Point{X: 100, Y: -1}))
	assert.Equal(t, layout.HitBody, tr.HitTest(entity.Point{X: 100, Y: 200}).Kind)
}

func TestTreeRenderer_CellConversion(t *testing.T) {
	tr := newLaidOutRenderer(t, nil)

	assert.Equal(t, entity.Point{X: 20, Y: 56}, tr.CellToPoint(2, 3))

	col, row, w, h := tr.CellRect(entity.Rect{X: 328, Y: 256, W: 312, H: 224})
	assert.Equal(t, []int{41, 16, 39, 14}, []int{col, row, w, h})
}

func TestTreeRenderer_SetGridClampsZone(t *testing.T) {
	tr := layout.NewTreeRenderer(context.Background(), testCell, 0)
	assert.Equal(t, testCell, tr.ZoneThickness())

	tr.SetGrid(entity.Size{W: 10, H: 20}, 2)
	assert.Equal(t, entity.Size{W: 20, H: 40}, tr.ZoneThickness())
	assert.Equal(t, entity.Size{W: 10, H: 20}, tr.Cell())
}
