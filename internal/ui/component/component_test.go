package component_test

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/ui/component"
	"github.com/bnema/panekit/internal/ui/layout"
	"github.com/bnema/panekit/internal/ui/theme"
)

func sampleData() entity.EditorData {
	track := entity.TrackID(1)
	node := entity.GraphNodeID("osc")
	region := entity.RegionID(10)
	return entity.EditorData{
		Mixer: &entity.MixerState{
			BPM:      120,
			Duration: 32,
			Tracks: []entity.TrackState{
				{
					ID:        1,
					Name:      "Lead",
					Channels:  2,
					TrackType: "midi",
					Regions: []entity.RegionState{
						{ID: 10, Name: "Intro", StartTime: 0, Duration: 8, Notes: []entity.NoteState{
							{ID: 1, Pitch: 60, Velocity: 100, StartTime: 0, Duration: 1},
							{ID: 2, Pitch: 64, Velocity: 100, StartTime: 2, Duration: 1},
						}},
					},
					Graph: entity.GraphState{
						Nodes: []entity.NodeState{
							{ID: "osc", Name: "Osc", NodeType: "oscillator", Outputs: []string{"out"}, IsInputNode: true, ShaderCode: "return sin(t);"},
							{ID: "gain", Name: "Gain", NodeType: "gain", Inputs: []string{"in"}, IsOutputNode: true},
						},
						Connections: []entity.ConnectorState{{From: "osc", FromParam: "out", To: "gain", ToParam: "in"}},
					},
				},
				{ID: 2, Name: "Drums", Channels: 2, TrackType: "audio"},
			},
		},
		CurrentBeat: 4,
		Selection:   entity.Selection{TrackID: &track, NodeID: &node, RegionID: &region},
	}
}

func assertSize(t *testing.T, s string, width, height int) {
	t.Helper()
	assert.Equal(t, width, lipgloss.Width(s), "width")
	assert.Equal(t, height, lipgloss.Height(s), "height")
}

func TestContentRegistry_PlaceholderWhenMissing(t *testing.T) {
	r := component.NewContentRegistry(theme.Default())

	_, ok := r.Lookup(entity.ContentTimeline)
	assert.False(t, ok)

	out := r.Render(entity.ContentPianoRoll, entity.EditorData{}, 40, 5)
	assert.Contains(t, out, "Piano Roll unavailable")
	assertSize(t, out, 40, 5)
}

func TestContentRegistry_RegisterReplaces(t *testing.T) {
	r := component.DefaultRegistry(theme.Default())
	r.Register(entity.ContentTimeline, component.ContentViewFunc(func(entity.EditorData, int, int) string {
		return "custom"
	}))

	assert.Equal(t, "custom", r.Render(entity.ContentTimeline, entity.EditorData{}, 10, 2))
	assert.Empty(t, r.Render(entity.ContentTimeline, entity.EditorData{}, 0, 2))
}

func TestContentRegistry_CachesBodiesPerSnapshot(t *testing.T) {
	r := component.NewContentRegistry(theme.Default())
	calls := 0
	r.Register(entity.ContentTimeline, component.ContentViewFunc(func(entity.EditorData, int, int) string {
		calls++
		return "body"
	}))
	data := sampleData()

	r.Render(entity.ContentTimeline, data, 20, 4)
	r.Render(entity.ContentTimeline, data, 20, 4)
	assert.Equal(t, 1, calls, "same snapshot and size hits the cache")

	r.Render(entity.ContentTimeline, data, 21, 4)
	data.CurrentBeat++
	r.Render(entity.ContentTimeline, data, 20, 4)
	assert.Equal(t, 3, calls, "size or data changes render again")

	r.Register(entity.ContentTimeline, component.ContentViewFunc(func(entity.EditorData, int, int) string {
		return "replaced"
	}))
	assert.Equal(t, "replaced", r.Render(entity.ContentTimeline, data, 20, 4))
}

func TestDefaultViews(t *testing.T) {
	r := component.DefaultRegistry(theme.Default())
	data := sampleData()

	tests := []struct {
		ct   entity.ContentType
		want []string
	}{
		{ct: entity.ContentTimeline, want: []string{"▸ Lead", "Drums", "█", "│"}},
		{ct: entity.ContentGraphEditor, want: []string{"Lead graph", "[Osc]", "Osc.out → Gain.in"}},
		{ct: entity.ContentNodeInspector, want: []string{"Osc", "oscillator", "outputs  out", "return sin(t);"}},
		{ct: entity.ContentPianoRoll, want: []string{"Intro", "C4", "E4", "■"}},
	}

	for _, tt := range tests {
		t.Run(tt.ct.String(), func(t *testing.T) {
			out := r.Render(tt.ct, data, 60, 12)
			assertSize(t, out, 60, 12)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestDefaultViews_EmptyData(t *testing.T) {
	r := component.DefaultRegistry(theme.Default())

	assert.Contains(t, r.Render(entity.ContentTimeline, entity.EditorData{}, 40, 4), "no tracks")
	assert.Contains(t, r.Render(entity.ContentGraphEditor, entity.EditorData{}, 40, 4), "no track selected")
	assert.Contains(t, r.Render(entity.ContentNodeInspector, entity.EditorData{}, 40, 4), "no node selected")
	assert.Contains(t, r.Render(entity.ContentPianoRoll, entity.EditorData{}, 40, 4), "no notes")
}

func TestPaneView_RendersExactSize(t *testing.T) {
	pv := component.NewPaneView(theme.Default(), nil)

	for _, size := range [][2]int{{40, 12}, {10, 4}, {3, 3}, {2, 2}} {
		out := pv.Render(component.PaneInput{
			ID:          "c1",
			ContentType: entity.ContentGraphEditor,
			Width:       size[0],
			Height:      size[1],
			ZoneCells:   1,
			Data:        sampleData(),
		})
		assertSize(t, out, size[0], size[1])
	}
}

func TestPaneView_HeaderAndMergeHint(t *testing.T) {
	pv := component.NewPaneView(theme.Default(), nil)
	in := component.PaneInput{ID: "c3", ContentType: entity.ContentNodeInspector, Width: 40, Height: 10, ZoneCells: 1}

	out := pv.Render(in)
	assert.Contains(t, out, "▾ Node Inspector")
	assert.Contains(t, out, "c3")
	assert.NotContains(t, out, component.MergeHint)

	in.Merging = true
	assert.Contains(t, pv.Render(in), component.MergeHint)
}

func TestPaneView_GhostLabels(t *testing.T) {
	pv := component.NewPaneView(theme.Default(), nil)

	out := pv.Render(component.PaneInput{
		ID:          "root",
		ContentType: entity.ContentTimeline,
		Width:       50,
		Height:      20,
		ZoneCells:   1,
		Ghost:       &component.SplitGhost{Axis: entity.AxisHorizontal, Offset: 20, Accepted: true, Main: 160, Residual: 240},
	})

	assertSize(t, out, 50, 20)
	assert.Contains(t, out, "160px")
	assert.Contains(t, out, "240px")
	assert.Contains(t, out, "┃")
}

func TestWorkspaceView_ComposesTree(t *testing.T) {
	// Arrange
	tr := layout.NewTreeRenderer(context.Background(), entity.Size{W: 8, H: 16}, 1)
	root := entity.NewSplit(entity.RootPaneID, entity.AxisHorizontal, 0.5,
		entity.NewLeaf("c1", entity.ContentTimeline),
		entity.NewSplit("c2", entity.AxisVertical, 0.5,
			entity.NewLeaf("c3", entity.ContentGraphEditor),
			entity.NewLeaf("c4", entity.ContentPianoRoll),
		),
	)
	require.NoError(t, tr.Layout(root, entity.Rect{W: 640, H: 480}, nil))
	wv := component.NewWorkspaceView(theme.Default(), nil, tr)

	// Act
	out := wv.Render(root, component.RenderState{ActivePaneID: "c3", Data: sampleData()})

	// Assert
	assertSize(t, out, 80, 30)
	for _, title := range []string{"Timeline", "Graph Editor", "Piano Roll"} {
		assert.Contains(t, out, title)
	}
	assert.Equal(t, 30, strings.Count(out, "\n")+1)
}

func TestWorkspaceView_MarksVanishingSubtree(t *testing.T) {
	tr := layout.NewTreeRenderer(context.Background(), entity.Size{W: 8, H: 16}, 1)
	root := entity.NewSplit(entity.RootPaneID, entity.AxisHorizontal, 0.5,
		entity.NewLeaf("c1", entity.ContentTimeline),
		entity.NewLeaf("c2", entity.ContentGraphEditor),
	)
	require.NoError(t, tr.Layout(root, entity.Rect{W: 640, H: 480}, nil))
	wv := component.NewWorkspaceView(theme.Default(), nil, tr)

	out := wv.Render(root, component.RenderState{Preview: &layout.Preview{
		Kind:     layout.PreviewResizing,
		PaneID:   entity.RootPaneID,
		Survivor: "c1",
		Vanish:   "c2",
	}})

	assert.Equal(t, 1, strings.Count(out, component.MergeHint))
	assertSize(t, out, 80, 30)
}

func TestWorkspaceView_NilRoot(t *testing.T) {
	tr := layout.NewTreeRenderer(context.Background(), entity.Size{W: 8, H: 16}, 1)
	wv := component.NewWorkspaceView(nil, nil, tr)

	assert.Empty(t, wv.Render(nil, component.RenderState{}))
}
