package component

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/ui/layout"
	"github.com/bnema/panekit/internal/ui/theme"
)

// RenderState carries the per-frame inputs of the workspace.
type RenderState struct {
	ActivePaneID entity.PaneNodeID
	Hover        layout.Hit
	Preview      *layout.Preview
	Data         entity.EditorData
}

// WorkspaceView composes the whole pane tree into one frame from the boxes of
// the last layout pass.
type WorkspaceView struct {
	theme    *theme.Theme
	panes    *PaneView
	renderer *layout.TreeRenderer
}

// NewWorkspaceView creates a workspace view over renderer.
func NewWorkspaceView(th *theme.Theme, registry *ContentRegistry, renderer *layout.TreeRenderer) *WorkspaceView {
	if th == nil {
		th = theme.Default()
	}
	return &WorkspaceView{
		theme:    th,
		panes:    NewPaneView(th, registry),
		renderer: renderer,
	}
}

// Render draws root. The renderer must have laid out root beforehand.
func (v *WorkspaceView) Render(root *entity.PaneNode, st RenderState) string {
	if root == nil {
		return ""
	}
	return v.renderNode(root, st)
}

func (v *WorkspaceView) renderNode(node *entity.PaneNode, st RenderState) string {
	box, ok := v.renderer.Box(node.ID)
	if !ok {
		return ""
	}
	_, _, w, h := v.renderer.CellRect(box.Rect)
	if w <= 0 || h <= 0 {
		return ""
	}
	if box.Leaf {
		return v.panes.Render(v.paneInput(box, w, h, st))
	}

	first := v.renderNode(node.First(), st)
	_, _, hw, hh := v.renderer.CellRect(box.Handle)
	if hw <= 0 || hh <= 0 {
		return first
	}
	parts := []string{first, v.handle(box, hw, hh, st)}
	if second := v.renderNode(node.Second(), st); second != "" {
		parts = append(parts, second)
	}

	if box.Axis == entity.AxisHorizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v *WorkspaceView) handle(box layout.Box, w, h int, st RenderState) string {
	style := v.theme.Handle
	dragging := st.Preview != nil && st.Preview.Kind == layout.PreviewResizing && st.Preview.PaneID == box.ID
	hovered := st.Hover.Kind == layout.HitHandle && st.Hover.PaneID == box.ID
	if dragging || hovered {
		style = v.theme.HandleActive
	}

	glyph := "─"
	if box.Axis == entity.AxisHorizontal {
		glyph = "│"
	}
	row := style.Render(strings.Repeat(glyph, w))
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func (v *WorkspaceView) paneInput(box layout.Box, w, h int, st RenderState) PaneInput {
	in := PaneInput{
		ID:          box.ID,
		ContentType: box.ContentType,
		Width:       w,
		Height:      h,
		ZoneCells:   v.renderer.ZoneCells(),
		Active:      box.ID == st.ActivePaneID,
		Data:        st.Data,
	}
	if st.Hover.Kind == layout.HitEdge && st.Hover.PaneID == box.ID {
		in.HoverEdges = []string{st.Hover.Edge.String()}
	}

	pv := st.Preview
	if pv == nil {
		return in
	}
	switch {
	case pv.Kind == layout.PreviewSplitting && pv.PaneID == box.ID:
		in.HoverEdges = []string{pv.Edge.String()}
		if pv.Extent > 0 {
			in.Ghost = &SplitGhost{
				Axis:     pv.Edge.Axis(),
				Offset:   v.cellOffset(pv.MainAmount, pv.Edge.Axis()),
				Accepted: pv.Accepted,
				Main:     pv.MainAmount,
				Residual: pv.Residual,
			}
		}
	case pv.Kind == layout.PreviewResizing && pv.Vanish != "":
		in.Merging = pv.Vanish == box.ID || isUnder(v.renderer, pv.Vanish, box.ID)
	}
	return in
}

func (v *WorkspaceView) cellOffset(px float64, axis entity.Axis) int {
	cell := v.renderer.Cell()
	size := cell.W
	if axis == entity.AxisVertical {
		size = cell.H
	}
	if size <= 0 {
		return 0
	}
	return int(math.Round(px / size))
}

// isUnder reports whether leaf lies inside the subtree rooted at ancestor.
func isUnder(tr *layout.TreeRenderer, ancestor, leaf entity.PaneNodeID) bool {
	box, ok := tr.Box(ancestor)
	if !ok || box.Leaf {
		return false
	}
	return box.First == leaf || box.Second == leaf ||
		isUnder(tr, box.First, leaf) || isUnder(tr, box.Second, leaf)
}
