package component

import (
	"fmt"
	"strings"

	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/ui/theme"
)

// GraphEditorView lists the nodes of the selected track's graph and the
// connections between them.
type GraphEditorView struct {
	theme *theme.Theme
}

// NewGraphEditorView creates a graph editor view.
func NewGraphEditorView(th *theme.Theme) *GraphEditorView {
	return &GraphEditorView{theme: th}
}

// Render implements ContentView.
func (v *GraphEditorView) Render(data entity.EditorData, width, height int) string {
	tr := selectedTrack(data)
	if tr == nil {
		return placeholder(v.theme, "no track selected", width, height)
	}
	if len(tr.Graph.Nodes) == 0 {
		return placeholder(v.theme, tr.Name+": empty graph", width, height)
	}

	lines := []string{tr.Name + " graph", ""}
	for _, n := range tr.Graph.Nodes {
		tag := "   "
		switch {
		case n.IsInputNode:
			tag = "in "
		case n.IsOutputNode:
			tag = "out"
		}
		marker := " "
		if sel := data.Selection.NodeID; sel != nil && *sel == n.ID {
			marker = "▸"
		}
		lines = append(lines, fmt.Sprintf("%s %s [%s] %s", marker, tag, n.Name, n.NodeType))
	}

	if len(tr.Graph.Connections) > 0 {
		lines = append(lines, "")
		for _, c := range tr.Graph.Connections {
			lines = append(lines, "  "+connectionLabel(&tr.Graph, c))
		}
	}
	return block(v.theme.Body, lines, width, height)
}

func connectionLabel(g *entity.GraphState, c entity.ConnectorState) string {
	name := func(id entity.GraphNodeID) string {
		if n := g.Node(id); n != nil {
			return n.Name
		}
		return string(id)
	}
	var b strings.Builder
	b.WriteString(name(c.From))
	b.WriteString(".")
	b.WriteString(c.FromParam)
	b.WriteString(" → ")
	b.WriteString(name(c.To))
	b.WriteString(".")
	b.WriteString(c.ToParam)
	return b.String()
}
