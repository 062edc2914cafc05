package component

import (
	"fmt"
	"strings"

	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/ui/theme"
)

// NodeInspectorView shows the properties of the selected graph node.
type NodeInspectorView struct {
	theme *theme.Theme
}

// NewNodeInspectorView creates a node inspector view.
func NewNodeInspectorView(th *theme.Theme) *NodeInspectorView {
	return &NodeInspectorView{theme: th}
}

// Render implements ContentView.
func (v *NodeInspectorView) Render(data entity.EditorData, width, height int) string {
	tr, n := selectedNode(data)
	if n == nil {
		return placeholder(v.theme, "no node selected", width, height)
	}

	lines := []string{
		n.Name,
		"",
		"type     " + n.NodeType,
		"track    " + tr.Name,
		"inputs   " + list(n.Inputs),
		"outputs  " + list(n.Outputs),
		fmt.Sprintf("position %.0f, %.0f", n.Position[0], n.Position[1]),
	}
	if n.ShaderCode != "" {
		lines = append(lines, "", "shader")
		for _, l := range strings.Split(n.ShaderCode, "\n") {
			lines = append(lines, "  "+l)
		}
	}
	return block(v.theme.Body, lines, width, height)
}

func list(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
