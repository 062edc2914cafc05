package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/ui/layout"
)

// statusBar shows the pane count, the active view, the gesture in flight and
// the transport.
func (m Model) statusBar(data entity.EditorData, preview *layout.Preview) string {
	ws := m.panes.Workspace()
	left := fmt.Sprintf(" %d panes", ws.PaneCount())
	if active := ws.ActivePane(); active.IsLeaf() {
		left += " · " + active.ContentType.String()
	}
	if g := gestureLabel(preview); g != "" {
		left += " · " + g
	}

	transport := "■"
	if data.IsPlaying {
		transport = "▶"
	}
	right := fmt.Sprintf("%s beat %.1f ", transport, data.CurrentBeat+1)
	if !m.showHelp {
		right = "? help  " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	line := runewidth.Truncate(left, m.width, "…")
	if gap > 0 {
		line = left + strings.Repeat(" ", gap) + right
	}
	return m.theme.StatusBar.Width(m.width).Render(line)
}

func gestureLabel(pv *layout.Preview) string {
	if pv == nil {
		return ""
	}
	switch pv.Kind {
	case layout.PreviewSplitting:
		if pv.Extent <= 0 {
			return "split: drag to size"
		}
		label := fmt.Sprintf("split %.0fpx | %.0fpx", pv.MainAmount, pv.Residual)
		if !pv.Accepted {
			label += " (too small)"
		}
		return label
	case layout.PreviewResizing:
		switch {
		case pv.Survivor != "":
			return "merge: keep " + string(pv.Survivor)
		case pv.HasSize:
			return fmt.Sprintf("resize %.0f%%", pv.Size*100)
		}
		return "resize"
	}
	return ""
}
