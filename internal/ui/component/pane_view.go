package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/ui/theme"
)

// MergeHint is shown over a pane that will vanish on release.
const MergeHint = "release to merge"

// SplitGhost describes the split line previewed inside a leaf during an edge drag.
type SplitGhost struct {
	Axis entity.Axis
	// Offset is the line position in cells from the leaf's leading edge.
	Offset   int
	Accepted bool
	Main     float64
	Residual float64
}

// PaneInput is everything needed to draw one leaf.
type PaneInput struct {
	ID          entity.PaneNodeID
	ContentType entity.ContentType
	// Width and Height are the leaf's outer size in cells, border included.
	Width, Height int
	ZoneCells     int
	Active        bool
	HoverEdges    []string
	Data          entity.EditorData
	Ghost         *SplitGhost
	Merging       bool
}

// PaneView draws a leaf: a border ring doubling as the drag zones, a header
// with the content selector and the content body.
type PaneView struct {
	theme    *theme.Theme
	registry *ContentRegistry
}

// NewPaneView creates a pane view drawing bodies from registry.
func NewPaneView(th *theme.Theme, registry *ContentRegistry) *PaneView {
	if th == nil {
		th = theme.Default()
	}
	if registry == nil {
		registry = DefaultRegistry(th)
	}
	return &PaneView{theme: th, registry: registry}
}

// Render returns exactly in.Height lines of in.Width cells.
func (v *PaneView) Render(in PaneInput) string {
	w, h := in.Width, in.Height
	if w < 3 || h < 3 {
		return fill(v.theme.Body, w, h)
	}
	pad := max(0, in.ZoneCells-1)
	if w-2-2*pad <= 0 || h-2-2*pad <= 0 {
		pad = 0
	}
	innerW, innerH := w-2-2*pad, h-2-2*pad

	rows := []string{v.header(in, innerW)}
	if bodyH := innerH - 1; bodyH > 0 {
		rows = append(rows, v.body(in, innerW, bodyH, pad))
	}

	return v.theme.PaneBorder(in.Active, in.HoverEdges).
		Padding(pad).
		Width(w - 2).
		Height(h - 2).
		MaxWidth(w).
		MaxHeight(h).
		Render(strings.Join(rows, "\n"))
}

func (v *PaneView) header(in PaneInput, width int) string {
	style := v.theme.Header
	if in.Active {
		style = v.theme.HeaderActive
	}
	left := "▾ " + in.ContentType.String()
	right := string(in.ID)
	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		return style.Render(fitEllipsis(left, width))
	}
	return style.Render(left + strings.Repeat(" ", gap) + right)
}

func (v *PaneView) body(in PaneInput, width, height, pad int) string {
	switch {
	case in.Merging:
		lines := make([]string, height)
		lines[height/2] = center(MergeHint, width)
		return block(v.theme.MergeOverlay, lines, width, height)
	case in.Ghost != nil:
		return v.ghost(*in.Ghost, width, height, pad)
	}
	content := v.registry.Render(in.ContentType, in.Data, width, height)
	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(content)
}

// ghost draws the body split in two at the previewed offset, each part
// labelled with its pixel size.
func (v *PaneView) ghost(g SplitGhost, width, height, pad int) string {
	line := v.theme.Subtle
	if g.Accepted {
		line = lipgloss.NewStyle().Foreground(v.theme.Preview).Bold(true)
	}
	mainLabel := fmt.Sprintf("%.0fpx", g.Main)
	restLabel := fmt.Sprintf("%.0fpx", g.Residual)

	if g.Axis == entity.AxisHorizontal {
		at := clampCell(g.Offset-1-pad, width)
		rest := width - at - 1
		out := make([]string, height)
		for row := range out {
			a, b := "", ""
			if row == height/2 {
				a, b = center(mainLabel, at), center(restLabel, rest)
			}
			out[row] = v.theme.Subtle.Render(fit(a, at)) + line.Render("┃") + v.theme.Subtle.Render(fit(b, rest))
		}
		return strings.Join(out, "\n")
	}

	// Body starts below the border, padding and header rows.
	at := clampCell(g.Offset-2-pad, height)
	out := make([]string, 0, height)
	for row := 0; row < height; row++ {
		switch {
		case row == at:
			out = append(out, line.Render(strings.Repeat("━", width)))
		case row == at/2:
			out = append(out, v.theme.Subtle.Render(fit(center(mainLabel, width), width)))
		case row == at+1+(height-at-1)/2:
			out = append(out, v.theme.Subtle.Render(fit(center(restLabel, width), width)))
		default:
			out = append(out, v.theme.Subtle.Render(fit("", width)))
		}
	}
	return strings.Join(out, "\n")
}

func clampCell(c, n int) int {
	return max(0, min(c, n-1))
}
