package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/panekit/internal/ui/theme"
)

// fit pads or truncates s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "")
	return runewidth.FillRight(s, width)
}

// fitEllipsis is fit with a trailing ellipsis when s is cut.
func fitEllipsis(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

// block fits lines to a width × height rectangle and styles each line.
func block(style lipgloss.Style, lines []string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = style.Render(fit(line, width))
	}
	return strings.Join(out, "\n")
}

// fill returns a width × height rectangle of spaces in style.
func fill(style lipgloss.Style, width, height int) string {
	return block(style, nil, width, height)
}

// placeholder centers msg in an otherwise empty rectangle.
func placeholder(th *theme.Theme, msg string, width, height int) string {
	lines := make([]string, height)
	lines[height/2] = center(msg, width)
	return block(th.Placeholder, lines, width, height)
}

func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}
