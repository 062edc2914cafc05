// Package theme provides lipgloss styling for the pane workspace.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/panekit/internal/infrastructure/config"
)

// Theme holds the colors and pre-built styles of the TUI.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Merge          lipgloss.Color
	Preview        lipgloss.Color

	// Pane chrome
	Header       lipgloss.Style
	HeaderActive lipgloss.Style
	Selector     lipgloss.Style
	Body         lipgloss.Style
	Placeholder  lipgloss.Style
	MergeOverlay lipgloss.Style
	Handle       lipgloss.Style
	HandleActive lipgloss.Style

	// Text
	Title     lipgloss.Style
	Normal    lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Badge     lipgloss.Style

	StatusBar lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
}

// New creates a Theme from a config palette, falling back to the default
// palette for empty values.
func New(p config.ColorPalette) *Theme {
	d := config.DefaultPalette()
	pick := func(v, def string) lipgloss.Color {
		if v == "" {
			return lipgloss.Color(def)
		}
		return lipgloss.Color(v)
	}

	t := &Theme{
		Background:     pick(p.Background, d.Background),
		Surface:        pick(p.Surface, d.Surface),
		SurfaceVariant: pick(p.SurfaceVariant, d.SurfaceVariant),
		Text:           pick(p.Text, d.Text),
		Muted:          pick(p.Muted, d.Muted),
		Accent:         pick(p.Accent, d.Accent),
		Border:         pick(p.Border, d.Border),
		Merge:          pick(p.Merge, d.Merge),
		Preview:        pick(p.Preview, d.Preview),
	}
	t.buildStyles()
	return t
}

// Default returns the theme of the default palette.
func Default() *Theme {
	return New(config.DefaultPalette())
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Header = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface)

	t.HeaderActive = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		Bold(true)

	t.Selector = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.Body = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	t.MergeOverlay = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Merge).
		Bold(true)

	t.Handle = lipgloss.NewStyle().
		Foreground(t.Border)

	t.HandleActive = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)
}

// PaneBorder returns the border style of a leaf. Active panes use the accent
// color; hovered edges use the preview color on that side only.
func (t *Theme) PaneBorder(active bool, hovered []string) lipgloss.Style {
	color := t.Border
	if active {
		color = t.Accent
	}
	s := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)

	for _, side := range hovered {
		switch side {
		case "top":
			s = s.BorderTopForeground(t.Preview)
		case "bottom":
			s = s.BorderBottomForeground(t.Preview)
		case "left":
			s = s.BorderLeftForeground(t.Preview)
		case "right":
			s = s.BorderRightForeground(t.Preview)
		}
	}
	return s
}
