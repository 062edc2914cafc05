package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the workspace keybindings.
type KeyMap struct {
	FocusNext  key.Binding
	CycleView  key.Binding
	SplitRight key.Binding
	SplitDown  key.Binding
	Close      key.Binding
	PlayPause  key.Binding
	SeekStart  key.Binding
	NextTrack  key.Binding
	CancelDrag key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.CycleView, k.SplitRight, k.SplitDown, k.Close, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.CycleView},
		{k.SplitRight, k.SplitDown, k.Close, k.CancelDrag},
		{k.PlayPause, k.SeekStart, k.NextTrack},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default workspace keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		CycleView: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle view"),
		),
		SplitRight: key.NewBinding(
			key.WithKeys("|", "v"),
			key.WithHelp("|", "split right"),
		),
		SplitDown: key.NewBinding(
			key.WithKeys("-", "s"),
			key.WithHelp("-", "split down"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close pane"),
		),
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		SeekStart: key.NewBinding(
			key.WithKeys("home", "0"),
			key.WithHelp("0", "seek start"),
		),
		NextTrack: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next track"),
		),
		CancelDrag: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
