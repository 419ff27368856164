package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the board view.
type KeyMap struct {
	// Scale
	RootDown    key.Binding
	RootUp      key.Binding
	PrevPattern key.Binding
	NextPattern key.Binding

	// Chords
	Up     key.Binding
	Down   key.Binding
	Detail key.Binding

	// Instrument
	MoreFrets  key.Binding
	FewerFrets key.Binding
	NextTuning key.Binding
	Flip       key.Binding

	// Pickers and misc
	PickRoot    key.Binding
	PickPattern key.Binding
	PickTuning  key.Binding
	ToggleChord key.Binding
	Open        key.Binding
	Help        key.Binding
	Quit        key.Binding
	Back        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		RootDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "root down a semitone"),
		),
		RootUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "root up a semitone"),
		),
		PrevPattern: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous pattern"),
		),
		NextPattern: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next pattern"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous chord"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next chord"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "chord detail"),
		),
		MoreFrets: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more frets"),
		),
		FewerFrets: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer frets"),
		),
		NextTuning: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next tuning preset"),
		),
		Flip: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flip fretboard"),
		),
		PickRoot: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "choose root"),
		),
		PickPattern: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "choose pattern"),
		),
		PickTuning: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "choose tuning"),
		),
		ToggleChord: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle chords"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open reference"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RootDown, k.RootUp, k.NextPattern, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RootDown, k.RootUp, k.PrevPattern, k.NextPattern},
		{k.Up, k.Down, k.Detail, k.ToggleChord},
		{k.MoreFrets, k.FewerFrets, k.NextTuning, k.Flip},
		{k.PickRoot, k.PickPattern, k.PickTuning, k.Open, k.Help, k.Quit},
	}
}
