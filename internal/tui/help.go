package tui

import "github.com/charmbracelet/bubbles/help"

// HelpModel wraps the bubbles help component for the board.
type HelpModel struct {
	help   help.Model
	keymap KeyMap
}

// NewHelpModel creates a help model over keymap.
func NewHelpModel(keymap KeyMap) HelpModel {
	return HelpModel{
		help:   help.New(),
		keymap: keymap,
	}
}

// ShortView renders the one-line hint shown under the board.
func (m HelpModel) ShortView(width int) string {
	m.help.Width = width
	m.help.ShowAll = false
	return m.help.View(m.keymap)
}

// View renders the full help overlay.
func (m HelpModel) View(width int) string {
	m.help.Width = width - 8 // padding and border
	m.help.ShowAll = true
	return HelpOverlayStyle.Render(m.help.View(m.keymap))
}
