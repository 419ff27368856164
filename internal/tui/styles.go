package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by every screen.
const (
	accentColor = lipgloss.Color("205") // Pink
	textColor   = lipgloss.Color("252") // Light gray
	mutedColor  = lipgloss.Color("241") // Dark gray
	frameColor  = lipgloss.Color("240")
	alertColor  = lipgloss.Color("196") // Red
)

// Exported styles, shared by pickers and the board.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	NormalItemStyle = lipgloss.NewStyle().Foreground(textColor)

	DimStyle = lipgloss.NewStyle().Foreground(mutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(alertColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	// HelpOverlayStyle frames the full key reference.
	HelpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(frameColor).
				Padding(1, 2).
				MarginTop(1)
)

// Board
var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	statusStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	chordRowStyle = lipgloss.NewStyle().Foreground(textColor)
)

// Chord detail
var (
	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor)

	detailLabelStyle = lipgloss.NewStyle().Foreground(mutedColor)
	detailValueStyle = lipgloss.NewStyle().Foreground(textColor)

	panelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(frameColor).
				Padding(0, 1)
)
