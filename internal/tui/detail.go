package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/robby/fretboard/internal/fretboard"
	"github.com/robby/fretboard/internal/render"
	"github.com/robby/fretboard/internal/theory"
)

// DetailModel shows one chord: its tones, their intervals above the root and
// where they fall on the fretboard.
type DetailModel struct {
	chord theory.Chord
	scale theory.Scale // Scale the chord was derived from
	grid  fretboard.Grid
	about string // Pattern description, may be empty

	horizontal bool

	width  int
	height int
}

// NewDetailModel creates a detail view for chord.
func NewDetailModel(chord theory.Chord, scale theory.Scale, grid fretboard.Grid, about string, horizontal bool) DetailModel {
	return DetailModel{
		chord:      chord,
		scale:      scale,
		grid:       grid,
		about:      about,
		horizontal: horizontal,
	}
}

// Init initializes the model.
func (m DetailModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q", "backspace", "enter":
			return m, func() tea.Msg { return closeDetailMsg{} }
		case "f":
			m.horizontal = !m.horizontal
		}
	}
	return m, nil
}

// View renders the chord detail.
func (m DetailModel) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(m.chord.Name()))
	if m.scale.Len() > 0 {
		b.WriteString(detailLabelStyle.Render("  from " + m.scale.Name()))
	}
	b.WriteString("\n\n")

	labels := []string{"Root", "Third", "Fifth", "Seventh"}
	for i, n := range m.chord.Notes() {
		interval := theory.ForwardDistance(m.chord.Root, n)
		fmt.Fprintf(&b, "%s %s %s\n",
			detailLabelStyle.Render(fmt.Sprintf("%-8s", labels[i])),
			lipgloss.NewStyle().Foreground(render.DegreeColor(i)).Bold(true).Render(fmt.Sprintf("%-3s", n)),
			detailValueStyle.Render(interval.Name()),
		)
	}

	if m.about != "" {
		b.WriteString("\n")
		b.WriteString(detailValueStyle.Render(wordwrap.String(m.about, width-6)))
		b.WriteString("\n")
	}

	tones := theory.NewScale("", m.chord.Notes())
	board := render.Fretboard(m.grid, render.ScaleMask(tones), render.Options{Color: true, Horizontal: m.horizontal})

	return lipgloss.JoinVertical(lipgloss.Left,
		panelBorderStyle.Render(strings.TrimRight(b.String(), "\n")),
		board,
		HelpStyle.Render("esc back · f flip · ctrl+c quit"),
	)
}

// closeDetailMsg returns from the detail view to the board.
type closeDetailMsg struct{}
