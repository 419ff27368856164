package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"
	"github.com/robby/fretboard/internal/catalog"
	"github.com/robby/fretboard/internal/fretboard"
	"github.com/robby/fretboard/internal/render"
	"github.com/robby/fretboard/internal/theory"
)

// BoardModel shows the fretboard for the current selection together with
// the chords of its scale.
type BoardModel struct {
	// Dependencies
	catalog *catalog.Catalog
	openURL func(string) error

	// UI components
	keymap KeyMap
	help   HelpModel

	// Derived from sel by refresh
	sel    Selection
	scale  theory.Scale
	chords []theory.Chord
	grid   fretboard.Grid

	selectedChord int
	showHelp      bool
	showChords    bool
	horizontal    bool
	errorToast    string

	// View dimensions
	width  int
	height int
}

// NewBoardModel creates a board for sel. Errors building the scale or grid
// are shown in the status line rather than returned.
func NewBoardModel(c *catalog.Catalog, sel Selection) BoardModel {
	keymap := DefaultKeyMap()
	m := BoardModel{
		catalog:    c,
		openURL:    browser.OpenURL,
		keymap:     keymap,
		help:       NewHelpModel(keymap),
		sel:        sel,
		showChords: true,
	}
	if m.sel.Frets == 0 {
		m.sel.Frets = fretboard.DefaultFrets
	}
	if len(m.sel.Tuning) == 0 {
		m.sel.Tuning = fretboard.StandardTuning()
	}
	(&m).refresh()
	return m
}

// Selection returns what the board is currently showing.
func (m BoardModel) Selection() Selection {
	return m.sel
}

// refresh recomputes the scale, chords and grid from sel. On failure the
// previous derived state is kept and the error is shown as a toast.
func (m *BoardModel) refresh() {
	m.errorToast = ""

	scale, err := m.catalog.ScaleOn(m.sel.Root, m.sel.Pattern)
	if err != nil {
		m.errorToast = err.Error()
		return
	}
	chords, err := m.catalog.Chords(m.sel.Root, m.sel.Pattern)
	if err != nil {
		m.errorToast = err.Error()
		return
	}
	grid, err := fretboard.BuildGrid(m.sel.Tuning, m.sel.Frets)
	if err != nil {
		m.errorToast = err.Error()
		return
	}

	m.scale = scale
	m.chords = chords
	m.grid = grid
	if m.selectedChord >= len(m.chords) {
		m.selectedChord = len(m.chords) - 1
	}
	if m.selectedChord < 0 {
		m.selectedChord = 0
	}
}

func (m *BoardModel) setRoot(root theory.PitchClass) {
	m.sel.Root = root
	m.refresh()
}

func (m *BoardModel) setPattern(name string) {
	m.sel.Pattern = name
	m.refresh()
}

func (m *BoardModel) setPreset(p catalog.Preset) {
	m.sel.Preset = p.Name
	m.sel.Tuning = p.Tuning
	m.refresh()
}

func (m *BoardModel) setFrets(n int) {
	if n < fretboard.MinFrets {
		n = fretboard.MinFrets
	}
	if n > fretboard.MaxFrets {
		n = fretboard.MaxFrets
	}
	m.sel.Frets = n
	m.refresh()
}

func (m *BoardModel) moveChordSelection(delta int) {
	if len(m.chords) == 0 {
		return
	}
	m.selectedChord += delta
	if m.selectedChord < 0 {
		m.selectedChord = 0
	}
	if m.selectedChord >= len(m.chords) {
		m.selectedChord = len(m.chords) - 1
	}
}

// Init initializes the board.
func (m BoardModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m BoardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Help overlay
	if m.showHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Quit, m.keymap.Back) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true

	case key.Matches(msg, m.keymap.RootDown):
		(&m).setRoot(m.sel.Root.Transpose(-1))
	case key.Matches(msg, m.keymap.RootUp):
		(&m).setRoot(m.sel.Root.Transpose(1))
	case key.Matches(msg, m.keymap.PrevPattern):
		(&m).setPattern(m.catalog.NextPattern(m.sel.Pattern, -1))
	case key.Matches(msg, m.keymap.NextPattern):
		(&m).setPattern(m.catalog.NextPattern(m.sel.Pattern, 1))

	case key.Matches(msg, m.keymap.Up):
		(&m).moveChordSelection(-1)
	case key.Matches(msg, m.keymap.Down):
		(&m).moveChordSelection(1)
	case key.Matches(msg, m.keymap.Detail):
		if m.showChords && len(m.chords) > 0 {
			chord := m.chords[m.selectedChord]
			return m, func() tea.Msg { return openDetailMsg{chord: chord} }
		}

	case key.Matches(msg, m.keymap.MoreFrets):
		(&m).setFrets(m.sel.Frets + 1)
	case key.Matches(msg, m.keymap.FewerFrets):
		(&m).setFrets(m.sel.Frets - 1)
	case key.Matches(msg, m.keymap.NextTuning):
		p, err := m.catalog.Preset(m.catalog.NextPreset(m.sel.Preset, 1))
		if err != nil {
			m.errorToast = err.Error()
			return m, nil
		}
		(&m).setPreset(p)
	case key.Matches(msg, m.keymap.Flip):
		m.horizontal = !m.horizontal
	case key.Matches(msg, m.keymap.ToggleChord):
		m.showChords = !m.showChords

	case key.Matches(msg, m.keymap.PickRoot):
		return m, func() tea.Msg { return openRootPickerMsg{} }
	case key.Matches(msg, m.keymap.PickPattern):
		return m, func() tea.Msg { return openPatternPickerMsg{} }
	case key.Matches(msg, m.keymap.PickTuning):
		return m, func() tea.Msg { return openTuningPickerMsg{} }

	case key.Matches(msg, m.keymap.Open):
		(&m).openReference()
	}

	return m, nil
}

// openReference opens the current pattern's reference page in the browser.
func (m *BoardModel) openReference() {
	entry, err := m.catalog.Pattern(m.sel.Pattern)
	if err != nil {
		m.errorToast = err.Error()
		return
	}
	if entry.URL == "" {
		m.errorToast = fmt.Sprintf("No reference page for %s", entry.Name())
		return
	}
	if err := m.openURL(entry.URL); err != nil {
		m.errorToast = fmt.Sprintf("Open failed: %v", err)
	}
}

// View renders the board.
func (m BoardModel) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.showHelp {
		sections = append(sections, m.help.View(width))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.scale.Len() > 0 {
		sections = append(sections, render.ScaleLine(m.scale))
		opts := render.Options{Color: true, Horizontal: m.horizontal}
		board := render.Fretboard(m.grid, render.ScaleMask(m.scale), opts)
		if m.showChords {
			board = lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", m.renderChords())
		}
		sections = append(sections, board)
	}

	if m.errorToast != "" {
		sections = append(sections, ErrorStyle.Render(m.errorToast))
	}
	sections = append(sections, m.help.ShortView(width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line: scale name, tuning and fret count.
func (m BoardModel) renderHeader() string {
	tuning := m.sel.Tuning.String()
	if m.sel.Preset != "" {
		tuning = fmt.Sprintf("%s (%s)", m.sel.Preset, tuning)
	}
	title := headerStyle.Render(fmt.Sprintf("%s %s", m.sel.Root, m.sel.Pattern))
	status := statusStyle.Render(fmt.Sprintf("  %s · %d frets", tuning, m.sel.Frets))
	return title + status
}

// renderChords renders the chord list with the selected chord highlighted.
func (m BoardModel) renderChords() string {
	var b strings.Builder
	b.WriteString(render.LabelStyle.Render("Chords in scale are:"))
	for i, c := range m.chords {
		line := fmt.Sprintf("%-14s %s", c.Name(), theory.JoinNotes(c.Notes(), " "))
		b.WriteString("\n")
		if i == m.selectedChord {
			b.WriteString(SelectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(chordRowStyle.Render("  " + line))
		}
	}
	return b.String()
}

// Board-originated messages handled by AppModel.
type (
	openRootPickerMsg    struct{}
	openPatternPickerMsg struct{}
	openTuningPickerMsg  struct{}

	openDetailMsg struct {
		chord theory.Chord
	}
)
