package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robby/fretboard/internal/catalog"
)

// AppScreen represents the different screens in the application flow.
type AppScreen int

const (
	ScreenRootPicker AppScreen = iota
	ScreenPatternPicker
	ScreenTuningPicker
	ScreenBoard
	ScreenDetail
)

// AppModel is the root Bubble Tea model that manages screen transitions.
// It runs root selection -> pattern selection -> board, skipping any picker
// whose value was supplied up front.
type AppModel struct {
	// Dependencies
	catalog *catalog.Catalog

	// Current state
	currentScreen AppScreen
	currentModel  tea.Model
	err           error

	// Resolved selection (accumulated through the flow)
	sel        Selection
	askPattern bool

	// Cached board to preserve state across screen transitions
	boardModel *BoardModel
}

// NewAppModel creates the app. When askRoot or askPattern is set the
// corresponding picker is shown before the board; sel supplies the rest.
func NewAppModel(c *catalog.Catalog, sel Selection, askRoot, askPattern bool) AppModel {
	m := AppModel{
		catalog:    c,
		sel:        sel,
		askPattern: askPattern,
	}

	switch {
	case askRoot:
		m.currentScreen = ScreenRootPicker
		pattern := ""
		if !askPattern {
			pattern = sel.Pattern
		}
		m.currentModel = NewRootPickerModel(c, pattern, sel.Root)
	case askPattern:
		m.currentScreen = ScreenPatternPicker
		m.currentModel = NewPatternPickerModel(c, sel.Pattern)
		m.askPattern = false
	default:
		m.showBoard()
	}
	return m
}

// Screen returns the screen currently shown.
func (m AppModel) Screen() AppScreen {
	return m.currentScreen
}

// Selection returns the current selection, including any changes made on
// the board.
func (m AppModel) Selection() Selection {
	if m.boardModel != nil {
		return m.boardModel.Selection()
	}
	return m.sel
}

// Init initializes the app model.
func (m AppModel) Init() tea.Cmd {
	if m.currentModel != nil {
		return m.currentModel.Init()
	}
	return nil
}

// Update handles messages and transitions between screens.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case RootSelectedMsg:
		m.sel.Root = msg.Root
		if m.boardModel != nil {
			m.boardModel.setRoot(msg.Root)
			return m, m.backToBoard()
		}
		if m.askPattern {
			m.askPattern = false
			m.currentScreen = ScreenPatternPicker
			picker := NewPatternPickerModel(m.catalog, m.sel.Pattern)
			m.currentModel = picker
			return m, picker.Init()
		}
		m.showBoard()
		return m, m.currentModel.Init()

	case PatternSelectedMsg:
		m.sel.Pattern = msg.Pattern
		if m.boardModel != nil {
			m.boardModel.setPattern(msg.Pattern)
			return m, m.backToBoard()
		}
		m.showBoard()
		return m, m.currentModel.Init()

	case TuningSelectedMsg:
		m.sel.Preset = msg.Preset.Name
		m.sel.Tuning = msg.Preset.Tuning
		if m.boardModel != nil {
			m.boardModel.setPreset(msg.Preset)
			return m, m.backToBoard()
		}
		m.showBoard()
		return m, m.currentModel.Init()

	case pickerCancelledMsg:
		if m.boardModel != nil {
			return m, m.backToBoard()
		}
		return m, tea.Quit

	case openRootPickerMsg:
		m.currentScreen = ScreenRootPicker
		picker := NewRootPickerModel(m.catalog, m.boardModel.sel.Pattern, m.boardModel.sel.Root)
		m.currentModel = picker
		return m, picker.Init()

	case openPatternPickerMsg:
		m.currentScreen = ScreenPatternPicker
		picker := NewPatternPickerModel(m.catalog, m.boardModel.sel.Pattern)
		m.currentModel = picker
		return m, picker.Init()

	case openTuningPickerMsg:
		m.currentScreen = ScreenTuningPicker
		picker := NewTuningPickerModel(m.catalog, m.boardModel.sel.Preset)
		m.currentModel = picker
		return m, picker.Init()

	case openDetailMsg:
		b := m.boardModel
		about := ""
		if e, err := m.catalog.Pattern(b.sel.Pattern); err == nil {
			about = e.Description
		}
		chordScale, err := m.catalog.ChordScale(b.sel.Root, b.sel.Pattern)
		if err != nil {
			m.err = fmt.Errorf("chord detail: %w", err)
			return m, nil
		}
		m.currentScreen = ScreenDetail
		detail := NewDetailModel(msg.chord, chordScale, b.grid, about, b.horizontal)
		m.currentModel = detail
		return m, detail.Init()

	case closeDetailMsg:
		return m, m.backToBoard()
	}

	// Delegate to current screen's model
	if m.currentModel != nil {
		var cmd tea.Cmd
		m.currentModel, cmd = m.currentModel.Update(msg)
		// Keep boardModel in sync when on board screen
		if m.currentScreen == ScreenBoard {
			if bm, ok := m.currentModel.(BoardModel); ok {
				m.boardModel = &bm
			}
		}
		return m, cmd
	}

	return m, nil
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v\n\nPress Ctrl+C to quit", m.err))
	}
	if m.currentModel != nil {
		return m.currentModel.View()
	}
	return ""
}

// showBoard builds the board from the accumulated selection.
func (m *AppModel) showBoard() {
	board := NewBoardModel(m.catalog, m.sel)
	m.boardModel = &board
	m.currentScreen = ScreenBoard
	m.currentModel = board
}

// backToBoard switches to the cached board.
func (m *AppModel) backToBoard() tea.Cmd {
	m.currentScreen = ScreenBoard
	m.currentModel = *m.boardModel
	// Request window size to ensure proper rendering
	return tea.WindowSize()
}

// pickerCancelledMsg is emitted when a picker is dismissed without a choice.
type pickerCancelledMsg struct{}
