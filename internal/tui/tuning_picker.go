package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robby/fretboard/internal/catalog"
)

// tuningItem wraps a catalog.Preset for use in bubbles/list.
type tuningItem struct {
	preset catalog.Preset
}

func (i tuningItem) FilterValue() string {
	return i.preset.Name
}

// tuningDelegate renders a preset name and its notes on one line.
type tuningDelegate struct{}

func (d tuningDelegate) Height() int                             { return 1 }
func (d tuningDelegate) Spacing() int                            { return 0 }
func (d tuningDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d tuningDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(tuningItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%-10s %s", i.preset.Name, i.preset.Tuning)
	if index == m.Index() {
		fmt.Fprint(w, SelectedItemStyle.Render("> "+str))
	} else {
		fmt.Fprint(w, NormalItemStyle.Render("  "+str))
	}
	if i.preset.Description != "" {
		fmt.Fprint(w, "  "+DimStyle.Render(i.preset.Description))
	}
}

// TuningPickerModel lets the user choose a tuning preset.
type TuningPickerModel struct {
	list list.Model
}

// NewTuningPickerModel lists the catalog's presets with the cursor on current.
func NewTuningPickerModel(c *catalog.Catalog, current string) TuningPickerModel {
	presets := c.Presets()
	items := make([]list.Item, len(presets))
	selected := 0
	for i, p := range presets {
		items[i] = tuningItem{preset: p}
		if p.Name == current {
			selected = i
		}
	}

	l := list.New(items, tuningDelegate{}, 80, 20)
	l.Title = "Select a Tuning"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = TitleStyle
	l.Select(selected)

	return TuningPickerModel{list: l}
}

// Init initializes the model.
func (m TuningPickerModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages and updates the model state.
func (m TuningPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width - 2)
		m.list.SetHeight(msg.Height - 2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			if !m.list.SettingFilter() {
				return m, func() tea.Msg { return pickerCancelledMsg{} }
			}
		case "enter":
			if item, ok := m.list.SelectedItem().(tuningItem); ok {
				return m, func() tea.Msg {
					return TuningSelectedMsg{Preset: item.preset}
				}
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model.
func (m TuningPickerModel) View() string {
	return m.list.View()
}
