package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robby/fretboard/internal/catalog"
)

// patternItem wraps a catalog.Entry for use in bubbles/list.
type patternItem struct {
	entry catalog.Entry
}

func (i patternItem) FilterValue() string {
	return i.entry.Name() + " " + i.entry.Description
}

func (i patternItem) Title() string {
	return i.entry.Name()
}

func (i patternItem) Description() string {
	desc := fmt.Sprintf("%s  (%d notes)", i.entry.Pattern.StepString(), len(i.entry.Pattern.Steps))
	if i.entry.Description != "" {
		desc = i.entry.Description + " · " + desc
	}
	return desc
}

// patternDelegate renders a pattern name over its steps.
type patternDelegate struct{}

func (d patternDelegate) Height() int                             { return 2 }
func (d patternDelegate) Spacing() int                            { return 1 }
func (d patternDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d patternDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(patternItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.Title())
	desc := i.Description()

	if index == m.Index() {
		fmt.Fprint(w, SelectedItemStyle.Render("> "+str))
		fmt.Fprint(w, "\n  "+NormalItemStyle.Render(desc))
	} else {
		fmt.Fprint(w, NormalItemStyle.Render("  "+str))
		fmt.Fprint(w, "\n  "+DimStyle.Render(desc))
	}
}

// PatternPickerModel displays the catalog's scale patterns.
type PatternPickerModel struct {
	list list.Model
}

// NewPatternPickerModel lists every catalog pattern with the cursor on current.
func NewPatternPickerModel(c *catalog.Catalog, current string) PatternPickerModel {
	entries := c.Patterns()
	items := make([]list.Item, len(entries))
	selected := 0
	for i, e := range entries {
		items[i] = patternItem{entry: e}
		if e.Name() == current {
			selected = i
		}
	}

	l := list.New(items, patternDelegate{}, 80, 20)
	l.Title = "Select a Scale Pattern"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = TitleStyle
	l.Select(selected)

	return PatternPickerModel{list: l}
}

// Init initializes the model.
func (m PatternPickerModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages and updates the model state.
func (m PatternPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if item, ok := m.list.SelectedItem().(patternItem); ok {
				return m, func() tea.Msg {
					return PatternSelectedMsg{Pattern: item.entry.Name()}
				}
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model.
func (m PatternPickerModel) View() string {
	return m.list.View()
}
