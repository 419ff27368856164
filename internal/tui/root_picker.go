package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/robby/fretboard/internal/catalog"
	"github.com/robby/fretboard/internal/theory"
)

// rootItem is one pitch class in the root list.
type rootItem struct {
	root    theory.PitchClass
	preview string // Scale notes on this root, if a pattern is known
}

func (i rootItem) FilterValue() string { return i.root.String() }

// rootItemDelegate renders a root and its scale preview on one line.
type rootItemDelegate struct{}

func (d rootItemDelegate) Height() int                             { return 1 }
func (d rootItemDelegate) Spacing() int                            { return 0 }
func (d rootItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d rootItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(rootItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%-3s", i.root)
	if i.preview != "" {
		str += "  " + DimStyle.Render(i.preview)
	}

	if index == m.Index() {
		fmt.Fprint(w, SelectedItemStyle.Render("> ")+str)
		return
	}
	fmt.Fprint(w, NormalItemStyle.Render("  ")+str)
}

// RootPickerModel lets the user select the scale root.
type RootPickerModel struct {
	list list.Model
}

// NewRootPickerModel lists all twelve roots, previewing pattern on each when
// pattern names a catalog entry. The cursor starts on current.
func NewRootPickerModel(c *catalog.Catalog, pattern string, current theory.PitchClass) RootPickerModel {
	roots := theory.AllPitchClasses()
	items := make([]list.Item, len(roots))
	for i, r := range roots {
		item := rootItem{root: r}
		if pattern != "" {
			if s, err := c.ScaleOn(r, pattern); err == nil {
				item.preview = s.String()
			}
		}
		items[i] = item
	}

	l := list.New(items, rootItemDelegate{}, 80, 20)
	l.Title = "Select Root"
	if pattern != "" {
		l.Title = fmt.Sprintf("Select Root for %s", pattern)
	}
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = TitleStyle
	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	l.Styles.HelpStyle = HelpStyle
	l.Select(current.Index())

	return RootPickerModel{list: l}
}

// Init initializes the model.
func (m RootPickerModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m RootPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(rootItem); ok {
				return m, func() tea.Msg {
					return RootSelectedMsg{Root: item.root}
				}
			}
		case "q", "esc":
			if !m.list.SettingFilter() {
				return m, func() tea.Msg { return pickerCancelledMsg{} }
			}
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width - 2)
		m.list.SetHeight(msg.Height - 2)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model.
func (m RootPickerModel) View() string {
	return m.list.View()
}
