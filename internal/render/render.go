// Package render turns fretboard grids, chords and catalog listings into
// terminal tables.
package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/robby/fretboard/internal/catalog"
	"github.com/robby/fretboard/internal/fretboard"
	"github.com/robby/fretboard/internal/theory"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	fretNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Dark gray
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// LabelStyle is used for section labels such as "Chords in scale are:".
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")) // Purple
)

// Options controls table output.
type Options struct {
	Color      bool // Emit colour; off renders plain text
	Horizontal bool // One row per string (highest string on top) instead of one row per fret
}

// Fretboard renders g with every note filtered through mask. By default there
// is one row per fret, 0 (open) through g.Frets(), and one column per string
// headed by its open note.
func Fretboard(g fretboard.Grid, mask Mask, opts Options) string {
	if mask == nil {
		mask = ShowAll()
	}
	if opts.Horizontal {
		return fretboardHorizontal(g, mask, opts)
	}

	headers := make([]string, 0, g.Strings()+1)
	headers = append(headers, "Fret")
	for s := 0; s < g.Strings(); s++ {
		headers = append(headers, g.Open(s).String())
	}

	rows := make([][]string, 0, g.Frets()+1)
	colors := make([][]lipgloss.Color, 0, g.Frets()+1)
	for f := 0; f <= g.Frets(); f++ {
		row := []string{strconv.Itoa(f)}
		rowColors := []lipgloss.Color{""}
		for s := 0; s < g.Strings(); s++ {
			text, c := cell(g.At(s, f), mask)
			row = append(row, text)
			rowColors = append(rowColors, c)
		}
		rows = append(rows, row)
		colors = append(colors, rowColors)
	}

	return gridTable(headers, rows, colors, opts)
}

// fretboardHorizontal lays strings out as rows the way tab is read: the last
// string of the tuning on top, frets left to right.
func fretboardHorizontal(g fretboard.Grid, mask Mask, opts Options) string {
	headers := make([]string, 0, g.Frets()+1)
	for f := 0; f <= g.Frets(); f++ {
		headers = append(headers, strconv.Itoa(f))
	}

	rows := make([][]string, 0, g.Strings())
	colors := make([][]lipgloss.Color, 0, g.Strings())
	for s := g.Strings() - 1; s >= 0; s-- {
		row := []string{g.Open(s).String()}
		rowColors := []lipgloss.Color{""}
		for f := 1; f <= g.Frets(); f++ {
			text, c := cell(g.At(s, f), mask)
			row = append(row, text)
			rowColors = append(rowColors, c)
		}
		rows = append(rows, row)
		colors = append(colors, rowColors)
	}

	return gridTable(headers, rows, colors, opts)
}

func cell(p theory.PitchClass, mask Mask) (string, lipgloss.Color) {
	c, shown := mask(p)
	if !shown {
		return Placeholder, ""
	}
	return p.String(), c
}

func gridTable(headers []string, rows [][]string, colors [][]lipgloss.Color, opts Options) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return fretNumberStyle
			}
			style := cellStyle
			if opts.Color && row < len(colors) && col < len(colors[row]) && colors[row][col] != "" {
				style = style.Foreground(colors[row][col]).Bold(true)
			}
			return style
		})
	if opts.Color {
		t = t.BorderStyle(borderStyle)
	}
	return t.Render()
}

// ChordHeaders are the column titles of the chord table.
var ChordHeaders = []string{"Chord Name", "Root", "Third", "Fifth", "Seventh"}

// Chords renders one row per chord, in the order given.
func Chords(chords []theory.Chord, opts Options) string {
	rows := make([][]string, 0, len(chords))
	for _, c := range chords {
		rows = append(rows, []string{
			c.Name(),
			c.Root.String(),
			c.Third.String(),
			c.Fifth.String(),
			c.Seventh.String(),
		})
	}
	return simpleTable(ChordHeaders, rows, opts)
}

// ScaleLine renders "Scale Notes are: C-D-E-F-G-A-B".
func ScaleLine(s theory.Scale) string {
	return "Scale Notes are: " + s.String()
}

// Patterns lists catalog scale patterns.
func Patterns(entries []catalog.Entry, opts Options) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		chords := e.ChordSource
		if chords == "" {
			chords = "-"
		}
		rows = append(rows, []string{
			e.Name(),
			e.Pattern.StepString(),
			fmt.Sprint(len(e.Pattern.Steps)),
			chords,
			e.Description,
		})
	}
	return simpleTable([]string{"Name", "Steps", "Notes", "Chords From", "Description"}, rows, opts)
}

// Tunings lists tuning presets.
func Tunings(presets []catalog.Preset, opts Options) string {
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{p.Name, p.Tuning.String(), p.Description})
	}
	return simpleTable([]string{"Name", "Notes", "Description"}, rows, opts)
}

func simpleTable(headers []string, rows [][]string, opts Options) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if opts.Color {
		t = t.BorderStyle(borderStyle)
	}
	return t.Render()
}
