package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/robby/fretboard/internal/theory"
)

// Placeholder is printed in place of a masked note.
const Placeholder = "x"

// degreeColors colours scale degrees; degree i uses degreeColors[i%7].
var degreeColors = []lipgloss.Color{
	lipgloss.Color("3"),  // yellow (root)
	lipgloss.Color("4"),  // blue
	lipgloss.Color("1"),  // red
	lipgloss.Color("2"),  // green
	lipgloss.Color("5"),  // magenta
	lipgloss.Color("6"),  // cyan
	lipgloss.Color("10"), // bright green
}

// findColor is used for the single note of find mode.
var findColor = lipgloss.Color("3")

// Mask decides whether a note is shown on the fretboard and in which colour.
// An empty colour means the terminal default.
type Mask func(p theory.PitchClass) (color lipgloss.Color, shown bool)

// ShowAll shows every note uncoloured.
func ShowAll() Mask {
	return func(theory.PitchClass) (lipgloss.Color, bool) {
		return "", true
	}
}

// FindMask shows only note.
func FindMask(note theory.PitchClass) Mask {
	return func(p theory.PitchClass) (lipgloss.Color, bool) {
		if p != note {
			return "", false
		}
		return findColor, true
	}
}

// ScaleMask shows the notes of s, coloured by scale degree.
func ScaleMask(s theory.Scale) Mask {
	return func(p theory.PitchClass) (lipgloss.Color, bool) {
		deg, ok := s.DegreeOf(p)
		if !ok {
			return "", false
		}
		return DegreeColor(deg), true
	}
}

// DegreeColor returns the colour of a 0-based scale degree.
func DegreeColor(degree int) lipgloss.Color {
	n := len(degreeColors)
	return degreeColors[((degree%n)+n)%n]
}
