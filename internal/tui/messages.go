// Package tui provides Bubble Tea models for the interactive fretboard explorer.
package tui

import (
	"github.com/robby/fretboard/internal/catalog"
	"github.com/robby/fretboard/internal/fretboard"
	"github.com/robby/fretboard/internal/theory"
)

// Selection is the scale and instrument setup the explorer is showing.
type Selection struct {
	Root    theory.PitchClass
	Pattern string           // Catalog pattern name
	Preset  string           // Tuning preset name, empty for a custom tuning
	Tuning  fretboard.Tuning // Open notes, lowest string first
	Frets   int
}

// RootSelectedMsg is emitted when the user picks a root note.
type RootSelectedMsg struct {
	Root theory.PitchClass
}

// PatternSelectedMsg is emitted when the user picks a scale pattern.
type PatternSelectedMsg struct {
	Pattern string
}

// TuningSelectedMsg is emitted when the user picks a tuning preset.
type TuningSelectedMsg struct {
	Preset catalog.Preset
}

// ErrorMsg is emitted when an error occurs.
type ErrorMsg struct {
	Err error
}

// QuitMsg is emitted when the user requests to quit.
type QuitMsg struct{}
