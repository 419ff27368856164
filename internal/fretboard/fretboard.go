// Package fretboard maps a tuning onto a grid of pitch classes, one row of
// frets per string. Grids are recomputed on every call and hold no state.
package fretboard

import (
	"fmt"
	"strings"

	"github.com/robby/fretboard/internal/theory"
)

const (
	// StringCount is the number of strings a Tuning describes.
	StringCount = 6
	// MinFrets and MaxFrets bound the fret count accepted by BuildGrid.
	MinFrets = 1
	MaxFrets = 24
	// DefaultFrets is used when the caller does not ask for a fret count.
	DefaultFrets = 12
)

// Tuning is the open note of each string, in caller-defined order.
// By convention the lowest-pitched string comes first.
type Tuning []theory.PitchClass

// StandardTuning returns E A D G B E.
func StandardTuning() Tuning {
	return Tuning{theory.E, theory.A, theory.D, theory.G, theory.B, theory.E}
}

// ParseTuning validates one note token per string. Tokens are case-insensitive.
func ParseTuning(tokens []string) (Tuning, error) {
	if len(tokens) != StringCount {
		return nil, fmt.Errorf("%w: tuning needs %d notes, got %d", theory.ErrInvalidArgument, StringCount, len(tokens))
	}
	notes, err := theory.ParseNotes(tokens)
	if err != nil {
		return nil, fmt.Errorf("tuning: %w", err)
	}
	return Tuning(notes), nil
}

// Validate checks the string count and that every note lies on the ring.
func (t Tuning) Validate() error {
	if len(t) != StringCount {
		return fmt.Errorf("%w: tuning has %d strings, want %d", theory.ErrInvalidArgument, len(t), StringCount)
	}
	for i, p := range t {
		if !p.Valid() {
			return fmt.Errorf("%w: string %d open note", theory.ErrInvalidNote, i+1)
		}
	}
	return nil
}

// String renders the tuning as "E-A-D-G-B-E".
func (t Tuning) String() string {
	return theory.JoinNotes(t, "-")
}

// Tokens returns the note names, suitable for ParseTuning.
func (t Tuning) Tokens() []string {
	return strings.Split(t.String(), "-")
}

// StringRow is one string of the grid.
type StringRow struct {
	Open  theory.PitchClass   // Note of the unfretted string
	Frets []theory.PitchClass // Frets[0] is fret 1
}

// Grid maps (string, fret) to the pitch class sounding there.
type Grid struct {
	strings []StringRow
	frets   int
}

// BuildGrid computes, for every string, the note at frets 1 through frets.
// It fails with theory.ErrInvalidArgument when frets is outside
// [MinFrets, MaxFrets] or the tuning does not have StringCount notes.
func BuildGrid(t Tuning, frets int) (Grid, error) {
	if frets < MinFrets || frets > MaxFrets {
		return Grid{}, fmt.Errorf("%w: fret count %d outside %d-%d", theory.ErrInvalidArgument, frets, MinFrets, MaxFrets)
	}
	if err := t.Validate(); err != nil {
		return Grid{}, err
	}

	rows := make([]StringRow, len(t))
	for i, open := range t {
		seq := theory.SequenceFrom(open, frets+1)
		rows[i] = StringRow{Open: open, Frets: seq[1:]}
	}
	return Grid{strings: rows, frets: frets}, nil
}

// Strings returns the number of strings.
func (g Grid) Strings() int { return len(g.strings) }

// Frets returns the highest fret in the grid.
func (g Grid) Frets() int { return g.frets }

// Open returns the unfretted note of string s (0-based).
func (g Grid) Open(s int) theory.PitchClass {
	return g.strings[s].Open
}

// At returns the note at fret f of string s. Fret 0 is the open string.
func (g Grid) At(s, f int) theory.PitchClass {
	if f == 0 {
		return g.strings[s].Open
	}
	return g.strings[s].Frets[f-1]
}

// Row returns a copy of string s.
func (g Grid) Row(s int) StringRow {
	r := g.strings[s]
	return StringRow{Open: r.Open, Frets: append([]theory.PitchClass(nil), r.Frets...)}
}

// Position is a string/fret coordinate.
type Position struct {
	String int
	Fret   int
}

// Find returns every position, open strings included, where note sounds.
// Positions are ordered by string then fret.
func (g Grid) Find(note theory.PitchClass) []Position {
	var found []Position
	for s := range g.strings {
		for f := 0; f <= g.frets; f++ {
			if g.At(s, f) == note {
				found = append(found, Position{String: s, Fret: f})
			}
		}
	}
	return found
}
