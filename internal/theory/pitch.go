// Package theory implements the twelve-tone pitch-class ring and the scale and
// chord arithmetic built on top of it. Every function is pure: there is no
// cycling iterator or other state shared between calls.
package theory

import (
	"fmt"
	"strings"
)

// PitchCount is the number of pitch classes in the ring.
const PitchCount = 12

// PitchClass is a position on the twelve-note ring, 0 (A) through 11 (G#).
type PitchClass int

// Pitch classes in ring order, spelled with sharps.
const (
	A PitchClass = iota
	ASharp
	B
	C
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
)

var pitchNames = [PitchCount]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// Interval is a forward distance in semitones, always in [0, 11].
type Interval int

var intervalNames = [PitchCount]string{
	"unison", "minor second", "major second", "minor third", "major third", "perfect fourth",
	"tritone", "perfect fifth", "minor sixth", "major sixth", "minor seventh", "major seventh",
}

// Name returns the common name of the interval, e.g. "major third".
func (i Interval) Name() string {
	if i < 0 || i >= PitchCount {
		return "?"
	}
	return intervalNames[i]
}

// AllPitchClasses returns the ring in canonical order starting at A.
func AllPitchClasses() []PitchClass {
	return SequenceFrom(A, PitchCount)
}

// ParseNote converts a note token such as "c#" or "G" to its pitch class.
// Matching ignores case and surrounding whitespace.
func ParseNote(token string) (PitchClass, error) {
	name := strings.ToUpper(strings.TrimSpace(token))
	for i, n := range pitchNames {
		if n == name {
			return PitchClass(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNote, token)
}

// ParseNotes parses every token, stopping at the first invalid one.
func ParseNotes(tokens []string) ([]PitchClass, error) {
	notes := make([]PitchClass, 0, len(tokens))
	for _, tok := range tokens {
		p, err := ParseNote(tok)
		if err != nil {
			return nil, err
		}
		notes = append(notes, p)
	}
	return notes, nil
}

// Valid reports whether p lies on the ring.
func (p PitchClass) Valid() bool {
	return p >= 0 && p < PitchCount
}

// Index returns the ring position of p.
func (p PitchClass) Index() int {
	return int(p)
}

// String returns the canonical sharp spelling, or "?" for an off-ring value.
func (p PitchClass) String() string {
	if !p.Valid() {
		return "?"
	}
	return pitchNames[p]
}

// Transpose moves p n semitones around the ring. n may be negative.
func (p PitchClass) Transpose(n int) PitchClass {
	return PitchClass(mod(int(p)+n, PitchCount))
}

// MIDIKey returns the MIDI key number of p in the given scientific octave,
// where C4 is 60. Octaves change at C, so A4 is 69 and B3 is 59.
func (p PitchClass) MIDIKey(octave int) int {
	fromC := mod(int(p)-int(C), PitchCount)
	return (octave+1)*PitchCount + fromC
}

// ForwardDistance returns the number of semitones from "from" up to "to".
// It is directional: ForwardDistance(C, E) is 4 while ForwardDistance(E, C) is 8.
func ForwardDistance(from, to PitchClass) Interval {
	return Interval(mod(int(to)-int(from), PitchCount))
}

// SequenceFrom returns count consecutive pitch classes beginning at start,
// wrapping around the ring as often as needed.
func SequenceFrom(start PitchClass, count int) []PitchClass {
	if count <= 0 {
		return []PitchClass{}
	}
	seq := make([]PitchClass, count)
	for i := range seq {
		seq[i] = start.Transpose(i)
	}
	return seq
}

// JoinNotes renders notes separated by sep, e.g. "C-D-E".
func JoinNotes(notes []PitchClass, sep string) string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.String()
	}
	return strings.Join(names, sep)
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
