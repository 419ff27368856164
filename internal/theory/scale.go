package theory

import (
	"fmt"
	"strings"
)

// Pattern is a named sequence of forward semitone steps starting from a root.
// A usable pattern has only positive steps that sum to a full octave.
type Pattern struct {
	Name  string
	Steps []int
}

// Span returns the sum of the steps.
func (p Pattern) Span() int {
	total := 0
	for _, s := range p.Steps {
		total += s
	}
	return total
}

// Validate checks that the steps are positive and cover exactly one octave.
func (p Pattern) Validate() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: %s has no steps", ErrInvalidPattern, p.Name)
	}
	for i, s := range p.Steps {
		if s <= 0 {
			return fmt.Errorf("%w: %s step %d is %d", ErrInvalidPattern, p.Name, i+1, s)
		}
	}
	if span := p.Span(); span != PitchCount {
		return fmt.Errorf("%w: %s spans %d semitones, want %d", ErrInvalidPattern, p.Name, span, PitchCount)
	}
	return nil
}

// StepString renders the steps as "2-2-1-2-2-2-1".
func (p Pattern) StepString() string {
	parts := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, "-")
}

// Scale is an ordered, rooted set of pitch classes built from a Pattern.
// The zero value is an empty scale.
type Scale struct {
	root    PitchClass
	pattern string
	notes   []PitchClass
}

// NewScale builds a scale from an explicit note list. The first note is the root.
func NewScale(pattern string, notes []PitchClass) Scale {
	s := Scale{pattern: pattern, notes: append([]PitchClass(nil), notes...)}
	if len(notes) > 0 {
		s.root = notes[0]
	}
	return s
}

// Generate walks the pattern's steps forward from root and returns the
// resulting scale. The note reached by the final step is the root an octave
// up and is dropped, so the scale has one note per step.
func Generate(root PitchClass, p Pattern) (Scale, error) {
	if !root.Valid() {
		return Scale{}, fmt.Errorf("%w: ring position %d", ErrInvalidNote, int(root))
	}
	if err := p.Validate(); err != nil {
		return Scale{}, err
	}

	ring := SequenceFrom(root, PitchCount+1)
	notes := []PitchClass{root}
	offset := 0
	for _, step := range p.Steps {
		offset += step
		notes = append(notes, ring[offset])
	}
	notes = notes[:len(notes)-1]

	return Scale{root: root, pattern: p.Name, notes: notes}, nil
}

// Root returns the first degree of the scale.
func (s Scale) Root() PitchClass { return s.root }

// Pattern returns the name of the pattern the scale was built from.
func (s Scale) Pattern() string { return s.pattern }

// Len returns the number of degrees.
func (s Scale) Len() int { return len(s.notes) }

// Notes returns a copy of the scale's notes in degree order.
func (s Scale) Notes() []PitchClass {
	return append([]PitchClass(nil), s.notes...)
}

// Degree returns the note at degree i (0-based), wrapping past the end.
func (s Scale) Degree(i int) PitchClass {
	return s.notes[mod(i, len(s.notes))]
}

// DegreeOf returns the 0-based degree of p, or false if p is not in the scale.
func (s Scale) DegreeOf(p PitchClass) (int, bool) {
	for i, n := range s.notes {
		if n == p {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether p is one of the scale's notes.
func (s Scale) Contains(p PitchClass) bool {
	_, ok := s.DegreeOf(p)
	return ok
}

// Name returns a label such as "C maj".
func (s Scale) Name() string {
	if s.pattern == "" {
		return s.root.String()
	}
	return s.root.String() + " " + s.pattern
}

// String renders the notes as "C-D-E-F-G-A-B".
func (s Scale) String() string {
	return JoinNotes(s.notes, "-")
}
