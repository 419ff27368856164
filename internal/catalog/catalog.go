// Package catalog holds the named scale patterns and tuning presets the
// engine can be asked for by name. It follows the "deep modules" principle:
// lookups by name hide the ordering, case folding and relative-scale rules.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robby/fretboard/internal/fretboard"
	"github.com/robby/fretboard/internal/theory"
)

var (
	// ErrUnknownPreset indicates the requested tuning preset does not exist.
	ErrUnknownPreset = errors.New("unknown tuning preset")
	// ErrUnknownChordSource indicates a pattern names a missing chord source.
	ErrUnknownChordSource = errors.New("unknown chord source")
	// ErrEmptyName indicates an entry without a name.
	ErrEmptyName = errors.New("empty name")
)

// Entry is a catalog scale pattern with its metadata.
type Entry struct {
	Pattern     theory.Pattern
	ChordSource string // Pattern whose scale supplies the chords; empty means the pattern itself
	Description string // One-line human description
	URL         string // Reference page, may be empty
}

// Name returns the pattern name.
func (e Entry) Name() string { return e.Pattern.Name }

// Preset is a named tuning.
type Preset struct {
	Name        string
	Tuning      fretboard.Tuning
	Description string
}

// Catalog stores scale patterns and tuning presets in insertion order.
type Catalog struct {
	entries map[string]*Entry // name -> entry
	order   []string          // names in listing order

	presets     map[string]*Preset
	presetOrder []string
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{
		entries: make(map[string]*Entry),
		presets: make(map[string]*Preset),
	}
}

// Upsert adds or replaces a pattern. The pattern must be valid and its
// ChordSource, if set, must name itself or a pattern already in the catalog.
func (c *Catalog) Upsert(e Entry) error {
	if e.Name() == "" {
		return fmt.Errorf("scale pattern: %w", ErrEmptyName)
	}
	if err := e.Pattern.Validate(); err != nil {
		return err
	}
	if src := e.ChordSource; src != "" && src != e.Name() {
		if _, ok := c.entries[src]; !ok {
			return fmt.Errorf("%w: %s uses %q", ErrUnknownChordSource, e.Name(), src)
		}
	}
	c.put(e)
	return nil
}

func (c *Catalog) put(e Entry) {
	e.Pattern.Steps = append([]int(nil), e.Pattern.Steps...)
	if _, exists := c.entries[e.Name()]; !exists {
		c.order = append(c.order, e.Name())
	}
	c.entries[e.Name()] = &e
}

// Pattern looks up a pattern by name. An exact match wins; otherwise the
// name is matched case-insensitively. Returns theory.ErrUnknownPattern if
// nothing matches.
func (c *Catalog) Pattern(name string) (Entry, error) {
	if e, ok := c.entries[name]; ok {
		return *e, nil
	}
	for _, n := range c.order {
		if strings.EqualFold(n, name) {
			return *c.entries[n], nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q (known: %s)", theory.ErrUnknownPattern, name, strings.Join(c.order, ", "))
}

// Patterns returns every pattern in listing order.
func (c *Catalog) Patterns() []Entry {
	result := make([]Entry, 0, len(c.order))
	for _, n := range c.order {
		result = append(result, *c.entries[n])
	}
	return result
}

// Names returns the pattern names in listing order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// NextPattern returns the name delta places after name in listing order,
// wrapping at both ends. An unknown name starts from the first pattern.
func (c *Catalog) NextPattern(name string, delta int) string {
	return cycle(c.order, name, delta)
}

// Scale parses rootToken and builds the named scale on it.
func (c *Catalog) Scale(rootToken, name string) (theory.Scale, error) {
	root, err := theory.ParseNote(rootToken)
	if err != nil {
		return theory.Scale{}, fmt.Errorf("scale root: %w", err)
	}
	return c.ScaleOn(root, name)
}

// ScaleOn builds the named scale on root.
func (c *Catalog) ScaleOn(root theory.PitchClass, name string) (theory.Scale, error) {
	e, err := c.Pattern(name)
	if err != nil {
		return theory.Scale{}, err
	}
	return theory.Generate(root, e.Pattern)
}

// ChordScale returns the scale whose degrees should be stacked into chords
// for the named pattern on root: the pattern's ChordSource when it has one
// (pentMaj uses maj, pentMin uses natMin), otherwise the pattern itself.
func (c *Catalog) ChordScale(root theory.PitchClass, name string) (theory.Scale, error) {
	e, err := c.Pattern(name)
	if err != nil {
		return theory.Scale{}, err
	}
	if e.ChordSource != "" && e.ChordSource != e.Name() {
		return c.ScaleOn(root, e.ChordSource)
	}
	return theory.Generate(root, e.Pattern)
}

// Chords derives the chords for the named pattern on root via ChordScale.
func (c *Catalog) Chords(root theory.PitchClass, name string) ([]theory.Chord, error) {
	s, err := c.ChordScale(root, name)
	if err != nil {
		return nil, err
	}
	return theory.DeriveChords(s), nil
}

// UpsertPreset adds or replaces a tuning preset.
func (c *Catalog) UpsertPreset(p Preset) error {
	if p.Name == "" {
		return fmt.Errorf("tuning preset: %w", ErrEmptyName)
	}
	if err := p.Tuning.Validate(); err != nil {
		return fmt.Errorf("tuning preset %s: %w", p.Name, err)
	}
	p.Tuning = append(fretboard.Tuning(nil), p.Tuning...)
	if _, exists := c.presets[p.Name]; !exists {
		c.presetOrder = append(c.presetOrder, p.Name)
	}
	c.presets[p.Name] = &p
	return nil
}

// Preset looks up a tuning preset, case-insensitively.
func (c *Catalog) Preset(name string) (Preset, error) {
	if p, ok := c.presets[name]; ok {
		return *p, nil
	}
	for _, n := range c.presetOrder {
		if strings.EqualFold(n, name) {
			return *c.presets[n], nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Presets returns every tuning preset in listing order.
func (c *Catalog) Presets() []Preset {
	result := make([]Preset, 0, len(c.presetOrder))
	for _, n := range c.presetOrder {
		result = append(result, *c.presets[n])
	}
	return result
}

// NextPreset cycles through preset names like NextPattern.
func (c *Catalog) NextPreset(name string, delta int) string {
	return cycle(c.presetOrder, name, delta)
}

// PresetFor returns the name of the first preset equal to t, if any.
func (c *Catalog) PresetFor(t fretboard.Tuning) (string, bool) {
	for _, n := range c.presetOrder {
		if c.presets[n].Tuning.String() == t.String() {
			return n, true
		}
	}
	return "", false
}

func cycle(names []string, current string, delta int) string {
	if len(names) == 0 {
		return ""
	}
	idx := -1
	for i, n := range names {
		if n == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return names[0]
	}
	n := len(names)
	return names[((idx+delta)%n+n)%n]
}
