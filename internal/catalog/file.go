package catalog

import (
	"fmt"

	"github.com/robby/fretboard/internal/fretboard"
	"github.com/robby/fretboard/internal/theory"
)

// File is the on-disk shape of a user catalog extension.
//
//	scales:
//	  - name: dorian
//	    steps: [2, 1, 2, 2, 2, 1, 2]
//	    description: Dorian mode
//	tunings:
//	  - name: openE
//	    notes: [E, B, E, G#, B, E]
type File struct {
	Scales  []ScaleDef  `yaml:"scales"`
	Tunings []TuningDef `yaml:"tunings"`
}

// ScaleDef describes one scale pattern in a File.
type ScaleDef struct {
	Name        string `yaml:"name"`
	Steps       []int  `yaml:"steps"`
	Chords      string `yaml:"chords,omitempty"` // ChordSource
	Description string `yaml:"description,omitempty"`
	URL         string `yaml:"url,omitempty"`
}

// TuningDef describes one tuning preset in a File.
type TuningDef struct {
	Name        string   `yaml:"name"`
	Notes       []string `yaml:"notes"`
	Description string   `yaml:"description,omitempty"`
}

// Merge validates every definition in f and then upserts them all. Scales in
// f may use each other as chord sources regardless of order. Nothing is
// changed if any definition is invalid.
func (c *Catalog) Merge(f File) error {
	known := make(map[string]bool, len(c.order)+len(f.Scales))
	for _, n := range c.order {
		known[n] = true
	}

	entries := make([]Entry, 0, len(f.Scales))
	for i, def := range f.Scales {
		if def.Name == "" {
			return fmt.Errorf("scales[%d]: %w", i, ErrEmptyName)
		}
		p := theory.Pattern{Name: def.Name, Steps: def.Steps}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("scales[%d]: %w", i, err)
		}
		known[def.Name] = true
		entries = append(entries, Entry{
			Pattern:     p,
			ChordSource: def.Chords,
			Description: def.Description,
			URL:         def.URL,
		})
	}
	for _, e := range entries {
		if e.ChordSource != "" && !known[e.ChordSource] {
			return fmt.Errorf("%w: %s uses %q", ErrUnknownChordSource, e.Name(), e.ChordSource)
		}
	}

	presets := make([]Preset, 0, len(f.Tunings))
	for i, def := range f.Tunings {
		if def.Name == "" {
			return fmt.Errorf("tunings[%d]: %w", i, ErrEmptyName)
		}
		t, err := fretboard.ParseTuning(def.Notes)
		if err != nil {
			return fmt.Errorf("tunings[%d] %s: %w", i, def.Name, err)
		}
		presets = append(presets, Preset{Name: def.Name, Tuning: t, Description: def.Description})
	}

	for _, e := range entries {
		c.put(e)
	}
	for _, p := range presets {
		if err := c.UpsertPreset(p); err != nil {
			return err
		}
	}
	return nil
}
