package catalog

import (
	"github.com/robby/fretboard/internal/fretboard"
	"github.com/robby/fretboard/internal/theory"
)

var builtinEntries = []Entry{
	{
		Pattern:     theory.Pattern{Name: "maj", Steps: []int{2, 2, 1, 2, 2, 2, 1}},
		Description: "Major (Ionian)",
		URL:         "https://en.wikipedia.org/wiki/Major_scale",
	},
	{
		Pattern:     theory.Pattern{Name: "natMin", Steps: []int{2, 1, 2, 2, 1, 2, 2}},
		Description: "Natural minor (Aeolian)",
		URL:         "https://en.wikipedia.org/wiki/Minor_scale",
	},
	{
		Pattern:     theory.Pattern{Name: "pentMin", Steps: []int{3, 2, 2, 3, 2}},
		ChordSource: "natMin",
		Description: "Minor pentatonic",
		URL:         "https://en.wikipedia.org/wiki/Pentatonic_scale",
	},
	{
		Pattern:     theory.Pattern{Name: "blues", Steps: []int{3, 2, 1, 1, 3, 2}},
		Description: "Blues (minor pentatonic with flat five)",
		URL:         "https://en.wikipedia.org/wiki/Blues_scale",
	},
	{
		Pattern:     theory.Pattern{Name: "pentMaj", Steps: []int{2, 2, 3, 2, 3}},
		ChordSource: "maj",
		Description: "Major pentatonic",
		URL:         "https://en.wikipedia.org/wiki/Pentatonic_scale",
	},
	{
		Pattern:     theory.Pattern{Name: "harMin", Steps: []int{2, 1, 2, 2, 1, 3, 1}},
		Description: "Harmonic minor",
		URL:         "https://en.wikipedia.org/wiki/Harmonic_minor_scale",
	},
	{
		Pattern:     theory.Pattern{Name: "melMin", Steps: []int{2, 1, 2, 2, 2, 2, 1}},
		Description: "Melodic minor (ascending)",
		URL:         "https://en.wikipedia.org/wiki/Melodic_minor_scale",
	},
}

var builtinPresets = []Preset{
	{Name: "standard", Tuning: fretboard.StandardTuning(), Description: "Standard E"},
	{Name: "dropD", Tuning: fretboard.Tuning{theory.D, theory.A, theory.D, theory.G, theory.B, theory.E}, Description: "Drop D"},
	{Name: "halfDown", Tuning: fretboard.Tuning{theory.DSharp, theory.GSharp, theory.CSharp, theory.FSharp, theory.ASharp, theory.DSharp}, Description: "Half step down"},
	{Name: "dadgad", Tuning: fretboard.Tuning{theory.D, theory.A, theory.D, theory.G, theory.A, theory.D}, Description: "DADGAD"},
	{Name: "openG", Tuning: fretboard.Tuning{theory.D, theory.G, theory.D, theory.G, theory.B, theory.D}, Description: "Open G"},
	{Name: "openD", Tuning: fretboard.Tuning{theory.D, theory.A, theory.D, theory.FSharp, theory.A, theory.D}, Description: "Open D"},
}

// DefaultPreset is the preset used when no tuning is given.
const DefaultPreset = "standard"

// Default returns a catalog holding the built-in patterns and presets.
func Default() *Catalog {
	c := New()
	for _, e := range builtinEntries {
		// built-ins are ordered so chord sources precede their users
		if err := c.Upsert(e); err != nil {
			panic("catalog: bad built-in pattern: " + err.Error())
		}
	}
	for _, p := range builtinPresets {
		if err := c.UpsertPreset(p); err != nil {
			panic("catalog: bad built-in preset: " + err.Error())
		}
	}
	return c
}
