package catalog

import (
	"testing"

	"github.com/robby/fretboard/internal/fretboard"
	"github.com/robby/fretboard/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test fixtures
func createTestDorian() Entry {
	return Entry{
		Pattern:     theory.Pattern{Name: "dorian", Steps: []int{2, 1, 2, 2, 2, 1, 2}},
		Description: "Dorian mode",
	}
}

func createTestFile() File {
	return File{
		Scales: []ScaleDef{
			{Name: "pentDorian", Steps: []int{2, 1, 4, 2, 3}, Chords: "dorian"},
			{Name: "dorian", Steps: []int{2, 1, 2, 2, 2, 1, 2}, Description: "Dorian mode"},
		},
		Tunings: []TuningDef{
			{Name: "openE", Notes: []string{"E", "B", "E", "g#", "B", "E"}, Description: "Open E"},
		},
	}
}

// TestDefault verifies the built-in catalog contents and order
func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"maj", "natMin", "pentMin", "blues", "pentMaj", "harMin", "melMin"}, c.Names())

	for _, e := range c.Patterns() {
		assert.NoError(t, e.Pattern.Validate(), e.Name())
		assert.NotEmpty(t, e.Description, e.Name())
	}

	presets := c.Presets()
	require.NotEmpty(t, presets)
	assert.Equal(t, DefaultPreset, presets[0].Name)
	assert.Equal(t, fretboard.StandardTuning(), presets[0].Tuning)
}

// TestPattern verifies lookups by name
func TestPattern(t *testing.T) {
	c := Default()

	t.Run("exact", func(t *testing.T) {
		e, err := c.Pattern("pentMin")
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2, 2, 3, 2}, e.Pattern.Steps)
		assert.Equal(t, "natMin", e.ChordSource)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		e, err := c.Pattern("HARMIN")
		require.NoError(t, err)
		assert.Equal(t, "harMin", e.Name())
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := c.Pattern("lydian")
		assert.ErrorIs(t, err, theory.ErrUnknownPattern)
	})
}

// TestScale verifies name-based scale generation
func TestScale(t *testing.T) {
	c := Default()

	s, err := c.Scale("C", "maj")
	require.NoError(t, err)
	assert.Equal(t, "C-D-E-F-G-A-B", s.String())

	s, err = c.Scale("a", "pentMin")
	require.NoError(t, err)
	assert.Equal(t, []theory.PitchClass{theory.A, theory.C, theory.D, theory.E, theory.G}, s.Notes())

	_, err = c.Scale("H", "maj")
	assert.ErrorIs(t, err, theory.ErrInvalidNote)

	_, err = c.Scale("C", "nope")
	assert.ErrorIs(t, err, theory.ErrUnknownPattern)
}

// TestChordScale verifies the relative-scale substitution table
func TestChordScale(t *testing.T) {
	c := Default()

	tests := []struct {
		pattern string
		want    string
	}{
		{"pentMaj", "maj"},
		{"pentMin", "natMin"},
		{"maj", "maj"},
		{"blues", "blues"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			s, err := c.ChordScale(theory.A, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Pattern())
			assert.Equal(t, theory.A, s.Root())
		})
	}
}

// TestChords verifies chords come from the relative scale
func TestChords(t *testing.T) {
	c := Default()

	chords, err := c.Chords(theory.A, "pentMin")
	require.NoError(t, err)
	require.Len(t, chords, 7)
	assert.Equal(t, "A Minor", chords[0].Name())
	assert.Equal(t, theory.Major, chords[2].Quality) // C major

	chords, err = c.Chords(theory.A, "blues")
	require.NoError(t, err)
	assert.Len(t, chords, 6)
}

// TestUpsert verifies validation and replacement
func TestUpsert(t *testing.T) {
	c := Default()

	t.Run("new pattern appended", func(t *testing.T) {
		require.NoError(t, c.Upsert(createTestDorian()))
		names := c.Names()
		assert.Equal(t, "dorian", names[len(names)-1])
	})

	t.Run("replace keeps position", func(t *testing.T) {
		e := createTestDorian()
		e.Description = "Second mode"
		require.NoError(t, c.Upsert(e))
		got, err := c.Pattern("dorian")
		require.NoError(t, err)
		assert.Equal(t, "Second mode", got.Description)
		assert.Len(t, c.Names(), 8)
	})

	t.Run("invalid steps", func(t *testing.T) {
		err := c.Upsert(Entry{Pattern: theory.Pattern{Name: "bad", Steps: []int{5, 5}}})
		assert.ErrorIs(t, err, theory.ErrInvalidPattern)
	})

	t.Run("missing chord source", func(t *testing.T) {
		e := createTestDorian()
		e.Pattern.Name = "other"
		e.ChordSource = "missing"
		assert.ErrorIs(t, c.Upsert(e), ErrUnknownChordSource)
	})

	t.Run("empty name", func(t *testing.T) {
		assert.ErrorIs(t, c.Upsert(Entry{}), ErrEmptyName)
	})

	t.Run("steps are copied", func(t *testing.T) {
		steps := []int{2, 2, 2, 2, 2, 2}
		require.NoError(t, c.Upsert(Entry{Pattern: theory.Pattern{Name: "whole", Steps: steps}}))
		steps[0] = 9
		got, err := c.Pattern("whole")
		require.NoError(t, err)
		assert.Equal(t, 2, got.Pattern.Steps[0])
	})
}

// TestNextPattern verifies cycling through the listing
func TestNextPattern(t *testing.T) {
	c := Default()
	assert.Equal(t, "natMin", c.NextPattern("maj", 1))
	assert.Equal(t, "melMin", c.NextPattern("maj", -1))
	assert.Equal(t, "maj", c.NextPattern("melMin", 1))
	assert.Equal(t, "maj", c.NextPattern("unknown", 1))
	assert.Equal(t, "", New().NextPattern("maj", 1))
}

// TestPresets verifies preset lookup
func TestPresets(t *testing.T) {
	c := Default()

	p, err := c.Preset("dropd")
	require.NoError(t, err)
	assert.Equal(t, "D-A-D-G-B-E", p.Tuning.String())

	_, err = c.Preset("nashville")
	assert.ErrorIs(t, err, ErrUnknownPreset)

	name, ok := c.PresetFor(fretboard.StandardTuning())
	assert.True(t, ok)
	assert.Equal(t, "standard", name)

	assert.Equal(t, "dropD", c.NextPreset("standard", 1))

	err = c.UpsertPreset(Preset{Name: "short", Tuning: fretboard.Tuning{theory.E}})
	assert.ErrorIs(t, err, theory.ErrInvalidArgument)
}

// TestMerge verifies file merging
func TestMerge(t *testing.T) {
	t.Run("forward chord source reference", func(t *testing.T) {
		c := Default()
		require.NoError(t, c.Merge(createTestFile()))

		chords, err := c.Chords(theory.D, "pentDorian")
		require.NoError(t, err)
		require.Len(t, chords, 7)
		assert.Equal(t, "D Minor", chords[0].Name())

		p, err := c.Preset("openE")
		require.NoError(t, err)
		assert.Equal(t, "E-B-E-G#-B-E", p.Tuning.String())
	})

	t.Run("invalid file changes nothing", func(t *testing.T) {
		c := Default()
		f := createTestFile()
		f.Tunings[0].Notes = []string{"E", "B"}

		err := c.Merge(f)
		assert.ErrorIs(t, err, theory.ErrInvalidArgument)
		assert.Len(t, c.Names(), 7)
		_, err = c.Pattern("dorian")
		assert.ErrorIs(t, err, theory.ErrUnknownPattern)
	})

	t.Run("bad steps", func(t *testing.T) {
		c := Default()
		err := c.Merge(File{Scales: []ScaleDef{{Name: "x", Steps: []int{1, 2}}}})
		assert.ErrorIs(t, err, theory.ErrInvalidPattern)
	})

	t.Run("dangling chord source", func(t *testing.T) {
		c := Default()
		err := c.Merge(File{Scales: []ScaleDef{{Name: "x", Steps: []int{6, 6}, Chords: "y"}}})
		assert.ErrorIs(t, err, ErrUnknownChordSource)
	})
}
