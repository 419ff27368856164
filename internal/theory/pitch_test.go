package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNote(t *testing.T) {
	t.Run("canonical and lowercase tokens", func(t *testing.T) {
		cases := map[string]PitchClass{
			"A":    A,
			"a#":   ASharp,
			"C":    C,
			" f# ": FSharp,
			"g#":   GSharp,
		}
		for tok, want := range cases {
			got, err := ParseNote(tok)
			require.NoError(t, err, tok)
			assert.Equal(t, want, got, tok)
		}
	})

	t.Run("flats and garbage are rejected", func(t *testing.T) {
		for _, tok := range []string{"Bb", "H", "", "C##", "E#"} {
			_, err := ParseNote(tok)
			assert.ErrorIs(t, err, ErrInvalidNote, tok)
		}
	})
}

func TestParseNotes(t *testing.T) {
	notes, err := ParseNotes([]string{"e", "A", "d"})
	require.NoError(t, err)
	assert.Equal(t, []PitchClass{E, A, D}, notes)

	_, err = ParseNotes([]string{"E", "X"})
	assert.ErrorIs(t, err, ErrInvalidNote)
}

func TestPitchClass_StringRoundTrip(t *testing.T) {
	all := AllPitchClasses()
	require.Len(t, all, PitchCount)
	for i, p := range all {
		assert.Equal(t, i, p.Index())
		parsed, err := ParseNote(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
	assert.Equal(t, "?", PitchClass(12).String())
}

func TestPitchClass_Transpose(t *testing.T) {
	assert.Equal(t, C, A.Transpose(3))
	assert.Equal(t, A, GSharp.Transpose(1))
	assert.Equal(t, GSharp, A.Transpose(-1))
	assert.Equal(t, E, E.Transpose(24))
	assert.Equal(t, E, E.Transpose(-36))
}

func TestPitchClass_MIDIKey(t *testing.T) {
	assert.Equal(t, 60, C.MIDIKey(4))
	assert.Equal(t, 69, A.MIDIKey(4))
	assert.Equal(t, 59, B.MIDIKey(3))
	assert.Equal(t, 40, E.MIDIKey(2))
	assert.Equal(t, 64, E.MIDIKey(4))
}

func TestForwardDistance(t *testing.T) {
	t.Run("zero to itself", func(t *testing.T) {
		for _, p := range AllPitchClasses() {
			assert.Equal(t, Interval(0), ForwardDistance(p, p))
		}
	})

	t.Run("directional and complementary", func(t *testing.T) {
		for _, a := range AllPitchClasses() {
			for _, b := range AllPitchClasses() {
				ab, ba := ForwardDistance(a, b), ForwardDistance(b, a)
				assert.GreaterOrEqual(t, int(ab), 0)
				assert.Less(t, int(ab), PitchCount)
				assert.Equal(t, 0, int(ab+ba)%PitchCount)
				if a != b {
					assert.NotZero(t, ab)
					assert.NotZero(t, ba)
				}
			}
		}
	})

	t.Run("known intervals", func(t *testing.T) {
		assert.Equal(t, Interval(4), ForwardDistance(C, E))
		assert.Equal(t, Interval(8), ForwardDistance(E, C))
		assert.Equal(t, Interval(3), ForwardDistance(A, C))
		assert.Equal(t, Interval(1), ForwardDistance(GSharp, A))
	})
}

func TestSequenceFrom(t *testing.T) {
	assert.Equal(t, []PitchClass{E, F, FSharp, G}, SequenceFrom(E, 4))
	assert.Equal(t, []PitchClass{G, GSharp, A, ASharp}, SequenceFrom(G, 4))
	assert.Empty(t, SequenceFrom(C, 0))
	assert.Empty(t, SequenceFrom(C, -3))

	long := SequenceFrom(D, 30)
	require.Len(t, long, 30)
	assert.Equal(t, D, long[12])
	assert.Equal(t, D, long[24])
	assert.Equal(t, long[:12], long[12:24])
}

func TestJoinNotes(t *testing.T) {
	assert.Equal(t, "C-E-G", JoinNotes([]PitchClass{C, E, G}, "-"))
	assert.Equal(t, "", JoinNotes(nil, "-"))
}

func TestInterval_Name(t *testing.T) {
	assert.Equal(t, "unison", Interval(0).Name())
	assert.Equal(t, "major third", ForwardDistance(C, E).Name())
	assert.Equal(t, "minor third", ForwardDistance(A, C).Name())
	assert.Equal(t, "tritone", ForwardDistance(B, F).Name())
	assert.Equal(t, "major seventh", ForwardDistance(C, B).Name())
	assert.Equal(t, "?", Interval(12).Name())
}
