// Package midiexport writes a scale and its chords as a Standard MIDI File so
// they can be auditioned in any sequencer.
package midiexport

import (
	"fmt"
	"io"

	"github.com/robby/fretboard/internal/theory"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	// DefaultOctave places the scale root in the octave of middle C.
	DefaultOctave = 4
	// DefaultBPM is the tempo written to the file.
	DefaultBPM = 100
	// DefaultVelocity is the note-on velocity.
	DefaultVelocity = 100

	ticksPerQuarter = 480
)

// Options tunes the generated file. Zero values take the defaults.
type Options struct {
	Octave   int
	BPM      float64
	Velocity uint8
	Channel  uint8
}

func (o Options) withDefaults() Options {
	if o.Octave == 0 {
		o.Octave = DefaultOctave
	}
	if o.BPM == 0 {
		o.BPM = DefaultBPM
	}
	if o.Velocity == 0 {
		o.Velocity = DefaultVelocity
	}
	return o
}

// ScaleKeys returns the MIDI keys of s played upward from its root, ending on
// the root an octave higher.
func ScaleKeys(s theory.Scale, octave int) []uint8 {
	if s.Len() == 0 {
		return nil
	}
	root := s.Root().MIDIKey(octave)
	keys := make([]uint8, 0, s.Len()+1)
	for _, n := range s.Notes() {
		keys = append(keys, uint8(root+int(theory.ForwardDistance(s.Root(), n))))
	}
	return append(keys, uint8(root+theory.PitchCount))
}

// ChordKeys returns the MIDI keys of c voiced in close position upward from
// its root in the given octave.
func ChordKeys(c theory.Chord, octave int) []uint8 {
	root := c.Root.MIDIKey(octave)
	keys := []uint8{uint8(root)}
	offset := 0
	prev := c.Root
	for _, n := range []theory.PitchClass{c.Third, c.Fifth, c.Seventh} {
		offset += int(theory.ForwardDistance(prev, n))
		keys = append(keys, uint8(root+offset))
		prev = n
	}
	return keys
}

// Build assembles a format-1 SMF: a tempo track, the scale in quarter notes,
// and each chord held for a half note.
func Build(s theory.Scale, chords []theory.Chord, opts Options) (*smf.SMF, error) {
	opts = opts.withDefaults()
	if opts.Octave < 1 || opts.Octave > 7 {
		return nil, fmt.Errorf("%w: octave %d outside 1-7", theory.ErrInvalidArgument, opts.Octave)
	}
	if s.Len() == 0 {
		return nil, fmt.Errorf("%w: empty scale", theory.ErrInvalidArgument)
	}

	clock := smf.MetricTicks(ticksPerQuarter)
	file := smf.New()
	file.TimeFormat = clock

	var meta smf.Track
	meta.Add(0, smf.MetaTrackSequenceName(s.Name()))
	meta.Add(0, smf.MetaTempo(opts.BPM))
	meta.Close(0)

	var scaleTrack smf.Track
	scaleTrack.Add(0, smf.MetaTrackSequenceName("scale"))
	for _, key := range ScaleKeys(s, opts.Octave) {
		scaleTrack.Add(0, midi.NoteOn(opts.Channel, key, opts.Velocity))
		scaleTrack.Add(clock.Ticks4th(), midi.NoteOff(opts.Channel, key))
	}
	scaleTrack.Close(0)

	var chordTrack smf.Track
	chordTrack.Add(0, smf.MetaTrackSequenceName("chords"))
	// chords start after the scale has finished
	rest := clock.Ticks4th() * uint32(s.Len()+1)
	for _, c := range chords {
		keys := ChordKeys(c, opts.Octave-1)
		for i, key := range keys {
			delta := uint32(0)
			if i == 0 {
				delta = rest
			}
			chordTrack.Add(delta, midi.NoteOn(opts.Channel, key, opts.Velocity))
		}
		for i, key := range keys {
			delta := uint32(0)
			if i == 0 {
				delta = clock.Ticks4th() * 2
			}
			chordTrack.Add(delta, midi.NoteOff(opts.Channel, key))
		}
		rest = 0
	}
	chordTrack.Close(0)

	for _, tr := range []smf.Track{meta, scaleTrack, chordTrack} {
		if err := file.Add(tr); err != nil {
			return nil, fmt.Errorf("add track: %w", err)
		}
	}
	return file, nil
}

// Write builds the file and writes it to w.
func Write(w io.Writer, s theory.Scale, chords []theory.Chord, opts Options) error {
	file, err := Build(s, chords, opts)
	if err != nil {
		return err
	}
	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("write midi: %w", err)
	}
	return nil
}
