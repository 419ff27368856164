package theory

// Quality classifies a triad by its two stacked intervals.
type Quality int

const (
	Undefined Quality = iota
	Major
	Minor
	Diminished
	Augmented
)

func (q Quality) String() string {
	switch q {
	case Major:
		return "Major"
	case Minor:
		return "Minor"
	case Diminished:
		return "Diminished"
	case Augmented:
		return "Augmented"
	default:
		return "Undefined"
	}
}

// Chord is the stack of thirds built on one scale degree.
type Chord struct {
	Root    PitchClass
	Third   PitchClass
	Fifth   PitchClass
	Seventh PitchClass
	Quality Quality
}

// Name returns a label such as "C Major".
func (c Chord) Name() string {
	return c.Root.String() + " " + c.Quality.String()
}

// Notes returns root, third, fifth and seventh in that order.
func (c Chord) Notes() []PitchClass {
	return []PitchClass{c.Root, c.Third, c.Fifth, c.Seventh}
}

// Classify names a triad from the intervals root->third and third->fifth.
// Spacings that are not stacked major or minor thirds are Undefined.
func Classify(root, third, fifth PitchClass) Quality {
	lower, upper := ForwardDistance(root, third), ForwardDistance(third, fifth)
	switch {
	case lower == 4 && upper == 3:
		return Major
	case lower == 3 && upper == 4:
		return Minor
	case lower == 3 && upper == 3:
		return Diminished
	case lower == 4 && upper == 4:
		return Augmented
	default:
		return Undefined
	}
}

// DeriveChords stacks every other scale degree on each degree of s, in scale
// order. The result is only harmonically meaningful for seven-note scales;
// pentatonic scales should be swapped for their relative seven-note scale
// before calling.
func DeriveChords(s Scale) []Chord {
	if s.Len() == 0 {
		return nil
	}
	chords := make([]Chord, s.Len())
	for i := range chords {
		c := Chord{
			Root:    s.Degree(i),
			Third:   s.Degree(i + 2),
			Fifth:   s.Degree(i + 4),
			Seventh: s.Degree(i + 6),
		}
		c.Quality = Classify(c.Root, c.Third, c.Fifth)
		chords[i] = c
	}
	return chords
}
