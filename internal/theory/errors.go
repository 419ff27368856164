package theory

import "errors"

var (
	// ErrInvalidNote indicates a token that is not one of the 12 canonical pitch classes.
	ErrInvalidNote = errors.New("invalid note")
	// ErrUnknownPattern indicates a scale pattern name missing from the catalog.
	ErrUnknownPattern = errors.New("unknown scale pattern")
	// ErrInvalidPattern indicates a pattern whose steps are not positive or do not span an octave.
	ErrInvalidPattern = errors.New("invalid scale pattern")
	// ErrInvalidArgument indicates a violated precondition such as an out-of-range fret count.
	ErrInvalidArgument = errors.New("invalid argument")
)
