package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robby/fretboard/internal/config"
	"github.com/robby/fretboard/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args against an isolated config directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvCatalog, "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRoot_ScaleMode(t *testing.T) {
	out, err := execute(t, "-s", "C", "-p", "maj", "-n", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Scale Notes are: C-D-E-F-G-A-B")
	assert.Contains(t, out, "Chords in scale are:")
	assert.Contains(t, out, "Chord Name")
	assert.Contains(t, out, "C Major")
	assert.Contains(t, out, "B Diminished")
	assert.Contains(t, out, "Fret")
	// F# on the low E string is outside C major
	assert.Contains(t, out, "x")
}

func TestRoot_ScaleDefaultsToMajor(t *testing.T) {
	out, err := execute(t, "--scale", "g")
	require.NoError(t, err)
	assert.Contains(t, out, "Scale Notes are: G-A-B-C-D-E-F#")
}

func TestRoot_PentatonicBorrowsChords(t *testing.T) {
	out, err := execute(t, "-s", "A", "-p", "pentMin")
	require.NoError(t, err)

	assert.Contains(t, out, "Scale Notes are: A-C-D-E-G")
	// Chords come from A natural minor, so B Diminished appears even though
	// B is not in the pentatonic scale.
	assert.Contains(t, out, "B Diminished")
}

func TestRoot_FindMode(t *testing.T) {
	out, err := execute(t, "--find", "A", "-n", "5")
	require.NoError(t, err)

	assert.NotContains(t, out, "Scale Notes are:")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "x")
	assert.NotContains(t, out, "F#")
}

func TestRoot_AllNotes(t *testing.T) {
	out, err := execute(t, "-n", "1")
	require.NoError(t, err)
	// Fret 1 of standard tuning
	for _, note := range []string{"F", "A#", "D#", "G#", "C"} {
		assert.Contains(t, out, note)
	}
	assert.NotContains(t, out, "x")
}

func TestRoot_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "short tuning", args: []string{"-t", "E,A,D,G,B"}, wantErr: theory.ErrInvalidArgument},
		{name: "bad tuning note", args: []string{"-t", "E,A,D,G,B,H"}, wantErr: theory.ErrInvalidNote},
		{name: "too many frets", args: []string{"-n", "25"}, wantErr: theory.ErrInvalidArgument},
		{name: "no frets", args: []string{"-n", "0"}, wantErr: theory.ErrInvalidArgument},
		{name: "bad find note", args: []string{"-f", "H"}, wantErr: theory.ErrInvalidNote},
		{name: "bad scale root", args: []string{"-s", "Cb"}, wantErr: theory.ErrInvalidNote},
		{name: "unknown pattern", args: []string{"-s", "C", "-p", "lydian"}, wantErr: theory.ErrUnknownPattern},
		{name: "pattern without scale", args: []string{"-p", "maj"}, wantMsg: "--pattern requires --scale"},
		{name: "find and scale", args: []string{"-f", "A", "-s", "C"}, wantMsg: "none of the others can be"},
		{name: "tuning and preset", args: []string{"-t", "E,A,D,G,B,E", "--preset", "dropD"}, wantMsg: "none of the others can be"},
		{name: "unknown preset", args: []string{"--preset", "openQ"}, wantMsg: "unknown tuning preset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRoot_TuningFlag(t *testing.T) {
	// Lowercase and repeated flags are accepted
	out, err := execute(t, "-t", "d,a", "-t", "d,g,a,d", "-n", "1")
	require.NoError(t, err)
	header := strings.Split(out, "\n")[1]
	assert.Contains(t, header, "Fret")
	assert.Contains(t, header, "D")
	assert.NotContains(t, header, "E")
	assert.NotContains(t, header, "B")
}

func TestScalesCmd(t *testing.T) {
	out, err := execute(t, "scales")
	require.NoError(t, err)

	for _, name := range []string{"maj", "natMin", "pentMin", "blues", "pentMaj", "harMin", "melMin"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "2-2-1-2-2-2-1")
}

func TestTuningsCmd(t *testing.T) {
	out, err := execute(t, "tunings")
	require.NoError(t, err)

	for _, name := range []string{"standard", "dropD", "halfDown", "dadgad", "openG", "openD"} {
		assert.Contains(t, out, name)
	}
}

func TestCatalogFlag(t *testing.T) {
	path := writeCatalog(t, `
scales:
  - name: dorian
    steps: [2, 1, 2, 2, 2, 1, 2]
    description: Dorian mode
tunings:
  - name: openE
    notes: [E, B, E, G#, B, E]
`)

	out, err := execute(t, "--catalog", path, "scales")
	require.NoError(t, err)
	assert.Contains(t, out, "dorian")

	out, err = execute(t, "--catalog", path, "-s", "D", "-p", "dorian")
	require.NoError(t, err)
	assert.Contains(t, out, "Scale Notes are: D-E-F-G-A-B-C")

	out, err = execute(t, "--catalog", path, "tunings")
	require.NoError(t, err)
	assert.Contains(t, out, "openE")
}

func TestCatalogEnv(t *testing.T) {
	path := writeCatalog(t, `
scales:
  - name: wholeTone
    steps: [2, 2, 2, 2, 2, 2]
`)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvCatalog, path)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--no-color", "scales"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "wholeTone")
}

func TestCatalogErrors(t *testing.T) {
	_, err := execute(t, "--catalog", filepath.Join(t.TempDir(), "missing.yaml"), "scales")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load catalog")

	path := writeCatalog(t, "scales: [[[")
	_, err = execute(t, "--catalog", path, "scales")
	require.Error(t, err)

	path = writeCatalog(t, `
scales:
  - name: broken
    steps: [2, 2, 2]
`)
	_, err = execute(t, "--catalog", path, "scales")
	require.Error(t, err)
	assert.True(t, errors.Is(err, theory.ErrInvalidPattern), "got %v", err)
}

func TestExportCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "c-major.mid")
	_, err := execute(t, "export", "-s", "C", "-p", "maj", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("MThd")))
}

func TestExportCmd_Stdout(t *testing.T) {
	out, err := execute(t, "export", "-s", "A", "-p", "pentMin", "--no-chords")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "MThd"))
}

func TestExportCmd_Errors(t *testing.T) {
	_, err := execute(t, "export")
	require.Error(t, err, "--scale is required")

	_, err = execute(t, "export", "-s", "C", "--octave", "9", "-o", filepath.Join(t.TempDir(), "x.mid"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, theory.ErrInvalidArgument), "got %v", err)
}
