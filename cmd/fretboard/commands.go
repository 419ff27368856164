package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robby/fretboard/internal/midiexport"
	"github.com/robby/fretboard/internal/render"
	"github.com/robby/fretboard/internal/theory"
	"github.com/robby/fretboard/internal/tui"
	"github.com/spf13/cobra"
)

func newScalesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scales",
		Short: "List scale patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), render.Patterns(opts.catalog.Patterns(), render.Options{Color: !opts.noColor}))
			return nil
		},
	}
}

func newTuningsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tunings",
		Short: "List tuning presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), render.Tunings(opts.catalog.Presets(), render.Options{Color: !opts.noColor}))
			return nil
		},
	}
}

func newExploreCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse scales and chords on an interactive fretboard",
		Long: `explore opens a terminal UI over the fretboard.

Without --scale a root picker is shown first, and without --pattern a
pattern picker. Press ? on the board for key bindings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := tui.Selection{Frets: opts.frets, Pattern: defaultPattern}

			tuning, preset, err := resolveTuning(opts)
			if err != nil {
				return err
			}
			sel.Tuning = tuning
			sel.Preset = preset

			if opts.scale != "" {
				root, err := theory.ParseNote(opts.scale)
				if err != nil {
					return fmt.Errorf("--scale: %w", err)
				}
				sel.Root = root
			}
			if opts.pattern != "" {
				e, err := opts.catalog.Pattern(opts.pattern)
				if err != nil {
					return err
				}
				sel.Pattern = e.Name()
			}

			app := tui.NewAppModel(opts.catalog, sel, opts.scale == "", opts.pattern == "")
			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("program error: %w", err)
			}
			return nil
		},
	}

	addInstrumentFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.scale, "scale", "s", "", "Root note to start on")
	cmd.Flags().StringVarP(&opts.pattern, "pattern", "p", "", "Scale pattern to start on")
	return cmd
}

// exportOptions holds the export command's own flags.
type exportOptions struct {
	out      string
	octave   int
	bpm      float64
	noChords bool
}

func newExportCmd(opts *options) *cobra.Command {
	eopts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a scale and its chords as a MIDI file",
		Long: `export writes a Standard MIDI File with the scale played upward from
its root in quarter notes, followed by the seventh chord on each degree as
half notes.`,
		Example: `  fretboard export -s A -p pentMin -o a-minor.mid`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := opts.pattern
			if pattern == "" {
				pattern = defaultPattern
			}
			scale, err := opts.catalog.Scale(opts.scale, pattern)
			if err != nil {
				return err
			}

			var chords []theory.Chord
			if !eopts.noChords {
				chords, err = opts.catalog.Chords(scale.Root(), pattern)
				if err != nil {
					return err
				}
			}

			mopts := midiexport.Options{Octave: eopts.octave, BPM: eopts.bpm}
			if eopts.out == "" || eopts.out == "-" {
				return midiexport.Write(cmd.OutOrStdout(), scale, chords, mopts)
			}

			f, err := os.Create(eopts.out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", eopts.out, err)
			}
			defer f.Close()

			if err := midiexport.Write(f, scale, chords, mopts); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", eopts.out, err)
			}
			slog.Info("midi written", "path", eopts.out, "scale", scale.Name(), "chords", len(chords))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.scale, "scale", "s", "", "Root note of the scale")
	cmd.Flags().StringVarP(&opts.pattern, "pattern", "p", "", "Scale pattern name (default \""+defaultPattern+"\")")
	cmd.Flags().StringVarP(&eopts.out, "out", "o", "-", "Output file, - for stdout")
	cmd.Flags().IntVar(&eopts.octave, "octave", midiexport.DefaultOctave, "Octave of the scale root (1-7)")
	cmd.Flags().Float64Var(&eopts.bpm, "bpm", midiexport.DefaultBPM, "Tempo in beats per minute")
	cmd.Flags().BoolVar(&eopts.noChords, "no-chords", false, "Write the scale track only")
	_ = cmd.MarkFlagRequired("scale")
	return cmd
}
