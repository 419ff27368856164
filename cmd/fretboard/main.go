package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/robby/fretboard/internal/catalog"
	"github.com/robby/fretboard/internal/config"
	"github.com/robby/fretboard/internal/fretboard"
	"github.com/robby/fretboard/internal/render"
	"github.com/robby/fretboard/internal/theory"
	"github.com/spf13/cobra"
)

// defaultPattern is used when --scale is given without --pattern.
const defaultPattern = "maj"

// options holds the flag values shared by all commands.
type options struct {
	// Persistent
	catalogPath string
	noColor     bool
	debug       bool

	// Instrument
	tuning []string
	preset string
	frets  int

	// Mode
	find    string
	scale   string
	pattern string

	// Loaded in PersistentPreRunE
	catalog *catalog.Catalog
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "fretboard",
		Short: "Guitar fretboard, scale and chord explorer",
		Long: `fretboard prints where notes fall on a six-string guitar neck.

Modes:
  --find NOTE               show only NOTE on the fretboard
  --scale ROOT [--pattern]  show a scale, the chords built on its degrees
                            and the fretboard filtered to the scale
  (neither)                 show every note

Extra scale patterns and tuning presets can be defined in a YAML catalog
given with --catalog, the FRETBOARD_CATALOG environment variable, or
catalog.yaml in the user config directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogger(opts.debug)
			c, err := config.Load(config.DefaultProviders(opts.catalogPath))
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}
			opts.catalog = c
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "Path to a YAML catalog of extra scales and tunings")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")

	addInstrumentFlags(rootCmd, opts)
	rootCmd.Flags().StringVarP(&opts.find, "find", "f", "", "Show only this note")
	rootCmd.Flags().StringVarP(&opts.scale, "scale", "s", "", "Root note of the scale to show")
	rootCmd.Flags().StringVarP(&opts.pattern, "pattern", "p", "", "Scale pattern name (default \""+defaultPattern+"\")")
	rootCmd.MarkFlagsMutuallyExclusive("find", "scale")
	rootCmd.MarkFlagsMutuallyExclusive("find", "pattern")

	rootCmd.AddCommand(
		newScalesCmd(opts),
		newTuningsCmd(opts),
		newExploreCmd(opts),
		newExportCmd(opts),
	)
	return rootCmd
}

// addInstrumentFlags registers the tuning and fret flags on cmd.
func addInstrumentFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringSliceVarP(&opts.tuning, "tuning", "t", nil, "Open string notes, lowest first, e.g. E,A,D,G,B,E")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "Tuning preset name (see 'fretboard tunings')")
	cmd.Flags().IntVarP(&opts.frets, "frets", "n", fretboard.DefaultFrets, fmt.Sprintf("Number of frets (%d-%d)", fretboard.MinFrets, fretboard.MaxFrets))
	cmd.MarkFlagsMutuallyExclusive("tuning", "preset")
}

// initLogger configures the default slog logger. Logs go to stderr so they
// never mix with rendered output.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	slog.SetDefault(slog.New(h))
}

// resolveTuning returns the tuning the flags ask for and the name of the
// matching preset, if any.
func resolveTuning(opts *options) (fretboard.Tuning, string, error) {
	if len(opts.tuning) > 0 {
		t, err := fretboard.ParseTuning(opts.tuning)
		if err != nil {
			return nil, "", fmt.Errorf("--tuning: %w", err)
		}
		name, _ := opts.catalog.PresetFor(t)
		return t, name, nil
	}

	name := opts.preset
	if name == "" {
		name = catalog.DefaultPreset
	}
	p, err := opts.catalog.Preset(name)
	if err != nil {
		return nil, "", fmt.Errorf("--preset: %w", err)
	}
	return p.Tuning, p.Name, nil
}

// runShow prints the non-interactive view for the root command.
func runShow(w io.Writer, opts *options) error {
	if opts.pattern != "" && opts.scale == "" {
		return fmt.Errorf("--pattern requires --scale to be specified")
	}

	tuning, _, err := resolveTuning(opts)
	if err != nil {
		return err
	}
	grid, err := fretboard.BuildGrid(tuning, opts.frets)
	if err != nil {
		return fmt.Errorf("--frets: %w", err)
	}
	ropts := render.Options{Color: !opts.noColor}

	switch {
	case opts.find != "":
		note, err := theory.ParseNote(opts.find)
		if err != nil {
			return fmt.Errorf("--find: %w", err)
		}
		fmt.Fprintln(w, render.Fretboard(grid, render.FindMask(note), ropts))

	case opts.scale != "":
		pattern := opts.pattern
		if pattern == "" {
			pattern = defaultPattern
		}
		scale, err := opts.catalog.Scale(opts.scale, pattern)
		if err != nil {
			return err
		}
		chords, err := opts.catalog.Chords(scale.Root(), pattern)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, render.ScaleLine(scale))
		fmt.Fprintln(w, render.LabelStyle.Render("Chords in scale are:"))
		fmt.Fprintln(w, render.Chords(chords, ropts))
		fmt.Fprintln(w, render.Fretboard(grid, render.ScaleMask(scale), ropts))

	default:
		fmt.Fprintln(w, render.Fretboard(grid, render.ShowAll(), ropts))
	}
	return nil
}
