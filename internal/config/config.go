// Package config locates and loads the optional user catalog file that
// extends the built-in scale patterns and tuning presets.
//
// The catalog path comes from the first provider that has one:
//  1. the --catalog flag
//  2. the FRETBOARD_CATALOG environment variable
//  3. catalog.yaml in the user config directory, if that file exists
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/robby/fretboard/internal/catalog"
	"gopkg.in/yaml.v3"
)

// EnvCatalog names the environment variable holding a catalog path.
const EnvCatalog = "FRETBOARD_CATALOG"

// ErrNotConfigured is returned by a provider that has no path to offer.
var ErrNotConfigured = errors.New("catalog path not configured")

// PathProvider yields the path of a catalog file.
type PathProvider interface {
	CatalogPath() (string, error)
	Name() string
}

// FlagProvider offers a path given explicitly on the command line.
type FlagProvider struct {
	Path string
}

// CatalogPath returns the flag value, or ErrNotConfigured if it is empty.
func (f *FlagProvider) CatalogPath() (string, error) {
	if f.Path == "" {
		return "", ErrNotConfigured
	}
	return f.Path, nil
}

func (f *FlagProvider) Name() string { return "flag" }

// EnvProvider reads the path from EnvCatalog.
type EnvProvider struct{}

// CatalogPath returns the environment value, or ErrNotConfigured if unset.
func (e *EnvProvider) CatalogPath() (string, error) {
	path := os.Getenv(EnvCatalog)
	if path == "" {
		return "", ErrNotConfigured
	}
	return path, nil
}

func (e *EnvProvider) Name() string { return "env" }

// UserDirProvider looks for fretboard/catalog.yaml under the user config
// directory ($XDG_CONFIG_HOME or its platform equivalent).
type UserDirProvider struct{}

// CatalogPath returns the file path only if the file exists.
func (u *UserDirProvider) CatalogPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", ErrNotConfigured
	}
	path := filepath.Join(dir, "fretboard", "catalog.yaml")
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotConfigured
	}
	return path, nil
}

func (u *UserDirProvider) Name() string { return "user config dir" }

// DefaultProviders returns the provider chain in priority order.
func DefaultProviders(flagPath string) []PathProvider {
	return []PathProvider{
		&FlagProvider{Path: flagPath},
		&EnvProvider{},
		&UserDirProvider{},
	}
}

// ResolvePath returns the first path offered by providers. An empty path with
// a nil error means no provider is configured.
func ResolvePath(providers []PathProvider) (string, error) {
	for _, p := range providers {
		path, err := p.CatalogPath()
		if errors.Is(err, ErrNotConfigured) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("%s: %w", p.Name(), err)
		}
		slog.Debug("catalog path resolved", "source", p.Name(), "path", path)
		return path, nil
	}
	return "", nil
}

// ReadFile parses a catalog file. A missing file is tagged ftag.NotFound and
// malformed YAML ftag.InvalidArgument.
func ReadFile(path string) (catalog.File, error) {
	var f catalog.File

	data, err := os.ReadFile(path)
	if err != nil {
		kind := ftag.Internal
		if errors.Is(err, fs.ErrNotExist) {
			kind = ftag.NotFound
		}
		return f, fault.Wrap(err,
			fmsg.With(fmt.Sprintf("read catalog %s", path)),
			ftag.With(kind),
		)
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fault.Wrap(err,
			fmsg.With(fmt.Sprintf("parse catalog %s", path)),
			ftag.With(ftag.InvalidArgument),
		)
	}
	return f, nil
}

// Load builds the catalog: the built-ins, extended by the file the providers
// resolve to, if any.
func Load(providers []PathProvider) (*catalog.Catalog, error) {
	c := catalog.Default()

	path, err := ResolvePath(providers)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, nil
	}

	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := c.Merge(f); err != nil {
		return nil, fault.Wrap(err,
			fmsg.With(fmt.Sprintf("merge catalog %s", path)),
			ftag.With(ftag.InvalidArgument),
		)
	}

	slog.Info("catalog loaded", "path", path, "scales", len(f.Scales), "tunings", len(f.Tunings))
	return c, nil
}
