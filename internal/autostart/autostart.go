// Package autostart implements per-OS storage of startup applications behind
// a single Adapter interface. The adapter is picked once at runtime from a
// platform identifier; every implementation works on its native files
// through an afero.Fs and keeps no state between calls.
package autostart

import (
	"errors"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Guliveer/zen/internal/models"
	"github.com/Guliveer/zen/internal/platform"
)

var (
	// ErrUnsupported is returned by Toggle and Create on platforms without
	// an autostart adapter.
	ErrUnsupported = errors.New("not supported on this OS")

	// ErrNotRegularFile is returned when an entry path resolves to a
	// directory or another non-regular file.
	ErrNotRegularFile = errors.New("not a regular file")
)

// Adapter provides platform-specific autostart storage.
type Adapter interface {
	// Name returns the adapter identifier.
	Name() string

	// Dir returns the storage directory, or "" when the platform has none.
	Dir() string

	// Discover scans Dir and returns every recognized entry. A missing
	// directory yields no entries and files that fail to decode are skipped.
	Discover() []models.Entry

	// Toggle moves the entry at path to the requested state.
	Toggle(path string, enable bool) error

	// Create writes a new entry file and returns its path.
	Create(name, command, description string) (string, error)
}

// Options configures adapter construction.
type Options struct {
	FS     afero.Fs
	Dirs   platform.Dirs
	Dir    string // overrides the storage directory derived from Dirs
	Logger *zap.Logger
}

// New returns the adapter for goos. Platforms other than linux and windows
// get an adapter whose mutating operations fail with ErrUnsupported.
func New(goos string, opts Options) Adapter {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	switch goos {
	case platform.Linux:
		dir := opts.Dir
		if dir == "" {
			dir = XDGDir(opts.Dirs)
		}
		return NewXDG(opts.FS, dir, opts.Logger)
	case platform.Windows:
		dir := opts.Dir
		if dir == "" {
			dir = StartupFolderDir(opts.Dirs)
		}
		return NewStartupFolder(opts.FS, dir, opts.Logger)
	default:
		return NewUnsupported(goos)
	}
}

// XDGDir returns the autostart directory under the user config root.
func XDGDir(d platform.Dirs) string {
	return filepath.Join(d.ConfigDir, "autostart")
}

// StartupFolderDir returns the per-user Startup folder under the roaming
// data root.
func StartupFolderDir(d platform.Dirs) string {
	return filepath.Join(d.DataDir, "Microsoft", "Windows", "Start Menu", "Programs", "Startup")
}

// Supported reports whether a can toggle and create entries.
func Supported(a Adapter) bool {
	_, unsupported := a.(*unsupportedAdapter)
	return !unsupported
}
