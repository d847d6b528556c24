package autostart

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Guliveer/zen/internal/desktopentry"
	"github.com/Guliveer/zen/internal/models"
)

// xdgAdapter implements Adapter for freedesktop sessions using
// ~/.config/autostart/*.desktop files.
type xdgAdapter struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger
}

// NewXDG returns an Adapter over the given autostart directory.
func NewXDG(fsys afero.Fs, dir string, logger *zap.Logger) Adapter {
	return &xdgAdapter{fs: fsys, dir: dir, logger: logger.Named("xdg")}
}

func (a *xdgAdapter) Name() string { return "xdg" }

func (a *xdgAdapter) Dir() string { return a.dir }

func (a *xdgAdapter) Discover() []models.Entry {
	return scan(a.fs, a.dir, isDesktopFile, a.decode, a.logger)
}

func isDesktopFile(name string) bool {
	return filepath.Ext(name) == desktopentry.Extension
}

func (a *xdgAdapter) decode(path string) (models.Entry, error) {
	f, err := a.read(path)
	if err != nil {
		return models.Entry{}, err
	}

	base := filepath.Base(path)
	name, _ := f.Get(desktopentry.KeyName)
	if name == "" {
		name = base
	}
	return models.Entry{
		ID:      base,
		Name:    name,
		Command: f.Command(),
		Enabled: f.Enabled(),
		Path:    path,
	}, nil
}

func (a *xdgAdapter) read(path string) (*desktopentry.File, error) {
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := desktopentry.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Toggle rewrites the Hidden and X-GNOME-Autostart-enabled lines of the file
// and writes the whole content back.
func (a *xdgAdapter) Toggle(path string, enable bool) error {
	info, err := statRegular(a.fs, path)
	if err != nil {
		return err
	}
	f, err := a.read(path)
	if err != nil {
		return err
	}

	f.SetEnabled(enable)
	if err := afero.WriteFile(a.fs, path, f.Bytes(), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	a.logger.Info("Toggled autostart entry",
		zap.String("file", path),
		zap.Bool("enabled", enable))
	return nil
}

func (a *xdgAdapter) Create(name, command, description string) (string, error) {
	if err := a.fs.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating autostart directory: %w", err)
	}

	path := filepath.Join(a.dir, SafeFilename(name, desktopentry.Extension))
	content := desktopentry.New(name, command, description).Bytes()
	if err := afero.WriteFile(a.fs, path, content, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	a.logger.Info("Created autostart entry", zap.String("file", path))
	return path, nil
}
