// Package startup is the service boundary front ends call to list, toggle,
// create and delete autostart entries. Every call goes to the filesystem;
// nothing is cached between calls and no locking is done, so concurrent
// external edits are last-write-wins.
package startup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Guliveer/zen/internal/autostart"
	"github.com/Guliveer/zen/internal/models"
)

var (
	// ErrNotFound is returned when no discovered entry has the requested id.
	ErrNotFound = errors.New("autostart entry not found")

	// ErrInvalidEntry is returned by Create for unusable input.
	ErrInvalidEntry = errors.New("invalid autostart entry")
)

// Manager runs discovery, toggle and lifecycle operations against one
// platform adapter.
type Manager struct {
	adapter autostart.Adapter
	fs      afero.Fs
	logger  *zap.Logger
}

// New creates a Manager. fsys must be the filesystem the adapter works on;
// it is used for deletes, which are not platform specific.
func New(adapter autostart.Adapter, fsys afero.Fs, logger *zap.Logger) *Manager {
	return &Manager{
		adapter: adapter,
		fs:      fsys,
		logger:  logger.Named("startup"),
	}
}

// Platform returns the name of the active adapter.
func (m *Manager) Platform() string { return m.adapter.Name() }

// Dir returns the storage directory of the active adapter.
func (m *Manager) Dir() string { return m.adapter.Dir() }

// List returns a fresh snapshot of the storage directory. Order is the
// directory listing order and must not be relied on.
func (m *Manager) List() []models.Entry {
	entries := m.adapter.Discover()
	m.logger.Debug("Listed autostart entries",
		zap.String("dir", m.adapter.Dir()),
		zap.Int("count", len(entries)))
	return entries
}

// Find returns the entry with the given id from a fresh snapshot.
func (m *Manager) Find(id string) (models.Entry, error) {
	for _, e := range m.List() {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Entry{}, fmt.Errorf("%q: %w", id, ErrNotFound)
}

// Toggle enables or disables the entry backed by path.
func (m *Manager) Toggle(path string, enable bool) error {
	if err := m.adapter.Toggle(path, enable); err != nil {
		return fmt.Errorf("toggling autostart entry: %w", err)
	}
	return nil
}

// ToggleByID resolves id and toggles the backing file.
func (m *Manager) ToggleByID(id string, enable bool) error {
	e, err := m.Find(id)
	if err != nil {
		return err
	}
	return m.Toggle(e.Path, enable)
}

// Create writes a new entry and returns the path of its backing file. An
// existing file with the same sanitized name is overwritten.
func (m *Manager) Create(name, command, description string) (string, error) {
	if autostart.Supported(m.adapter) {
		if strings.TrimSpace(name) == "" {
			return "", fmt.Errorf("%w: name is required", ErrInvalidEntry)
		}
		if strings.TrimSpace(command) == "" {
			return "", fmt.Errorf("%w: command is required", ErrInvalidEntry)
		}
	}

	path, err := m.adapter.Create(name, command, description)
	if err != nil {
		return "", fmt.Errorf("creating autostart entry: %w", err)
	}
	return path, nil
}

// Delete removes the regular file at path. Directories are never removed.
func (m *Manager) Delete(path string) error {
	info, err := m.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("deleting autostart entry: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("deleting autostart entry %s: %w", path, autostart.ErrNotRegularFile)
	}
	if err := m.fs.Remove(path); err != nil {
		return fmt.Errorf("deleting autostart entry: %w", err)
	}
	m.logger.Info("Deleted autostart entry", zap.String("file", path))
	return nil
}

// DeleteByID resolves id and deletes the backing file.
func (m *Manager) DeleteByID(id string) error {
	e, err := m.Find(id)
	if err != nil {
		return err
	}
	return m.Delete(e.Path)
}
