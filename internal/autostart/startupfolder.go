package autostart

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Guliveer/zen/internal/models"
)

// DisabledSuffix is appended to a Startup folder file name to disable it.
const DisabledSuffix = ".disabled"

const shortcutExt = ".lnk"

// startupExtensions lists the file types Explorer launches from the Startup
// folder. Matching is case-insensitive like the filesystem.
var startupExtensions = map[string]bool{
	".lnk": true,
	".bat": true,
	".cmd": true,
	".exe": true,
}

// startupFolderAdapter implements Adapter for the per-user Windows Startup
// folder. State lives only in file names: content is never read.
type startupFolderAdapter struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger
}

// NewStartupFolder returns an Adapter over the given Startup folder.
func NewStartupFolder(fsys afero.Fs, dir string, logger *zap.Logger) Adapter {
	return &startupFolderAdapter{fs: fsys, dir: dir, logger: logger.Named("startup-folder")}
}

func (a *startupFolderAdapter) Name() string { return "startup-folder" }

func (a *startupFolderAdapter) Dir() string { return a.dir }

func (a *startupFolderAdapter) Discover() []models.Entry {
	return scan(a.fs, a.dir, isStartupFile, decodeStartupFile, a.logger)
}

// isStartupFile accepts launchable files and their disabled renames.
func isStartupFile(name string) bool {
	name = strings.TrimSuffix(name, DisabledSuffix)
	return startupExtensions[strings.ToLower(filepath.Ext(name))]
}

func decodeStartupFile(path string) (models.Entry, error) {
	base := filepath.Base(path)
	active := strings.TrimSuffix(base, DisabledSuffix)
	return models.Entry{
		ID:      base,
		Name:    strings.TrimSuffix(active, shortcutExt),
		Command: path,
		Enabled: active == base,
		Path:    path,
	}, nil
}

// Toggle renames the file to add or strip DisabledSuffix. A file already in
// the requested state is left alone.
func (a *startupFolderAdapter) Toggle(path string, enable bool) error {
	if _, err := statRegular(a.fs, path); err != nil {
		return err
	}

	disabled := strings.HasSuffix(path, DisabledSuffix)
	if enable != disabled {
		return nil
	}

	target := path + DisabledSuffix
	if enable {
		target = strings.TrimSuffix(path, DisabledSuffix)
	}
	if err := a.fs.Rename(path, target); err != nil {
		return fmt.Errorf("renaming %s: %w", path, err)
	}
	a.logger.Info("Toggled autostart entry",
		zap.String("from", path),
		zap.String("to", target),
		zap.Bool("enabled", enable))
	return nil
}

// Create writes a batch wrapper that launches command. Shortcut files are
// binary and not produced; description has no place in a batch file.
func (a *startupFolderAdapter) Create(name, command, _ string) (string, error) {
	if err := a.fs.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating startup directory: %w", err)
	}

	path := filepath.Join(a.dir, SafeFilename(name, ".bat"))
	content := fmt.Sprintf("@echo off\r\nstart \"\" \"%s\"\r\n", command)
	if err := afero.WriteFile(a.fs, path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	a.logger.Info("Created autostart entry", zap.String("file", path))
	return path, nil
}
