package autostart

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Guliveer/zen/internal/models"
)

// decodeFunc turns one candidate file into an Entry.
type decodeFunc func(path string) (models.Entry, error)

// scan lists dir (non-recursively) and decodes every regular file accepted
// by match. Decode failures are logged and skipped so one bad file never
// hides the rest. The result is never nil.
func scan(fsys afero.Fs, dir string, match func(name string) bool, decode decodeFunc, logger *zap.Logger) []models.Entry {
	entries := make([]models.Entry, 0)

	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Failed to read autostart directory",
				zap.String("dir", dir),
				zap.Error(err))
		}
		return entries
	}

	for _, info := range infos {
		if !info.Mode().IsRegular() || !match(info.Name()) {
			continue
		}
		path := filepath.Join(dir, info.Name())
		entry, err := decode(path)
		if err != nil {
			logger.Warn("Skipping unreadable autostart entry",
				zap.String("file", path),
				zap.Error(err))
			continue
		}
		logger.Debug("Discovered autostart entry",
			zap.String("id", entry.ID),
			zap.Bool("enabled", entry.Enabled))
		entries = append(entries, entry)
	}
	return entries
}

// statRegular fails unless path exists and is a regular file.
func statRegular(fsys afero.Fs, path string) (fs.FileInfo, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	return info, nil
}
