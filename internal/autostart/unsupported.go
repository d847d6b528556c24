package autostart

import (
	"fmt"

	"github.com/Guliveer/zen/internal/models"
)

// unsupportedAdapter is used on platforms without autostart support.
type unsupportedAdapter struct {
	goos string
}

// NewUnsupported returns an Adapter that discovers nothing and refuses to
// toggle or create entries.
func NewUnsupported(goos string) Adapter {
	return &unsupportedAdapter{goos: goos}
}

func (u *unsupportedAdapter) Name() string { return "unsupported" }

func (u *unsupportedAdapter) Dir() string { return "" }

func (u *unsupportedAdapter) Discover() []models.Entry { return []models.Entry{} }

func (u *unsupportedAdapter) Toggle(string, bool) error {
	return fmt.Errorf("toggle on %s: %w", u.goos, ErrUnsupported)
}

func (u *unsupportedAdapter) Create(string, string, string) (string, error) {
	return "", fmt.Errorf("create on %s: %w", u.goos, ErrUnsupported)
}
