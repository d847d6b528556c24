package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Guliveer/zen/internal/autostart"
	"github.com/Guliveer/zen/internal/config"
	"github.com/Guliveer/zen/internal/models"
	"github.com/Guliveer/zen/internal/startup"
)

func newTestApp(t *testing.T, goos string) (*app, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Platform = goos
	cfg.Paths.AutostartDir = "/autostart"

	mgr, err := newManager(cfg, afero.NewMemMapFs(), zap.NewNop())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &app{mgr: mgr, cfg: cfg, out: out}, out
}

func listJSON(t *testing.T, a *app, out *bytes.Buffer) []models.Entry {
	t.Helper()
	out.Reset()
	require.NoError(t, a.run([]string{"list", "-json"}))
	var entries []models.Entry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	return entries
}

func TestApp_Lifecycle(t *testing.T) {
	a, out := newTestApp(t, "linux")

	require.NoError(t, a.run([]string{"create", "-name", "Foo Bar", "-exec", "/bin/foo", "-comment", "d"}))
	assert.Equal(t, "created /autostart/foo-bar.desktop\n", out.String())

	entries := listJSON(t, a, out)
	require.Len(t, entries, 1)
	assert.Equal(t, "Foo Bar", entries[0].Name)
	assert.True(t, entries[0].Enabled)

	out.Reset()
	require.NoError(t, a.run([]string{"disable", "foo-bar.desktop"}))
	assert.Equal(t, "disabled foo-bar.desktop\n", out.String())
	entries = listJSON(t, a, out)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Enabled)

	out.Reset()
	require.NoError(t, a.run([]string{"list"}))
	assert.Contains(t, out.String(), "foo-bar.desktop")
	assert.Contains(t, out.String(), "off")

	out.Reset()
	require.NoError(t, a.run([]string{"delete", "foo-bar.desktop"}))
	out.Reset()
	require.NoError(t, a.run([]string{"list"}))
	assert.Equal(t, "No autostart entries.\n", out.String())
}

func TestApp_Errors(t *testing.T) {
	a, _ := newTestApp(t, "linux")

	assert.Error(t, a.run([]string{"bogus"}))
	assert.Error(t, a.run([]string{"enable"}))
	assert.ErrorIs(t, a.run([]string{"enable", "missing.desktop"}), startup.ErrNotFound)
	assert.ErrorIs(t, a.run([]string{"create", "-exec", "/bin/x"}), startup.ErrInvalidEntry)
}

func TestApp_Unsupported(t *testing.T) {
	a, _ := newTestApp(t, "darwin")

	err := a.run([]string{"create", "-name", "x", "-exec", "/bin/x"})
	assert.ErrorIs(t, err, autostart.ErrUnsupported)
}

func TestApp_ConfigInit(t *testing.T) {
	a, out := newTestApp(t, "linux")
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, a.run([]string{"config", "init", path}))
	assert.Contains(t, out.String(), path)
}
