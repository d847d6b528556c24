package desktopentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `[Desktop Entry]
Type=Application
Name=Syncthing
Exec=env GDK_BACKEND=x11 /usr/bin/syncthing -no-browser
X-Custom-Key=keep me
X-GNOME-Autostart-enabled=true
`

func TestParse_Fields(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	name, ok := f.Get(KeyName)
	assert.True(t, ok)
	assert.Equal(t, "Syncthing", name)
	assert.Equal(t, "/usr/bin/syncthing -no-browser", f.Command())
	assert.True(t, f.Enabled())

	_, ok = f.Get(KeyComment)
	assert.False(t, ok)
}

func TestParse_FirstMatchWinsAndTrims(t *testing.T) {
	f, err := Parse([]byte("Name=  first  \nName=second\nName[de]=erste\n"))
	require.NoError(t, err)

	name, _ := f.Get(KeyName)
	assert.Equal(t, "first", name)
}

func TestParse_CRLF(t *testing.T) {
	f, err := Parse([]byte("[Desktop Entry]\r\nName=App\r\nHidden=TRUE\r\n"))
	require.NoError(t, err)

	name, _ := f.Get(KeyName)
	assert.Equal(t, "App", name)
	assert.False(t, f.Enabled())
	assert.Equal(t, "[Desktop Entry]\nName=App\nHidden=TRUE\n", string(f.Bytes()))
}

func TestParse_Malformed(t *testing.T) {
	tests := map[string][]byte{
		"no equals":    []byte("[Desktop Entry]\nthis is not a key value line\n"),
		"empty key":    []byte("[Desktop Entry]\n=value\n"),
		"invalid utf8": {'N', 'a', 'm', 'e', '=', 0xff, 0xfe},
		"broken group": []byte("[Desktop Entry\nName=x\n"),
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(data)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParse_CommentsAndBlankLines(t *testing.T) {
	f, err := Parse([]byte("# comment\n\n[Desktop Entry]\n  \nName=x\n"))
	require.NoError(t, err)
	assert.Len(t, f.Lines(), 5)
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"Name=a\n", true},
		{"Hidden=true\n", false},
		{"Hidden=True\n", false},
		{"Hidden=false\n", true},
		{"Hidden=yes\n", true},
		{"X-GNOME-Autostart-enabled=false\n", false},
		{"X-GNOME-Autostart-enabled=1\n", false},
		{"Hidden=false\nX-GNOME-Autostart-enabled=TRUE\n", true},
		{"Hidden=true\nX-GNOME-Autostart-enabled=true\n", false},
	}
	for _, tt := range tests {
		f, err := Parse([]byte(tt.content))
		require.NoError(t, err)
		assert.Equal(t, tt.want, f.Enabled(), "content %q", tt.content)
	}
}

func TestSetEnabled_PreservesUnknownLines(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	f.SetEnabled(false)
	assert.False(t, f.Enabled())
	assert.Equal(t, []string{
		"[Desktop Entry]",
		"Type=Application",
		"Name=Syncthing",
		"Exec=env GDK_BACKEND=x11 /usr/bin/syncthing -no-browser",
		"X-Custom-Key=keep me",
		"X-GNOME-Autostart-enabled=false",
		"Hidden=true",
	}, f.Lines())

	f.SetEnabled(true)
	assert.True(t, f.Enabled())
	lines := f.Lines()
	assert.Equal(t, "X-Custom-Key=keep me", lines[4])
	assert.Equal(t, "Hidden=false", lines[6])
	assert.Len(t, lines, 7)
}

func TestSetEnabled_RewritesExistingHidden(t *testing.T) {
	f, err := Parse([]byte("Hidden=false\nName=x"))
	require.NoError(t, err)

	f.SetEnabled(false)
	assert.Equal(t, "Hidden=true\nName=x", string(f.Bytes()))
}

func TestNew(t *testing.T) {
	f := New("Foo Bar", "/bin/foo", "d")
	assert.Equal(t, "[Desktop Entry]\nType=Application\nName=Foo Bar\nExec=/bin/foo\nComment=d\nHidden=false\nX-GNOME-Autostart-enabled=true\n", string(f.Bytes()))

	parsed, err := Parse(f.Bytes())
	require.NoError(t, err)
	assert.True(t, parsed.Enabled())
}

func TestNew_EscapesNewlines(t *testing.T) {
	f := New("a", "/bin/a", "line one\nline two")
	comment, ok := f.Get(KeyComment)
	require.True(t, ok)
	assert.Equal(t, `line one\nline two`, comment)

	_, err := Parse(f.Bytes())
	assert.NoError(t, err)
}

func TestStripEnvPrefix(t *testing.T) {
	tests := map[string]string{
		"env GDK_BACKEND=x11 /usr/bin/app": "/usr/bin/app",
		"env FOO=bar /usr/bin/app":         "FOO=bar /usr/bin/app",
		"/usr/bin/myenv --flag":            "/usr/bin/myenv --flag",
		"/usr/bin/app":                     "/usr/bin/app",
		"":                                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, StripEnvPrefix(in), in)
	}
}
