// Package desktopentry reads and rewrites XDG desktop entry files as found in
// ~/.config/autostart. Only the keys the autostart core needs are interpreted;
// every other line (group headers, comments, unknown keys) is carried through
// a rewrite untouched and in its original position.
package desktopentry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Extension is the file extension of desktop entry files.
const Extension = ".desktop"

// Keys interpreted by the autostart core.
const (
	KeyType         = "Type"
	KeyName         = "Name"
	KeyExec         = "Exec"
	KeyComment      = "Comment"
	KeyHidden       = "Hidden"
	KeyGNOMEEnabled = "X-GNOME-Autostart-enabled"
)

const groupHeader = "[Desktop Entry]"

// ErrMalformed is returned by Parse for content that is not a key/value file.
var ErrMalformed = errors.New("malformed desktop entry")

// envPrefixes are stripped from Exec values, in order, for display and reuse.
var envPrefixes = []string{"env GDK_BACKEND=x11 ", "env "}

// File is a parsed desktop entry kept as its raw lines.
type File struct {
	lines           []string
	trailingNewline bool
}

// Parse splits data into lines and validates that every line is blank, a
// comment, a group header or a Key=Value pair. CRLF line endings are
// normalized to LF.
func Parse(data []byte) (*File, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformed)
	}

	content := string(data)
	f := &File{}
	if strings.HasSuffix(content, "\n") {
		f.trailingNewline = true
		content = strings.TrimSuffix(content, "\n")
	}
	if content != "" || f.trailingNewline {
		f.lines = strings.Split(content, "\n")
	}

	for i, line := range f.lines {
		line = strings.TrimSuffix(line, "\r")
		f.lines[i] = line
		if err := checkLine(line); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, i+1, err)
		}
	}
	return f, nil
}

func checkLine(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return nil
	}
	key, _, found := strings.Cut(line, "=")
	if !found {
		return fmt.Errorf("missing '=' in %q", line)
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("empty key in %q", line)
	}
	return nil
}

// New builds a fresh, enabled application entry.
func New(name, exec, comment string) *File {
	return &File{
		lines: []string{
			groupHeader,
			KeyType + "=Application",
			KeyName + "=" + escapeValue(name),
			KeyExec + "=" + escapeValue(exec),
			KeyComment + "=" + escapeValue(comment),
			KeyHidden + "=false",
			KeyGNOMEEnabled + "=true",
		},
		trailingNewline: true,
	}
}

// Get returns the trimmed value of the first line starting with "key=".
func (f *File) Get(key string) (string, bool) {
	prefix := key + "="
	for _, line := range f.lines {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):]), true
		}
	}
	return "", false
}

// Bool reports whether key is set to "true" (case-insensitive). Any other
// value is false; a missing key yields def.
func (f *File) Bool(key string, def bool) bool {
	v, ok := f.Get(key)
	if !ok {
		return def
	}
	return strings.EqualFold(v, "true")
}

// Enabled is true unless Hidden is true or X-GNOME-Autostart-enabled is false.
func (f *File) Enabled() bool {
	return !f.Bool(KeyHidden, false) && f.Bool(KeyGNOMEEnabled, true)
}

// Command returns the Exec value with environment prefixes removed.
func (f *File) Command() string {
	exec, _ := f.Get(KeyExec)
	return StripEnvPrefix(exec)
}

// SetEnabled rewrites every Hidden and X-GNOME-Autostart-enabled line in
// place. Hidden is appended when the file has none; the GNOME key is only
// rewritten when already present.
func (f *File) SetEnabled(enable bool) {
	hidden := KeyHidden + "=" + strconv.FormatBool(!enable)
	gnome := KeyGNOMEEnabled + "=" + strconv.FormatBool(enable)

	hiddenFound := false
	for i, line := range f.lines {
		switch {
		case strings.HasPrefix(line, KeyHidden+"="):
			f.lines[i] = hidden
			hiddenFound = true
		case strings.HasPrefix(line, KeyGNOMEEnabled+"="):
			f.lines[i] = gnome
		}
	}
	if !hiddenFound {
		f.lines = append(f.lines, hidden)
	}
}

// Lines returns a copy of the raw lines.
func (f *File) Lines() []string {
	out := make([]string, len(f.lines))
	copy(out, f.lines)
	return out
}

// Bytes serializes the file, keeping a trailing newline if the source had one.
func (f *File) Bytes() []byte {
	out := strings.Join(f.lines, "\n")
	if f.trailingNewline {
		out += "\n"
	}
	return []byte(out)
}

// StripEnvPrefix removes the execution-environment hints some launchers put in
// front of the real command. It is presentational only.
func StripEnvPrefix(exec string) string {
	for _, p := range envPrefixes {
		exec = strings.TrimPrefix(exec, p)
	}
	return exec
}

// escapeValue keeps a value on one line using the desktop entry escapes.
func escapeValue(v string) string {
	return strings.NewReplacer("\r", `\r`, "\n", `\n`).Replace(v)
}
