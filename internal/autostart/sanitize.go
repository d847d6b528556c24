package autostart

import "strings"

var unsafeChars = strings.NewReplacer(" ", "-", "/", "-", `\`, "-")

// SafeFilename derives a file name from a display name by replacing spaces
// and both kinds of slash with hyphens, lower-casing, and appending ext.
// Distinct names can map to the same file; the later write wins.
func SafeFilename(name, ext string) string {
	return strings.ToLower(unsafeChars.Replace(name)) + ext
}
