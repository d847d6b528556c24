// Package models defines the data structures shared between the autostart
// core and its callers. These structures are serialized to JSON for front ends.
package models

// Entry is one autostart entry as seen by a single discovery pass.
// Entries are rebuilt from disk on every call and are never cached.
type Entry struct {
	// ID is derived from the backing file name and is unique within one
	// storage directory. It changes only when the file is renamed.
	ID string `json:"id"`

	// Name falls back to the file name when the native format has none.
	Name string `json:"name"`

	// Command is the invocation string with execution-environment
	// prefixes stripped.
	Command string `json:"command"`

	Enabled bool `json:"enabled"`

	// Path is the backing file, used as the handle for toggle and delete.
	Path string `json:"path"`
}
