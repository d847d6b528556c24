package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/Guliveer/zen/internal/models"
	"github.com/Guliveer/zen/internal/platform"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	enabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle    = lipgloss.NewStyle().Bold(true).Width(11)
)

// renderEntries prints entries as an aligned table sorted by name.
func renderEntries(w io.Writer, entries []models.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No autostart entries.")
		return
	}

	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	idWidth, nameWidth := len("ID"), len("NAME")
	for _, e := range sorted {
		idWidth = max(idWidth, lipgloss.Width(e.ID))
		nameWidth = max(nameWidth, lipgloss.Width(e.Name))
	}
	stateCol := lipgloss.NewStyle().Width(6)
	idCol := lipgloss.NewStyle().Width(idWidth + 2)
	nameCol := lipgloss.NewStyle().Width(nameWidth + 2)

	row := func(state, id, name, command string) string {
		return stateCol.Render(state) + idCol.Render(id) + nameCol.Render(name) + command
	}

	fmt.Fprintln(w, headerStyle.Render(row("STATE", "ID", "NAME", "COMMAND")))
	for _, e := range sorted {
		state := disabledStyle.Render("off")
		if e.Enabled {
			state = enabledStyle.Render("on")
		}
		fmt.Fprintln(w, row(state, e.ID, e.Name, e.Command))
	}
}

func renderInfo(w io.Writer, host platform.HostInfo, adapter, dir string) {
	if dir == "" {
		dir = "-"
	}
	desktop := host.Desktop
	if desktop == "" {
		desktop = "-"
	}
	lines := [][2]string{
		{"Host", host.Hostname},
		{"OS", fmt.Sprintf("%s %s %s", host.OS, host.Platform, host.PlatformVersion)},
		{"Kernel", host.KernelVersion},
		{"Desktop", desktop},
		{"Adapter", adapter},
		{"Directory", dir},
	}
	for _, l := range lines {
		fmt.Fprintln(w, labelStyle.Render(l[0])+l[1])
	}
}
