package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	ok     lipgloss.Style
	scope  lipgloss.Style
	action lipgloss.Style
	chord  lipgloss.Style
	bound  lipgloss.Style
}

// ANSI colors: 2 Green, 3 Yellow, 6 Cyan, 8 Gray
func newStyles() styles {
	return styles{
		ok:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		scope:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		action: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		chord:  lipgloss.NewStyle(),
		bound:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}

var st = newStyles()
