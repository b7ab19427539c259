package main

import "github.com/charmbracelet/lipgloss"

// Status styles for command output. Log lines go through zerolog; these
// only dress the direct results printed to stdout.
var (
	styleOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleErr  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleBold = lipgloss.NewStyle().Bold(true)
	styleDim  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	styleGold = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)
