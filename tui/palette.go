package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorInk       = lipgloss.Color("#ECEFF4")
	ColorDim       = lipgloss.Color("#6C7486")
	ColorAccent    = lipgloss.Color("#D08770")
	ColorAccentAlt = lipgloss.Color("#B48EAD")
	ColorSuccess   = lipgloss.Color("#A3BE8C")
	ColorWarn      = lipgloss.Color("#BF616A")
)
