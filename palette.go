package main

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha colors used for the widget chrome. The swatch itself is
// always drawn in the current color.
// Reference: https://github.com/catppuccin/catppuccin/tree/main
const (
	Rosewater = lipgloss.Color("#f5e0dc")
	Mauve     = lipgloss.Color("#cba6f7")
	Red       = lipgloss.Color("#f38ba8")
	Green     = lipgloss.Color("#a6e3a1")
	Teal      = lipgloss.Color("#94e2d5")
	Lavender  = lipgloss.Color("#b4befe")

	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Overlay0 = lipgloss.Color("#6c7086")
	Surface0 = lipgloss.Color("#313244")
	Base     = lipgloss.Color("#1e1e2e")
	Crust    = lipgloss.Color("#11111b")

	// Semantic colors
	ActiveBorder   = Lavender
	InactiveBorder = Overlay0
	ButtonPrimary  = Mauve
	ButtonDefault  = Surface0
	Success        = Green
	Error          = Red
	Info           = Teal
)
