// Package ui holds the colours and table helpers shared by the command-line
// output
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/fast/internal/fasting"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// State renders a metabolic state name in the state's own colour.
func State(name string) string {
	s, ok := fasting.StateByName(name)
	if !ok {
		return name
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Color)).
		Render(name)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}
