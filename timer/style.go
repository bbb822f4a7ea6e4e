package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/fast/internal/config"
)

type style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Badge     lipgloss.Style
}

func newStyle(display config.DisplayConfig) style {
	primary := lipgloss.Color("#1F2937")
	secondary := lipgloss.Color("#4B5563")

	if display.DarkTheme {
		primary = lipgloss.Color("#F9FAFB")
		secondary = lipgloss.Color("#9CA3AF")
	}

	accent := lipgloss.Color(display.AccentColor)

	return style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(primary),
		Secondary: lipgloss.NewStyle().Foreground(accent),
		Hint:      lipgloss.NewStyle().Foreground(secondary),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1),
	}
}

// stateBadge renders a metabolic state on its own colour.
func (s style) stateBadge(name, color string) string {
	return s.Badge.Background(lipgloss.Color(color)).Render(name)
}
