package formatter

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Planner palette, purple-forward like the dashboard it grew out of.
var (
	ColorAccent = lipgloss.Color("#9333EA")
	ColorPink   = lipgloss.Color("#EC4899")
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#d3869b")
)

// Predefined lipgloss styles.
var (
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// EventStyle renders text in the event's own color token. The token is
// purely cosmetic and passed straight through to the terminal profile.
func EventStyle(color string) lipgloss.Style {
	if color == "" {
		return StyleAccent
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// EventBadge renders an all-day banner: inverted, padded, in the event's
// color.
func EventBadge(color, title string) string {
	if color == "" {
		color = string(ColorAccent)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 1).
		Render(title)
}

// Weekday accents for the week grid, one emoji per day of week.
var dayEmoji = [7]string{"🌞", "🌸", "✨", "🦋", "🌹", "🎵", "🌈"}

// DayEmoji returns the decorative emoji for a day's weekday.
func DayEmoji(day time.Time) string {
	return dayEmoji[int(day.Weekday())]
}
