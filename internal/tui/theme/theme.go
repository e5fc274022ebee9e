// Package theme provides the visual theme for the console.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme represents the complete visual theme for the application.
type Theme struct {
	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color
	Muted   lipgloss.Color
	Subtle  lipgloss.Color
	Text    lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Trend colors
	Up   lipgloss.Color
	Down lipgloss.Color
	Flat lipgloss.Color

	// Forecast band colors
	Forecast lipgloss.Color
	Band     lipgloss.Color

	// Source system accents
	EON   lipgloss.Color
	SDP   lipgloss.Color
	ORION lipgloss.Color

	// UI element colors
	Border    lipgloss.Color
	Selection lipgloss.Color
}

// DefaultTheme returns the default dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		Base:    lipgloss.Color("#0d1117"),
		Surface: lipgloss.Color("#161b22"),
		Overlay: lipgloss.Color("#21262d"),
		Muted:   lipgloss.Color("#484f58"),
		Subtle:  lipgloss.Color("#6e7681"),
		Text:    lipgloss.Color("#e6edf3"),

		Primary:   lipgloss.Color("#58a6ff"),
		Secondary: lipgloss.Color("#bc8cff"),

		Success: lipgloss.Color("#3fb950"),
		Warning: lipgloss.Color("#d29922"),
		Error:   lipgloss.Color("#f85149"),
		Info:    lipgloss.Color("#58a6ff"),

		Up:   lipgloss.Color("#3fb950"),
		Down: lipgloss.Color("#f85149"),
		Flat: lipgloss.Color("#d29922"),

		Forecast: lipgloss.Color("#58a6ff"),
		Band:     lipgloss.Color("#1f6feb"),

		EON:   lipgloss.Color("#58a6ff"),
		SDP:   lipgloss.Color("#bc8cff"),
		ORION: lipgloss.Color("#ffa657"),

		Border:    lipgloss.Color("#30363d"),
		Selection: lipgloss.Color("#388bfd"),
	}
}

// TrendColor returns the color for a trend direction given its percent.
func (t *Theme) TrendColor(percent float64) lipgloss.Color {
	switch {
	case percent > 0:
		return t.Up
	case percent < 0:
		return t.Down
	default:
		return t.Flat
	}
}

// SourceColor returns the accent color of a source system literal.
func (t *Theme) SourceColor(system string) lipgloss.Color {
	switch system {
	case "eon":
		return t.EON
	case "sdp":
		return t.SDP
	case "orion":
		return t.ORION
	default:
		return t.Primary
	}
}
