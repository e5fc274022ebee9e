package tui

import (
	"github.com/charmbracelet/lipgloss"

	"trendscope/internal/tui/theme"
)

// Styles holds all pre-configured styles for the console.
type Styles struct {
	theme *theme.Theme

	Header    lipgloss.Style
	Footer    lipgloss.Style
	StatusBar lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardDimmed   lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	SourceBadge lipgloss.Style

	ErrorLine   lipgloss.Style
	SuccessLine lipgloss.Style

	ChartFrame lipgloss.Style
}

// NewStyles creates the style set from a theme.
func NewStyles(t *theme.Theme) *Styles {
	if t == nil {
		t = theme.DefaultTheme()
	}

	s := &Styles{theme: t}

	s.Header = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Bold(true).
		Padding(0, 2)

	s.Footer = lipgloss.NewStyle().
		Foreground(t.Subtle).
		Padding(0, 1)

	s.StatusBar = lipgloss.NewStyle().
		Foreground(t.Subtle).
		Background(t.Overlay).
		Padding(0, 1)

	s.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(t.Subtle)

	s.Label = lipgloss.NewStyle().
		Foreground(t.Muted)

	s.Value = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	s.Muted = lipgloss.NewStyle().
		Foreground(t.Muted)

	s.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	s.CardSelected = s.Card.
		BorderForeground(t.Selection).
		Bold(true)

	s.CardDimmed = s.Card.
		Foreground(t.Muted).
		BorderForeground(t.Overlay)

	s.TabActive = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Selection).
		Bold(true).
		Padding(0, 2)

	s.TabInactive = lipgloss.NewStyle().
		Foreground(t.Subtle).
		Background(t.Overlay).
		Padding(0, 2)

	s.SourceBadge = lipgloss.NewStyle().
		Foreground(t.Base).
		Bold(true).
		Padding(0, 1)

	s.ErrorLine = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	s.SuccessLine = lipgloss.NewStyle().
		Foreground(t.Success)

	s.ChartFrame = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return s
}

// Theme returns the underlying theme.
func (s *Styles) Theme() *theme.Theme { return s.theme }

// Badge renders the colored source-system badge.
func (s *Styles) Badge(system string) string {
	return s.SourceBadge.Background(s.theme.SourceColor(system)).Render(system)
}

// Trend renders text in the up/down/flat color for percent.
func (s *Styles) Trend(percent float64, text string) string {
	return lipgloss.NewStyle().Foreground(s.theme.TrendColor(percent)).Render(text)
}
