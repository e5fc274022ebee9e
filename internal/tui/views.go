package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trendscope/internal/api"
	"trendscope/internal/session"
)

func (m *Model) headerView() string {
	title := m.styles.Title.Render("trendscope")
	badge := m.styles.Badge(string(m.sess.Source()))

	tabs := []string{
		m.screenTab("1 Forecast", screenForecast),
		m.screenTab("2 Trends", screenTrends),
	}

	mode := ""
	if m.sess.ViewMode() == session.ViewExpanded {
		mode = m.styles.Subtitle.Render(" [expanded]")
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center,
		title, "  ", badge, "  ", strings.Join(tabs, " "), mode)
	return m.styles.Header.Width(m.width).Render(line)
}

func (m *Model) screenTab(label string, s screen) string {
	if m.screen == s {
		return m.styles.TabActive.Render(label)
	}
	return m.styles.TabInactive.Render(label)
}

func (m *Model) footerView() string {
	if m.status != "" {
		return m.styles.StatusBar.Width(m.width).Render(m.status)
	}

	var hints []string
	switch {
	case m.screen == screenForecast:
		hints = []string{"enter view forecast", "tab table", "s source", "f expand", "e export"}
	case m.sess.Mode() == session.ModeDetail:
		hints = []string{"←/→ range", "esc back", "s source", "f expand", "e export"}
	default:
		hints = []string{"↑/↓ move", "enter details", "/ search", "s source", "f expand"}
	}
	hints = append(hints, "q quit")

	return m.styles.Footer.Width(m.width).Render(strings.Join(hints, " · "))
}

// loaderLine renders the transient state of a loader: a spinner while the
// fetch is in flight, a retryable error after a failure, nothing otherwise.
func (m *Model) loaderLine(l *session.Loader, loading string) string {
	switch l.Phase() {
	case session.PhaseLoading:
		return m.spin.View() + " " + m.styles.Subtitle.Render(loading)
	case session.PhaseFailed:
		return m.styles.ErrorLine.Render("✗ "+describeError(l.Err())) +
			m.styles.Muted.Render("  press r to retry")
	}
	return ""
}

// describeError maps a fetch error to a short user-facing message. Empty
// results get their own wording; everything else reads as a backend problem.
func describeError(err error) string {
	var fe *api.FetchError
	if errors.As(err, &fe) {
		if fe.Kind == api.KindEmpty {
			return "no data available for this selection"
		}
		return fmt.Sprintf("backend request failed (%s)", fe.Endpoint)
	}
	if err != nil {
		return err.Error()
	}
	return "unknown error"
}
