package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"trendscope/internal/session"
)

func (m *Model) fetchCatalog(gen uint64, sys session.SourceSystem) tea.Cmd {
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		products, err := m.client.ProductCatalog(ctx, sys)
		return catalogMsg{gen: gen, system: sys, products: products, err: err}
	}
}

func (m *Model) fetchSummary(gen uint64, sys session.SourceSystem) tea.Cmd {
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		items, err := m.client.TrendSummary(ctx, sys)
		return summaryMsg{gen: gen, system: sys, items: items, err: err}
	}
}

func (m *Model) fetchForecast(gen uint64, sys session.SourceSystem, product string) tea.Cmd {
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err := m.client.Forecast(ctx, sys, product)
		return forecastMsg{gen: gen, result: result, err: err}
	}
}

func (m *Model) fetchDetail(gen uint64, sys session.SourceSystem, product string, rng session.TimeRange) tea.Cmd {
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		detail, err := m.client.TrendDetail(ctx, sys, product, rng)
		return detailMsg{gen: gen, detail: detail, err: err}
	}
}

func (m *Model) exportForecast(result *session.ForecastResult) tea.Cmd {
	return func() tea.Msg {
		path, err := m.exporter.ExportForecast(result)
		return exportedMsg{path: path, err: err}
	}
}

func (m *Model) exportDetail(detail *session.TrendDetail) tea.Cmd {
	return func() tea.Msg {
		path, err := m.exporter.ExportDetail(detail)
		return exportedMsg{path: path, err: err}
	}
}

// statusClearMsg carries the sequence of the status it was scheduled for,
// so a timer from an earlier status cannot wipe a newer one.
type statusClearMsg struct{ seq int }

func clearStatusAfter(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
