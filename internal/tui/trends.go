package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"trendscope/internal/session"
)

const cardWidth = 30

// trendsView renders the trend dashboard: the summary grid in listing mode,
// a single product's drill-down in detail mode.
func (m *Model) trendsView() string {
	if m.sess.Mode() == session.ModeDetail {
		return m.trendDetailView()
	}
	return m.trendListingView()
}

func (m *Model) trendListingView() string {
	var b []string

	searchLine := m.search.View()
	if !m.search.IsActive() && m.search.Value() == "" {
		searchLine = m.styles.Muted.Render("/ to search")
	}
	b = append(b, searchLine)

	if line := m.loaderLine(m.sess.SummaryState(), "Loading trends..."); line != "" {
		b = append(b, "", line)
		return lipgloss.JoinVertical(lipgloss.Left, b...)
	}

	items := m.visibleSummary()
	if len(items) == 0 {
		if m.search.Value() != "" {
			b = append(b, "", m.styles.Muted.Render("No products match \""+m.search.Value()+"\""))
		} else {
			b = append(b, "", m.styles.Muted.Render("No trend data for "+m.sess.Source().DisplayName()))
		}
		return lipgloss.JoinVertical(lipgloss.Left, b...)
	}

	b = append(b, "", m.cardGridView(items))
	return lipgloss.JoinVertical(lipgloss.Left, b...)
}

func (m *Model) cardGridView(items []session.TrendSummaryItem) string {
	cols := m.width / (cardWidth + 4)
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(items); start += cols {
		end := start + cols
		if end > len(items) {
			end = len(items)
		}
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, m.cardView(items[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cardView renders one summary card. The card under the cursor is
// highlighted; the rest are dimmed so the current selection stands out.
func (m *Model) cardView(item session.TrendSummaryItem, selected bool) string {
	style := m.styles.CardDimmed
	if selected {
		style = m.styles.CardSelected
	}

	trend := m.styles.Trend(item.TrendPercent,
		fmt.Sprintf("%s %+.1f%%", item.TrendIcon, item.TrendPercent))

	spark := Sparkline(sparkValues(item.SparklineData), cardWidth-2,
		lipgloss.NewStyle().Foreground(m.styles.Theme().TrendColor(item.TrendPercent)))

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(item.Product),
		m.styles.Label.Render("Sales ")+m.styles.Value.Render(fmt.Sprintf("%.0f", item.TotalSales)),
		trend+" "+m.styles.Subtitle.Render(item.TrendDescription),
		spark,
	)
	return style.Width(cardWidth).Render(body)
}

func (m *Model) trendDetailView() string {
	product := m.sess.DetailProduct()

	var b []string
	b = append(b, m.styles.Title.Render(product)+"  "+m.styles.Badge(string(m.sess.Source())))
	b = append(b, m.rangeTabsView())

	if line := m.loaderLine(m.sess.DetailState(), "Loading "+m.sess.DetailRange().Label()+"..."); line != "" {
		b = append(b, "", line)
	}

	d := m.sess.Detail()
	if d != nil {
		b = append(b, "", m.detailStatsView(d), "", m.detailChartView(d))
	}

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}

func (m *Model) rangeTabsView() string {
	tabs := make([]string, 0, len(session.TimeRanges))
	for _, r := range session.TimeRanges {
		if r == m.sess.DetailRange() {
			tabs = append(tabs, m.styles.TabActive.Render(r.Label()))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(r.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

func (m *Model) detailStatsView(d *session.TrendDetail) string {
	stats := []string{
		m.styles.Label.Render("Total sales ") + m.styles.Value.Render(fmt.Sprintf("%.0f", d.TotalSales)),
		m.styles.Label.Render("Avg sales ") + m.styles.Value.Render(fmt.Sprintf("%.1f", d.AvgSales)),
		m.styles.Trend(d.TrendPercent, fmt.Sprintf("%+.1f%% %s", d.TrendPercent, d.TrendDescription)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, stats[0], "    ", stats[1], "    ", stats[2])
}

func (m *Model) detailChartView(d *session.TrendDetail) string {
	layout := m.chartLayout(m.sess.ViewMode() == session.ViewExpanded, 0)

	series := []Series{{
		Label:  "actual",
		Values: d.ChartData.Actual,
		Marker: '█',
		Style:  lipgloss.NewStyle().Foreground(m.styles.Theme().Forecast),
	}}

	first, last := "", ""
	if n := len(d.ChartData.Dates); n > 0 {
		first = d.ChartData.Dates[0]
		last = d.ChartData.Dates[n-1]
	}

	return m.styles.ChartFrame.Render(LineChart(series, first, last, layout))
}

func sparkValues(points []session.SparklinePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.TotalOrders
	}
	return out
}
