package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"trendscope/internal/session"
)

const catalogWidth = 34

func forecastColumns(totalWidth int) []table.Column {
	valueWidth := 12
	if totalWidth > 120 {
		valueWidth = 16
	}
	return []table.Column{
		{Title: "Day", Width: 12},
		{Title: "Forecast", Width: valueWidth},
		{Title: "Lower", Width: valueWidth},
		{Title: "Upper", Width: valueWidth},
	}
}

func forecastRows(res *session.ForecastResult) []table.Row {
	if res == nil {
		return nil
	}
	rows := make([]table.Row, 0, len(res.Points))
	for _, p := range res.Points {
		rows = append(rows, table.Row{
			p.Day(),
			fmt.Sprintf("%.4f", p.Yhat),
			fmt.Sprintf("%.4f", p.YhatLower),
			fmt.Sprintf("%.4f", p.YhatUpper),
		})
	}
	return rows
}

// forecastView renders the demand forecast screen: the product catalog on
// the left, the 30-day forecast for the selected product on the right. In
// expanded mode the catalog is hidden and the chart takes the full width.
func (m *Model) forecastView() string {
	expanded := m.sess.ViewMode() == session.ViewExpanded

	detail := m.forecastDetailView(expanded)
	if expanded {
		return detail
	}

	catalog := m.catalogPanelView()
	return lipgloss.JoinHorizontal(lipgloss.Top, catalog, "  ", detail)
}

func (m *Model) catalogPanelView() string {
	if line := m.loaderLine(m.sess.CatalogState(), "Loading products..."); line != "" {
		return lipgloss.NewStyle().Width(catalogWidth).Render(line)
	}
	if len(m.sess.Catalog()) == 0 {
		return lipgloss.NewStyle().Width(catalogWidth).
			Render(m.styles.Muted.Render("No products for " + m.sess.Source().DisplayName()))
	}
	return m.catalogList.View()
}

func (m *Model) forecastDetailView(expanded bool) string {
	product := m.sess.SelectedProduct()
	if product == "" {
		return m.styles.Subtitle.Render("Select a product and press enter to view its 30-day forecast.")
	}

	var b []string
	b = append(b, m.styles.Title.Render(product)+"  "+
		m.styles.Subtitle.Render("30-day demand forecast"))

	if line := m.loaderLine(m.sess.ForecastState(), "Generating forecast..."); line != "" {
		b = append(b, "", line)
	}

	res := m.sess.Forecast()
	if res != nil {
		b = append(b, "", m.forecastChartView(res, expanded))
		b = append(b, "", m.styles.Label.Render("Total forecasted demand: ")+
			m.styles.Value.Render(fmt.Sprintf("%.2f", res.TotalForecast)))

		if m.showTable {
			b = append(b, "", m.forecastTable.View())
		} else {
			b = append(b, "", m.styles.Muted.Render("tab shows the day-by-day table"))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}

func (m *Model) forecastChartView(res *session.ForecastResult, expanded bool) string {
	layout := m.chartLayout(expanded, catalogWidth+4)

	t := m.styles.Theme()
	series := []Series{
		{Label: "lower", Values: yhatLower(res.Points), Marker: '·', Style: lipgloss.NewStyle().Foreground(t.Band)},
		{Label: "upper", Values: yhatUpper(res.Points), Marker: '·', Style: lipgloss.NewStyle().Foreground(t.Band)},
		{Label: "forecast", Values: yhat(res.Points), Marker: '█', Style: lipgloss.NewStyle().Foreground(t.Forecast)},
	}

	first, last := "", ""
	if len(res.Points) > 0 {
		first = res.Points[0].Day()
		last = res.Points[len(res.Points)-1].Day()
	}

	return m.styles.ChartFrame.Render(LineChart(series, first, last, layout))
}

// chartLayout derives the chart box from the window and the view mode. The
// session's layout generation rides along as the remount key.
func (m *Model) chartLayout(expanded bool, reserved int) ChartLayout {
	width := m.width - 8
	height := 10
	if !expanded {
		width = m.width - reserved - 8
	} else {
		height = m.height - 14
	}
	return ChartLayout{Width: width, Height: height, Generation: m.sess.LayoutGeneration()}
}

func yhat(points []session.ForecastPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Yhat
	}
	return out
}

func yhatLower(points []session.ForecastPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.YhatLower
	}
	return out
}

func yhatUpper(points []session.ForecastPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.YhatUpper
	}
	return out
}
