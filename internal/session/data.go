package session

import "time"

// ForecastPoint is one day of the 30-day forecast horizon. The expected
// yhat_lower <= yhat <= yhat_upper invariant is server-side and not
// enforced here.
type ForecastPoint struct {
	DS        string  `json:"ds"`
	Yhat      float64 `json:"yhat"`
	YhatLower float64 `json:"yhat_lower"`
	YhatUpper float64 `json:"yhat_upper"`
}

// Day returns the calendar-day portion of the point's timestamp. The
// backend sends ISO timestamps; tables and chart axes only show the date.
func (p ForecastPoint) Day() string {
	if t, err := time.Parse(time.RFC3339, p.DS); err == nil {
		return t.Format("2006-01-02")
	}
	if len(p.DS) >= 10 {
		return p.DS[:10]
	}
	return p.DS
}

// ForecastResult is the forecast for one product, tagged with the context
// it was fetched under. TotalForecast is the server-supplied aggregate and
// is never recomputed client-side.
type ForecastResult struct {
	Product       string          `json:"product"`
	SourceSystem  SourceSystem    `json:"source_system"`
	Points        []ForecastPoint `json:"points"`
	TotalForecast float64         `json:"total_forecast"`
}

// SparklinePoint is one sample of a summary card's inline trend.
type SparklinePoint struct {
	Date        string  `json:"date"`
	TotalOrders float64 `json:"total_orders"`
}

// TrendSummaryItem is one product card in the trends summary grid.
type TrendSummaryItem struct {
	Product          string           `json:"product"`
	TotalSales       float64          `json:"total_sales"`
	TrendPercent     float64          `json:"trend_percent"`
	TrendDescription string           `json:"trend_description"`
	TrendIcon        string           `json:"trend_icon"`
	SparklineData    []SparklinePoint `json:"sparkline_data"`
	Color            string           `json:"color"`
}

// ChartData holds the aligned date/value series of a trend detail.
type ChartData struct {
	Dates  []string  `json:"dates"`
	Actual []float64 `json:"actual"`
}

// TrendDetail is the drill-down result for one (product, range, source)
// triple.
type TrendDetail struct {
	Product          string       `json:"product"`
	TotalSales       float64      `json:"total_sales"`
	AvgSales         float64      `json:"avg_sales"`
	TrendDescription string       `json:"trend_description"`
	TrendPercent     float64      `json:"trend_percent"`
	ChartData        ChartData    `json:"chart_data"`
	SourceSystem     SourceSystem `json:"source_system,omitempty"`
	TimeRange        TimeRange    `json:"time_range,omitempty"`
}
