package tui

import (
	"trendscope/internal/session"
)

// Loader result messages. Every message carries the generation captured when
// its request was issued; the session discards any result whose generation
// no longer matches the loader.

type catalogMsg struct {
	gen      uint64
	system   session.SourceSystem
	products []string
	err      error
}

type summaryMsg struct {
	gen    uint64
	system session.SourceSystem
	items  []session.TrendSummaryItem
	err    error
}

type forecastMsg struct {
	gen    uint64
	result *session.ForecastResult
	err    error
}

type detailMsg struct {
	gen    uint64
	detail *session.TrendDetail
	err    error
}

type exportedMsg struct {
	path string
	err  error
}
