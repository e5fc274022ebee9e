package session

import "sort"

// Mode is the drill-down state of the trends view.
type Mode int

const (
	// ModeListing shows the summary grid with search.
	ModeListing Mode = iota
	// ModeDetail shows a single product with range tabs.
	ModeDetail
)

// ViewMode is the presentation mode of the console.
type ViewMode int

const (
	ViewNormal ViewMode = iota
	ViewExpanded
)

// Session owns every piece of console state that outlives a single render:
// the active source system, the loaded collections, the current selections
// and the loader state machines. It is the single writer; asynchronous
// results re-enter only through the Apply methods, which drop anything
// stale.
type Session struct {
	source       SourceSystem
	sourceActive bool

	catalog       []string
	catalogLoader Loader

	summary       []TrendSummaryItem
	summaryLoader Loader

	selectedProduct string
	forecast        *ForecastResult
	forecastLoader  Loader

	mode          Mode
	detailProduct string
	detailRange   TimeRange
	detail        *TrendDetail
	detailLoader  Loader

	viewMode  ViewMode
	layoutGen int
}

// New returns a session with no active source system. The first SetSource
// activates one and reports the catalog/summary fetches to issue.
func New() *Session {
	return &Session{detailRange: DefaultRange}
}

// SourceChange describes the fetches a source activation requires.
type SourceChange struct {
	System     SourceSystem
	CatalogGen uint64
	SummaryGen uint64
}

// SetSource activates a source system. All dependent state (catalog,
// summary, selections, forecast, drill-down detail) is cleared in this one
// transition, so no partially invalidated state is ever observable, and
// every in-flight response for the previous system becomes stale. Setting
// the already-active system is a no-op.
func (s *Session) SetSource(sys SourceSystem) (SourceChange, bool) {
	if s.sourceActive && s.source == sys {
		return SourceChange{}, false
	}

	s.source = sys
	s.sourceActive = true

	s.catalog = nil
	s.summary = nil
	s.selectedProduct = ""
	s.forecast = nil
	s.forecastLoader.Reset()

	s.mode = ModeListing
	s.detailProduct = ""
	s.detailRange = DefaultRange
	s.detail = nil
	s.detailLoader.Reset()

	return SourceChange{
		System:     sys,
		CatalogGen: s.catalogLoader.Begin(),
		SummaryGen: s.summaryLoader.Begin(),
	}, true
}

// Source returns the active source system.
func (s *Session) Source() SourceSystem { return s.source }

// ApplyCatalog resolves a catalog fetch. On success the catalog is replaced
// wholesale and sorted lexicographically; on failure it is left empty.
// Stale responses are discarded.
func (s *Session) ApplyCatalog(gen uint64, products []string, err error) bool {
	if err != nil {
		if !s.catalogLoader.Fail(gen, err) {
			return false
		}
		s.catalog = nil
		return true
	}
	if !s.catalogLoader.Succeed(gen) {
		return false
	}
	s.catalog = append([]string(nil), products...)
	sort.Strings(s.catalog)
	return true
}

// ApplySummary resolves a summary fetch, preserving server order.
func (s *Session) ApplySummary(gen uint64, items []TrendSummaryItem, err error) bool {
	if err != nil {
		if !s.summaryLoader.Fail(gen, err) {
			return false
		}
		s.summary = nil
		return true
	}
	if !s.summaryLoader.Succeed(gen) {
		return false
	}
	s.summary = append([]TrendSummaryItem(nil), items...)
	return true
}

// RetryCatalog re-issues a failed catalog fetch. It refuses unless the
// catalog loader is in the failed phase.
func (s *Session) RetryCatalog() (uint64, bool) {
	if !s.sourceActive || s.catalogLoader.Phase() != PhaseFailed {
		return 0, false
	}
	return s.catalogLoader.Begin(), true
}

// RetrySummary re-issues a failed summary fetch.
func (s *Session) RetrySummary() (uint64, bool) {
	if !s.sourceActive || s.summaryLoader.Phase() != PhaseFailed {
		return 0, false
	}
	return s.summaryLoader.Begin(), true
}

// Catalog returns the sorted product catalog of the active source system.
func (s *Session) Catalog() []string { return s.catalog }

// Summary returns the trend summary in server order.
func (s *Session) Summary() []TrendSummaryItem { return s.summary }

// CatalogState exposes the catalog loader for rendering.
func (s *Session) CatalogState() *Loader { return &s.catalogLoader }

// SummaryState exposes the summary loader for rendering.
func (s *Session) SummaryState() *Loader { return &s.summaryLoader }

// SelectProduct records the forecast view's product selection. Selecting a
// product clears a previously shown forecast for a different product.
func (s *Session) SelectProduct(product string) {
	if product == s.selectedProduct {
		return
	}
	s.selectedProduct = product
	s.forecast = nil
	s.forecastLoader.Reset()
}

// SelectedProduct returns the forecast view selection.
func (s *Session) SelectedProduct() string { return s.selectedProduct }

// InCatalog reports whether product is a member of the current catalog.
func (s *Session) InCatalog(product string) bool {
	i := sort.SearchStrings(s.catalog, product)
	return i < len(s.catalog) && s.catalog[i] == product
}

// RequestForecast begins a forecast fetch for the selected product. It
// refuses when nothing is selected or the selection is not in the catalog.
func (s *Session) RequestForecast() (uint64, bool) {
	if s.selectedProduct == "" || !s.InCatalog(s.selectedProduct) {
		return 0, false
	}
	return s.forecastLoader.Begin(), true
}

// ApplyForecast resolves a forecast fetch. Prior (possibly stale) data is
// left in place on failure; only the loading flag and error change.
func (s *Session) ApplyForecast(gen uint64, res *ForecastResult, err error) bool {
	if err != nil {
		return s.forecastLoader.Fail(gen, err)
	}
	if !s.forecastLoader.Succeed(gen) {
		return false
	}
	s.forecast = res
	return true
}

// Forecast returns the loaded forecast, nil when none is loaded.
func (s *Session) Forecast() *ForecastResult { return s.forecast }

// ForecastState exposes the forecast loader for rendering.
func (s *Session) ForecastState() *Loader { return &s.forecastLoader }

// Mode returns the drill-down state of the trends view.
func (s *Session) Mode() Mode { return s.mode }

// OpenDetail transitions Listing -> Detail for the clicked product and
// begins a detail fetch with the default range.
func (s *Session) OpenDetail(product string) (uint64, bool) {
	if product == "" {
		return 0, false
	}
	s.mode = ModeDetail
	s.detailProduct = product
	s.detailRange = DefaultRange
	s.detail = nil
	return s.detailLoader.Begin(), true
}

// SetRange switches the active range tab and begins a re-fetch. Range
// changes while no product is drilled into are a no-op, not an error.
func (s *Session) SetRange(r TimeRange) (uint64, bool) {
	if s.mode != ModeDetail || s.detailProduct == "" {
		return 0, false
	}
	s.detailRange = r
	return s.detailLoader.Begin(), true
}

// CloseDetail is the explicit back action: Detail -> Listing. The summary
// data is untouched.
func (s *Session) CloseDetail() {
	s.mode = ModeListing
	s.detailProduct = ""
	s.detailRange = DefaultRange
	s.detail = nil
	s.detailLoader.Reset()
}

// ApplyDetail resolves a detail fetch. A response for a range or product
// the user has since navigated away from carries a stale generation and is
// dropped; on failure the previously displayed detail stays visible.
func (s *Session) ApplyDetail(gen uint64, d *TrendDetail, err error) bool {
	if err != nil {
		return s.detailLoader.Fail(gen, err)
	}
	if !s.detailLoader.Succeed(gen) {
		return false
	}
	s.detail = d
	return true
}

// Detail returns the loaded trend detail, nil when none is loaded.
func (s *Session) Detail() *TrendDetail { return s.detail }

// DetailProduct returns the product currently drilled into.
func (s *Session) DetailProduct() string { return s.detailProduct }

// DetailRange returns the active range tab.
func (s *Session) DetailRange() TimeRange { return s.detailRange }

// DetailState exposes the detail loader for rendering.
func (s *Session) DetailState() *Loader { return &s.detailLoader }

// ToggleViewMode flips Normal <-> Expanded and bumps the layout generation
// so chart renders keyed by it cannot reuse stale layout.
func (s *Session) ToggleViewMode() ViewMode {
	if s.viewMode == ViewNormal {
		s.viewMode = ViewExpanded
	} else {
		s.viewMode = ViewNormal
	}
	s.layoutGen++
	return s.viewMode
}

// ViewMode returns the current presentation mode.
func (s *Session) ViewMode() ViewMode { return s.viewMode }

// BumpLayout invalidates chart layout without changing the mode, used on
// window resize.
func (s *Session) BumpLayout() { s.layoutGen++ }

// LayoutGeneration is the remount key passed to the chart renderer.
func (s *Session) LayoutGeneration() int { return s.layoutGen }
