package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"trendscope/internal/api"
	"trendscope/internal/export"
	"trendscope/internal/session"
)

type screen int

const (
	screenForecast screen = iota
	screenTrends
)

// statusTTL is how long transient status-bar notices stay visible.
const statusTTL = 4 * time.Second

// catalogItem adapts a product id to the bubbles list item interface.
type catalogItem string

func (i catalogItem) Title() string       { return string(i) }
func (i catalogItem) Description() string { return "" }
func (i catalogItem) FilterValue() string { return string(i) }

// Model is the root Bubble Tea model. All state transitions happen here, on
// the program goroutine; commands only fetch and report back as messages.
type Model struct {
	sess     *session.Session
	client   *api.Client
	exporter *export.Exporter
	logger   *slog.Logger
	timeout  time.Duration

	styles  *Styles
	screen  screen
	width   int
	height  int
	initial session.SourceSystem

	catalogList   list.Model
	forecastTable table.Model
	showTable     bool
	spin          spinner.Model
	search        searchField
	cursor        int

	status    string
	statusSeq int
}

// NewModel wires the console model. The initial source system comes from
// configuration; its catalog and summary fetches are issued from Init.
func NewModel(client *api.Client, exporter *export.Exporter, logger *slog.Logger, initial session.SourceSystem, timeout time.Duration) *Model {
	styles := NewStyles(nil)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.Theme().Text).
		Background(styles.Theme().Selection).
		Bold(true)

	catalogList := list.New(nil, delegate, 32, 20)
	catalogList.Title = "Products"
	catalogList.SetShowStatusBar(false)
	catalogList.SetFilteringEnabled(false)
	catalogList.SetShowHelp(false)

	forecastTable := table.New(
		table.WithColumns(forecastColumns(0)),
		table.WithHeight(10),
	)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.Subtitle

	return &Model{
		sess:          session.New(),
		client:        client,
		exporter:      exporter,
		logger:        logger,
		timeout:       timeout,
		styles:        styles,
		initial:       initial,
		catalogList:   catalogList,
		forecastTable: forecastTable,
		spin:          spin,
		search:        newSearchField(),
	}
}

// Init activates the configured source system and issues its fetches.
func (m *Model) Init() tea.Cmd {
	change, ok := m.sess.SetSource(m.initial)
	if !ok {
		return m.spin.Tick
	}
	return tea.Batch(
		m.fetchCatalog(change.CatalogGen, change.System),
		m.fetchSummary(change.SummaryGen, change.System),
		m.spin.Tick,
	)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.anyLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case catalogMsg:
		return m.handleCatalog(msg)

	case summaryMsg:
		return m.handleSummary(msg)

	case forecastMsg:
		return m.handleForecast(msg)

	case detailMsg:
		return m.handleDetail(msg)

	case exportedMsg:
		if msg.err != nil {
			m.logger.Warn("snapshot export failed", "error", msg.err)
			m.status = m.styles.ErrorLine.Render("export failed: " + msg.err.Error())
		} else {
			m.status = m.styles.SuccessLine.Render("exported " + msg.path)
		}
		m.statusSeq++
		return m, clearStatusAfter(m.statusSeq, statusTTL)

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	default:
		if m.search.IsActive() {
			return m, m.search.UpdateInput(msg)
		}
		var cmd tea.Cmd
		m.catalogList, cmd = m.catalogList.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.sess.BumpLayout()

	listHeight := msg.Height - 8
	if listHeight < 10 {
		listHeight = 10
	}
	m.catalogList.SetSize(32, listHeight)
	m.forecastTable.SetColumns(forecastColumns(msg.Width))
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Search input captures keystrokes while active.
	if m.search.IsActive() && m.screen == screenTrends && m.sess.Mode() == session.ModeListing {
		switch msg.String() {
		case "esc":
			m.search.Clear()
			m.cursor = 0
			return m, nil
		case "enter":
			m.search.SetActive(false)
			return m, nil
		default:
			cmd := m.search.UpdateInput(msg)
			m.clampCursor()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "1":
		m.screen = screenForecast
		return m, nil

	case "2":
		m.screen = screenTrends
		return m, nil

	case "s":
		return m.handleSourceCycle()

	case "f":
		m.sess.ToggleViewMode()
		return m, nil

	case "e":
		return m.handleExport()

	case "r":
		return m.handleRetry()
	}

	switch m.screen {
	case screenForecast:
		return m.handleForecastKeys(msg)
	case screenTrends:
		return m.handleTrendsKeys(msg)
	}
	return m, nil
}

// handleSourceCycle advances to the next source system. The session clears
// everything dependent on the old one in a single transition and hands back
// the two fetches to issue.
func (m *Model) handleSourceCycle() (tea.Model, tea.Cmd) {
	next := m.sess.Source().Next()
	change, ok := m.sess.SetSource(next)
	if !ok {
		return m, nil
	}

	m.logger.Info("source system switched", "system", string(next))
	m.catalogList.SetItems(nil)
	m.forecastTable.SetRows(nil)
	m.showTable = false
	m.search.Clear()
	m.cursor = 0

	return m, tea.Batch(
		m.fetchCatalog(change.CatalogGen, change.System),
		m.fetchSummary(change.SummaryGen, change.System),
		m.spin.Tick,
	)
}

func (m *Model) handleExport() (tea.Model, tea.Cmd) {
	switch {
	case m.screen == screenForecast && m.sess.Forecast() != nil:
		return m, m.exportForecast(m.sess.Forecast())
	case m.screen == screenTrends && m.sess.Mode() == session.ModeDetail && m.sess.Detail() != nil:
		return m, m.exportDetail(m.sess.Detail())
	}
	return m, nil
}

// handleRetry re-issues whichever fetch failed on the visible screen.
func (m *Model) handleRetry() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch m.screen {
	case screenForecast:
		if gen, ok := m.sess.RetryCatalog(); ok {
			cmds = append(cmds, m.fetchCatalog(gen, m.sess.Source()))
		}
		if m.sess.ForecastState().Phase() == session.PhaseFailed {
			if gen, ok := m.sess.RequestForecast(); ok {
				cmds = append(cmds, m.fetchForecast(gen, m.sess.Source(), m.sess.SelectedProduct()))
			}
		}
	case screenTrends:
		if m.sess.Mode() == session.ModeDetail {
			if m.sess.DetailState().Phase() == session.PhaseFailed {
				if gen, ok := m.sess.SetRange(m.sess.DetailRange()); ok {
					cmds = append(cmds, m.fetchDetail(gen, m.sess.Source(), m.sess.DetailProduct(), m.sess.DetailRange()))
				}
			}
		} else if gen, ok := m.sess.RetrySummary(); ok {
			cmds = append(cmds, m.fetchSummary(gen, m.sess.Source()))
		}
	}

	if len(cmds) == 0 {
		return m, nil
	}
	cmds = append(cmds, m.spin.Tick)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleForecastKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		item, ok := m.catalogList.SelectedItem().(catalogItem)
		if !ok {
			return m, nil
		}
		m.sess.SelectProduct(string(item))
		gen, ok := m.sess.RequestForecast()
		if !ok {
			return m, nil
		}
		m.forecastTable.SetRows(nil)
		return m, tea.Batch(
			m.fetchForecast(gen, m.sess.Source(), m.sess.SelectedProduct()),
			m.spin.Tick,
		)

	case "tab":
		if m.sess.Forecast() != nil {
			m.showTable = !m.showTable
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.catalogList, cmd = m.catalogList.Update(msg)
	return m, cmd
}

func (m *Model) handleTrendsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sess.Mode() == session.ModeDetail {
		switch msg.String() {
		case "esc":
			m.sess.CloseDetail()
			return m, nil
		case "left", "h":
			return m.handleRangeStep(-1)
		case "right", "l":
			return m.handleRangeStep(1)
		}
		return m, nil
	}

	switch msg.String() {
	case "/":
		m.search.SetActive(true)
		return m, nil

	case "esc":
		if m.search.Value() != "" {
			m.search.Clear()
			m.cursor = 0
		}
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		m.cursor++
		m.clampCursor()
		return m, nil

	case "enter":
		items := m.visibleSummary()
		if m.cursor >= len(items) {
			return m, nil
		}
		product := items[m.cursor].Product
		gen, ok := m.sess.OpenDetail(product)
		if !ok {
			return m, nil
		}
		return m, tea.Batch(
			m.fetchDetail(gen, m.sess.Source(), product, m.sess.DetailRange()),
			m.spin.Tick,
		)
	}
	return m, nil
}

// handleRangeStep moves the active range tab left or right, without
// wrapping, and re-fetches the detail for the new range.
func (m *Model) handleRangeStep(delta int) (tea.Model, tea.Cmd) {
	current := m.sess.DetailRange()
	idx := 0
	for i, r := range session.TimeRanges {
		if r == current {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 || idx >= len(session.TimeRanges) {
		return m, nil
	}

	gen, ok := m.sess.SetRange(session.TimeRanges[idx])
	if !ok {
		return m, nil
	}
	return m, tea.Batch(
		m.fetchDetail(gen, m.sess.Source(), m.sess.DetailProduct(), m.sess.DetailRange()),
		m.spin.Tick,
	)
}

func (m *Model) handleCatalog(msg catalogMsg) (tea.Model, tea.Cmd) {
	if !m.sess.ApplyCatalog(msg.gen, msg.products, msg.err) {
		m.logger.Debug("discarded stale catalog response", "system", string(msg.system))
		return m, nil
	}
	if msg.err != nil {
		m.logger.Warn("catalog fetch failed", "system", string(msg.system), "error", msg.err)
		m.catalogList.SetItems(nil)
		return m, nil
	}

	items := make([]list.Item, 0, len(m.sess.Catalog()))
	for _, p := range m.sess.Catalog() {
		items = append(items, catalogItem(p))
	}
	m.catalogList.SetItems(items)
	return m, nil
}

func (m *Model) handleSummary(msg summaryMsg) (tea.Model, tea.Cmd) {
	if !m.sess.ApplySummary(msg.gen, msg.items, msg.err) {
		m.logger.Debug("discarded stale summary response", "system", string(msg.system))
		return m, nil
	}
	if msg.err != nil {
		m.logger.Warn("trend summary fetch failed", "system", string(msg.system), "error", msg.err)
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) handleForecast(msg forecastMsg) (tea.Model, tea.Cmd) {
	if !m.sess.ApplyForecast(msg.gen, msg.result, msg.err) {
		m.logger.Debug("discarded stale forecast response")
		return m, nil
	}
	if msg.err != nil {
		m.logger.Warn("forecast fetch failed", "product", m.sess.SelectedProduct(), "error", msg.err)
		return m, nil
	}

	m.forecastTable.SetRows(forecastRows(m.sess.Forecast()))
	return m, nil
}

func (m *Model) handleDetail(msg detailMsg) (tea.Model, tea.Cmd) {
	if !m.sess.ApplyDetail(msg.gen, msg.detail, msg.err) {
		m.logger.Debug("discarded stale detail response")
		return m, nil
	}
	if msg.err != nil {
		m.logger.Warn("trend detail fetch failed",
			"product", m.sess.DetailProduct(),
			"range", string(m.sess.DetailRange()),
			"error", msg.err)
	}
	return m, nil
}

// visibleSummary is the summary filtered by the current search query.
func (m *Model) visibleSummary() []session.TrendSummaryItem {
	return session.FilterSummary(m.sess.Summary(), m.search.Value())
}

func (m *Model) clampCursor() {
	n := len(m.visibleSummary())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

func (m *Model) anyLoading() bool {
	return m.sess.CatalogState().Loading() ||
		m.sess.SummaryState().Loading() ||
		m.sess.ForecastState().Loading() ||
		m.sess.DetailState().Loading()
}

// View renders the active screen with the shared header and footer.
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var body string
	switch m.screen {
	case screenForecast:
		body = m.forecastView()
	case screenTrends:
		body = m.trendsView()
	}

	return m.headerView() + "\n" + body + "\n" + m.footerView()
}
