package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/catalog"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/tui/components"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// ApplicationState represents the current input mode
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateFiltering
	StateSorting
)

// Layout proportions
const (
	ListColumnPercent = 40
	MinColumnWidth    = 20

	// Header line and filter line above the panels
	TopChromeHeight = 2

	// Number of suggestions offered when a filter matches nothing
	SuggestionLimit = 3

	// Rows moved per mouse wheel tick
	WheelStep = 1
)

// Model is the main Bubble Tea model for the application
type Model struct {
	State ApplicationState
	Ready bool

	// Reactive state
	Store     *catalog.Store
	Selection *catalog.Selection

	// UI Components
	List      *components.FilmList
	Detail    components.Detail
	SortModal components.SortModal
	Filter    textinput.Model
	Help      help.Model
	Keys      KeyMap

	// Dimensions
	Width  int
	Height int

	// LoadErr is kept for logging and tests; the view never surfaces it
	LoadErr error

	observer *ChannelObserver
	logger   *slog.Logger
}

// NewModel creates a new application model
func NewModel(
	store *catalog.Store,
	selection *catalog.Selection,
	images domain.ImageTable,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter by title"
	filter.PromptStyle = styles.FilterPromptStyle
	filter.TextStyle = styles.FilterStyle

	observer := NewChannelObserver()
	store.Subscribe(observer)
	selection.Subscribe(observer)

	m := Model{
		State:     StateBrowsing,
		Store:     store,
		Selection: selection,
		List:      components.NewFilmList("Films"),
		Detail:    components.NewDetail(images),
		SortModal: components.NewSortModal(),
		Filter:    filter,
		Help:      help.New(),
		Keys:      DefaultKeyMap(),
		observer:  observer,
		logger:    logger,
	}
	m.List.SetLoading(!store.Loaded())
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCatalogCmd(m.Store),
		m.List.Spinner().Tick,
		WaitForChangeCmd(m.observer.Changes()),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case CatalogLoadedMsg:
		m.LoadErr = msg.Err
		if msg.Err != nil {
			m.logger.Warn("catalog unavailable, showing empty list", "error", msg.Err)
		}
		m.refresh()
		return m, nil

	case CatalogChangedMsg:
		m.logger.Debug("catalog changed", "kind", msg.Change.Kind)
		m.refresh()
		return m, WaitForChangeCmd(m.observer.Changes())

	case spinner.TickMsg:
		if m.Store.Loaded() {
			return m, nil
		}
		sp := m.List.Spinner()
		var cmd tea.Cmd
		*sp, cmd = sp.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateSorting:
		return m.handleSortKey(msg)
	case StateFiltering:
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		m.updateLayout()

	case key.Matches(msg, m.Keys.Filter):
		m.State = StateFiltering
		m.List.SetFocused(false)
		return m, m.Filter.Focus()

	case key.Matches(msg, m.Keys.ClearFilter):
		m.setFilter("")

	case key.Matches(msg, m.Keys.Up):
		m.List.MoveUp(1)
	case key.Matches(msg, m.Keys.Down):
		m.List.MoveDown(1)
	case key.Matches(msg, m.Keys.HalfUp):
		m.List.MoveUp(max(m.List.PageSize()/2, 1))
	case key.Matches(msg, m.Keys.HalfDown):
		m.List.MoveDown(max(m.List.PageSize()/2, 1))
	case key.Matches(msg, m.Keys.Home):
		m.List.Top()
	case key.Matches(msg, m.Keys.End):
		m.List.Bottom()

	case key.Matches(msg, m.Keys.Select):
		m.selectCurrent()

	case key.Matches(msg, m.Keys.Sort):
		m.State = StateSorting
		m.SortModal.Show(m.Store.SortKey())

	case key.Matches(msg, m.Keys.CycleSort):
		m.Store.SetSortKey(m.Store.SortKey().Next())
		m.refresh()

	case key.Matches(msg, m.Keys.ScrollDown):
		m.Detail.ScrollDown(1)
	case key.Matches(msg, m.Keys.ScrollUp):
		m.Detail.ScrollUp(1)
	}

	return m, nil
}

func (m Model) handleSortKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	_, chosen := m.SortModal.HandleKey(msg.String())
	if chosen != nil {
		m.Store.SetSortKey(*chosen)
		m.refresh()
	}
	if !m.SortModal.IsVisible() {
		m.State = StateBrowsing
	}
	return m, nil
}

// handleFilterKey edits the filter text. Enter keeps the text and returns
// to the list; esc clears it.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.leaveFilter()
		return m, nil
	case "esc":
		m.Filter.SetValue("")
		m.setFilter("")
		m.leaveFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.Filter, cmd = m.Filter.Update(msg)
	if v := m.Filter.Value(); v != m.Store.Filter() {
		m.setFilter(v)
	}
	return m, cmd
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.State == StateSorting || !m.Ready {
		return m, nil
	}

	if msg.X >= m.listWidth() {
		var cmd tea.Cmd
		m.Detail, cmd = m.Detail.Update(msg)
		return m, cmd
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.List.MoveUp(WheelStep)
	case tea.MouseButtonWheelDown:
		m.List.MoveDown(WheelStep)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			break
		}
		if idx, ok := m.List.RowAt(msg.Y - listRowTop); ok {
			m.List.SetCursor(idx)
			m.selectCurrent()
		}
	}
	return m, nil
}

// listRowTop is the screen row of the first film row: top chrome, the
// list's top border and its header line.
const listRowTop = TopChromeHeight + components.BorderHeight/2 + components.ListHeaderLines

func (m *Model) leaveFilter() {
	m.Filter.Blur()
	m.State = StateBrowsing
	m.List.SetFocused(true)
}

func (m *Model) setFilter(text string) {
	if m.Filter.Value() != text {
		m.Filter.SetValue(text)
	}
	m.Store.SetFilter(text)
	m.refresh()
}

func (m *Model) selectCurrent() {
	film, ok := m.List.Current()
	if !ok {
		return
	}
	m.Selection.Select(film)
	m.refresh()
}

// refresh re-derives everything the view shows from the store and the
// selection. It is cheap and idempotent, so every change event calls it.
func (m *Model) refresh() {
	visible := m.Store.Visible()
	m.List.SetFilms(visible)
	m.List.SetLoading(!m.Store.Loaded())

	var hint string
	var suggestions []string
	switch filter := m.Store.Filter(); {
	case len(visible) > 0:
	case filter != "":
		hint = fmt.Sprintf("No films match %q", filter)
		suggestions = catalog.Suggest(filter, m.Store.Films(), SuggestionLimit)
	default:
		hint = "No films"
	}
	m.List.SetEmptyState(hint, suggestions)

	film, _ := m.Selection.Selected()
	m.List.SetSelected(film)
	m.Detail.SetFilm(film)
}

func (m Model) listWidth() int {
	return max(m.Width*ListColumnPercent/100, MinColumnWidth)
}

func (m *Model) updateLayout() {
	if !m.Ready {
		return
	}

	m.Help.Width = m.Width
	m.Filter.Width = max(m.Width-len(m.Filter.Prompt)-1, 1)

	panelHeight := max(m.Height-TopChromeHeight-m.footerHeight(), 3)
	listWidth := m.listWidth()
	m.List.SetSize(listWidth, panelHeight)
	m.Detail.SetSize(max(m.Width-listWidth, MinColumnWidth), panelHeight)
}
