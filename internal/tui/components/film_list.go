package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// Layout constants for the film list
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// The title line inside the border
	ListHeaderLines = 1
)

// FilmList is a scrollable list of films with a cursor.
// It only displays films; which films are visible is decided by the catalog.
type FilmList struct {
	films    []*domain.Film
	selected *domain.Film // marked row, independent of the cursor

	cursor     int
	offset     int
	maxVisible int

	width   int
	height  int
	focused bool

	title       string
	loading     bool
	spinner     spinner.Model
	emptyHint   string
	suggestions []string
}

// NewFilmList creates an empty, focused film list
func NewFilmList(title string) *FilmList {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	return &FilmList{
		title:      title,
		focused:    true,
		spinner:    sp,
		maxVisible: 1,
		emptyHint:  "No films",
	}
}

// SetFilms replaces the displayed films. The cursor stays on the same film
// when it is still present, otherwise it is clamped into range.
func (l *FilmList) SetFilms(films []*domain.Film) {
	var current *domain.Film
	if l.cursor >= 0 && l.cursor < len(l.films) {
		current = l.films[l.cursor]
	}

	l.films = films
	if current != nil {
		for i, f := range films {
			if f == current {
				l.cursor = i
				l.ensureVisible()
				return
			}
		}
	}
	l.clampCursor()
}

// Films returns the displayed films
func (l *FilmList) Films() []*domain.Film {
	return l.films
}

// SetSelected marks the given film in the list (nil clears the mark)
func (l *FilmList) SetSelected(f *domain.Film) {
	l.selected = f
}

// SetLoading toggles the loading indicator
func (l *FilmList) SetLoading(loading bool) {
	l.loading = loading
}

// Spinner exposes the loading spinner so the model can tick it
func (l *FilmList) Spinner() *spinner.Model {
	return &l.spinner
}

// SetEmptyState sets the message and suggestions shown when the list is empty
func (l *FilmList) SetEmptyState(hint string, suggestions []string) {
	l.emptyHint = hint
	l.suggestions = suggestions
}

// SetFocused sets the focus state
func (l *FilmList) SetFocused(focused bool) {
	l.focused = focused
}

// SetSize updates the component dimensions
func (l *FilmList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.maxVisible = max(height-BorderHeight-ListHeaderLines, 1)
	l.ensureVisible()
}

// Cursor returns the cursor position
func (l *FilmList) Cursor() int {
	return l.cursor
}

// SetCursor moves the cursor to index i (clamped)
func (l *FilmList) SetCursor(i int) {
	l.cursor = i
	l.clampCursor()
}

// Current returns the film under the cursor
func (l *FilmList) Current() (*domain.Film, bool) {
	if l.cursor < 0 || l.cursor >= len(l.films) {
		return nil, false
	}
	return l.films[l.cursor], true
}

// MoveUp moves the cursor up by n rows
func (l *FilmList) MoveUp(n int) {
	l.SetCursor(l.cursor - n)
}

// MoveDown moves the cursor down by n rows
func (l *FilmList) MoveDown(n int) {
	l.SetCursor(l.cursor + n)
}

// Top moves the cursor to the first row
func (l *FilmList) Top() {
	l.SetCursor(0)
}

// Bottom moves the cursor to the last row
func (l *FilmList) Bottom() {
	l.SetCursor(len(l.films) - 1)
}

// PageSize returns the number of visible rows
func (l *FilmList) PageSize() int {
	return l.maxVisible
}

// RowAt maps a y offset relative to the first row to a film index
func (l *FilmList) RowAt(y int) (int, bool) {
	if y < 0 || y >= l.maxVisible {
		return 0, false
	}
	idx := l.offset + y
	if idx >= len(l.films) {
		return 0, false
	}
	return idx, true
}

func (l *FilmList) clampCursor() {
	if l.cursor >= len(l.films) {
		l.cursor = len(l.films) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.ensureVisible()
}

// ensureVisible adjusts offset so the cursor row is on screen
func (l *FilmList) ensureVisible() {
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
	if maxOffset := max(len(l.films)-l.maxVisible, 0); l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the list inside a border
func (l *FilmList) View() string {
	style := styles.InactiveBorder
	if l.focused {
		style = styles.ActiveBorder
	}

	contentWidth := max(l.width-BorderWidth, 10)
	lines := []string{styles.AccentStyle.Render(styles.Pad(l.header(), contentWidth))}
	lines = append(lines, l.renderRows(contentWidth)...)

	return style.
		Width(contentWidth).
		Height(max(l.height-BorderHeight, 1)).
		Render(strings.Join(lines, "\n"))
}

func (l *FilmList) header() string {
	if l.loading {
		return l.spinner.View() + " " + l.title
	}
	return fmt.Sprintf("%s (%d)", l.title, len(l.films))
}

func (l *FilmList) renderRows(width int) []string {
	if l.loading && len(l.films) == 0 {
		return []string{styles.DimStyle.Render("Loading films...")}
	}

	if len(l.films) == 0 {
		rows := []string{styles.DimStyle.Render(styles.Truncate(l.emptyHint, width))}
		if len(l.suggestions) > 0 {
			rows = append(rows, "", styles.DimStyle.Render("Did you mean:"))
			for _, s := range l.suggestions {
				rows = append(rows, styles.SubtitleStyle.Render(styles.Truncate("  "+s, width)))
			}
		}
		return rows
	}

	end := min(l.offset+l.maxVisible, len(l.films))
	rows := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		rows = append(rows, l.renderRow(l.films[i], i == l.cursor, width))
	}
	return rows
}

func (l *FilmList) renderRow(f *domain.Film, atCursor bool, width int) string {
	mark := "  "
	if f == l.selected {
		mark = "▸ "
	}

	year := f.GetDescription()
	titleWidth := width - lipgloss.Width(mark) - len(year) - 1
	text := mark + styles.Pad(f.Title, titleWidth) + " " + year

	if atCursor {
		return styles.CursorItemStyle.Render(text)
	}
	if f == l.selected {
		return styles.SelectedMarkStyle.Render(text)
	}
	return styles.NormalItemStyle.Render(text)
}
