package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// DetailPlaceholder is shown when nothing is selected
const DetailPlaceholder = "Select a film to view details"

// Detail renders the selected film. It holds no catalog state of its own;
// the model pushes the current selection in with SetFilm.
type Detail struct {
	film   *domain.Film
	images domain.ImageTable

	width    int
	height   int
	viewport viewport.Model
}

// NewDetail creates a detail panel resolving posters through images
func NewDetail(images domain.ImageTable) Detail {
	return Detail{
		images:   images,
		viewport: viewport.New(0, 0),
	}
}

// SetFilm sets the film to display (nil shows the placeholder)
func (d *Detail) SetFilm(f *domain.Film) {
	if d.film == f {
		return
	}
	d.film = f
	d.resize()
	d.viewport.GotoTop()
}

// Film returns the displayed film
func (d Detail) Film() *domain.Film {
	return d.film
}

// SetSize updates the component dimensions
func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.resize()
}

// resize fits the crawl viewport below the header, which varies per film
func (d *Detail) resize() {
	d.viewport.Width = d.contentWidth()
	d.viewport.Height = max(d.height-BorderHeight-lipgloss.Height(d.header()), 1)
	d.refresh()
}

// Update forwards scroll keys and mouse wheel events to the crawl viewport
func (d Detail) Update(msg tea.Msg) (Detail, tea.Cmd) {
	if d.film == nil {
		return d, nil
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// ScrollDown scrolls the crawl by n lines
func (d *Detail) ScrollDown(n int) {
	d.viewport.ScrollDown(n)
}

// ScrollUp scrolls the crawl by n lines
func (d *Detail) ScrollUp(n int) {
	d.viewport.ScrollUp(n)
}

func (d Detail) contentWidth() int {
	return max(d.width-BorderWidth-2, 10)
}

func (d *Detail) refresh() {
	if d.film == nil {
		d.viewport.SetContent("")
		return
	}
	crawl := lipgloss.NewStyle().Width(d.contentWidth()).Render(d.film.OpeningCrawl)
	d.viewport.SetContent(crawl)
}

// header renders the fixed part above the scrolling crawl
func (d Detail) header() string {
	if d.film == nil {
		return styles.DimStyle.Render(DetailPlaceholder)
	}
	f := d.film
	width := d.contentWidth()

	lines := []string{styles.TitleStyle.Render(styles.Truncate(f.Title, width))}
	if label := f.EpisodeLabel(); label != "" {
		lines = append(lines, styles.SubtitleStyle.Render(label))
	}
	lines = append(lines, "")

	if ref, ok := d.images.Lookup(f.Title); ok {
		lines = append(lines, styles.LabelStyle.Render("Poster:")+styles.LinkStyle.Render(styles.Truncate(ref, width-labelWidth)))
	}
	lines = append(lines,
		field("Director", f.Director, width),
		field("Release Date", f.FormattedReleaseDate(), width),
	)
	if f.Producer != "" {
		lines = append(lines, field("Producer", f.Producer, width))
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

// labelWidth matches the width of styles.LabelStyle
const labelWidth = 14

func field(label, value string, width int) string {
	return styles.LabelStyle.Render(label+":") + styles.Truncate(value, width-labelWidth)
}

// View renders the component
func (d Detail) View() string {
	body := d.header()
	if d.film != nil {
		body += "\n" + d.viewport.View()
	}

	return styles.InactiveBorder.
		Width(max(d.width-BorderWidth, 10)).
		Height(max(d.height-BorderHeight, 1)).
		Padding(0, 1).
		Render(body)
}
