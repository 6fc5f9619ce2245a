package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	if m.SortModal.IsVisible() {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
			m.SortModal.View(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top, m.List.View(), m.Detail.View())
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderFilter(),
		panels,
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	left := styles.HeaderStyle.Render("reel")
	right := styles.DimStyle.Render(fmt.Sprintf("sort: %s", m.Store.SortKey()))

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderFilter() string {
	if m.State != StateFiltering && m.Filter.Value() == "" {
		return styles.DimStyle.Render("press / to filter")
	}
	return m.Filter.View()
}

func (m Model) renderFooter() string {
	return m.Help.View(m.Keys)
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.renderFooter())
}
