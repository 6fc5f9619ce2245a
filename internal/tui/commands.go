package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/catalog"
)

// Command factories for async operations

// LoadCatalogCmd performs the single catalog load. The source client
// owns any timeout; there is no cancellation path.
func LoadCatalogCmd(store *catalog.Store) tea.Cmd {
	return func() tea.Msg {
		err := store.Load(context.Background())
		return CatalogLoadedMsg{Err: err}
	}
}

// WaitForChangeCmd blocks until the observer reports a change
func WaitForChangeCmd(changes <-chan catalog.Change) tea.Cmd {
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return nil
		}
		return CatalogChangedMsg{Change: change}
	}
}
