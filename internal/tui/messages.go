package tui

import "github.com/mmcdole/reel/internal/catalog"

// Message types for the TUI

// CatalogLoadedMsg signals that the one catalog load has finished.
// Err is informational only; a failed load leaves an empty catalog.
type CatalogLoadedMsg struct {
	Err error
}

// CatalogChangedMsg carries a store or selection change from the observer channel
type CatalogChangedMsg struct {
	Change catalog.Change
}
