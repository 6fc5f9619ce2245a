package tui

import "github.com/mmcdole/reel/internal/catalog"

// changeBuffer bounds the observer channel; dropped events are harmless
// because every event triggers a full re-derivation.
const changeBuffer = 16

// ChannelObserver adapts catalog.Observer to a channel for Bubble Tea.
type ChannelObserver struct {
	ch chan catalog.Change
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver() *ChannelObserver {
	return &ChannelObserver{ch: make(chan catalog.Change, changeBuffer)}
}

// OnChange sends the change to the channel (non-blocking if full).
func (o *ChannelObserver) OnChange(change catalog.Change) {
	select {
	case o.ch <- change:
	default: // Non-blocking if channel full
	}
}

// Changes returns the receive side of the channel
func (o *ChannelObserver) Changes() <-chan catalog.Change {
	return o.ch
}
