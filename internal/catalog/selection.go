package catalog

import (
	"slices"
	"sync"

	"github.com/mmcdole/reel/internal/domain"
)

// Selection holds at most one selected film. It is only changed by explicit
// calls; filter and sort changes never touch it.
type Selection struct {
	mu        sync.RWMutex
	film      *domain.Film
	observers observers
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{}
}

// Subscribe registers an observer for selection changes
func (s *Selection) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Select stores f as the selection, replacing any previous one.
// f must be a film obtained from the Store.
func (s *Selection) Select(f *domain.Film) {
	s.set(f)
}

// Clear resets the selection to empty
func (s *Selection) Clear() {
	s.set(nil)
}

// Selected returns the selected film, if any
func (s *Selection) Selected() (*domain.Film, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.film, s.film != nil
}

func (s *Selection) set(f *domain.Film) {
	s.mu.Lock()
	if s.film == f {
		s.mu.Unlock()
		return
	}
	s.film = f
	obs := slices.Clone(s.observers)
	s.mu.Unlock()

	obs.notify(Change{Kind: ChangeSelection})
}
