package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/mmcdole/reel/internal/domain"
	"golang.org/x/text/cases"
)

// loadState tracks the single fetch of a Store's lifetime
type loadState int

const (
	loadPending loadState = iota
	loadRunning
	loadDone
)

// Store holds the fetched catalog, the filter criterion and the sort key.
// The visible list is derived from those three on every call to Visible.
//
// Store is safe for concurrent use: the load runs in a background command
// while the UI reads.
type Store struct {
	repo   domain.FilmRepository
	logger *slog.Logger

	mu        sync.RWMutex
	films     []*domain.Film
	filter    string
	sortKey   SortKey
	state     loadState
	observers observers
}

// Option configures a Store
type Option func(*Store)

// WithSortKey sets the initial sort key
func WithSortKey(key SortKey) Option {
	return func(s *Store) { s.sortKey = key }
}

// NewStore creates an empty store backed by repo
func NewStore(repo domain.FilmRepository, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		repo:    repo,
		logger:  logger,
		sortKey: SortBySequence,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers an observer for catalog, filter and sort changes
func (s *Store) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Load fetches the catalog. Only the first call reaches the repository;
// later calls return nil without side effects.
//
// On failure the catalog stays empty, the error is logged and returned
// wrapped in domain.ErrFetchFailed. An empty catalog is a valid state.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.state != loadPending {
		s.mu.Unlock()
		s.logger.Debug("catalog load already attempted, skipping")
		return nil
	}
	s.state = loadRunning
	s.mu.Unlock()

	films, err := s.repo.ListFilms(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = loadDone
		s.mu.Unlock()

		if !errors.Is(err, domain.ErrFetchFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
		}
		s.logger.Error("failed to load catalog", "error", err)
		return err
	}

	catalog := make([]*domain.Film, len(films))
	for i := range films {
		f := films[i]
		catalog[i] = &f
	}

	s.mu.Lock()
	s.films = catalog
	s.state = loadDone
	obs := slices.Clone(s.observers)
	s.mu.Unlock()

	s.logger.Info("catalog loaded", "count", len(catalog))
	obs.notify(Change{Kind: ChangeCatalog})
	return nil
}

// Loaded returns true once the load has finished, successfully or not
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == loadDone
}

// Loading returns true while the fetch is in flight
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == loadRunning
}

// SetFilter replaces the filter criterion. The text is stored verbatim;
// case folding happens at comparison time.
func (s *Store) SetFilter(text string) {
	s.mu.Lock()
	if s.filter == text {
		s.mu.Unlock()
		return
	}
	s.filter = text
	obs := slices.Clone(s.observers)
	s.mu.Unlock()

	obs.notify(Change{Kind: ChangeFilter})
}

// SetSortKey replaces the sort key
func (s *Store) SetSortKey(key SortKey) {
	s.mu.Lock()
	if s.sortKey == key {
		s.mu.Unlock()
		return
	}
	s.sortKey = key
	obs := slices.Clone(s.observers)
	s.mu.Unlock()

	s.logger.Debug("sort key changed", "sort", key.String())
	obs.notify(Change{Kind: ChangeSort})
}

// Filter returns the current filter criterion
func (s *Store) Filter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// SortKey returns the current sort key
func (s *Store) SortKey() SortKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortKey
}

// Films returns the full catalog in fetch order
func (s *Store) Films() []*domain.Film {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.films)
}

// Len returns the catalog size
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.films)
}

// Visible returns the catalog filtered by title and stably sorted ascending
// by the sort key. A fresh slice is returned on every call.
func (s *Store) Visible() []*domain.Film {
	s.mu.RLock()
	films, filter, key := s.films, s.filter, s.sortKey
	s.mu.RUnlock()

	visible := filterFilms(films, filter)
	slices.SortStableFunc(visible, key.compare)
	return visible
}

// filterFilms keeps films whose case-folded title contains the
// case-folded query. The input slice is never modified.
func filterFilms(films []*domain.Film, query string) []*domain.Film {
	out := make([]*domain.Film, 0, len(films))
	if query == "" {
		return append(out, films...)
	}

	fold := cases.Fold()
	needle := fold.String(query)
	for _, f := range films {
		if strings.Contains(fold.String(f.Title), needle) {
			out = append(out, f)
		}
	}
	return out
}
