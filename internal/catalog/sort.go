package catalog

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
)

// SortKey selects the ordering of the visible list. Ordering is always ascending.
type SortKey int

const (
	SortBySequence SortKey = iota
	SortByReleaseDate
)

// SortOptions returns every sort key in display order
func SortOptions() []SortKey {
	return []SortKey{SortBySequence, SortByReleaseDate}
}

// String returns the display name for the sort key
func (k SortKey) String() string {
	switch k {
	case SortBySequence:
		return "Episode"
	case SortByReleaseDate:
		return "Release Date"
	default:
		return "Unknown"
	}
}

// ConfigName returns the name used for the key in configuration files
func (k SortKey) ConfigName() string {
	switch k {
	case SortByReleaseDate:
		return "release_date"
	default:
		return "sequence"
	}
}

// Next returns the following sort key, wrapping around
func (k SortKey) Next() SortKey {
	opts := SortOptions()
	for i, opt := range opts {
		if opt == k {
			return opts[(i+1)%len(opts)]
		}
	}
	return SortBySequence
}

// ParseSortKey converts a configuration value into a SortKey.
// An empty value yields the default.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequence", "episode", "episode_id":
		return SortBySequence, nil
	case "release_date", "release", "date":
		return SortByReleaseDate, nil
	default:
		return SortBySequence, fmt.Errorf("%w: %q", domain.ErrInvalidSortKey, s)
	}
}

// compare orders two films under the key
func (k SortKey) compare(a, b *domain.Film) int {
	if k == SortByReleaseDate {
		return a.ReleaseDate.Compare(b.ReleaseDate)
	}
	return cmp.Compare(a.EpisodeID, b.EpisodeID)
}
