package domain

import (
	"fmt"
	"time"
)

// ReleaseDateLayout is the calendar date format used for release dates
const ReleaseDateLayout = "2006-01-02"

// Film is a single catalog entry. Films are immutable once fetched.
type Film struct {
	Title        string    // Display title, also the filter and image lookup key
	EpisodeID    int       // Sequence number, unique within a session
	ReleaseDate  time.Time // Calendar date (UTC midnight)
	Director     string    // Director name(s)
	Producer     string    // Producer name(s), informational only
	OpeningCrawl string    // Summary text
}

// FormattedReleaseDate returns the release date as YYYY-MM-DD
func (f Film) FormattedReleaseDate() string {
	if f.ReleaseDate.IsZero() {
		return ""
	}
	return f.ReleaseDate.Format(ReleaseDateLayout)
}

// ReleaseYear returns the year of release (0 if unknown)
func (f Film) ReleaseYear() int {
	if f.ReleaseDate.IsZero() {
		return 0
	}
	return f.ReleaseDate.Year()
}

// EpisodeLabel returns the roman-numeral episode label (e.g., "Episode IV")
func (f Film) EpisodeLabel() string {
	if f.EpisodeID <= 0 {
		return ""
	}
	return "Episode " + roman(f.EpisodeID)
}

// GetDescription returns secondary info for list rows
func (f *Film) GetDescription() string {
	if year := f.ReleaseYear(); year > 0 {
		return fmt.Sprintf("%d", year)
	}
	return ""
}

func roman(n int) string {
	if n >= 4000 {
		return fmt.Sprintf("%d", n)
	}
	numerals := []struct {
		value  int
		symbol string
	}{
		{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
		{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}
	var out []byte
	for _, r := range numerals {
		for n >= r.value {
			out = append(out, r.symbol...)
			n -= r.value
		}
	}
	return string(out)
}
