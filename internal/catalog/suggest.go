package catalog

import (
	"slices"
	"strings"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// titleIndex implements sahilm/fuzzy.Source over case-folded film titles
type titleIndex []string

func (idx titleIndex) String(i int) string { return idx[i] }
func (idx titleIndex) Len() int            { return len(idx) }

// foldTitles case-folds every title the same way the filter does
func foldTitles(fold cases.Caser, films []*domain.Film) titleIndex {
	idx := make(titleIndex, len(films))
	for i, f := range films {
		idx[i] = fold.String(f.Title)
	}
	return idx
}

// Suggest returns up to limit titles that loosely match query, best first.
// It is a hint for empty results and never affects the visible list.
//
// Subsequence matches come first. When there are none, titles with a word
// within a small edit distance of the query are offered instead, which
// catches typos like "hopw".
func Suggest(query string, films []*domain.Film, limit int) []string {
	fold := cases.Fold()
	query = fold.String(strings.TrimSpace(query))
	if query == "" || len(films) == 0 || limit <= 0 {
		return nil
	}

	folded := foldTitles(fold, films)
	var titles []string
	if matches := fuzzy.FindFrom(query, folded); len(matches) > 0 {
		for _, m := range matches {
			titles = append(titles, films[m.Index].Title)
		}
	} else {
		titles = typoMatches(query, films, folded)
	}

	if len(titles) > limit {
		titles = titles[:limit]
	}
	return titles
}

type typoMatch struct {
	title    string
	distance int
}

// typoMatches ranks titles by the closest edit distance between the query
// and any title word, keeping only distances a typo could explain.
func typoMatches(query string, films []*domain.Film, folded titleIndex) []string {
	maxDistance := max(len([]rune(query))/3, 1)

	var found []typoMatch
	for i, f := range films {
		best := -1
		for _, word := range strings.Fields(folded[i]) {
			d := fuzzysearch.LevenshteinDistance(query, word)
			if best < 0 || d < best {
				best = d
			}
		}
		if best >= 0 && best <= maxDistance {
			found = append(found, typoMatch{title: f.Title, distance: best})
		}
	}

	slices.SortStableFunc(found, func(a, b typoMatch) int {
		return a.distance - b.distance
	})

	titles := make([]string, len(found))
	for i, m := range found {
		titles[i] = m.title
	}
	return titles
}
