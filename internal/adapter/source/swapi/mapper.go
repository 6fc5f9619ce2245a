package swapi

import (
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/reel/internal/domain"
)

// MapFilms converts SWAPI films to domain films, preserving order.
// A release date that does not parse is logged and mapped to the zero time,
// so the film is kept and sorts first by release date.
func MapFilms(films []Film, logger *slog.Logger) []domain.Film {
	if logger == nil {
		logger = slog.Default()
	}

	out := make([]domain.Film, 0, len(films))
	for _, f := range films {
		released, err := parseReleaseDate(f.ReleaseDate)
		if err != nil {
			logger.Warn("invalid release_date, keeping film without a date",
				"title", f.Title, "release_date", f.ReleaseDate, "error", err)
		}
		out = append(out, domain.Film{
			Title:        f.Title,
			EpisodeID:    f.EpisodeID,
			ReleaseDate:  released,
			Director:     f.Director,
			Producer:     f.Producer,
			OpeningCrawl: normalizeCrawl(f.OpeningCrawl),
		})
	}
	return out
}

// parseReleaseDate parses a YYYY-MM-DD date as UTC midnight
func parseReleaseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.ReleaseDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// normalizeCrawl converts the CRLF line breaks SWAPI uses to LF
func normalizeCrawl(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
