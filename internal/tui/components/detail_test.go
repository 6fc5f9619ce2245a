package components

import (
	"testing"
	"time"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/stretchr/testify/assert"
)

func hope() *domain.Film {
	return &domain.Film{
		Title:        "A New Hope",
		EpisodeID:    4,
		ReleaseDate:  time.Date(1977, time.May, 25, 0, 0, 0, 0, time.UTC),
		Director:     "George Lucas",
		OpeningCrawl: "It is a period of civil war.",
	}
}

func TestDetail_Placeholder(t *testing.T) {
	d := NewDetail(domain.ImageTable{})
	d.SetSize(60, 20)

	view := d.View()
	assert.Contains(t, view, DetailPlaceholder)
	assert.Nil(t, d.Film())
}

func TestDetail_RendersFilm(t *testing.T) {
	images := domain.NewImageTable(map[string]string{"A New Hope": "hope.jpg"})
	d := NewDetail(images)
	d.SetSize(60, 20)
	d.SetFilm(hope())

	view := d.View()
	assert.Contains(t, view, "A New Hope")
	assert.Contains(t, view, "Episode IV")
	assert.Contains(t, view, "Poster:")
	assert.Contains(t, view, "hope.jpg")
	assert.Contains(t, view, "Director:")
	assert.Contains(t, view, "George Lucas")
	assert.Contains(t, view, "Release Date:")
	assert.Contains(t, view, "1977-05-25")
	assert.Contains(t, view, "It is a period of civil war.")
	assert.NotContains(t, view, DetailPlaceholder)
}

func TestDetail_ImageMissIsNotAnError(t *testing.T) {
	d := NewDetail(domain.NewImageTable(map[string]string{"The Empire Strikes Back": "empire.jpg"}))
	d.SetSize(60, 20)
	d.SetFilm(hope())

	view := d.View()
	assert.NotContains(t, view, "Poster:")
	assert.Contains(t, view, "George Lucas")
}

func TestDetail_ClearShowsPlaceholder(t *testing.T) {
	d := NewDetail(domain.ImageTable{})
	d.SetSize(60, 20)
	d.SetFilm(hope())
	d.SetFilm(nil)

	assert.Contains(t, d.View(), DetailPlaceholder)
}
