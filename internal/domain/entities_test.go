package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilmFormattedReleaseDate(t *testing.T) {
	f := Film{ReleaseDate: time.Date(1977, time.May, 25, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "1977-05-25", f.FormattedReleaseDate())
	assert.Equal(t, 1977, f.ReleaseYear())
	assert.Equal(t, "1977", f.GetDescription())

	var zero Film
	assert.Empty(t, zero.FormattedReleaseDate())
	assert.Zero(t, zero.ReleaseYear())
	assert.Empty(t, zero.GetDescription())
}

func TestFilmEpisodeLabel(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{0, ""},
		{1, "Episode I"},
		{4, "Episode IV"},
		{6, "Episode VI"},
		{9, "Episode IX"},
		{14, "Episode XIV"},
	}
	for _, tt := range tests {
		f := Film{EpisodeID: tt.id}
		assert.Equal(t, tt.want, f.EpisodeLabel(), "episode %d", tt.id)
	}
}

func TestImageTable(t *testing.T) {
	table := NewImageTable(map[string]string{
		"A New Hope": "hope.jpg",
		"":           "orphan.jpg",
		"Blank":      "",
	})

	assert.Equal(t, 1, table.Len())

	ref, ok := table.Lookup("A New Hope")
	assert.True(t, ok)
	assert.Equal(t, "hope.jpg", ref)

	// Exact match only
	_, ok = table.Lookup("a new hope")
	assert.False(t, ok)

	var zero ImageTable
	_, ok = zero.Lookup("A New Hope")
	assert.False(t, ok)
	assert.Zero(t, zero.Len())
}
