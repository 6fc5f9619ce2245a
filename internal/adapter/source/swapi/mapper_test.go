package swapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFilms_PreservesOrder(t *testing.T) {
	films := MapFilms([]Film{
		{Title: "Return of the Jedi", EpisodeID: 6, ReleaseDate: "1983-05-25"},
		{Title: "The Phantom Menace", EpisodeID: 1, ReleaseDate: "1999-05-19"},
	}, nil)
	require.Len(t, films, 2)
	assert.Equal(t, 6, films[0].EpisodeID)
	assert.Equal(t, 1, films[1].EpisodeID)
}

func TestMapFilms_ReleaseDate(t *testing.T) {
	films := MapFilms([]Film{{Title: "A New Hope", ReleaseDate: " 1977-05-25 "}}, nil)
	assert.Equal(t, time.Date(1977, time.May, 25, 0, 0, 0, 0, time.UTC), films[0].ReleaseDate)
}

func TestMapFilms_InvalidReleaseDate(t *testing.T) {
	films := MapFilms([]Film{
		{Title: "A New Hope", EpisodeID: 4, ReleaseDate: "1977-05-25"},
		{Title: "Rogue One", ReleaseDate: ""},
		{Title: "Solo", ReleaseDate: "May 2018"},
	}, nil)

	require.Len(t, films, 3)
	assert.False(t, films[0].ReleaseDate.IsZero())
	assert.True(t, films[1].ReleaseDate.IsZero())
	assert.True(t, films[2].ReleaseDate.IsZero())
	assert.Equal(t, "Solo", films[2].Title)
}

func TestMapFilms_Empty(t *testing.T) {
	films := MapFilms(nil, nil)
	assert.NotNil(t, films)
	assert.Empty(t, films)
}
