package catalog

import (
	"testing"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	films := loadedStore(t, saga()).Films()

	got := Suggest("empr", films, 3)
	if assert.NotEmpty(t, got) {
		assert.Equal(t, "The Empire Strikes Back", got[0])
	}

	assert.LessOrEqual(t, len(Suggest("e", films, 2)), 2)
}

func TestSuggest_EmptyInputs(t *testing.T) {
	films := loadedStore(t, saga()).Films()

	assert.Nil(t, Suggest("", films, 3))
	assert.Nil(t, Suggest("   ", films, 3))
	assert.Nil(t, Suggest("hope", nil, 3))
	assert.Nil(t, Suggest("hope", films, 0))
	assert.Empty(t, Suggest("qqqq", films, 3))
}

func TestSuggest_CaseInsensitive(t *testing.T) {
	films := loadedStore(t, trilogy()).Films()

	got := Suggest("NWHP", films, 1)
	assert.Equal(t, []string{"A New Hope"}, got)
}

func TestSuggest_Typo(t *testing.T) {
	films := loadedStore(t, trilogy()).Films()

	assert.Equal(t, []string{"A New Hope"}, Suggest("hopw", films, 3))
	assert.Equal(t, []string{"The Empire Strikes Back"}, Suggest("EMPIRR", films, 3))
}

func TestSuggest_CaseFolding(t *testing.T) {
	films := []*domain.Film{
		{EpisodeID: 1, Title: "Straße der Sterne"},
		{EpisodeID: 2, Title: "A New Hope"},
	}

	assert.Equal(t, []string{"Straße der Sterne"}, Suggest("STRASSE", films, 3))
	assert.Equal(t, []string{"Straße der Sterne"}, Suggest("ss", films, 3))
}
