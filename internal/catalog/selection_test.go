package catalog

import (
	"testing"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_StartsEmpty(t *testing.T) {
	sel := NewSelection()
	f, ok := sel.Selected()
	assert.False(t, ok)
	assert.Nil(t, f)
}

func TestSelection_SelectAndOverwrite(t *testing.T) {
	s := loadedStore(t, trilogy())
	films := s.Films()
	sel := NewSelection()

	sel.Select(films[0])
	got, ok := sel.Selected()
	require.True(t, ok)
	assert.Same(t, films[0], got)
	assert.Equal(t, "A New Hope", got.Title)

	sel.Select(films[1])
	got, ok = sel.Selected()
	require.True(t, ok)
	assert.Same(t, films[1], got)
	assert.Equal(t, "The Empire Strikes Back", got.Title)
	assert.Equal(t, "Irvin Kershner", got.Director, "overwrite, never merge")
}

func TestSelection_Clear(t *testing.T) {
	sel := NewSelection()
	sel.Select(&domain.Film{EpisodeID: 4, Title: "A New Hope"})
	sel.Clear()

	_, ok := sel.Selected()
	assert.False(t, ok)
}

func TestSelection_IgnoresSortChanges(t *testing.T) {
	s := loadedStore(t, saga())
	sel := NewSelection()

	jedi := s.Visible()[5]
	require.Equal(t, 6, jedi.EpisodeID)
	sel.Select(jedi)

	s.SetSortKey(SortByReleaseDate)
	s.SetFilter("menace")

	got, ok := sel.Selected()
	require.True(t, ok)
	assert.Same(t, jedi, got)
}

func TestSelection_Observers(t *testing.T) {
	sel := NewSelection()
	a := &domain.Film{EpisodeID: 4}
	b := &domain.Film{EpisodeID: 5}

	count := 0
	sel.Subscribe(ObserverFunc(func(c Change) {
		assert.Equal(t, ChangeSelection, c.Kind)
		count++
	}))

	sel.Select(a)
	sel.Select(a) // same film, no notification
	sel.Select(b)
	sel.Clear()
	sel.Clear()

	assert.Equal(t, 3, count)
}
