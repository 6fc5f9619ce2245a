package source

import (
	"testing"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/adapter/source/swapi"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	repo, err := NewClient(&adapter.SourceConfig{
		Type: adapter.SourceTypeSWAPI,
		URL:  swapi.DefaultURL,
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &swapi.Client{}, repo)
}

func TestNewClient_Errors(t *testing.T) {
	_, err := NewClient(nil, nil)
	assert.Error(t, err)

	_, err = NewClient(&adapter.SourceConfig{Type: adapter.SourceTypeSWAPI}, nil)
	assert.Error(t, err)

	_, err = NewClient(&adapter.SourceConfig{Type: "plex", URL: "http://localhost"}, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownSource)
}
