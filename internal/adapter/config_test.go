package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, SourceTypeSWAPI, cfg.Source.Type)
	assert.Equal(t, "https://swapi.dev/api/films/?format=json", cfg.Source.URL)
	assert.Zero(t, cfg.Source.Timeout)
	assert.Equal(t, "sequence", cfg.Catalog.DefaultSort)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())

	table := cfg.ImageTable()
	assert.Equal(t, 2, table.Len())
	_, ok := table.Lookup("A New Hope")
	assert.True(t, ok)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
source:
  url: http://localhost:8080/films
  timeout: 5s
catalog:
  default_sort: release_date
images:
  - title: Return of the Jedi
    ref: jedi.jpg
logging:
  file: ""
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, SourceTypeSWAPI, cfg.Source.Type)
	assert.Equal(t, "http://localhost:8080/films", cfg.Source.URL)
	assert.Equal(t, 5*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "release_date", cfg.Catalog.DefaultSort)
	assert.Equal(t, "", cfg.Logging.File)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Configured images replace the defaults, titles keep their case
	require.Len(t, cfg.Images, 1)
	table := cfg.ImageTable()
	ref, ok := table.Lookup("Return of the Jedi")
	assert.True(t, ok)
	assert.Equal(t, "jedi.jpg", ref)
	_, ok = table.Lookup("A New Hope")
	assert.False(t, ok)
}

func TestLoadConfig_EmptyImageList(t *testing.T) {
	path := writeConfig(t, "images: []\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.ImageTable().Len())
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "catalog:\n  default_sort: release_date\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Source, cfg.Source)
	assert.Len(t, cfg.Images, 2)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("REEL_SOURCE_URL", "http://example.test/api/films/")
	t.Setenv("REEL_SOURCE_TIMEOUT", "250ms")
	t.Setenv("REEL_LOGGING_LEVEL", "WARN")
	path := writeConfig(t, "source:\n  url: http://from-file/\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/api/films/", cfg.Source.URL)
	assert.Equal(t, 250*time.Millisecond, cfg.Source.Timeout)
	assert.Equal(t, "WARN", cfg.Logging.Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "explicit path must exist")

	_, err = LoadConfig(writeConfig(t, "source: [nope"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "source:\n  type: plex\n"))
	assert.ErrorIs(t, err, domain.ErrUnknownSource)

	_, err = LoadConfig(writeConfig(t, "source:\n  url: \"\"\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "source:\n  timeout: -1s\n"))
	assert.Error(t, err)
}

func TestImageTable_LaterEntryWins(t *testing.T) {
	cfg := &Config{Images: []ImageConfig{
		{Title: "A New Hope", Ref: "first.jpg"},
		{Title: "A New Hope", Ref: "second.jpg"},
	}}

	ref, ok := cfg.ImageTable().Lookup("A New Hope")
	assert.True(t, ok)
	assert.Equal(t, "second.jpg", ref)
}
