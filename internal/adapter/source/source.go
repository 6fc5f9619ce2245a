package source

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/adapter/source/swapi"
	"github.com/mmcdole/reel/internal/domain"
)

// NewClient creates the film repository for the configured source type.
func NewClient(cfg *adapter.SourceConfig, logger *slog.Logger) (domain.FilmRepository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	if cfg.URL == "" {
		return nil, fmt.Errorf("source URL is required")
	}

	switch cfg.Type {
	case adapter.SourceTypeSWAPI, "":
		return swapi.NewClient(cfg.URL, cfg.Timeout, logger), nil

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSource, cfg.Type)
	}
}
