package domain

import "context"

// FilmRepository: Network operations (implemented by source clients).
// ListFilms returns the films in the order the source delivered them.
type FilmRepository interface {
	ListFilms(ctx context.Context) ([]Film, error)
}
