package api

import (
	"context"

	"github.com/jokeget/jokeboard/internal/model"
)

// Gateway defines the interface for the joke provider client.
type Gateway interface {
	// FetchJoke requests a joke filtered by category (CategoryAny is unfiltered)
	FetchJoke(ctx context.Context, category model.Category) (*model.Joke, error)

	// SubmitRating posts a normalized +1/-1 rating for a joke id
	SubmitRating(ctx context.Context, jokeID string, rating int) error
}
