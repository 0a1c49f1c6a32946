// Package repository persists scout ratings.
package repository

import (
	"context"

	"github.com/okian/scout/internal/domain/model"
)

// Store is the append-only ratings log.
type Store interface {
	// Initialize ensures the ratings table exists. Safe to call repeatedly.
	Initialize(ctx context.Context) error

	// AddRating appends a rating and returns it with its assigned id.
	// No validation is performed here.
	AddRating(ctx context.Context, r model.Rating) (model.Rating, error)

	// ListRatings returns every rating ordered by id ascending.
	ListRatings(ctx context.Context) ([]model.Rating, error)

	// ListRatingsByPlayer returns the ratings of one player ordered by id ascending.
	ListRatingsByPlayer(ctx context.Context, name string) ([]model.Rating, error)

	// Count returns the number of stored ratings.
	Count(ctx context.Context) (int, error)
}
