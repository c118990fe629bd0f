package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
)

// RepositoryInterface defines Author data access operations
// Implementations: postgres, dynamodb, and the cache decorator
type RepositoryInterface interface {
	// ListSortedByFamilyName returns every author ordered by family name ascending
	ListSortedByFamilyName(ctx context.Context) ([]model.Author, error)

	// GetByID returns (nil, nil) when no author has the given id
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// FindOne returns the first author matching filter, or (nil, nil) when none does
	FindOne(ctx context.Context, filter model.DuplicateFilter) (*model.Author, error)

	// Create inserts a and returns it with the store-assigned ID
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
}
