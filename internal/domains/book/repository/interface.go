package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book/model"
)

// RepositoryInterface - book data access cần cho author pages
type RepositoryInterface interface {
	// ListByAuthor returns the books referencing authorID, projecting id, title and summary.
	// An author with no books yields an empty slice, not an error.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)
}
