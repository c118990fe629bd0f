package service

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
	bookModel "library-catalog/internal/domains/book/model"
)

// AuthorDetail là data của trang author detail
type AuthorDetail struct {
	Author *model.Author
	Books  []bookModel.Book
}

// ServiceInterface defines business logic operations for Author domain
type ServiceInterface interface {
	// List returns all authors sorted ascending by family name
	List(ctx context.Context) ([]model.Author, error)

	// Detail fetches the author and its books concurrently.
	// Errors: first store error, or model.ErrAuthorNotFound when the author is absent
	Detail(ctx context.Context, id uuid.UUID) (*AuthorDetail, error)

	// Create returns the existing author matching candidate's duplicate filter, or inserts
	// candidate. created reports whether an insert happened.
	Create(ctx context.Context, candidate model.Author) (author *model.Author, created bool, err error)
}
