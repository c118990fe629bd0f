package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/repository"
	bookModel "library-catalog/internal/domains/book/model"
	bookRepository "library-catalog/internal/domains/book/repository"
)

// authorService implements ServiceInterface
type authorService struct {
	authors repository.RepositoryInterface
	books   bookRepository.RepositoryInterface
}

// NewAuthorService creates a new author service instance
// Both stores are injected so tests can pass mocks
func NewAuthorService(authors repository.RepositoryInterface, books bookRepository.RepositoryInterface) ServiceInterface {
	return &authorService{
		authors: authors,
		books:   books,
	}
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.authors.ListSortedByFamilyName(ctx)
}

// Detail fans out the two reads and joins on both. errgroup.Group without a derived
// context: a failing read does not cancel the other one, Wait returns the first error.
func (s *authorService) Detail(ctx context.Context, id uuid.UUID) (*AuthorDetail, error) {
	var (
		g      errgroup.Group
		author *model.Author
		books  []bookModel.Book
	)

	g.Go(func() error {
		var err error
		author, err = s.authors.GetByID(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.ListByAuthor(ctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if author == nil {
		return nil, model.ErrAuthorNotFound
	}
	if books == nil {
		books = []bookModel.Book{}
	}

	return &AuthorDetail{Author: author, Books: books}, nil
}

// Create: duplicate check rồi insert. Hai bước không nằm trong transaction.
func (s *authorService) Create(ctx context.Context, candidate model.Author) (*model.Author, bool, error) {
	existing, err := s.authors.FindOne(ctx, candidate.DuplicateFilter())
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		log.Info().Str("author_id", existing.ID.String()).Msg("author already exists")
		return existing, false, nil
	}

	created, err := s.authors.Create(ctx, &candidate)
	if err != nil {
		return nil, false, err
	}

	log.Info().Str("author_id", created.ID.String()).Msg("author created")
	return created, true, nil
}
