// Package mocks holds testify mocks for the author domain interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/repository"
	"library-catalog/internal/domains/author/service"
	bookModel "library-catalog/internal/domains/book/model"
	bookRepository "library-catalog/internal/domains/book/repository"
)

var (
	_ repository.RepositoryInterface     = (*AuthorRepository)(nil)
	_ bookRepository.RepositoryInterface = (*BookRepository)(nil)
	_ service.ServiceInterface           = (*AuthorService)(nil)
)

type AuthorRepository struct {
	mock.Mock
}

func (m *AuthorRepository) ListSortedByFamilyName(ctx context.Context) ([]model.Author, error) {
	args := m.Called(ctx)
	authors, _ := args.Get(0).([]model.Author)
	return authors, args.Error(1)
}

func (m *AuthorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	args := m.Called(ctx, id)
	author, _ := args.Get(0).(*model.Author)
	return author, args.Error(1)
}

func (m *AuthorRepository) FindOne(ctx context.Context, filter model.DuplicateFilter) (*model.Author, error) {
	args := m.Called(ctx, filter)
	author, _ := args.Get(0).(*model.Author)
	return author, args.Error(1)
}

func (m *AuthorRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	args := m.Called(ctx, a)
	author, _ := args.Get(0).(*model.Author)
	return author, args.Error(1)
}

type BookRepository struct {
	mock.Mock
}

func (m *BookRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]bookModel.Book, error) {
	args := m.Called(ctx, authorID)
	books, _ := args.Get(0).([]bookModel.Book)
	return books, args.Error(1)
}

type AuthorService struct {
	mock.Mock
}

func (m *AuthorService) List(ctx context.Context) ([]model.Author, error) {
	args := m.Called(ctx)
	authors, _ := args.Get(0).([]model.Author)
	return authors, args.Error(1)
}

func (m *AuthorService) Detail(ctx context.Context, id uuid.UUID) (*service.AuthorDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*service.AuthorDetail)
	return detail, args.Error(1)
}

func (m *AuthorService) Create(ctx context.Context, candidate model.Author) (*model.Author, bool, error) {
	args := m.Called(ctx, candidate)
	author, _ := args.Get(0).(*model.Author)
	return author, args.Bool(1), args.Error(2)
}
