package book

import (
	"context"

	"bookstore/internal/entity"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the full catalog.
func (s *Service) List(ctx context.Context) ([]entity.Book, error) {
	return s.repo.List(ctx)
}

// Get returns a book by its id.
func (s *Service) Get(ctx context.Context, id int64) (entity.Book, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts a new book.
func (s *Service) Create(ctx context.Context, b entity.Book) (entity.Book, error) {
	return s.repo.Create(ctx, b)
}

// Update rewrites an existing book.
func (s *Service) Update(ctx context.Context, id int64, b entity.Book) (entity.Book, error) {
	return s.repo.Update(ctx, id, b)
}

// Delete removes a book.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
