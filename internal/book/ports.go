package book

import (
	"context"

	"bookstore/internal/entity"
)

// Repository defines the contract for book data storage.
type Repository interface {
	// List returns the whole catalog ordered by id.
	List(ctx context.Context) ([]entity.Book, error)
	// Get returns a single book by id.
	Get(ctx context.Context, id int64) (entity.Book, error)
	// Create inserts a new book and returns it with its assigned id.
	Create(ctx context.Context, b entity.Book) (entity.Book, error)
	// Update rewrites every editable field of an existing book.
	Update(ctx context.Context, id int64, b entity.Book) (entity.Book, error)
	// Delete removes a book by id.
	Delete(ctx context.Context, id int64) error
}
