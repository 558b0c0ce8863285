package store

//Repository implementation (Postgres)

import (
	"context"
	"errors"

	"bookstore/internal/book"
	"bookstore/internal/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = `id, title, author, price, category, isbn, publish_date,
	publisher, language, pages, format, description, cover_image,
	rating, reviews, in_stock`

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) List(ctx context.Context) ([]entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookPG) Get(ctx context.Context, id int64) (entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	b, err := scanBook(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, book.ErrNotFound
	}
	return b, err
}

func (r *BookPG) Create(ctx context.Context, b entity.Book) (entity.Book, error) {
	query := `
	INSERT INTO books (
		title, author, price, category, isbn, publish_date,
		publisher, language, pages, format, description,
		cover_image, rating, reviews, in_stock
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING ` + bookColumns

	return scanBook(r.db.QueryRow(ctx, query,
		b.Title, b.Author, b.Price, b.Category, b.ISBN, b.PublishDate,
		b.Publisher, b.Language, b.Pages, b.Format, b.Description,
		b.CoverImage, b.Rating, b.Reviews, b.InStock,
	))
}

func (r *BookPG) Update(ctx context.Context, id int64, b entity.Book) (entity.Book, error) {
	query := `
	UPDATE books
	SET
		title = $1, author = $2, price = $3, category = $4, isbn = $5,
		publish_date = $6, publisher = $7, language = $8, pages = $9, format = $10,
		description = $11, cover_image = $12, rating = $13, reviews = $14, in_stock = $15
	WHERE id = $16
	RETURNING ` + bookColumns

	updated, err := scanBook(r.db.QueryRow(ctx, query,
		b.Title, b.Author, b.Price, b.Category, b.ISBN, b.PublishDate,
		b.Publisher, b.Language, b.Pages, b.Format, b.Description,
		b.CoverImage, b.Rating, b.Reviews, b.InStock, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, book.ErrNotFound
	}
	return updated, err
}

func (r *BookPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return book.ErrNotFound
	}
	return nil
}

func scanBook(row pgx.Row) (entity.Book, error) {
	var b entity.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Price, &b.Category, &b.ISBN,
		&b.PublishDate, &b.Publisher, &b.Language, &b.Pages, &b.Format,
		&b.Description, &b.CoverImage, &b.Rating, &b.Reviews, &b.InStock,
	)
	return b, err
}
