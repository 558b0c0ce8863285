package bookclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bookstore/internal/book"
	"bookstore/internal/entity"
)

// Client talks to the book API. It is the storefront's only network
// dependency.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: baseURL,
	}
}

type listResponse struct {
	Books []entity.Book `json:"books"`
}

// GetBooks fetches the whole catalog. Both response shapes the API has
// historically produced are accepted: {"books": [...]} and a bare array.
func (c *Client) GetBooks(ctx context.Context) ([]entity.Book, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/books", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var wrapped listResponse
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Books != nil {
		return wrapped.Books, nil
	}
	var books []entity.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("decode book list: %w", err)
	}
	return books, nil
}

// GetBook fetches a single book by id.
func (c *Client) GetBook(ctx context.Context, id int64) (entity.Book, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/books/%d", id), nil, http.StatusOK)
	if err != nil {
		return entity.Book{}, err
	}
	var b entity.Book
	if err := json.Unmarshal(data, &b); err != nil {
		return entity.Book{}, fmt.Errorf("decode book: %w", err)
	}
	return b, nil
}

// CreateBook registers a new book and returns it with its assigned id.
func (c *Client) CreateBook(ctx context.Context, b entity.Book) (entity.Book, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/books", b, http.StatusCreated)
	if err != nil {
		return entity.Book{}, err
	}
	var created entity.Book
	if err := json.Unmarshal(data, &created); err != nil {
		return entity.Book{}, fmt.Errorf("decode book: %w", err)
	}
	return created, nil
}

// UpdateBook rewrites an existing book.
func (c *Client) UpdateBook(ctx context.Context, id int64, b entity.Book) (entity.Book, error) {
	data, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/books/%d", id), b, http.StatusOK)
	if err != nil {
		return entity.Book{}, err
	}
	var updated entity.Book
	if err := json.Unmarshal(data, &updated); err != nil {
		return entity.Book{}, fmt.Errorf("decode book: %w", err)
	}
	return updated, nil
}

// DeleteBook removes a book by id.
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/books/%d", id), nil, http.StatusOK)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, book.ErrNotFound
	}
	if resp.StatusCode != wantStatus {
		return nil, apiError(resp.StatusCode, data)
	}
	return data, nil
}

func apiError(status int, body []byte) error {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return fmt.Errorf("api error (status %d): %s", status, e.Error)
	}
	return fmt.Errorf("api error: unexpected status %d", status)
}
