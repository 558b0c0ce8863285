package bookclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/book"
	"bookstore/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetBooks(t *testing.T) {
	t.Run("wrapped response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/books", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"books":[{"id":1,"title":"Dune"},{"id":2,"title":"It"}]}`))
		}))
		defer srv.Close()

		books, err := New(srv.URL).GetBooks(context.Background())
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "Dune", books[0].Title)
	})

	t.Run("bare array response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id":1,"title":"Dune"}]`))
		}))
		defer srv.Close()

		books, err := New(srv.URL).GetBooks(context.Background())
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, int64(1), books[0].ID)
	})

	t.Run("server error surfaces the body message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Failed to fetch books"}`))
		}))
		defer srv.Close()

		_, err := New(srv.URL).GetBooks(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Failed to fetch books")
	})
}

func TestClient_GetBook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/books/42", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":42,"title":"Dune","price":5000}`))
		}))
		defer srv.Close()

		b, err := New(srv.URL).GetBook(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "Dune", b.Title)
		assert.Equal(t, 5000.0, b.Price)
	})

	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Book not found"}`))
		}))
		defer srv.Close()

		_, err := New(srv.URL).GetBook(context.Background(), 99)
		assert.ErrorIs(t, err, book.ErrNotFound)
	})
}

func TestClient_CreateBook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var b entity.Book
		require.NoError(t, json.NewDecoder(r.Body).Decode(&b))
		b.ID = 7

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(b)
	}))
	defer srv.Close()

	created, err := New(srv.URL).CreateBook(context.Background(), entity.Book{Title: "Misery", Price: 9500})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "Misery", created.Title)
}

func TestClient_DeleteBook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/books/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"Book deleted successfully"}`))
	}))
	defer srv.Close()

	assert.NoError(t, New(srv.URL).DeleteBook(context.Background(), 7))
}
