package book

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/internal/entity"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) (*HTTPHandler, *MockRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := NewMockRepository(ctrl)
	return NewHTTPHandler(NewService(mockRepo)), mockRepo
}

func TestHTTPHandler_List(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return([]entity.Book{
			{ID: 1, Title: "Misery", Author: "Stephen King", Price: 9500},
		}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"books":[`)
		assert.Contains(t, w.Body.String(), `"Misery"`)
	})

	t.Run("empty catalog still returns a books array", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"books":[]`)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"error"`)
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), int64(42)).Return(entity.Book{ID: 42, Title: "Dune"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/42", nil)
		r.SetPathValue("id", "42")

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Dune"`)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), int64(99)).Return(entity.Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/99", nil)
		r.SetPathValue("id", "99")

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Book not found")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/abc", nil)
		r.SetPathValue("id", "abc")

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, b entity.Book) (entity.Book, error) {
				b.ID = 7
				return b, nil
			})

		body := `{"title":"Misery","author":"Stephen King","price":9500,"category":"Horror","rating":4.3,"reviews":1200,"in_stock":true}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(body))

		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":7`)
	})

	t.Run("missing title", func(t *testing.T) {
		body := `{"author":"Stephen King","price":9500}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(body))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Title is required")
	})

	t.Run("negative price", func(t *testing.T) {
		body := `{"title":"Misery","author":"Stephen King","price":-5}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(body))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader("{not json"))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	body := `{"title":"Misery","author":"Stephen King","price":9900}`

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).
			Return(entity.Book{ID: 7, Title: "Misery", Price: 9900}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/books/7", strings.NewReader(body))
		r.SetPathValue("id", "7")

		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"price":9900`)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Update(gomock.Any(), int64(99), gomock.Any()).
			Return(entity.Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/books/99", strings.NewReader(body))
		r.SetPathValue("id", "99")

		handler.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/books/7", nil)
		r.SetPathValue("id", "7")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Book deleted successfully")
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), int64(99)).Return(ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/books/99", nil)
		r.SetPathValue("id", "99")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
