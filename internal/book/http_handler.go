package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookstore/internal/entity"
	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// ListResponse wraps the catalog for GET /api/books.
type ListResponse struct {
	Books []entity.Book `json:"books"`
}

// Payload is the request body for create and update. The id is never
// client-supplied.
type Payload struct {
	Title       string   `json:"title" validate:"required"`
	Author      string   `json:"author" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category"`
	ISBN        string   `json:"isbn" validate:"omitempty,isbn"`
	PublishDate string   `json:"publish_date"`
	Publisher   string   `json:"publisher"`
	Language    string   `json:"language"`
	Pages       *int     `json:"pages"`
	Format      string   `json:"format"`
	Description string   `json:"description"`
	CoverImage  string   `json:"cover_image"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews     int      `json:"reviews" validate:"gte=0"`
	InStock     bool     `json:"in_stock"`
	Review      *float64 `json:"review"`
}

func (p Payload) toEntity() entity.Book {
	return entity.Book{
		Title:       p.Title,
		Author:      p.Author,
		Price:       p.Price,
		Category:    p.Category,
		ISBN:        p.ISBN,
		PublishDate: p.PublishDate,
		Publisher:   p.Publisher,
		Language:    p.Language,
		Pages:       p.Pages,
		Format:      p.Format,
		Description: p.Description,
		CoverImage:  p.CoverImage,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		InStock:     p.InStock,
		Review:      p.Review,
	}
}

// List handles GET /api/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	httpx.WriteJSON(w, http.StatusOK, ListResponse{Books: books})
}

// Get handles GET /api/books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Book not found")
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Book not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

// Create handles POST /api/books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	created, err := h.service.Create(r.Context(), payload.toEntity())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Book not found")
		return
	}

	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	updated, err := h.service.Update(r.Context(), id, payload.toEntity())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Book not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Book not found")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Book not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteMessage(w, "Book deleted successfully")
}

// pathID extracts the {id} path value. A non-numeric id cannot match any
// book, so it is reported as not found rather than a client error.
func pathID(r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func decodePayload(w http.ResponseWriter, r *http.Request) (Payload, bool) {
	var payload Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return Payload{}, false
	}

	if errs := httpx.ValidateStruct(payload); len(errs) != 0 {
		messages := make([]string, len(errs))
		for i, e := range errs {
			messages[i] = e.Message
		}
		httpx.WriteError(w, http.StatusBadRequest, strings.Join(messages, "; "))
		return Payload{}, false
	}
	return payload, true
}
