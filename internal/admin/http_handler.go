package admin

import (
	"encoding/json"
	"net/http"
	"time"

	"bookstore/internal/auth"
	"bookstore/internal/httpx"
)

// HTTPHandler issues tokens for the admin console. The console is a
// single-operator surface, so login is a password check against a bcrypt
// hash from the environment rather than a user table.
type HTTPHandler struct {
	secret       string
	passwordHash string
	tokenTTL     time.Duration
}

func NewHTTPHandler(secret, passwordHash string, tokenTTL time.Duration) *HTTPHandler {
	return &HTTPHandler{
		secret:       secret,
		passwordHash: passwordHash,
		tokenTTL:     tokenTTL,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/admin/login
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !auth.VerifyPassword(h.passwordHash, req.Password) {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	token, err := auth.GenerateToken(h.secret, "admin", "ADMIN", h.tokenTTL)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, loginResponse{Token: token})
}
