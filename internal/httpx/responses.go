package httpx

import (
	"encoding/json"
	"net/http"
)

// The wire shapes here match what the storefront client expects:
// payloads are returned bare, failures are {"error": "..."} and
// deletes acknowledge with {"message": "..."}.

type ErrorBody struct {
	Error string `json:"error"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorBody{Error: message})
}

func WriteMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, MessageBody{Message: message})
}
