// Package handlers implements the HTTP gateway for the whereisit API:
// session issuance, item CRUD, and recovery claims.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jredh-dev/whereisit/config"
	"github.com/jredh-dev/whereisit/internal/database"
	"github.com/jredh-dev/whereisit/internal/token"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	db     *database.DB
	tokens *token.Service
	cfg    *config.Config
}

// New creates a new Handler.
func New(db *database.DB, tokens *token.Service, cfg *config.Config) *Handler {
	return &Handler{db: db, tokens: tokens, cfg: cfg}
}

// Home is the root greeting endpoint.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("WhereIsIt app is cooking!"))
}

func jsonOK(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// decodeJSON decodes a JSON request body into target.
func decodeJSON(r *http.Request, target interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// storeError maps store failures onto the HTTP error taxonomy: malformed
// id 400, no match 404, duplicate recovery 400, anything else 500.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, database.ErrInvalidID):
		jsonError(w, "Invalid ID format", http.StatusBadRequest)
	case errors.Is(err, database.ErrNotFound):
		jsonError(w, "Item not found", http.StatusNotFound)
	case errors.Is(err, database.ErrAlreadyRecovered):
		jsonError(w, "Item already recovered", http.StatusBadRequest)
	default:
		jsonError(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
