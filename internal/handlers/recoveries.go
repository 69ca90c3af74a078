package handlers

import (
	"log"
	"net/http"

	"github.com/jredh-dev/whereisit/pkg/models"
)

// ListRecoveriesByEmail returns all recovery claims made by the given
// claimant email.
// GET /recoveredItems?email=...
func (h *Handler) ListRecoveriesByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		jsonError(w, "Email query required", http.StatusBadRequest)
		return
	}

	recoveries, err := h.db.ListRecoveriesByEmail(email)
	if err != nil {
		log.Printf("error listing recoveries for %s: %v", email, err)
		jsonError(w, "Failed to fetch recovered items", http.StatusInternalServerError)
		return
	}
	if recoveries == nil {
		recoveries = []models.Recovery{}
	}
	jsonOK(w, http.StatusOK, recoveries)
}

// CreateRecovery records a recovery claim for an item. An item can be
// claimed at most once; a second claim fails regardless of claimant.
// POST /recoveredItems
func (h *Handler) CreateRecovery(w http.ResponseWriter, r *http.Request) {
	var in models.RecoveryInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := in.Validate(); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.db.CreateRecovery(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	jsonOK(w, http.StatusCreated, map[string]string{"insertedId": id})
}
