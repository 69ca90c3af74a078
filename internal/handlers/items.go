package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jredh-dev/whereisit/internal/database"
	"github.com/jredh-dev/whereisit/pkg/models"
)

// ListAllItems returns every item, in insertion order.
// GET /allItems
func (h *Handler) ListAllItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.db.ListItems(database.ListQuery{})
	if err != nil {
		log.Printf("error listing items: %v", err)
		jsonError(w, "Failed to fetch items", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	jsonOK(w, http.StatusOK, items)
}

// ListItemsPublic returns items honoring the sort/limit query params.
// GET /items?sort=date_desc&limit=N
func (h *Handler) ListItemsPublic(w http.ResponseWriter, r *http.Request) {
	q := database.BuildListQuery(r.URL.Query().Get("sort"), r.URL.Query().Get("limit"))
	items, err := h.db.ListItems(q)
	if err != nil {
		log.Printf("error listing items: %v", err)
		jsonError(w, "Failed to fetch items", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	jsonOK(w, http.StatusOK, items)
}

// GetItem returns a single item by id.
// GET /items/{id}
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.db.GetItem(chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err)
		return
	}
	jsonOK(w, http.StatusOK, item)
}

// CreateItem persists a new item and echoes its assigned id.
// POST /addItems
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var in models.ItemInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := in.Validate(); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.db.CreateItem(&in)
	if err != nil {
		log.Printf("error creating item: %v", err)
		jsonError(w, "Failed to add item", http.StatusInternalServerError)
		return
	}
	jsonOK(w, http.StatusCreated, map[string]string{"insertedId": id})
}

// UpdateItem replaces the mutable fields of an item and echoes the
// modified count. An absent but well-formed id yields modifiedCount 0.
// PUT /updateItems/{id}
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var in models.ItemInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := in.Validate(); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	n, err := h.db.UpdateItem(chi.URLParam(r, "id"), &in)
	if err != nil {
		storeError(w, err)
		return
	}
	jsonOK(w, http.StatusOK, map[string]int64{"modifiedCount": n})
}

// PatchItemStatus sets an item's status. The patch is unconditional and
// does not consult recovery claims.
// PATCH /items/{id}
func (h *Handler) PatchItemStatus(w http.ResponseWriter, r *http.Request) {
	var patch models.StatusPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := patch.Validate(); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	n, err := h.db.PatchItemStatus(chi.URLParam(r, "id"), patch.Status)
	if err != nil {
		storeError(w, err)
		return
	}
	jsonOK(w, http.StatusOK, map[string]int64{"modifiedCount": n})
}

// DeleteItem removes an item.
// DELETE /items/{id}
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.db.DeleteItem(chi.URLParam(r, "id")); err != nil {
		storeError(w, err)
		return
	}
	jsonOK(w, http.StatusOK, map[string]int64{"deletedCount": 1})
}
