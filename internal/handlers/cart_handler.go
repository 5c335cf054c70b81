package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/store"
)

type CartHandler struct {
	carts store.Carts
}

func NewCartHandler(carts store.Carts) *CartHandler {
	return &CartHandler{carts: carts}
}

// GetCart lists the caller's cart items. A missing email query parameter is
// an empty cart, not an error.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusOK, []models.CartItem{})
		return
	}

	items, err := h.carts.ByEmail(r.Context(), email)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CartHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	item, err := h.carts.ByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.carts.Insert(r.Context(), item)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.carts.Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
