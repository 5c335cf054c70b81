package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/store"
)

type ContactHandler struct {
	contacts store.Contacts
}

func NewContactHandler(contacts store.Contacts) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var message models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	message.SentAt = time.Now()

	result, err := h.contacts.Insert(r.Context(), message)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
