package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
	})
}

// writeStoreError maps store failures uniformly: malformed ids are the
// client's fault, everything else is a 500. Absent documents never reach
// here; they are 200 with null/empty bodies.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrInvalidID) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "internal server error")
}
