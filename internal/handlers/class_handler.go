package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/middleware"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/store"
)

// popularLimit caps the popular-classes listing.
const popularLimit = 6

type ClassHandler struct {
	classes store.Classes
}

func NewClassHandler(classes store.Classes) *ClassHandler {
	return &ClassHandler{classes: classes}
}

func (h *ClassHandler) GetApproved(w http.ResponseWriter, r *http.Request) {
	classes, err := h.classes.Approved(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeClasses(w, classes)
}

func (h *ClassHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	classes, err := h.classes.Popular(r.Context(), popularLimit)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeClasses(w, classes)
}

func (h *ClassHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	classes, err := h.classes.All(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeClasses(w, classes)
}

// GetByInstructor lists an instructor's own classes. The path email must
// match the authenticated identity.
func (h *ClassHandler) GetByInstructor(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	if claims.Email != email {
		writeError(w, http.StatusForbidden, "Forbidden Access")
		return
	}

	classes, err := h.classes.ByInstructor(r.Context(), email)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeClasses(w, classes)
}

// Create inserts a new class. Status always starts at pending regardless of
// what the client posts; only an admin decision moves it.
func (h *ClassHandler) Create(w http.ResponseWriter, r *http.Request) {
	var newClass models.Class
	if err := json.NewDecoder(r.Body).Decode(&newClass); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	newClass.Status = models.StatusPending
	newClass.EnrolledStudents = 0
	newClass.Feedback = ""

	result, err := h.classes.Insert(r.Context(), newClass)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ClassHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusApproved)
}

func (h *ClassHandler) Deny(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusDenied)
}

func (h *ClassHandler) setStatus(w http.ResponseWriter, r *http.Request, status models.ClassStatus) {
	id := mux.Vars(r)["id"]

	result, err := h.classes.SetStatus(r.Context(), id, status)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ClassHandler) SetFeedback(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.classes.SetFeedback(r.Context(), id, body.Feedback)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeClasses(w http.ResponseWriter, classes []models.Class) {
	if classes == nil {
		classes = []models.Class{}
	}
	writeJSON(w, http.StatusOK, classes)
}
