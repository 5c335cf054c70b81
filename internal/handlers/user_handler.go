package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/auth"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/store"
)

type UserHandler struct {
	users  store.Users
	tokens *auth.TokenService
}

func NewUserHandler(users store.Users, tokens *auth.TokenService) *UserHandler {
	return &UserHandler{users: users, tokens: tokens}
}

// CreateToken issues a session token for the posted identity claim.
func (h *UserHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	token, err := h.tokens.Issue(body.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.All(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := h.users.ByEmail(r.Context(), email)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	// Absent users are a 200 null, not a 404.
	writeJSON(w, http.StatusOK, user)
}

// CreateUser registers a user on first login. Registering the same email
// twice is a no-op reported as "User already exists".
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var newUser models.User
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if newUser.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	existing, err := h.users.ByEmail(r.Context(), newUser.Email)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusOK, map[string]string{"message": "User already exists"})
		return
	}

	result, err := h.users.Insert(r.Context(), newUser)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, models.RoleAdmin)
}

func (h *UserHandler) MakeInstructor(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, models.RoleInstructor)
}

func (h *UserHandler) setRole(w http.ResponseWriter, r *http.Request, role models.Role) {
	id := mux.Vars(r)["id"]

	result, err := h.users.SetRole(r.Context(), id, role)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *UserHandler) GetInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.users.Instructors(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if instructors == nil {
		instructors = []models.User{}
	}
	writeJSON(w, http.StatusOK, instructors)
}
