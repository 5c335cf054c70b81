package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/payments"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/store"
)

type PaymentHandler struct {
	payments store.Payments
	carts    store.Carts
	classes  store.Classes
	provider payments.Provider
}

func NewPaymentHandler(p store.Payments, carts store.Carts, classes store.Classes, provider payments.Provider) *PaymentHandler {
	return &PaymentHandler{payments: p, carts: carts, classes: classes, provider: provider}
}

// CreateIntent opens a payment intent for the posted price. The amount is
// computed server-side in currency minor units.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	amount := int64(math.Round(body.Price * 100))

	clientSecret, err := h.provider.CreateIntent(r.Context(), amount)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create payment intent")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

func (h *PaymentHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	history, err := h.payments.ByEmail(r.Context(), email)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if history == nil {
		history = []models.Payment{}
	}
	writeJSON(w, http.StatusOK, history)
}

// Settle runs the three-step settlement sequence and reports the aggregate
// of the step results.
func (h *PaymentHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var req settlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := settle(r.Context(), h.payments, h.carts, h.classes, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrSettlementPartial), errors.Is(err, ErrSettlementFailed):
			writeError(w, http.StatusInternalServerError, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
