package handler

import (
	"encoding/json"
	"net/http"

	"ebuney/internal/checkout"
	"ebuney/internal/middleware"
	"ebuney/internal/model"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles the place-order request.
type CheckoutHandler struct {
	service checkout.Service
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service checkout.Service, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// PlaceOrder handles POST /api/checkout requests.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeDomainError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	resp, err := h.service.PlaceOrder(r.Context(), session.UserID, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
