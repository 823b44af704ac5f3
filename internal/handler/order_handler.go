package handler

import (
	"net/http"

	"ebuney/internal/middleware"
	"ebuney/internal/model"
	"ebuney/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order read requests. Orders are only ever
// created through the checkout handler.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// ListMine handles GET /api/orders requests for the buyer's own orders.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeDomainError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	orders, err := h.service.ListForBuyer(r.Context(), session.UserID, queryInt(r, "limit", 20), queryInt(r, "offset", 0))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// ListForSeller handles GET /api/seller/orders requests.
func (h *OrderHandler) ListForSeller(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeDomainError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	orders, err := h.service.ListForSeller(r.Context(), session.UserID, queryInt(r, "limit", 20), queryInt(r, "offset", 0))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeDomainError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	orderID, ok := pathID(w, r, "/api/orders/", h.logger)
	if !ok {
		return
	}

	detail, err := h.service.GetDetail(r.Context(), session.UserID, session.Role, orderID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if detail == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeInternalError, "order not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}
