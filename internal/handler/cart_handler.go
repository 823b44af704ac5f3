package handler

import (
	"encoding/json"
	"net/http"

	"ebuney/internal/middleware"
	"ebuney/internal/model"
	"ebuney/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartResponse is the cart view returned to the buyer.
type cartResponse struct {
	CartID   uuid.UUID        `json:"cartId"`
	Lines    []model.CartLine `json:"lines"`
	Subtotal float64          `json:"subtotal"`
}

// addItemRequest is the payload for adding a product to the cart.
type addItemRequest struct {
	ProductID uuid.UUID  `json:"productId"`
	VariantID *uuid.UUID `json:"variantId,omitempty"`
	Quantity  int        `json:"quantity"`
}

// updateItemRequest is the payload for changing a line's quantity.
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeDomainError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	snapshot, err := h.service.Get(r.Context(), session.UserID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	lines := snapshot.Lines
	if lines == nil {
		lines = []model.CartLine{}
	}
	writeJSON(w, http.StatusOK, cartResponse{
		CartID:   snapshot.CartID,
		Lines:    lines,
		Subtotal: snapshot.Subtotal(),
	})
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeDomainError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if req.ProductID == uuid.Nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "productId is required", h.logger)
		return
	}

	item, err := h.service.AddItem(r.Context(), session.UserID, req.ProductID, req.VariantID, req.Quantity)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// UpdateItem handles PUT /api/cart/items/{id} requests.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeDomainError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	itemID, ok := pathID(w, r, "/api/cart/items/", h.logger)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateItem(r.Context(), session.UserID, itemID, req.Quantity); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeDomainError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	itemID, ok := pathID(w, r, "/api/cart/items/", h.logger)
	if !ok {
		return
	}

	if err := h.service.RemoveItem(r.Context(), session.UserID, itemID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
