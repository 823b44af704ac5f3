package handler

import (
	"net/http"

	"ebuney/internal/middleware"
	"ebuney/internal/model"
	"ebuney/internal/service"

	"github.com/rs/zerolog"
)

// ProfileHandler serves the account profile, used by clients to
// prefill the checkout address form.
type ProfileHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(service service.UserService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("handler", "profile").Logger(),
	}
}

// Get handles GET /api/profile requests.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeDomainError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), session.UserID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeInternalError, "profile not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
