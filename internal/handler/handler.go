package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"ebuney/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError converts a business error into one user-facing
// response per the error taxonomy. Internal detail never leaks in the
// message; it stays in the log.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var validation *model.ValidationError
	if errors.As(err, &validation) {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, validation.Error(), logger)
		return
	}

	var partial *model.PartialOrderError
	if errors.As(err, &partial) {
		logger.Error().Err(partial).Msg("checkout left a partially written order")
		writeError(w, http.StatusInternalServerError, model.ErrCodePartialOrderFailure,
			"failed to place order, contact support before retrying", logger)
		return
	}

	var domain *model.DomainError
	if errors.As(err, &domain) {
		writeError(w, domainStatus(domain.Code), domain.Code, domain.Message, logger)
		return
	}

	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}

func domainStatus(code string) int {
	switch code {
	case model.ErrCodeNotAuthenticated:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeProductNotFound, model.ErrCodeCartItemNotFound:
		return http.StatusNotFound
	case model.ErrCodeEmptyCart, model.ErrCodeDuplicateCheckout:
		return http.StatusConflict
	case model.ErrCodeInvalidQuantity, model.ErrCodeInvalidPaymentMethod, model.ErrCodeInvalidJSON:
		return http.StatusBadRequest
	case model.ErrCodeDataUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
