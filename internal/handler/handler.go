package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"zigueroutine/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are gone; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps a service error onto an HTTP status. Domain errors
// surface their code verbatim; anything else becomes an opaque 500 so no
// internal detail leaks.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var derr *model.DomainError
	if !errors.As(err, &derr) {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, logger)
		return
	}

	status := http.StatusInternalServerError
	switch derr.Code {
	case model.ErrCodeInvalidCustomerName,
		model.ErrCodeInvalidPhone,
		model.ErrCodeEmptyOrder,
		model.ErrCodeEmptyCart,
		model.ErrCodeInvalidJSON:
		status = http.StatusBadRequest
	case model.ErrCodeOrderNotFound,
		model.ErrCodeTireNotFound,
		model.ErrCodeCartNotFound:
		status = http.StatusNotFound
	case model.ErrCodeNotifyFailed:
		status = http.StatusBadGateway
	}

	writeError(w, status, derr.Code, logger)
}
