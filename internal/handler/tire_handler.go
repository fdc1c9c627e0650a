package handler

import (
	"net/http"
	"strconv"

	"zigueroutine/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// TireHandler handles catalogue HTTP requests.
type TireHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewTireHandler creates a new catalogue handler.
func NewTireHandler(service service.CatalogService, logger zerolog.Logger) *TireHandler {
	return &TireHandler{
		service: service,
		logger:  logger.With().Str("handler", "tire").Logger(),
	}
}

// List handles GET /api/tires requests with optional brand and class filters.
func (h *TireHandler) List(w http.ResponseWriter, r *http.Request) {
	brand := r.URL.Query().Get("brand")
	class := r.URL.Query().Get("class")

	groups, err := h.service.ListTires(r.Context(), brand, class)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list tires", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, groups)
}

// GetByID handles GET /api/tires/{tireId} requests.
func (h *TireHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "tireId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tire ID", h.logger)
		return
	}

	tire, err := h.service.GetTire(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, tire)
}
