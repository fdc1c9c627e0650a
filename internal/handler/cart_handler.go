package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"zigueroutine/internal/model"
	"zigueroutine/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
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

// Create handles POST /api/carts requests.
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Create(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Get handles GET /api/carts/{cartId} requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// AddItem handles POST /api/carts/{cartId}/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}

	var req model.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, h.logger)
		return
	}

	c, err := h.service.AddItem(r.Context(), id, req.TireID, req.Qty)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// SetQty handles PUT /api/carts/{cartId}/items/{tireId} requests.
func (h *CartHandler) SetQty(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}

	tireID, err := strconv.Atoi(chi.URLParam(r, "tireId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tire ID", h.logger)
		return
	}

	var req model.SetQtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, h.logger)
		return
	}

	c, err := h.service.SetQty(r.Context(), id, tireID, req.Qty)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// RemoveItem handles DELETE /api/carts/{cartId}/items/{tireId} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}

	tireID, err := strconv.Atoi(chi.URLParam(r, "tireId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tire ID", h.logger)
		return
	}

	c, err := h.service.RemoveItem(r.Context(), id, tireID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Checkout handles POST /api/carts/{cartId}/checkout requests.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cartID(w, r)
	if !ok {
		return
	}

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, h.logger)
		return
	}

	conf, err := h.service.Checkout(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, conf)
}

func (h *CartHandler) cartID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "cartId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart ID format", h.logger)
		return uuid.Nil, false
	}
	return id, true
}
