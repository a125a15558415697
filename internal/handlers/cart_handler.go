package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spiceroute/biryani-order/internal/catalog"
	"github.com/spiceroute/biryani-order/internal/checkout"
	"github.com/spiceroute/biryani-order/internal/models"
)

// CartHandler handles cart and checkout HTTP requests
type CartHandler struct {
	service *checkout.Service
	log     *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *checkout.Service, log *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// CreateCart handles POST /api/cart
func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	id := h.service.CreateSession()
	h.log.Info("cart session created", "cart_id", id)

	WriteJSON(w, http.StatusCreated, map[string]string{"cartId": id}, h.log)
}

// GetCart handles GET /api/cart/{cartId}
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.View(r.Context(), chi.URLParam(r, "cartId"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// AddItem handles POST /api/cart/{cartId}/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.service.AddItem(r.Context(), chi.URLParam(r, "cartId"), req.ItemID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// RemoveOne handles DELETE /api/cart/{cartId}/items/{itemId}
// Removes one unit; removing an absent item is a no-op
func (h *CartHandler) RemoveOne(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.RemoveOne(r.Context(), chi.URLParam(r, "cartId"), chi.URLParam(r, "itemId"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// SetQuantity handles PUT /api/cart/{cartId}/items/{itemId}
// A quantity of zero removes the line
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req models.SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.service.SetQuantity(r.Context(), chi.URLParam(r, "cartId"), chi.URLParam(r, "itemId"), req.Quantity)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// ApplyCoupon handles POST /api/cart/{cartId}/coupon
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req models.ApplyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.service.ApplyCoupon(r.Context(), chi.URLParam(r, "cartId"), req.Code)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.log.Info("coupon applied", "cart_id", view.ID, "code", req.Code)
	WriteJSON(w, http.StatusOK, view, h.log)
}

// RemoveCoupon handles DELETE /api/cart/{cartId}/coupon
func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.RemoveCoupon(r.Context(), chi.URLParam(r, "cartId"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// SelectSlot handles PUT /api/cart/{cartId}/slot
func (h *CartHandler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	var req models.SelectSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.service.SelectSlot(r.Context(), chi.URLParam(r, "cartId"), req.TimeSlot)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// SetDetails handles PUT /api/cart/{cartId}/details
func (h *CartHandler) SetDetails(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerDetails
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.service.SetDetails(r.Context(), chi.URLParam(r, "cartId"), req)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// Checkout handles POST /api/cart/{cartId}/checkout
// On success the session is finalized: one record is appended to the
// order log and the messaging handoff URL is returned
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.PlaceOrder(r.Context(), chi.URLParam(r, "cartId"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.log.Info("order placed", "order_id", resp.OrderID)
	WriteJSON(w, http.StatusOK, resp, h.log)
}

// ListSlots handles GET /api/slots
func (h *CartHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, checkout.TimeSlots, h.log)
}

// writeDomainError maps checkout errors to HTTP responses
func (h *CartHandler) writeDomainError(w http.ResponseWriter, err error) {
	var minOrderErr *checkout.MinimumOrderNotMetError
	switch {
	case errors.Is(err, checkout.ErrCartNotFound):
		WriteError(w, http.StatusNotFound, "Cart not found", h.log)
	case errors.Is(err, catalog.ErrItemNotFound):
		WriteError(w, http.StatusBadRequest, "Menu item not found", h.log)
	case errors.Is(err, checkout.ErrInvalidCoupon):
		WriteError(w, http.StatusBadRequest, "Coupon code is not valid", h.log)
	case errors.As(err, &minOrderErr):
		WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":    "Minimum order not met",
			"required": minOrderErr.Required,
			"actual":   minOrderErr.Actual,
		}, h.log)
	case errors.Is(err, checkout.ErrUnknownSlot):
		WriteError(w, http.StatusBadRequest, "Unknown time slot", h.log)
	case errors.Is(err, checkout.ErrIncompleteOrder):
		WriteError(w, http.StatusConflict, "Complete your details and time slot before placing the order", h.log)
	default:
		h.log.Error("cart operation failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
