package handlers

import (
	"log/slog"
	"net/http"

	"github.com/spiceroute/biryani-order/internal/offers"
)

// OfferHandler handles offer catalog HTTP requests
type OfferHandler struct {
	table  *offers.Table
	logger *slog.Logger
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(table *offers.Table, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{
		table:  table,
		logger: logger,
	}
}

// ListOffers handles GET /api/offers
// Validity windows are display text only and are not filtered here
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.table.All(), h.logger)
}
