package handlers

import (
	"log/slog"
	"net/http"

	"github.com/spiceroute/biryani-order/internal/orderlog"
)

// OrderLogHandler exposes the local order log
type OrderLogHandler struct {
	log    *orderlog.Log
	logger *slog.Logger
}

// NewOrderLogHandler creates a new order log handler
func NewOrderLogHandler(log *orderlog.Log, logger *slog.Logger) *OrderLogHandler {
	return &OrderLogHandler{
		log:    log,
		logger: logger,
	}
}

// ListOrders handles GET /api/orders
func (h *OrderLogHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.log.All(), h.logger)
}
