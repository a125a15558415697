package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spiceroute/biryani-order/internal/catalog"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	catalog catalog.MenuCatalog
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menu catalog.MenuCatalog, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		catalog: menu,
		logger:  logger,
	}
}

// ListItems handles GET /api/menu
// Returns the full static menu
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.catalog.GetAll(ctx)
	if err != nil {
		h.logger.Error("failed to list menu items", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, items, h.logger)
}

// GetItem handles GET /api/menu/{itemId}
// - 200: successful operation
// - 404: item not found
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := chi.URLParam(r, "itemId")

	item, err := h.catalog.GetByID(ctx, itemID)
	if err != nil {
		if err == catalog.ErrItemNotFound {
			h.logger.Info("menu item not found", "itemId", itemID)
			WriteError(w, http.StatusNotFound, "Menu item not found", h.logger)
			return
		}

		h.logger.Error("failed to get menu item", "itemId", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, item, h.logger)
}
