package catalog

import (
	"context"
	"errors"

	"github.com/spiceroute/biryani-order/internal/models"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
)

// MenuCatalog defines the interface for menu data access
type MenuCatalog interface {
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
}

// InMemoryMenuCatalog implements MenuCatalog with in-memory storage
type InMemoryMenuCatalog struct {
	items map[string]models.MenuItem
	order []string
}

// NewInMemoryMenuCatalog creates a new in-memory menu catalog with the
// static storefront menu
func NewInMemoryMenuCatalog() *InMemoryMenuCatalog {
	items := []models.MenuItem{
		{ID: "1", Name: "Chicken Biryani", Description: "Aromatic basmati rice cooked with tender chicken pieces and authentic spices", Price: 320, Category: "Non-Veg Biryani", SpiceLevel: models.SpiceMedium, Veg: false},
		{ID: "2", Name: "Mutton Biryani", Description: "Premium mutton pieces slow-cooked with fragrant rice and traditional masalas", Price: 450, Category: "Non-Veg Biryani", SpiceLevel: models.SpiceSpicy, Veg: false},
		{ID: "3", Name: "Vegetable Biryani", Description: "Mixed vegetables and paneer cooked with aromatic rice and mild spices", Price: 250, Category: "Veg Biryani", SpiceLevel: models.SpiceMild, Veg: true},
		{ID: "4", Name: "Prawns Biryani", Description: "Fresh prawns marinated and cooked with premium basmati rice", Price: 380, Category: "Seafood Biryani", SpiceLevel: models.SpiceMedium, Veg: false},
		{ID: "5", Name: "Egg Biryani", Description: "Boiled eggs cooked with spiced rice and caramelized onions", Price: 200, Category: "Egg Biryani", SpiceLevel: models.SpiceMild, Veg: false},
		{ID: "6", Name: "Paneer Biryani", Description: "Cottage cheese cubes cooked with aromatic rice and mild spices", Price: 280, Category: "Veg Biryani", SpiceLevel: models.SpiceMild, Veg: true},
	}

	byID := make(map[string]models.MenuItem, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		byID[item.ID] = item
		order = append(order, item.ID)
	}

	return &InMemoryMenuCatalog{
		items: byID,
		order: order,
	}
}

// GetAll returns all menu items in menu order
func (c *InMemoryMenuCatalog) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0, len(c.items))
	for _, id := range c.order {
		items = append(items, c.items[id])
	}
	return items, nil
}

// GetByID returns a menu item by its ID
func (c *InMemoryMenuCatalog) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	item, exists := c.items[id]
	if !exists {
		return nil, ErrItemNotFound
	}
	return &item, nil
}
