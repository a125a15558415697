package cart

import (
	"context"

	"github.com/spiceroute/biryani-order/internal/models"
)

// PriceLookup is the slice of the menu catalog the cart needs to
// compute totals
type PriceLookup interface {
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
}

// Line is one (item, quantity) pair within a cart
type Line struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Cart maps menu item IDs to quantities. Item IDs are unique within a
// cart and lines keep their insertion order so derived views render
// deterministically. The zero value is an empty cart ready for use.
type Cart struct {
	lines []Line
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(itemID string) int {
	for i, line := range c.lines {
		if line.ItemID == itemID {
			return i
		}
	}
	return -1
}

// AddItem increments the line for itemID by one, creating it at
// quantity 1 if absent
func (c *Cart) AddItem(itemID string) {
	if i := c.indexOf(itemID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{ItemID: itemID, Quantity: 1})
}

// RemoveOne decrements the line for itemID by one, deleting the line
// when the quantity reaches zero. Removing from an absent line is a
// no-op.
func (c *Cart) RemoveOne(itemID string) {
	i := c.indexOf(itemID)
	if i < 0 {
		return
	}

	c.lines[i].Quantity--
	if c.lines[i].Quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetQuantity sets the line for itemID to exactly qty. A qty of zero
// or less deletes the line.
func (c *Cart) SetQuantity(itemID string, qty int) {
	i := c.indexOf(itemID)

	if qty <= 0 {
		if i >= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}

	if i >= 0 {
		c.lines[i].Quantity = qty
		return
	}
	c.lines = append(c.lines, Line{ItemID: itemID, Quantity: qty})
}

// Clear removes every line
func (c *Cart) Clear() {
	c.lines = nil
}

// QuantityOf returns the quantity for itemID, or 0 when absent
func (c *Cart) QuantityOf(itemID string) int {
	if i := c.indexOf(itemID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// TotalItemCount returns the sum of all line quantities
func (c *Cart) TotalItemCount() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart lines in insertion order
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Subtotal recomputes the price*quantity sum over all lines from
// current cart state. A line referencing an item missing from the
// catalog is a data-integrity error and is never silently skipped.
func (c *Cart) Subtotal(ctx context.Context, catalog PriceLookup) (int, error) {
	subtotal := 0
	for _, line := range c.lines {
		item, err := catalog.GetByID(ctx, line.ItemID)
		if err != nil {
			return 0, err
		}
		subtotal += item.Price * line.Quantity
	}
	return subtotal, nil
}
