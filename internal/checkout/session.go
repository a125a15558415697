package checkout

import (
	"github.com/spiceroute/biryani-order/internal/cart"
	"github.com/spiceroute/biryani-order/internal/models"
)

// State is one step of the checkout flow. States only move forward:
// placing an order requires details to have been entered, which
// requires a slot, which requires items.
type State string

const (
	StateEmptyCart      State = "EMPTY_CART"
	StateHasItems       State = "HAS_ITEMS"
	StateSlotSelected   State = "SLOT_SELECTED"
	StateDetailsEntered State = "DETAILS_ENTERED"
	StateOrderPlaced    State = "ORDER_PLACED"
)

// Session is one customer's checkout in progress: a cart plus the
// slot, contact details and coupon gathered along the way. Sessions
// live in memory only and are discarded after the order is placed.
type Session struct {
	ID       string
	Cart     *cart.Cart
	Coupon   *models.Offer
	TimeSlot string
	Details  models.CustomerDetails

	// couponRemoved flags that the applied coupon was auto-cleared
	// because the cart dropped below its minimum order. Reported on
	// the next quote, then reset.
	couponRemoved bool
}

func newSession(id string) *Session {
	return &Session{
		ID:   id,
		Cart: cart.New(),
	}
}

// State derives the current checkout step from session contents
func (s *Session) State() State {
	switch {
	case s.Cart.IsEmpty():
		return StateEmptyCart
	case s.TimeSlot == "":
		return StateHasItems
	case s.Details.Name == "" || s.Details.Phone == "":
		return StateSlotSelected
	default:
		return StateDetailsEntered
	}
}
