package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spiceroute/biryani-order/internal/catalog"
	"github.com/spiceroute/biryani-order/internal/handoff"
	"github.com/spiceroute/biryani-order/internal/models"
	"github.com/spiceroute/biryani-order/internal/offers"
	"github.com/spiceroute/biryani-order/internal/pricing"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrInvalidCoupon   = offers.ErrInvalidCoupon
	ErrUnknownSlot     = errors.New("unknown time slot")
	ErrIncompleteOrder = errors.New("order details are incomplete")
)

// MinimumOrderNotMetError rejects a coupon whose minimum order is not
// reached by the current subtotal
type MinimumOrderNotMetError struct {
	Required int
	Actual   int
}

func (e *MinimumOrderNotMetError) Error() string {
	return fmt.Sprintf("minimum order of ₹%d required, current subtotal is ₹%d", e.Required, e.Actual)
}

// TimeSlots are the delivery slots offered at checkout
var TimeSlots = []string{"10:00 AM", "11:00 AM", "12:00 PM"}

// OrderLog receives one record per completed checkout
type OrderLog interface {
	Append(record models.OrderRecord) error
}

// Service owns every live checkout session and implements the order
// engine: cart mutation, coupon application, pricing quotes, summary
// rendering and order placement
type Service struct {
	catalog  catalog.MenuCatalog
	offers   *offers.Table
	profile  pricing.Profile
	orderLog OrderLog

	mu       sync.RWMutex
	sessions map[string]*Session

	// now is swappable for deterministic timestamps in tests
	now func() time.Time
}

// NewService creates a checkout service
func NewService(menu catalog.MenuCatalog, offerTable *offers.Table, profile pricing.Profile, orderLog OrderLog) *Service {
	return &Service{
		catalog:  menu,
		offers:   offerTable,
		profile:  profile,
		orderLog: orderLog,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// CreateSession starts an empty cart and returns its ID
func (s *Service) CreateSession() string {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = newSession(id)

	return id
}

func (s *Service) session(id string) (*Session, error) {
	sess, exists := s.sessions[id]
	if !exists {
		return nil, ErrCartNotFound
	}
	return sess, nil
}

// AddItem adds one unit of a menu item to the cart
func (s *Service) AddItem(ctx context.Context, cartID, itemID string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(cartID)
	if err != nil {
		return nil, err
	}

	// Reject unknown items before touching the cart
	if _, err := s.catalog.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	sess.Cart.AddItem(itemID)
	return s.viewLocked(ctx, sess)
}

// RemoveOne removes one unit of a menu item from the cart. Removing
// an item that is not in the cart is a no-op.
func (s *Service) RemoveOne(ctx context.Context, cartID, itemID string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(cartID)
	if err != nil {
		return nil, err
	}

	sess.Cart.RemoveOne(itemID)
	return s.viewLocked(ctx, sess)
}

// SetQuantity sets a cart line to an exact quantity; zero removes it
func (s *Service) SetQuantity(ctx context.Context, cartID, itemID string, qty int) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(cartID)
	if err != nil {
		return nil, err
	}

	if qty > 0 {
		if _, err := s.catalog.GetByID(ctx, itemID); err != nil {
			return nil, err
		}
	}

	sess.Cart.SetQuantity(itemID, qty)
	return s.viewLocked(ctx, sess)
}

// ApplyCoupon validates a coupon code against the offer table and the
// current subtotal. On success it replaces any previously applied
// coupon; there is no stacking. A rejected coupon leaves the session
// untouched.
func (s *Service) ApplyCoupon(ctx context.Context, cartID, code string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(cartID)
	if err != nil {
		return nil, err
	}

	offer, err := s.offers.Lookup(code)
	if err != nil {
		return nil, err
	}

	subtotal, err := sess.Cart.Subtotal(ctx, s.catalog)
	if err != nil {
		return nil, err
	}

	if offer.MinOrder > 0 && subtotal < offer.MinOrder {
		return nil, &MinimumOrderNotMetError{Required: offer.MinOrder, Actual: subtotal}
	}

	sess.Coupon = offer
	sess.couponRemoved = false
	return s.viewLocked(ctx, sess)
}

// RemoveCoupon clears any applied coupon
func (s *Service) RemoveCoupon(ctx context.Context, cartID string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(cartID)
	if err != nil {
		return nil, err
	}

	sess.Coupon = nil
	sess.couponRemoved = false
	return s.viewLocked(ctx, sess)
}

// SelectSlot picks one of the enumerated delivery slots
func (s *Service) SelectSlot(ctx context.Context, cartID, slot string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(cartID)
	if err != nil {
		return nil, err
	}

	valid := false
	for _, ts := range TimeSlots {
		if ts == slot {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrUnknownSlot
	}

	sess.TimeSlot = slot
	return s.viewLocked(ctx, sess)
}

// SetDetails records the customer's name and phone
func (s *Service) SetDetails(ctx context.Context, cartID string, details models.CustomerDetails) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(cartID)
	if err != nil {
		return nil, err
	}

	sess.Details = details
	return s.viewLocked(ctx, sess)
}

// View returns the current cart view with a freshly computed quote
func (s *Service) View(ctx context.Context, cartID string) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(cartID)
	if err != nil {
		return nil, err
	}

	return s.viewLocked(ctx, sess)
}

// quoteLocked recomputes the pricing breakdown from current cart
// state. Coupon eligibility is re-checked here: if the cart has
// dropped below the offer's minimum order the coupon is auto-cleared
// and the quote carries a removal notice.
func (s *Service) quoteLocked(ctx context.Context, sess *Session) (pricing.Quote, error) {
	subtotal, err := sess.Cart.Subtotal(ctx, s.catalog)
	if err != nil {
		return pricing.Quote{}, err
	}

	if sess.Coupon != nil && sess.Coupon.MinOrder > 0 && subtotal < sess.Coupon.MinOrder {
		sess.Coupon = nil
		sess.couponRemoved = true
	}

	code, percent := "", 0
	if sess.Coupon != nil {
		code, percent = sess.Coupon.Code, sess.Coupon.DiscountPercent
	}

	quote := s.profile.NewQuote(subtotal, sess.Cart.TotalItemCount(), code, percent)
	quote.CouponRemoved = sess.couponRemoved
	return quote, nil
}

func (s *Service) viewLocked(ctx context.Context, sess *Session) (*CartView, error) {
	quote, err := s.quoteLocked(ctx, sess)
	if err != nil {
		return nil, err
	}

	lines := make([]LineView, 0, len(sess.Cart.Lines()))
	for _, line := range sess.Cart.Lines() {
		item, err := s.catalog.GetByID(ctx, line.ItemID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, LineView{
			ItemID:    line.ItemID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  line.Quantity,
			LineTotal: item.Price * line.Quantity,
		})
	}

	return &CartView{
		ID:       sess.ID,
		State:    string(sess.State()),
		Lines:    lines,
		TimeSlot: sess.TimeSlot,
		Details:  sess.Details,
		Quote:    quote,
	}, nil
}

// Summary renders the deterministic order-summary text for the
// current session state
func (s *Service) Summary(ctx context.Context, cartID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(cartID)
	if err != nil {
		return "", err
	}

	return s.summaryLocked(ctx, sess)
}

func (s *Service) summaryLocked(ctx context.Context, sess *Session) (string, error) {
	v, err := s.viewLocked(ctx, sess)
	if err != nil {
		return "", err
	}
	return RenderSummary(v), nil
}

// PlaceOrder finalizes a checkout. It requires the full flow to have
// been completed (items, slot, name and phone); otherwise it fails
// with ErrIncompleteOrder and performs no side effects. On success it
// appends one record to the order log, discards the session and
// returns the summary plus the messaging handoff URL.
func (s *Service) PlaceOrder(ctx context.Context, cartID string) (*models.CheckoutResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(cartID)
	if err != nil {
		return nil, err
	}

	if sess.State() != StateDetailsEntered {
		return nil, ErrIncompleteOrder
	}

	v, err := s.viewLocked(ctx, sess)
	if err != nil {
		return nil, err
	}
	summary := RenderSummary(v)

	gift := "No"
	if v.Quote.GiftUnlocked {
		gift = "Yes"
	}

	record := models.OrderRecord{
		Timestamp:        s.now().Format(time.RFC3339),
		CustomerName:     sess.Details.Name,
		Phone:            sess.Details.Phone,
		TimeSlot:         sess.TimeSlot,
		ItemsDescription: ItemsDescription(v),
		TotalAmount:      v.Quote.Total,
		TotalItemCount:   sess.Cart.TotalItemCount(),
		GiftApplied:      gift,
	}

	if err := s.orderLog.Append(record); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	delete(s.sessions, cartID)

	return &models.CheckoutResponse{
		OrderID:    uuid.New().String(),
		Summary:    summary,
		HandoffURL: handoff.URL(s.profile.HandoffRecipient, summary),
	}, nil
}
