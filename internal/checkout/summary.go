package checkout

import (
	"fmt"
	"strings"

	"github.com/spiceroute/biryani-order/internal/models"
	"github.com/spiceroute/biryani-order/internal/pricing"
)

// LineView is one cart line enriched with menu data for display
type LineView struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	LineTotal int    `json:"lineTotal"`
}

// CartView is the full cart state returned to clients: lines, checkout
// progress and a freshly computed quote
type CartView struct {
	ID       string                 `json:"id"`
	State    string                 `json:"state"`
	Lines    []LineView             `json:"lines"`
	TimeSlot string                 `json:"timeSlot,omitempty"`
	Details  models.CustomerDetails `json:"details"`
	Quote    pricing.Quote          `json:"quote"`
}

// RenderSummary produces the order-summary text handed to the
// messaging client. The output is byte-identical for identical input
// state: lines render in cart insertion order and amounts use fixed
// formatting.
func RenderSummary(v *CartView) string {
	var b strings.Builder

	b.WriteString("🍛 *New Biryani Order*\n\n")

	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", v.Details.Name)
	fmt.Fprintf(&b, "Phone: %s\n", v.Details.Phone)
	fmt.Fprintf(&b, "Time Slot: %s\n\n", v.TimeSlot)

	b.WriteString("*Order:*\n")
	for _, line := range v.Lines {
		fmt.Fprintf(&b, "%s x%d - ₹%d\n", line.Name, line.Quantity, line.LineTotal)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Subtotal: ₹%d\n", v.Quote.Subtotal)
	if v.Quote.DeliveryFee == 0 {
		b.WriteString("Delivery Fee: FREE\n")
	} else {
		fmt.Fprintf(&b, "Delivery Fee: ₹%d\n", v.Quote.DeliveryFee)
	}
	if v.Quote.AppliedCoupon != "" {
		fmt.Fprintf(&b, "Discount (%s): -₹%.2f\n", v.Quote.AppliedCoupon, v.Quote.DiscountAmount)
	}
	if v.Quote.GiftUnlocked {
		b.WriteString("🎁 *Free Gift Included!*\n")
	}
	fmt.Fprintf(&b, "*Total: ₹%.2f*\n\n", v.Quote.Total)

	b.WriteString("Please confirm the order and share payment details.")

	return b.String()
}

// ItemsDescription is the compact one-line item list stored in the
// order log
func ItemsDescription(v *CartView) string {
	parts := make([]string, 0, len(v.Lines))
	for _, line := range v.Lines {
		parts = append(parts, fmt.Sprintf("%s x%d", line.Name, line.Quantity))
	}
	return strings.Join(parts, ", ")
}
