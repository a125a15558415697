package pricing

// Profile is one named pricing configuration. The storefront shipped
// with slightly different thresholds per screen; a profile pins one
// consistent set.
type Profile struct {
	Name                  string
	FreeDeliveryThreshold int    // delivery is free above this subtotal, rupees
	DeliveryFee           int    // flat fee when below the threshold, rupees
	FreeGiftThreshold     int    // gift unlocks above this many items
	HandoffRecipient      string // messaging number that receives the order
}

// Named pricing profiles. Classic is the canonical default.
var (
	Classic = Profile{
		Name:                  "classic",
		FreeDeliveryThreshold: 300,
		DeliveryFee:           40,
		FreeGiftThreshold:     3,
		HandoffRecipient:      "917454958772",
	}

	Express = Profile{
		Name:                  "express",
		FreeDeliveryThreshold: 100,
		DeliveryFee:           40,
		FreeGiftThreshold:     4,
		HandoffRecipient:      "919876543210",
	}
)

// ByName returns the profile with the given name, falling back to
// Classic for unknown names
func ByName(name string) Profile {
	switch name {
	case Express.Name:
		return Express
	default:
		return Classic
	}
}

// DeliveryFeeFor returns the delivery fee for a subtotal. Free above the
// threshold (strictly greater), flat fee otherwise.
func (p Profile) DeliveryFeeFor(subtotal int) int {
	if subtotal > p.FreeDeliveryThreshold {
		return 0
	}
	return p.DeliveryFee
}

// GiftUnlocked reports whether the free gift is unlocked for an item
// count. The boundary is strict: a count equal to the threshold does
// not unlock.
func (p Profile) GiftUnlocked(totalItemCount int) bool {
	return totalItemCount > p.FreeGiftThreshold
}

// DiscountAmount computes the discount for a subtotal at a percentage
func DiscountAmount(subtotal, discountPercent int) float64 {
	return float64(subtotal) * float64(discountPercent) / 100
}

// Quote is the full pricing breakdown for a cart, recomputed from
// current state on every request
type Quote struct {
	Subtotal        int     `json:"subtotal"`
	DeliveryFee     int     `json:"deliveryFee"`
	AppliedCoupon   string  `json:"appliedCoupon,omitempty"`
	DiscountPercent int     `json:"discountPercent,omitempty"`
	DiscountAmount  float64 `json:"discountAmount"`
	GiftUnlocked    bool    `json:"giftUnlocked"`
	Total           float64 `json:"total"`
	CouponRemoved   bool    `json:"couponRemoved,omitempty"`
}

// NewQuote computes the breakdown for a subtotal, item count and
// optional coupon
func (p Profile) NewQuote(subtotal, totalItemCount int, couponCode string, discountPercent int) Quote {
	fee := p.DeliveryFeeFor(subtotal)
	discount := 0.0
	if couponCode != "" {
		discount = DiscountAmount(subtotal, discountPercent)
	}

	return Quote{
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		AppliedCoupon:   couponCode,
		DiscountPercent: discountPercent,
		DiscountAmount:  discount,
		GiftUnlocked:    p.GiftUnlocked(totalItemCount),
		Total:           float64(subtotal+fee) - discount,
	}
}
