package models

// Offer represents a named coupon rule
// Codes are case-sensitive. MinOrder of 0 means no minimum.
// ValidUntil is display text only and is never compared to the clock.
type Offer struct {
	Code            string `json:"code"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DiscountPercent int    `json:"discountPercent"`
	MinOrder        int    `json:"minOrder,omitempty"`
	ValidUntil      string `json:"validUntil"`
}
