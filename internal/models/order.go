package models

// CustomerDetails holds the contact information entered at checkout
type CustomerDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// OrderRecord is one entry in the local order log, appended once per
// completed checkout
type OrderRecord struct {
	Timestamp        string  `json:"timestamp"`
	CustomerName     string  `json:"customerName"`
	Phone            string  `json:"phone"`
	TimeSlot         string  `json:"timeSlot"`
	ItemsDescription string  `json:"items"`
	TotalAmount      float64 `json:"totalAmount"`
	TotalItemCount   int     `json:"totalItems"`
	GiftApplied      string  `json:"giftApplied"`
}

// AddItemRequest adds one unit of an item to a cart
type AddItemRequest struct {
	ItemID string `json:"itemId"`
}

// SetQuantityRequest sets a cart line to an exact quantity
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ApplyCouponRequest applies a coupon code to a cart
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

// SelectSlotRequest picks a delivery time slot
type SelectSlotRequest struct {
	TimeSlot string `json:"timeSlot"`
}

// CheckoutResponse is returned from a successful order placement
type CheckoutResponse struct {
	OrderID    string `json:"orderId"`
	Summary    string `json:"summary"`
	HandoffURL string `json:"handoffUrl"`
}
