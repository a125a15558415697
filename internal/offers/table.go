package offers

import (
	"errors"
	"sort"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/spiceroute/biryani-order/internal/models"
)

var (
	ErrInvalidCoupon = errors.New("coupon code is not valid")
)

// Table holds the offer catalog keyed by coupon code.
// Codes are matched case-sensitively. A bloom filter over the codes
// rejects unknown input without touching the map, which keeps the
// lookup path cheap no matter how large the catalog grows.
type Table struct {
	offers map[string]models.Offer
	filter *bloom.BloomFilter
}

// NewTable creates an offer table from the given offers
func NewTable(offers []models.Offer) *Table {
	byCode := make(map[string]models.Offer, len(offers))
	filter := bloom.NewWithEstimates(uint(max(len(offers), 1)), 0.01)

	for _, offer := range offers {
		byCode[offer.Code] = offer
		filter.AddString(offer.Code)
	}

	return &Table{
		offers: byCode,
		filter: filter,
	}
}

// NewDefaultTable creates the offer table with the static storefront
// promotions
func NewDefaultTable() *Table {
	return NewTable([]models.Offer{
		{Code: "FIRST30", Title: "First Order Special", Description: "Get 30% off on your first biryani order", DiscountPercent: 30, MinOrder: 200, ValidUntil: "Dec 31"},
		{Code: "WEEKEND20", Title: "Weekend Feast", Description: "Free delivery + 20% off on weekend orders", DiscountPercent: 20, MinOrder: 300, ValidUntil: "This Weekend"},
		{Code: "FAMILY25", Title: "Family Pack", Description: "Order for 4+ people and save big", DiscountPercent: 25, MinOrder: 800, ValidUntil: "Dec 25"},
	})
}

// Lookup returns the offer for a coupon code, or ErrInvalidCoupon if
// no offer matches
func (t *Table) Lookup(code string) (*models.Offer, error) {
	if !t.filter.TestString(code) {
		return nil, ErrInvalidCoupon
	}

	offer, exists := t.offers[code]
	if !exists {
		// Bloom filter false positive
		return nil, ErrInvalidCoupon
	}

	return &offer, nil
}

// All returns every offer in the table
func (t *Table) All() []models.Offer {
	offers := make([]models.Offer, 0, len(t.offers))
	for _, code := range t.codes() {
		offers = append(offers, t.offers[code])
	}
	return offers
}

// codes returns the coupon codes in a stable order
func (t *Table) codes() []string {
	codes := make([]string, 0, len(t.offers))
	for code := range t.offers {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
