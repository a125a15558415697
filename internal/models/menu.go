package models

// SpiceLevel indicates how hot a dish is
type SpiceLevel string

const (
	SpiceMild   SpiceLevel = "Mild"
	SpiceMedium SpiceLevel = "Medium"
	SpiceSpicy  SpiceLevel = "Spicy"
)

// MenuItem represents a dish available for order
// Prices are whole rupees
type MenuItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       int        `json:"price"`
	Category    string     `json:"category"`
	SpiceLevel  SpiceLevel `json:"spiceLevel"`
	Veg         bool       `json:"isVeg"`
}
