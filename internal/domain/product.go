package domain

// Product represents an item in the catalog. Prices are dollar amounts;
// the demo API mirrors its fixture data and does not use minor units.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	InStock     bool    `json:"in_stock"`
}
