package domain

import "time"

// Order is the response shape for a placed order. Orders are computed on the
// fly and never stored; only their identifier counter persists for the
// process lifetime. Products carries the full product record for each line
// item, duplicated per item as the fixture API does.
type Order struct {
	OrderID   int       `json:"order_id"`
	UserID    int       `json:"user_id"`
	Products  []Product `json:"products"`
	Total     float64   `json:"total"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
