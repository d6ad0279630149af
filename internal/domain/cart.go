package domain

import (
	"math"
	"time"
)

// Cart represents a shopping cart. UserID is nil for guest carts.
type Cart struct {
	CartID     int        `json:"cart_id"`
	UserID     *int       `json:"user_id"`
	Items      []CartItem `json:"items"`
	Total      float64    `json:"total"`
	CouponCode string     `json:"coupon_code,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CartItem is one line item in a cart. Price and Subtotal snapshot the
// product price at cart-creation time.
type CartItem struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

// TotalAmount sums the line-item subtotals, rounded to two decimal places.
func (c *Cart) TotalAmount() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal
	}
	return Round2(total)
}

// ItemCount returns the total quantity across all line items.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Round2 rounds a dollar amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
