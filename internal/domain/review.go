package domain

import "time"

// Review represents a product review written by a user.
type Review struct {
	ID               int       `json:"id"`
	ProductID        int       `json:"product_id"`
	UserID           int       `json:"user_id"`
	Rating           int       `json:"rating"`
	Title            string    `json:"title"`
	Comment          string    `json:"comment"`
	VerifiedPurchase bool      `json:"verified_purchase"`
	CreatedAt        time.Time `json:"created_at"`
}
