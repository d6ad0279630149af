package memory

import (
	"context"

	"github.com/utafrali/demostore/internal/domain"
)

// CartRepository implements repository.CartRepository over the in-memory store.
type CartRepository struct {
	store *Store
}

// NewCartRepository creates a memory-backed cart repository.
func NewCartRepository(store *Store) *CartRepository {
	return &CartRepository{store: store}
}

// Create assigns the next cart identifier and appends the cart.
func (r *CartRepository) Create(_ context.Context, c *domain.Cart) error {
	*c = r.store.carts.insert(func(id int) domain.Cart {
		rec := *c
		rec.CartID = id
		return rec
	})
	return nil
}
