package repository

import (
	"context"

	"github.com/utafrali/demostore/internal/domain"
)

// UserRepository defines the store contract for users.
type UserRepository interface {
	// Create assigns the next user identifier and appends the user to the
	// store. Identifier assignment and append are a single atomic step.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by identifier.
	GetByID(ctx context.Context, id int) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns a snapshot of all users in insertion order.
	List(ctx context.Context) ([]domain.User, error)

	// Update replaces the stored user with the same identifier.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user by identifier. Dependent addresses and reviews
	// are left in place.
	Delete(ctx context.Context, id int) error
}

// ProductRepository defines the store contract for products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int) (*domain.Product, error)

	// GetByIDs returns the subset of the requested products that exist,
	// keyed by identifier. Callers detect missing references by comparing
	// against the requested set.
	GetByIDs(ctx context.Context, ids []int) (map[int]domain.Product, error)

	// List returns a snapshot of all products in insertion order.
	List(ctx context.Context) ([]domain.Product, error)
}

// AddressRepository defines the store contract for addresses (append-only).
type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) error
}

// ReviewRepository defines the store contract for reviews (append-only).
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
}

// CartRepository defines the store contract for carts (append-only).
type CartRepository interface {
	Create(ctx context.Context, cart *domain.Cart) error
}

// OrderSequence issues order identifiers. Orders themselves are never stored;
// only the counter lives for the process lifetime so identifiers stay unique
// and strictly increasing.
type OrderSequence interface {
	NextID(ctx context.Context) (int, error)
}
