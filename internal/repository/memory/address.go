package memory

import (
	"context"

	"github.com/utafrali/demostore/internal/domain"
)

// AddressRepository implements repository.AddressRepository over the in-memory store.
type AddressRepository struct {
	store *Store
}

// NewAddressRepository creates a memory-backed address repository.
func NewAddressRepository(store *Store) *AddressRepository {
	return &AddressRepository{store: store}
}

// Create assigns the next address identifier and appends the address.
func (r *AddressRepository) Create(_ context.Context, a *domain.Address) error {
	*a = r.store.addresses.insert(func(id int) domain.Address {
		rec := *a
		rec.ID = id
		return rec
	})
	return nil
}
