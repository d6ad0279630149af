package memory

import (
	"context"

	apperrors "github.com/utafrali/demostore/pkg/errors"

	"github.com/utafrali/demostore/internal/domain"
)

// ProductRepository implements repository.ProductRepository over the in-memory store.
type ProductRepository struct {
	store *Store
}

// NewProductRepository creates a memory-backed product repository.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// Create assigns the next product identifier and appends the product.
func (r *ProductRepository) Create(_ context.Context, p *domain.Product) error {
	*p = r.store.products.insert(func(id int) domain.Product {
		rec := *p
		rec.ID = id
		return rec
	})
	return nil
}

// GetByID retrieves a product by identifier.
func (r *ProductRepository) GetByID(_ context.Context, id int) (*domain.Product, error) {
	rec, ok := r.store.products.find(func(p domain.Product) bool { return p.ID == id })
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &rec, nil
}

// GetByIDs returns the subset of the requested products that exist, keyed by
// identifier.
func (r *ProductRepository) GetByIDs(_ context.Context, ids []int) (map[int]domain.Product, error) {
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	found := make(map[int]domain.Product, len(want))
	for _, p := range r.store.products.snapshot() {
		if _, ok := want[p.ID]; ok {
			found[p.ID] = p
		}
	}
	return found, nil
}

// List returns a snapshot of all products in insertion order.
func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	return r.store.products.snapshot(), nil
}
