package memory

import (
	"context"

	"github.com/utafrali/demostore/internal/domain"
)

// ReviewRepository implements repository.ReviewRepository over the in-memory store.
type ReviewRepository struct {
	store *Store
}

// NewReviewRepository creates a memory-backed review repository.
func NewReviewRepository(store *Store) *ReviewRepository {
	return &ReviewRepository{store: store}
}

// Create assigns the next review identifier and appends the review.
func (r *ReviewRepository) Create(_ context.Context, rv *domain.Review) error {
	*rv = r.store.reviews.insert(func(id int) domain.Review {
		rec := *rv
		rec.ID = id
		return rec
	})
	return nil
}
