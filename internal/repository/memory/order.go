package memory

import "context"

// OrderSequence implements repository.OrderSequence over the in-memory store.
// Orders are never persisted; only their counter survives between requests.
type OrderSequence struct {
	store *Store
}

// NewOrderSequence creates a memory-backed order identifier sequence.
func NewOrderSequence(store *Store) *OrderSequence {
	return &OrderSequence{store: store}
}

// NextID issues the next order identifier.
func (s *OrderSequence) NextID(_ context.Context) (int, error) {
	return s.store.orderIDs.next(), nil
}
