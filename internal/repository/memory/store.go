// Package memory implements the repository contracts over process-local
// slices. All state is volatile; a restart clears every record. Each entity
// kind owns its own mutex, records, and identifier counter, so identifier
// assignment and append form one critical section per kind.
package memory

import (
	"sync"

	"github.com/utafrali/demostore/internal/domain"
)

// Store owns every record collection and identifier counter in the process.
// It is passed into the per-kind repositories rather than held as package
// state, so tests can build isolated stores.
type Store struct {
	users     *table[domain.User]
	products  *table[domain.Product]
	addresses *table[domain.Address]
	reviews   *table[domain.Review]
	carts     *table[domain.Cart]
	orderIDs  *sequence
}

// NewStore creates an empty store with all counters at 1.
func NewStore() *Store {
	return &Store{
		users:     newTable[domain.User](),
		products:  newTable[domain.Product](),
		addresses: newTable[domain.Address](),
		reviews:   newTable[domain.Review](),
		carts:     newTable[domain.Cart](),
		orderIDs:  newSequence(),
	}
}

// table holds one kind's records and its identifier counter.
type table[T any] struct {
	mu      sync.Mutex
	records []T
	nextID  int
}

func newTable[T any]() *table[T] {
	return &table[T]{nextID: 1}
}

// insert assigns the next identifier, builds the record with it, and appends
// it, all under the table lock.
func (t *table[T]) insert(build func(id int) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec := build(t.nextID)
	t.records = append(t.records, rec)
	t.nextID++
	return rec
}

// snapshot returns a copy of the records in insertion order.
func (t *table[T]) snapshot() []T {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]T, len(t.records))
	copy(out, t.records)
	return out
}

// find returns the first record matching the predicate.
func (t *table[T]) find(match func(T) bool) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, rec := range t.records {
		if match(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// replace swaps the first record matching the predicate and reports whether
// a record was found.
func (t *table[T]) replace(match func(T) bool, rec T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.records {
		if match(t.records[i]) {
			t.records[i] = rec
			return true
		}
	}
	return false
}

// remove deletes the first record matching the predicate and reports whether
// a record was found.
func (t *table[T]) remove(match func(T) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.records {
		if match(t.records[i]) {
			t.records = append(t.records[:i], t.records[i+1:]...)
			return true
		}
	}
	return false
}

// sequence is a bare identifier counter for kinds that issue identifiers
// without storing records.
type sequence struct {
	mu     sync.Mutex
	nextID int
}

func newSequence() *sequence {
	return &sequence{nextID: 1}
}

func (s *sequence) next() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	return id
}
