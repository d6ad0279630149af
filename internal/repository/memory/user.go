package memory

import (
	"context"

	apperrors "github.com/utafrali/demostore/pkg/errors"

	"github.com/utafrali/demostore/internal/domain"
)

// UserRepository implements repository.UserRepository over the in-memory store.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a memory-backed user repository.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create assigns the next user identifier and appends the user.
func (r *UserRepository) Create(_ context.Context, u *domain.User) error {
	*u = r.store.users.insert(func(id int) domain.User {
		rec := *u
		rec.ID = id
		return rec
	})
	return nil
}

// GetByID retrieves a user by identifier.
func (r *UserRepository) GetByID(_ context.Context, id int) (*domain.User, error) {
	rec, ok := r.store.users.find(func(u domain.User) bool { return u.ID == id })
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &rec, nil
}

// GetByEmail retrieves a user by email address.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	rec, ok := r.store.users.find(func(u domain.User) bool { return u.Email == email })
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &rec, nil
}

// List returns a snapshot of all users in insertion order.
func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	return r.store.users.snapshot(), nil
}

// Update replaces the stored user with the same identifier.
func (r *UserRepository) Update(_ context.Context, u *domain.User) error {
	if !r.store.users.replace(func(rec domain.User) bool { return rec.ID == u.ID }, *u) {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a user by identifier.
func (r *UserRepository) Delete(_ context.Context, id int) error {
	if !r.store.users.remove(func(rec domain.User) bool { return rec.ID == id }) {
		return apperrors.ErrNotFound
	}
	return nil
}
