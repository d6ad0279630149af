package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/demostore/internal/domain"
	"github.com/utafrali/demostore/internal/repository/memory"
)

func TestSeedDemoData(t *testing.T) {
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	productRepo := memory.NewProductRepository(store)
	ctx := context.Background()

	require.NoError(t, seedDemoData(ctx, userRepo, productRepo))

	users, err := userRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, 1, users[0].ID)
	assert.Equal(t, "John Doe", users[0].Name)
	assert.Equal(t, 2, users[1].ID)
	assert.Equal(t, "jane.smith@example.com", users[1].Email)

	// Seeded records carry their fixed creation dates.
	assert.Equal(t, time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC), users[0].CreatedAt)

	products, err := productRepo.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, products)
	assert.Equal(t, 1, products[0].ID)
}

func TestSeedDemoData_ConsumesIdentifiers(t *testing.T) {
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	productRepo := memory.NewProductRepository(store)
	ctx := context.Background()

	require.NoError(t, seedDemoData(ctx, userRepo, productRepo))

	// The next create continues the sequence after the seeded records.
	u := &domain.User{Name: "New User", Email: "new@example.com"}
	require.NoError(t, userRepo.Create(ctx, u))
	assert.Equal(t, 3, u.ID)
}
