package app

import (
	"context"
	"fmt"
	"time"

	"github.com/utafrali/demostore/internal/domain"
	"github.com/utafrali/demostore/internal/repository"
)

func intPtr(v int) *int { return &v }

// seedDemoData populates the store with a small fixed dataset so the API is
// explorable out of the box. Seeded records go through the normal repository
// path, so they consume identifiers 1..n like any other create.
func seedDemoData(ctx context.Context, users repository.UserRepository, products repository.ProductRepository) error {
	demoUsers := []domain.User{
		{
			Name:      "John Doe",
			Email:     "john.doe@example.com",
			Age:       intPtr(30),
			CreatedAt: time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			Name:      "Jane Smith",
			Email:     "jane.smith@example.com",
			Age:       intPtr(25),
			CreatedAt: time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC),
		},
	}
	for i := range demoUsers {
		if err := users.Create(ctx, &demoUsers[i]); err != nil {
			return fmt.Errorf("seed user %q: %w", demoUsers[i].Email, err)
		}
	}

	demoProducts := []domain.Product{
		{Name: "Laptop", Price: 999.99, Description: "15-inch developer laptop", InStock: true},
		{Name: "Wireless Mouse", Price: 24.50, Description: "Two-button wireless mouse", InStock: true},
		{Name: "Mechanical Keyboard", Price: 89.00, Description: "Tenkeyless mechanical keyboard", InStock: false},
	}
	for i := range demoProducts {
		if err := products.Create(ctx, &demoProducts[i]); err != nil {
			return fmt.Errorf("seed product %q: %w", demoProducts[i].Name, err)
		}
	}

	return nil
}
