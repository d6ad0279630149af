package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apperrors "github.com/utafrali/demostore/pkg/errors"
	"github.com/utafrali/demostore/pkg/pagination"

	"github.com/utafrali/demostore/internal/domain"
	"github.com/utafrali/demostore/internal/repository"
)

// ProductService implements the business logic for product operations.
type ProductService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// CreateProductInput holds the parameters for creating a product.
type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	InStock     bool
}

// ProductFilter holds the post-pagination filters for product listing.
// Nil fields are not applied.
type ProductFilter struct {
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
}

// ListProducts returns the skip/limit window over the product store, then
// applies the price and stock filters. Filters run after the window is taken,
// so a page can come back shorter than the limit even when more matches exist
// beyond it; clients depend on this ordering.
func (s *ProductService) ListProducts(ctx context.Context, params pagination.Params, filter ProductFilter) ([]domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	start, end := params.Window(len(products))
	page := products[start:end]

	filtered := make([]domain.Product, 0, len(page))
	for _, p := range page {
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.InStock != nil && p.InStock != *filter.InStock {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

// GetProduct retrieves a product by identifier.
func (s *ProductService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("product", id)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		InStock:     input.InStock,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.Int("product_id", product.ID),
		slog.String("name", product.Name),
	)

	return product, nil
}
