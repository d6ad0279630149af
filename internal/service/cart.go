package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/utafrali/demostore/pkg/errors"

	"github.com/utafrali/demostore/internal/domain"
	"github.com/utafrali/demostore/internal/repository"
)

// CartService implements the business logic for shopping carts.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// CartItemInput is one requested line item.
type CartItemInput struct {
	ProductID int
	Quantity  int
}

// CreateCartInput holds the parameters for creating a cart.
type CreateCartInput struct {
	Items      []CartItemInput
	CouponCode string
}

// CreateCart creates a cart, snapshotting each product's price into its line
// item. The owning user (when given) and every referenced product must exist;
// a failure lists the complete set of missing product identifiers and leaves
// the store untouched.
func (s *CartService) CreateCart(ctx context.Context, userID *int, input CreateCartInput) (*domain.Cart, error) {
	if userID != nil {
		if _, err := s.userRepo.GetByID(ctx, *userID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NotFound("user", *userID)
			}
			return nil, fmt.Errorf("get user: %w", err)
		}
	}

	ids := make([]int, len(input.Items))
	for i, item := range input.Items {
		ids[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	if missing := missingIDs(ids, products); len(missing) > 0 {
		return nil, apperrors.NotFoundIDs("product", missing)
	}

	items := make([]domain.CartItem, len(input.Items))
	var total float64
	for i, item := range input.Items {
		product := products[item.ProductID]
		subtotal := product.Price * float64(item.Quantity)
		total += subtotal
		items[i] = domain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Subtotal:  subtotal,
		}
	}

	cart := &domain.Cart{
		UserID:     userID,
		Items:      items,
		Total:      domain.Round2(total),
		CouponCode: input.CouponCode,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.cartRepo.Create(ctx, cart); err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	s.logger.InfoContext(ctx, "cart created",
		slog.Int("cart_id", cart.CartID),
		slog.Int("items", len(cart.Items)),
		slog.Float64("total", cart.Total),
	)

	return cart, nil
}

// missingIDs returns the requested identifiers absent from the found set,
// deduplicated.
func missingIDs(requested []int, found map[int]domain.Product) []int {
	seen := make(map[int]struct{})
	var missing []int
	for _, id := range requested {
		if _, ok := found[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		missing = append(missing, id)
	}
	return missing
}
