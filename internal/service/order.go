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

// OrderService implements the business logic for placing orders. Orders are
// computed and returned but never stored.
type OrderService struct {
	orderSeq    repository.OrderSequence
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderSeq repository.OrderSequence,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		orderSeq:    orderSeq,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// OrderItemInput is one requested line item. SpecialInstructions is accepted
// and validated but not carried into the response, matching the fixture API.
type OrderItemInput struct {
	ProductID           int
	Quantity            int
	SpecialInstructions string
}

// CreateOrderInput holds the parameters for placing an order. The shipping
// address and payment method are validated shapes only.
type CreateOrderInput struct {
	UserID          int
	Items           []OrderItemInput
	ShippingAddress *CreateAddressInput
	Notes           string
	PaymentMethod   string
}

// CreateOrder validates the user and every referenced product, then computes
// the order total in a single pass. A missing user fails first; missing
// products fail with the complete set of absent identifiers. No store
// mutation happens on any path except the order counter advance on success.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("user", input.UserID)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	ids := make([]int, len(input.Items))
	for i, item := range input.Items {
		ids[i] = item.ProductID
	}

	found, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, apperrors.NotFoundIDs("product", missing)
	}

	products := make([]domain.Product, len(input.Items))
	var total float64
	for i, item := range input.Items {
		product := found[item.ProductID]
		products[i] = product
		total += product.Price * float64(item.Quantity)
	}

	orderID, err := s.orderSeq.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("next order id: %w", err)
	}

	order := &domain.Order{
		OrderID:   orderID,
		UserID:    input.UserID,
		Products:  products,
		Total:     domain.Round2(total),
		Notes:     input.Notes,
		CreatedAt: time.Now().UTC(),
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.Int("order_id", order.OrderID),
		slog.Int("user_id", order.UserID),
		slog.Int("items", len(input.Items)),
		slog.Float64("total", order.Total),
	)

	return order, nil
}
