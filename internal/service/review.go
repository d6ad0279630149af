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

// ReviewService implements the business logic for product reviews.
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// CreateReviewInput holds the parameters for creating a review.
type CreateReviewInput struct {
	Rating           int
	Title            string
	Comment          string
	VerifiedPurchase bool
}

// CreateReview creates a review for an existing product by an existing user.
// The product is checked first, then the user; either missing reference fails
// the whole operation before any mutation.
func (s *ReviewService) CreateReview(ctx context.Context, productID, userID int, input CreateReviewInput) (*domain.Review, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("product", productID)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("user", userID)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	review := &domain.Review{
		ProductID:        productID,
		UserID:           userID,
		Rating:           input.Rating,
		Title:            input.Title,
		Comment:          input.Comment,
		VerifiedPurchase: input.VerifiedPurchase,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.InfoContext(ctx, "review created",
		slog.Int("review_id", review.ID),
		slog.Int("product_id", productID),
		slog.Int("user_id", userID),
		slog.Int("rating", input.Rating),
	)

	return review, nil
}
