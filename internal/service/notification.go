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

// NotificationService validates and echoes notification preference updates.
// The demo API persists nothing; only the user's existence is checked.
type NotificationService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(userRepo repository.UserRepository, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// UpdatePreferences checks the user exists and echoes back the validated
// preference set with an update timestamp.
func (s *NotificationService) UpdatePreferences(ctx context.Context, userID int, prefs domain.Preferences) (*domain.PreferencesAck, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("user", userID)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	s.logger.InfoContext(ctx, "notification preferences updated",
		slog.Int("user_id", userID),
		slog.String("order_updates", string(prefs.OrderUpdates)),
		slog.String("marketing", string(prefs.Marketing)),
	)

	return &domain.PreferencesAck{
		UserID:      userID,
		Preferences: prefs,
		UpdatedAt:   time.Now().UTC(),
	}, nil
}
