package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/utafrali/demostore/pkg/errors"

	"github.com/utafrali/demostore/internal/domain"
)

func TestUpdatePreferences_EchoesValidatedSet(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewNotificationService(userRepo, newTestLogger())
	ctx := context.Background()

	userRepo.On("GetByID", ctx, 1).Return(&domain.User{ID: 1}, nil)

	prefs := domain.Preferences{
		OrderUpdates:    domain.ChannelPush,
		Promotions:      domain.ChannelNone,
		ShippingUpdates: domain.ChannelSMS,
		Marketing:       domain.ChannelEmail,
	}

	ack, err := svc.UpdatePreferences(ctx, 1, prefs)

	require.NoError(t, err)
	assert.Equal(t, 1, ack.UserID)
	assert.Equal(t, prefs, ack.Preferences)
	assert.WithinDuration(t, time.Now().UTC(), ack.UpdatedAt, time.Minute)
}

func TestUpdatePreferences_UserNotFound(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewNotificationService(userRepo, newTestLogger())
	ctx := context.Background()

	userRepo.On("GetByID", ctx, 99).Return(nil, apperrors.ErrNotFound)

	ack, err := svc.UpdatePreferences(ctx, 99, domain.DefaultPreferences())

	assert.Nil(t, ack)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "user 99 not found", appErr.Message)
}
