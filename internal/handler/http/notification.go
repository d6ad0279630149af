package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/demostore/pkg/httputil"
	"github.com/utafrali/demostore/pkg/validator"

	"github.com/utafrali/demostore/internal/domain"
	"github.com/utafrali/demostore/internal/service"
)

// NotificationHandler handles HTTP requests for notification preference endpoints.
type NotificationHandler struct {
	service *service.NotificationService
	logger  *slog.Logger
}

// NewNotificationHandler creates a new notification HTTP handler.
func NewNotificationHandler(svc *service.NotificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{service: svc, logger: logger}
}

// PreferencesRequest is the JSON request body for updating notification
// preferences. Absent channels fall back to the store defaults.
type PreferencesRequest struct {
	OrderUpdates    *string `json:"order_updates" validate:"omitempty,oneof=email sms push none"`
	Promotions      *string `json:"promotions" validate:"omitempty,oneof=email sms push none"`
	ShippingUpdates *string `json:"shipping_updates" validate:"omitempty,oneof=email sms push none"`
	Marketing       *string `json:"marketing" validate:"omitempty,oneof=email sms push none"`
}

func (req *PreferencesRequest) toPreferences() domain.Preferences {
	prefs := domain.DefaultPreferences()
	if req.OrderUpdates != nil {
		prefs.OrderUpdates = domain.Channel(*req.OrderUpdates)
	}
	if req.Promotions != nil {
		prefs.Promotions = domain.Channel(*req.Promotions)
	}
	if req.ShippingUpdates != nil {
		prefs.ShippingUpdates = domain.Channel(*req.ShippingUpdates)
	}
	if req.Marketing != nil {
		prefs.Marketing = domain.Channel(*req.Marketing)
	}
	return prefs
}

// UpdatePreferences handles POST /users/{id}/notifications/preferences
func (h *NotificationHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req PreferencesRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	ack, err := h.service.UpdatePreferences(r.Context(), id, req.toPreferences())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: ack})
}
