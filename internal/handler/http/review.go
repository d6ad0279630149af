package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/demostore/pkg/httputil"
	"github.com/utafrali/demostore/pkg/validator"

	"github.com/utafrali/demostore/internal/service"
)

// ReviewHandler handles HTTP requests for product review endpoints.
type ReviewHandler struct {
	service *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new review HTTP handler.
func NewReviewHandler(svc *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{service: svc, logger: logger}
}

// CreateReviewRequest is the JSON request body for creating a review.
type CreateReviewRequest struct {
	Rating           int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title            string `json:"title" validate:"required,min=1,max=200"`
	Comment          string `json:"comment" validate:"required,min=10,max=2000"`
	VerifiedPurchase bool   `json:"verified_purchase"`
}

// CreateReview handles POST /products/{id}/reviews?user_id
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	userIDParam := r.URL.Query().Get("user_id")
	if userIDParam == "" {
		httputil.WriteFieldError(w, "user_id", "is required")
		return
	}
	userID, ok := httputil.ParseID(w, "user_id", userIDParam)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req CreateReviewRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	review, err := h.service.CreateReview(r.Context(), productID, userID, service.CreateReviewInput{
		Rating:           req.Rating,
		Title:            req.Title,
		Comment:          req.Comment,
		VerifiedPurchase: req.VerifiedPurchase,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: review})
}
