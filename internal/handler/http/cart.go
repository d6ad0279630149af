package http

import (
	"log/slog"
	"net/http"

	"github.com/utafrali/demostore/pkg/httputil"
	"github.com/utafrali/demostore/pkg/validator"

	"github.com/utafrali/demostore/internal/service"
)

// CartHandler handles HTTP requests for shopping cart endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{service: svc, logger: logger}
}

// CartItemRequest is one requested line item.
type CartItemRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gte=1,lte=100"`
}

// CreateCartRequest is the JSON request body for creating a cart.
type CreateCartRequest struct {
	Items      []CartItemRequest `json:"items" validate:"required,min=1,max=50,dive"`
	CouponCode string            `json:"coupon_code" validate:"omitempty,max=20"`
}

// CreateCart handles POST /cart?user_id
func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	var userID *int
	if v := r.URL.Query().Get("user_id"); v != "" {
		id, ok := httputil.ParseID(w, "user_id", v)
		if !ok {
			return
		}
		userID = &id
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req CreateCartRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	items := make([]service.CartItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.CartItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	cart, err := h.service.CreateCart(r.Context(), userID, service.CreateCartInput{
		Items:      items,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: cart})
}
