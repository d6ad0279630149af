package http

import (
	"log/slog"
	"net/http"

	"github.com/utafrali/demostore/pkg/httputil"
	"github.com/utafrali/demostore/pkg/validator"

	"github.com/utafrali/demostore/internal/service"
)

// OrderHandler handles HTTP requests for order endpoints.
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order HTTP handler.
func NewOrderHandler(svc *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{service: svc, logger: logger}
}

// OrderItemRequest is one requested line item.
type OrderItemRequest struct {
	ProductID           int    `json:"product_id" validate:"required,gt=0"`
	Quantity            int    `json:"quantity" validate:"required,gte=1,lte=100"`
	SpecialInstructions string `json:"special_instructions" validate:"omitempty,max=500"`
}

// CreateOrderRequest is the JSON request body for placing an order. The
// shipping address is a nested, fully validated shape.
type CreateOrderRequest struct {
	UserID          int                   `json:"user_id" validate:"required,gt=0"`
	Items           []OrderItemRequest    `json:"items" validate:"required,min=1,max=50,dive"`
	ShippingAddress *CreateAddressRequest `json:"shipping_address" validate:"omitempty"`
	Notes           string                `json:"notes" validate:"omitempty,max=1000"`
	PaymentMethod   string                `json:"payment_method" validate:"omitempty,max=50"`
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req CreateOrderRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	items := make([]service.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.OrderItemInput{
			ProductID:           item.ProductID,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		}
	}

	input := service.CreateOrderInput{
		UserID:        req.UserID,
		Items:         items,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
	}
	if req.ShippingAddress != nil {
		input.ShippingAddress = &service.CreateAddressInput{
			Street:    req.ShippingAddress.Street,
			City:      req.ShippingAddress.City,
			State:     req.ShippingAddress.State,
			ZipCode:   req.ShippingAddress.ZipCode,
			Country:   req.ShippingAddress.Country,
			IsPrimary: req.ShippingAddress.IsPrimary,
		}
	}

	order, err := h.service.CreateOrder(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: order})
}
