package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/demostore/pkg/httputil"
	"github.com/utafrali/demostore/pkg/pagination"
	"github.com/utafrali/demostore/pkg/validator"

	"github.com/utafrali/demostore/internal/service"
)

// ProductHandler handles HTTP requests for product endpoints.
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{service: svc, logger: logger}
}

// --- Request DTOs ---

// CreateProductRequest is the JSON request body for creating a product.
// InStock defaults to true when absent.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description"`
	InStock     *bool   `json:"in_stock"`
}

// --- Handlers ---

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params, perr := pagination.FromRequest(r)
	if perr != nil {
		httputil.WriteFieldError(w, perr.Field, perr.Message)
		return
	}

	var filter service.ProductFilter

	if v := r.URL.Query().Get("min_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			httputil.WriteFieldError(w, "min_price", "must be a non-negative number")
			return
		}
		filter.MinPrice = &price
	}
	if v := r.URL.Query().Get("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			httputil.WriteFieldError(w, "max_price", "must be a non-negative number")
			return
		}
		filter.MaxPrice = &price
	}
	if v := r.URL.Query().Get("in_stock"); v != "" {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			httputil.WriteFieldError(w, "in_stock", "must be a boolean")
			return
		}
		filter.InStock = &inStock
	}

	products, err := h.service.ListProducts(r.Context(), params, filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.NewListResponse(products, params.Skip, params.Limit))
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req CreateProductRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product, err := h.service.CreateProduct(r.Context(), service.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		InStock:     inStock,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: product})
}
