package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/demostore/pkg/health"
	"github.com/utafrali/demostore/pkg/middleware"

	"github.com/utafrali/demostore/internal/auth"
	"github.com/utafrali/demostore/internal/repository/memory"
	"github.com/utafrali/demostore/internal/service"
)

// newTestServer builds the full stack over a fresh in-memory store.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	productRepo := memory.NewProductRepository(store)
	addressRepo := memory.NewAddressRepository(store)
	reviewRepo := memory.NewReviewRepository(store)
	cartRepo := memory.NewCartRepository(store)
	orderSeq := memory.NewOrderSequence(store)

	tokens := auth.NewTokenManager("test-secret-key-for-testing", time.Hour)

	userService := service.NewUserService(userRepo, addressRepo, tokens, logger)
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderSeq, productRepo, userRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, productRepo, userRepo, logger)
	cartService := service.NewCartService(cartRepo, productRepo, userRepo, logger)
	notificationService := service.NewNotificationService(userRepo, logger)

	return NewRouter(
		userService,
		productService,
		orderService,
		reviewService,
		cartService,
		notificationService,
		health.NewHandler("demostore"),
		logger,
		RouterConfig{
			ServiceName: "demostore",
			CORS:        middleware.DefaultCORSConfig(),
		},
	)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	r := httptest.NewRequest(method, path, reader)
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Data, "expected a data payload, got error: %+v", env.Error)
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

type userPayload struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

type productPayload struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	InStock bool    `json:"in_stock"`
}

func createUser(t *testing.T, h http.Handler, name, email string) userPayload {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"email":%q,"age":30}`, name, email)
	rec := doJSON(t, h, "POST", "/users", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var u userPayload
	decodeData(t, rec, &u)
	return u
}

func createProduct(t *testing.T, h http.Handler, name string, price float64) productPayload {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"price":%g}`, name, price)
	rec := doJSON(t, h, "POST", "/products", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var p productPayload
	decodeData(t, rec, &p)
	return p
}

// --- Infrastructure endpoints ---

func TestHealthEndpoints(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, "GET", "/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestServiceInfoEndpoint(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "demostore")
}

func TestContentTypeEnforced(t *testing.T) {
	h := newTestServer(t)

	r := httptest.NewRequest("POST", "/users", bytes.NewBufferString(`{"name":"x","email":"a@b.com"}`))
	r.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

// --- Users ---

func TestCreateUser_SequentialIDs(t *testing.T) {
	h := newTestServer(t)

	first := createUser(t, h, "John Doe", "john@example.com")
	second := createUser(t, h, "Jane Smith", "jane@example.com")

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestListUsers_EmptyStoreReturnsEmptyList(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/users?skip=0&limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}

func TestListUsers_SearchFilter(t *testing.T) {
	h := newTestServer(t)
	createUser(t, h, "John Doe", "john@example.com")
	createUser(t, h, "Jane Smith", "jane@example.com")

	rec := doJSON(t, h, "GET", "/users?search=jane", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var users []userPayload
	decodeData(t, rec, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "Jane Smith", users[0].Name)
}

func TestListUsers_InvalidLimit(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/users?limit=500", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Fields, "limit")
}

func TestGetUser_NotFoundNamesID(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/users/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "user 42 not found", env.Error.Message)
}

func TestGetUser_NonNumericID(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/users/abc", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateUser_ValidationFailures(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.com"}`},
		{"bad email", `{"name":"x","email":"nope"}`},
		{"age too high", `{"name":"x","email":"a@b.com","age":200}`},
		{"negative age", `{"name":"x","email":"a@b.com","age":-1}`},
		{"malformed json", `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, "POST", "/users", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestUpdateUser_AgeOnlyPreservesNameAndEmail(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")

	rec := doJSON(t, h, "PUT", fmt.Sprintf("/users/%d", u.ID), `{"age":31}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated userPayload
	decodeData(t, rec, &updated)
	assert.Equal(t, "John Doe", updated.Name)
	assert.Equal(t, "john@example.com", updated.Email)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 31, *updated.Age)
}

func TestDeleteUser_ThenGetIs404(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")

	rec := doJSON(t, h, "DELETE", fmt.Sprintf("/users/%d", u.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, "GET", fmt.Sprintf("/users/%d", u.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser_IDNotReused(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")

	doJSON(t, h, "DELETE", fmt.Sprintf("/users/%d", u.ID), "")

	next := createUser(t, h, "Jane Smith", "jane@example.com")
	assert.Equal(t, u.ID+1, next.ID)
}

// --- Products ---

func TestCreateProduct_ZeroAndNegativePriceRejected(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/products", `{"name":"Freebie","price":0}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, h, "POST", "/products", `{"name":"Refund","price":-5}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateProduct_InStockDefaultsTrue(t *testing.T) {
	h := newTestServer(t)

	p := createProduct(t, h, "Laptop", 999.99)
	assert.True(t, p.InStock)
}

func TestCreateProduct_ExplicitInStockFalse(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/products", `{"name":"Keyboard","price":89,"in_stock":false}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var p productPayload
	decodeData(t, rec, &p)
	assert.False(t, p.InStock)
}

func TestListProducts_Filters(t *testing.T) {
	h := newTestServer(t)
	createProduct(t, h, "Cheap", 5)
	createProduct(t, h, "Mid", 50)
	createProduct(t, h, "Expensive", 500)

	rec := doJSON(t, h, "GET", "/products?min_price=10&max_price=100", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var products []productPayload
	decodeData(t, rec, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Mid", products[0].Name)
}

func TestListProducts_BadFilterValues(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/products?min_price=cheap", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, h, "GET", "/products?max_price=-1", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, h, "GET", "/products?in_stock=maybe", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetProduct_NotFound(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "GET", "/products/7", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "product 7 not found", env.Error.Message)
}

// --- Reviews ---

func TestCreateReview_RatingBounds(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")
	p := createProduct(t, h, "Laptop", 999.99)
	path := fmt.Sprintf("/products/%d/reviews?user_id=%d", p.ID, u.ID)

	body := func(rating int) string {
		return fmt.Sprintf(`{"rating":%d,"title":"ok","comment":"a comment long enough to pass"}`, rating)
	}

	rec := doJSON(t, h, "POST", path, body(6))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, h, "POST", path, body(0))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, h, "POST", path, body(3))
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestCreateReview_ShortCommentRejected(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")
	p := createProduct(t, h, "Laptop", 999.99)

	path := fmt.Sprintf("/products/%d/reviews?user_id=%d", p.ID, u.ID)
	rec := doJSON(t, h, "POST", path, `{"rating":4,"title":"ok","comment":"short"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateReview_MissingUserIDParam(t *testing.T) {
	h := newTestServer(t)
	p := createProduct(t, h, "Laptop", 999.99)

	path := fmt.Sprintf("/products/%d/reviews", p.ID)
	rec := doJSON(t, h, "POST", path, `{"rating":4,"title":"ok","comment":"a comment long enough"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateReview_UnknownProduct(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")

	path := fmt.Sprintf("/products/99/reviews?user_id=%d", u.ID)
	rec := doJSON(t, h, "POST", path, `{"rating":4,"title":"ok","comment":"a comment long enough"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "product 99 not found", env.Error.Message)
}

// --- Carts ---

func TestCreateCart_TotalComputation(t *testing.T) {
	h := newTestServer(t)
	p1 := createProduct(t, h, "Widget", 10)
	p2 := createProduct(t, h, "Gadget", 15)

	body := fmt.Sprintf(`{"items":[{"product_id":%d,"quantity":2},{"product_id":%d,"quantity":1}]}`, p1.ID, p2.ID)
	rec := doJSON(t, h, "POST", "/cart", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var cart struct {
		CartID int `json:"cart_id"`
		Items  []struct {
			ProductID int     `json:"product_id"`
			Quantity  int     `json:"quantity"`
			Price     float64 `json:"price"`
			Subtotal  float64 `json:"subtotal"`
		} `json:"items"`
		Total float64 `json:"total"`
	}
	decodeData(t, rec, &cart)

	assert.Equal(t, 1, cart.CartID)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 20.0, cart.Items[0].Subtotal)
	assert.Equal(t, 35.0, cart.Total)
}

func TestCreateCart_MissingProductListsOnlyTheMissing(t *testing.T) {
	h := newTestServer(t)
	p := createProduct(t, h, "Widget", 10)

	body := fmt.Sprintf(`{"items":[{"product_id":%d,"quantity":1},{"product_id":99,"quantity":1}]}`, p.ID)
	rec := doJSON(t, h, "POST", "/cart", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "products not found: 99", env.Error.Message)

	// The failed attempt must not consume a cart identifier: the first
	// successful cart still gets id 1.
	good := fmt.Sprintf(`{"items":[{"product_id":%d,"quantity":1}]}`, p.ID)
	rec = doJSON(t, h, "POST", "/cart", good)
	require.Equal(t, http.StatusCreated, rec.Code)
	var cart struct {
		CartID int `json:"cart_id"`
	}
	decodeData(t, rec, &cart)
	assert.Equal(t, 1, cart.CartID)
}

func TestCreateCart_EmptyItemsRejected(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/cart", `{"items":[]}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateCart_QuantityBounds(t *testing.T) {
	h := newTestServer(t)
	p := createProduct(t, h, "Widget", 10)

	rec := doJSON(t, h, "POST", "/cart", fmt.Sprintf(`{"items":[{"product_id":%d,"quantity":0}]}`, p.ID))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, h, "POST", "/cart", fmt.Sprintf(`{"items":[{"product_id":%d,"quantity":101}]}`, p.ID))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateCart_UnknownOwner(t *testing.T) {
	h := newTestServer(t)
	p := createProduct(t, h, "Widget", 10)

	body := fmt.Sprintf(`{"items":[{"product_id":%d,"quantity":1}]}`, p.ID)
	rec := doJSON(t, h, "POST", "/cart?user_id=42", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "user 42 not found", env.Error.Message)
}

// --- Orders ---

func TestCreateOrder_Success(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")
	p1 := createProduct(t, h, "Widget", 10)
	p2 := createProduct(t, h, "Gadget", 7.5)

	body := fmt.Sprintf(
		`{"user_id":%d,"items":[{"product_id":%d,"quantity":2},{"product_id":%d,"quantity":2}],"notes":"leave at door"}`,
		u.ID, p1.ID, p2.ID,
	)
	rec := doJSON(t, h, "POST", "/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var order struct {
		OrderID  int              `json:"order_id"`
		UserID   int              `json:"user_id"`
		Products []productPayload `json:"products"`
		Total    float64          `json:"total"`
		Notes    string           `json:"notes"`
	}
	decodeData(t, rec, &order)

	assert.Equal(t, 1, order.OrderID)
	assert.Equal(t, u.ID, order.UserID)
	assert.Equal(t, 35.0, order.Total)
	assert.Equal(t, "leave at door", order.Notes)
	assert.Len(t, order.Products, 2)
}

func TestCreateOrder_WithShippingAddress(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")
	p := createProduct(t, h, "Widget", 10)

	body := fmt.Sprintf(
		`{"user_id":%d,"items":[{"product_id":%d,"quantity":1}],"shipping_address":{"street":"123 Main St","city":"Springfield","state":"IL","zip_code":"62701"},"payment_method":"credit_card"}`,
		u.ID, p.ID,
	)
	rec := doJSON(t, h, "POST", "/orders", body)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestCreateOrder_BadShippingAddressRejected(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")
	p := createProduct(t, h, "Widget", 10)

	body := fmt.Sprintf(
		`{"user_id":%d,"items":[{"product_id":%d,"quantity":1}],"shipping_address":{"street":"123 Main St","city":"Springfield","state":"illinois","zip_code":"nope"}}`,
		u.ID, p.ID,
	)
	rec := doJSON(t, h, "POST", "/orders", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateOrder_MissingProducts(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")

	body := fmt.Sprintf(`{"user_id":%d,"items":[{"product_id":7,"quantity":1},{"product_id":3,"quantity":1}]}`, u.ID)
	rec := doJSON(t, h, "POST", "/orders", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "products not found: 3, 7", env.Error.Message)
}

func TestCreateOrder_UnknownUser(t *testing.T) {
	h := newTestServer(t)
	p := createProduct(t, h, "Widget", 10)

	body := fmt.Sprintf(`{"user_id":42,"items":[{"product_id":%d,"quantity":1}]}`, p.ID)
	rec := doJSON(t, h, "POST", "/orders", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "user 42 not found", env.Error.Message)
}

// --- Addresses ---

func TestCreateAddress_CountryDefaultsUSA(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")

	path := fmt.Sprintf("/users/%d/addresses", u.ID)
	rec := doJSON(t, h, "POST", path, `{"street":"123 Main St","city":"Springfield","state":"IL","zip_code":"62701"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var address struct {
		ID      int    `json:"id"`
		UserID  int    `json:"user_id"`
		Country string `json:"country"`
	}
	decodeData(t, rec, &address)
	assert.Equal(t, 1, address.ID)
	assert.Equal(t, u.ID, address.UserID)
	assert.Equal(t, "USA", address.Country)
}

func TestCreateAddress_BadZipAndState(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")
	path := fmt.Sprintf("/users/%d/addresses", u.ID)

	rec := doJSON(t, h, "POST", path, `{"street":"x","city":"y","state":"IL","zip_code":"1234"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, h, "POST", path, `{"street":"x","city":"y","state":"ill","zip_code":"62701"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateAddress_UnknownUser(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/users/42/addresses", `{"street":"x","city":"y","state":"IL","zip_code":"62701"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// --- Auth ---

func TestRegister_ThenLogin(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/auth/register",
		`{"name":"John Doe","email":"john@example.com","password":"SecurePass123","confirm_password":"SecurePass123"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var u userPayload
	decodeData(t, rec, &u)
	assert.Equal(t, 1, u.ID)

	// The login flow never verifies the password, so any value works.
	rec = doJSON(t, h, "POST", "/auth/login", `{"email":"john@example.com","password":"anything-goes"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		UserID      int    `json:"user_id"`
		ExpiresIn   int    `json:"expires_in"`
	}
	decodeData(t, rec, &token)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, u.ID, token.UserID)
	assert.Equal(t, 3600, token.ExpiresIn)
}

func TestRegister_PasswordMismatchCreatesNoUser(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/auth/register",
		`{"name":"John Doe","email":"john@example.com","password":"SecurePass123","confirm_password":"Different456"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "passwords do not match", env.Error.Message)

	// No user exists for that email, so login is rejected.
	rec = doJSON(t, h, "POST", "/auth/login", `{"email":"john@example.com","password":"SecurePass123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h := newTestServer(t)

	body := `{"name":"John Doe","email":"john@example.com","password":"SecurePass123","confirm_password":"SecurePass123"}`
	rec := doJSON(t, h, "POST", "/auth/register", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, "POST", "/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "already registered")
}

func TestRegister_ShortPassword(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/auth/register",
		`{"name":"John Doe","email":"john@example.com","password":"short","confirm_password":"short"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/auth/login", `{"email":"nobody@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "invalid email or password", env.Error.Message)
}

// --- Notification preferences ---

func TestUpdatePreferences_EchoWithDefaults(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")

	path := fmt.Sprintf("/users/%d/notifications/preferences", u.ID)
	rec := doJSON(t, h, "POST", path, `{"marketing":"push"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var ack struct {
		UserID      int `json:"user_id"`
		Preferences struct {
			OrderUpdates    string `json:"order_updates"`
			Promotions      string `json:"promotions"`
			ShippingUpdates string `json:"shipping_updates"`
			Marketing       string `json:"marketing"`
		} `json:"preferences"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	decodeData(t, rec, &ack)

	assert.Equal(t, u.ID, ack.UserID)
	assert.Equal(t, "push", ack.Preferences.Marketing)
	// Absent categories fall back to the defaults.
	assert.Equal(t, "email", ack.Preferences.OrderUpdates)
	assert.Equal(t, "sms", ack.Preferences.ShippingUpdates)
	assert.False(t, ack.UpdatedAt.IsZero())
}

func TestUpdatePreferences_InvalidChannel(t *testing.T) {
	h := newTestServer(t)
	u := createUser(t, h, "John Doe", "john@example.com")

	path := fmt.Sprintf("/users/%d/notifications/preferences", u.ID)
	rec := doJSON(t, h, "POST", path, `{"order_updates":"carrier-pigeon"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdatePreferences_UnknownUser(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, "POST", "/users/42/notifications/preferences", `{"marketing":"email"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
