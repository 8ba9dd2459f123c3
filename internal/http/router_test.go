package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/therajusah/Ecommerce-app/internal/app"
	"github.com/therajusah/Ecommerce-app/internal/auth"
	"github.com/therajusah/Ecommerce-app/internal/catalog"
	"github.com/therajusah/Ecommerce-app/internal/checkout"
	"github.com/therajusah/Ecommerce-app/internal/domain"
)

type testAPI struct {
	t       *testing.T
	handler http.Handler
	shop    *app.Shop
	token   string
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()
	shop := app.NewShop(catalog.Default(), auth.NewAuthenticator(), checkout.NewService(zap.NewNop()))
	api := &testAPI{
		t:    t,
		shop: shop,
		handler: NewRouter(shop, RouterConfig{
			RequestTimeout:     5 * time.Second,
			MaxRequestBodySize: 1 << 20,
		}, zap.NewNop()),
	}

	rec := api.do(http.MethodPost, "/api/v1/auth/login", LoginRequestDTO{Email: auth.DemoEmail, Password: auth.DemoPassword})
	require.Equal(t, http.StatusOK, rec.Code)
	var session auth.Session
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&session))
	api.token = session.Token
	return api
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func (a *testAPI) placeOrder() domain.Order {
	a.t.Helper()
	require.Equal(a.t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: 1}).Code)
	rec := a.do(http.MethodPost, "/api/v1/checkout", PlaceOrderRequestDTO{Address: validAddress()})
	require.Equal(a.t, http.StatusCreated, rec.Code)
	return decode[checkout.Result](a.t, rec).Order
}

func validAddress() domain.Address {
	return domain.Address{
		FullName: "Demo User",
		Phone:    "9876543210",
		Street:   "12 MG Road",
		City:     "Bengaluru",
		Pincode:  "560001",
	}
}

func TestHealth(t *testing.T) {
	api := setupAPI(t)

	rec := api.do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name         string
		body         LoginRequestDTO
		expectedHTTP int
		expectedCode string
	}{
		{"WrongPassword", LoginRequestDTO{Email: auth.DemoEmail, Password: "nope"}, http.StatusUnauthorized, "invalid_credentials"},
		{"MissingFields", LoginRequestDTO{Email: auth.DemoEmail}, http.StatusBadRequest, "validation_failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := setupAPI(t)
			api.token = ""

			rec := api.do(http.MethodPost, "/api/v1/auth/login", tt.body)

			assert.Equal(t, tt.expectedHTTP, rec.Code)
			assert.Equal(t, tt.expectedCode, decode[ErrorResponse](t, rec).Code)
		})
	}
}

func TestProtectedRoutes_RequireAuth(t *testing.T) {
	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/cart"},
		{http.MethodPost, "/api/v1/cart/items"},
		{http.MethodGet, "/api/v1/wishlist"},
		{http.MethodGet, "/api/v1/checkout/summary"},
		{http.MethodPost, "/api/v1/checkout"},
		{http.MethodGet, "/api/v1/orders"},
		{http.MethodPost, "/api/v1/orders/ORD-1/advance"},
	}

	api := setupAPI(t)
	api.token = "not-a-session"
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := api.do(rt.method, rt.path, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "unauthorized", decode[ErrorResponse](t, rec).Code)
		})
	}
}

func TestAuth_ProfileAndLogout(t *testing.T) {
	api := setupAPI(t)

	me := decode[auth.User](t, api.do(http.MethodGet, "/api/v1/auth/me", nil))
	assert.Equal(t, auth.DemoUserID, me.ID)

	rec := api.do(http.MethodPut, "/api/v1/auth/me", ProfileRequestDTO{Name: "Asha", Email: "invalid"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid Email", decode[ErrorResponse](t, rec).Error)

	rec = api.do(http.MethodPut, "/api/v1/auth/me", ProfileRequestDTO{Name: "Asha", Email: "asha@myshop.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Asha", decode[auth.User](t, rec).Name)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodPost, "/api/v1/auth/logout", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/v1/auth/me", nil).Code)
}

func TestProducts(t *testing.T) {
	api := setupAPI(t)

	all := decode[[]domain.Product](t, api.do(http.MethodGet, "/api/v1/products", nil))
	assert.Len(t, all, 8)

	clothing := decode[[]domain.Product](t, api.do(http.MethodGet, "/api/v1/products?category=Clothing", nil))
	require.Len(t, clothing, 1)
	assert.Equal(t, int64(3), clothing[0].ID)

	rec := api.do(http.MethodGet, "/api/v1/products?q=zzz", nil)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = api.do(http.MethodGet, "/api/v1/products/4", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Gaming Laptop", decode[domain.Product](t, rec).Name)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/products/99", nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/v1/products/abc", nil).Code)

	categories := decode[[]string](t, api.do(http.MethodGet, "/api/v1/categories", nil))
	assert.Equal(t, catalog.CategoryAll, categories[0])
}

func TestCart(t *testing.T) {
	api := setupAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)

	api.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: 1})
	rec = api.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	snap := decode[domain.CartSnapshot](t, rec)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
	assert.Equal(t, "5998", snap.Total.String())

	snap = decode[domain.CartSnapshot](t, api.do(http.MethodPut, "/api/v1/cart/items/1", UpdateQuantityRequestDTO{Quantity: 0}))
	assert.Equal(t, 1, snap.ItemsCount)

	rec = api.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: 8})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "out_of_stock", decode[ErrorResponse](t, rec).Code)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: 99}).Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{}).Code)

	snap = decode[domain.CartSnapshot](t, api.do(http.MethodDelete, "/api/v1/cart/items/1", nil))
	assert.Empty(t, snap.Lines)

	api.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: 2})
	snap = decode[domain.CartSnapshot](t, api.do(http.MethodDelete, "/api/v1/cart", nil))
	assert.Zero(t, snap.ItemsCount)
	assert.True(t, snap.Total.IsZero())
}

func TestWishlist(t *testing.T) {
	api := setupAPI(t)

	api.do(http.MethodPost, "/api/v1/wishlist/items", AddItemRequestDTO{ProductID: 2})
	rec := api.do(http.MethodPost, "/api/v1/wishlist/items", AddItemRequestDTO{ProductID: 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, decode[WishlistResponseDTO](t, rec).Count)

	member := decode[WishlistMembershipDTO](t, api.do(http.MethodGet, "/api/v1/wishlist/items/2", nil))
	assert.True(t, member.InWishlist)
	member = decode[WishlistMembershipDTO](t, api.do(http.MethodGet, "/api/v1/wishlist/items/3", nil))
	assert.False(t, member.InWishlist)

	list := decode[WishlistResponseDTO](t, api.do(http.MethodDelete, "/api/v1/wishlist/items/2", nil))
	assert.Zero(t, list.Count)

	api.do(http.MethodPost, "/api/v1/wishlist/items", AddItemRequestDTO{ProductID: 5})
	rec = api.do(http.MethodDelete, "/api/v1/wishlist", nil)
	assert.JSONEq(t, `{"items":[],"count":0}`, rec.Body.String())
}

func TestCheckout(t *testing.T) {
	api := setupAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/checkout", PlaceOrderRequestDTO{Address: validAddress()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "empty_cart", decode[ErrorResponse](t, rec).Code)

	api.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: 3})

	summary := decode[checkout.Summary](t, api.do(http.MethodGet, "/api/v1/checkout/summary", nil))
	assert.Equal(t, "706.82", summary.Total.String())
	assert.True(t, summary.FreeDelivery)

	addr := validAddress()
	addr.Pincode = "5600"
	rec = api.do(http.MethodPost, "/api/v1/checkout", PlaceOrderRequestDTO{Address: addr})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "validation_failed", resp.Code)
	assert.Equal(t, "Invalid Pincode", resp.Error)

	rec = api.do(http.MethodPost, "/api/v1/checkout", PlaceOrderRequestDTO{Address: validAddress()})
	require.Equal(t, http.StatusCreated, rec.Code)
	result := decode[checkout.Result](t, rec)
	assert.Equal(t, domain.OrderStatusConfirmed, result.Order.Status)
	assert.Equal(t, "599", result.Order.TotalAmount.String())
	assert.Equal(t, auth.DemoEmail, result.Order.UserEmail)

	snap := decode[domain.CartSnapshot](t, api.do(http.MethodGet, "/api/v1/cart", nil))
	assert.Zero(t, snap.ItemsCount)

	orders := decode[[]domain.Order](t, api.do(http.MethodGet, "/api/v1/orders", nil))
	require.Len(t, orders, 1)
	assert.Equal(t, result.Order.ID, orders[0].ID)
}

func TestOrders_Lifecycle(t *testing.T) {
	api := setupAPI(t)
	order := api.placeOrder()
	base := "/api/v1/orders/" + order.ID

	rec := api.do(http.MethodPost, base+"/advance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.OrderStatusProcessing, decode[domain.Order](t, rec).Status)

	rec = api.do(http.MethodPut, base+"/status", UpdateStatusRequestDTO{Status: domain.OrderStatusDelivered})
	require.Equal(t, http.StatusOK, rec.Code)
	delivered := decode[domain.Order](t, rec)
	assert.Equal(t, domain.OrderStatusDelivered, delivered.Status)
	for _, step := range delivered.TrackingSteps {
		assert.True(t, step.Completed)
	}

	tests := []struct {
		name         string
		method, path string
		body         any
		expectedHTTP int
		expectedCode string
	}{
		{"Backward", http.MethodPut, base + "/status", UpdateStatusRequestDTO{Status: domain.OrderStatusProcessing}, http.StatusConflict, "invalid_transition"},
		{"CancelDelivered", http.MethodPost, base + "/cancel", nil, http.StatusConflict, "not_cancellable"},
		{"AdvanceDelivered", http.MethodPost, base + "/advance", nil, http.StatusConflict, "order_terminal"},
		{"UnknownStatus", http.MethodPut, base + "/status", UpdateStatusRequestDTO{Status: "lost"}, http.StatusBadRequest, "invalid_status"},
		{"ShortTracking", http.MethodPut, base + "/tracking", UpdateTrackingRequestDTO{TrackingSteps: delivered.TrackingSteps[:3]}, http.StatusBadRequest, "invalid_tracking"},
		{"UnknownOrder", http.MethodGet, "/api/v1/orders/ORD-missing", nil, http.StatusNotFound, "not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.expectedHTTP, rec.Code)
			assert.Equal(t, tt.expectedCode, decode[ErrorResponse](t, rec).Code)
		})
	}
}

func TestOrders_Cancel(t *testing.T) {
	api := setupAPI(t)
	order := api.placeOrder()
	base := "/api/v1/orders/" + order.ID

	rec := api.do(http.MethodPost, base+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.OrderStatusCancelled, decode[domain.Order](t, rec).Status)

	// idempotent
	assert.Equal(t, http.StatusOK, api.do(http.MethodPost, base+"/cancel", nil).Code)

	rec = api.do(http.MethodPut, base+"/status", UpdateStatusRequestDTO{Status: domain.OrderStatusShipped})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "order_terminal", decode[ErrorResponse](t, rec).Code)
}

func TestOrders_UpdateTracking(t *testing.T) {
	api := setupAPI(t)
	order := api.placeOrder()

	steps := domain.CloneTrackingSteps(order.TrackingSteps)
	steps[1].Message = "Packed"
	rec := api.do(http.MethodPut, "/api/v1/orders/"+order.ID+"/tracking", UpdateTrackingRequestDTO{TrackingSteps: steps})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[domain.Order](t, rec)
	assert.Equal(t, "Packed", got.TrackingSteps[1].Message)
	assert.Equal(t, domain.OrderStatusConfirmed, got.Status)
}

func TestOrders_SessionsAreIsolated(t *testing.T) {
	api := setupAPI(t)
	order := api.placeOrder()

	rec := api.do(http.MethodPost, "/api/v1/auth/register", RegisterRequestDTO{Name: "Ravi", Email: "ravi@myshop.com", Password: "secret"})
	require.Equal(t, http.StatusCreated, rec.Code)
	api.token = decode[auth.Session](t, rec).Token

	assert.JSONEq(t, `[]`, api.do(http.MethodGet, "/api/v1/orders", nil).Body.String())
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/orders/"+order.ID, nil).Code)
}

func TestProducts_CategoryAndQueryCombine(t *testing.T) {
	api := setupAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/products?category=Clothing&q=headphones", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	found := decode[[]domain.Product](t, api.do(http.MethodGet, "/api/v1/products?category=Electronics&q=watch", nil))
	require.Len(t, found, 1)
	assert.Equal(t, int64(2), found[0].ID)

	found = decode[[]domain.Product](t, api.do(http.MethodGet, "/api/v1/products?category=Sports&q=comfortable", nil))
	require.Len(t, found, 1)
	assert.Equal(t, "Running Shoes", found[0].Name)
}
