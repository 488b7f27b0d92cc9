package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashfiesta/backend/internal/models"
	"github.com/flashfiesta/backend/internal/transport"
)

func TestRegisterAndLoginEnvelope(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.doJSON(http.MethodPost, "/api/v1/auth/register", transport.RegisterRequest{
		Username: "alice",
		Password: "password",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 6000, appStatus(t, body))
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, models.RoleCustomer, body["role"])

	// Duplicate registration fails with the failure envelope.
	rec, body = env.doJSON(http.MethodPost, "/api/v1/auth/register", transport.RegisterRequest{
		Username: "alice",
		Password: "password",
	}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 6001, appStatus(t, body))

	rec, body = env.doJSON(http.MethodPost, "/api/v1/auth/login", transport.LoginRequest{
		Username: "alice",
		Password: "password",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6000, appStatus(t, body))

	rec, body = env.doJSON(http.MethodPost, "/api/v1/auth/login", transport.LoginRequest{
		Username: "alice",
		Password: "wrong",
	}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 6001, appStatus(t, body))
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.doJSON(http.MethodGet, "/api/v1/order/my-orders", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 6001, appStatus(t, body))
	assert.Equal(t, "Authentication required", body["message"])

	rec, _ = env.doJSON(http.MethodGet, "/api/v1/order/my-orders", nil, "garbage-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPlaceOrderEndToEnd(t *testing.T) {
	env := newTestEnv(t)

	token := env.register("alice")
	product := env.createProduct("mug", 10.0, 5)

	rec, body := env.doJSON(http.MethodPost, "/api/v1/order/place", transport.PlaceOrderRequest{
		FullName: "Alice A",
		Address:  "1 Main St",
		City:     "Springfield",
		ZipCode:  "12345",
		Items:    []transport.OrderLine{{ProductID: product.ID, Quantity: 2}},
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 6000, appStatus(t, body))
	assert.Equal(t, "Order placed successfully", body["message"])
	assert.NotEmpty(t, body["order_id"])

	var stored models.Product
	require.NoError(t, env.Repo.DB.Where("id = ?", product.ID).First(&stored).Error)
	assert.Equal(t, 3, stored.Quantity)
}

func TestPlaceOrderInsufficientStockConflict(t *testing.T) {
	env := newTestEnv(t)

	token := env.register("alice")
	product := env.createProduct("mug", 10.0, 1)

	rec, body := env.doJSON(http.MethodPost, "/api/v1/order/place", transport.PlaceOrderRequest{
		FullName: "Alice A",
		Address:  "1 Main St",
		City:     "Springfield",
		ZipCode:  "12345",
		Items:    []transport.OrderLine{{ProductID: product.ID, Quantity: 3}},
	}, token)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 6001, appStatus(t, body))
}

func TestProductManagementAccessDenied(t *testing.T) {
	env := newTestEnv(t)

	token := env.register("customer")

	rec, body := env.doJSON(http.MethodPost, "/api/v1/products/CreateProducts", transport.CreateProductRequest{
		Name:     "mug",
		Price:    10.0,
		Quantity: 5,
	}, token)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 6001, appStatus(t, body))
	assert.Equal(t, "Access denied", body["message"])
}

func TestProductManagementAsOwner(t *testing.T) {
	env := newTestEnv(t)

	token := env.register("boss")
	env.promote("boss", models.RoleOwner)

	rec, body := env.doJSON(http.MethodPost, "/api/v1/products/CreateProducts", transport.CreateProductRequest{
		Name:     "mug",
		Price:    10.0,
		Quantity: 5,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 6000, appStatus(t, body))

	rec, body = env.doJSON(http.MethodGet, "/api/v1/products/Products", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6000, appStatus(t, body))
	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 1)
}

func TestReviewRequiresVerifiedPurchase(t *testing.T) {
	env := newTestEnv(t)

	token := env.register("alice")
	product := env.createProduct("mug", 10.0, 5)

	rec, body := env.doJSON(http.MethodPost, "/api/v1/products/CreateReview", transport.CreateReviewRequest{
		ProductID: product.ID,
		Rating:    5,
	}, token)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 6001, appStatus(t, body))
	assert.Equal(t,
		"Verified Purchase Required: You can only review products that have been delivered to you.",
		body["message"])
}

func TestDashboardStatsGated(t *testing.T) {
	env := newTestEnv(t)

	token := env.register("alice")
	rec, _ := env.doJSON(http.MethodGet, "/api/v1/products/dashboard-stats", nil, token)
	require.Equal(t, http.StatusForbidden, rec.Code)

	env.promote("alice", models.RoleOwner)
	rec, body := env.doJSON(http.MethodGet, "/api/v1/products/dashboard-stats", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6000, appStatus(t, body))

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	series, ok := data["recent_sales"].([]any)
	require.True(t, ok)
	assert.Len(t, series, 7)
}

func TestOrderStatusUpdateFlow(t *testing.T) {
	env := newTestEnv(t)

	customer := env.register("alice")
	boss := env.register("boss")
	env.promote("boss", models.RoleOwner)

	product := env.createProduct("mug", 10.0, 5)
	rec, body := env.doJSON(http.MethodPost, "/api/v1/order/place", transport.PlaceOrderRequest{
		FullName: "Alice A",
		Address:  "1 Main St",
		City:     "Springfield",
		ZipCode:  "12345",
		Items:    []transport.OrderLine{{ProductID: product.ID, Quantity: 1}},
	}, customer)
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID, _ := body["order_id"].(string)
	require.NotEmpty(t, orderID)

	// Customers may not touch order administration.
	rec, _ = env.doJSON(http.MethodGet, "/api/v1/order/all", nil, customer)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec, body = env.doJSON(http.MethodPost,
		fmt.Sprintf("/api/v1/order/update-status/%s", orderID),
		transport.UpdateOrderStatusRequest{Status: models.OrderStatusDelivered}, boss)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Status updated", body["message"])

	rec, body = env.doJSON(http.MethodGet,
		fmt.Sprintf("/api/v1/order/detail/%s", orderID), nil, boss)
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusDelivered, data["status"])

	// Delivery also opens the review gate.
	rec, _ = env.doJSON(http.MethodPost, "/api/v1/products/CreateReview", transport.CreateReviewRequest{
		ProductID: product.ID,
		Rating:    5,
		Comment:   "arrived whole",
	}, customer)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCartSyncFlow(t *testing.T) {
	env := newTestEnv(t)

	token := env.register("alice")
	mug := env.createProduct("mug", 10.0, 5)
	shirt := env.createProduct("shirt", 25.5, 3)

	rec, body := env.doJSON(http.MethodPost, "/api/v1/products/Cart/Sync", transport.SyncCartRequest{
		Items: []transport.CartLine{
			{ID: mug.ID, Quantity: 2},
			{ID: shirt.ID, Quantity: 1},
		},
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cart synced", body["message"])

	rec, body = env.doJSON(http.MethodGet, "/api/v1/products/Cart", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestWishlistToggleFlow(t *testing.T) {
	env := newTestEnv(t)

	token := env.register("alice")
	product := env.createProduct("mug", 10.0, 5)

	rec, body := env.doJSON(http.MethodPost, "/api/v1/products/Wishlist/Toggle", transport.ToggleWishlistRequest{
		ProductID: product.ID,
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["wishlisted"])

	rec, body = env.doJSON(http.MethodPost, "/api/v1/products/Wishlist/Toggle", transport.ToggleWishlistRequest{
		ProductID: product.ID,
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["wishlisted"])
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.doJSON(http.MethodGet, "/health/live", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.doJSON(http.MethodGet, "/health/ready", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
}
