package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authmw "github.com/flashfiesta/backend/internal/middleware/auth"
	"github.com/flashfiesta/backend/internal/models"
	"github.com/flashfiesta/backend/internal/repo"
	"github.com/flashfiesta/backend/internal/service"
	"github.com/flashfiesta/backend/internal/transport"
)

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	Repo *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	store := &repo.GormRepo{DB: db}
	jwtSecret := []byte("test-jwt-secret")
	refreshSecret := []byte("test-refresh-secret")

	deps := &Deps{
		AuthHandler: &AuthHTTP{Svc: &service.AuthService{
			Repo:          store,
			JWTSecret:     jwtSecret,
			RefreshSecret: refreshSecret,
		}},
		CatalogHandler: &CatalogHTTP{Svc: &service.CatalogService{Repo: store}},
		OrderHandler:   &OrderHTTP{Svc: &service.OrderService{Repo: store}},
		ShoppingHandler: &ShoppingHTTP{
			Reviews:  &service.ReviewService{Repo: store},
			Cart:     &service.CartService{Repo: store},
			Wishlist: &service.WishlistService{Repo: store},
			Stats:    &service.StatsService{Repo: store},
		},
		AuthMW: &authmw.Middleware{Repo: store, JWTSecret: jwtSecret},
	}

	e := echo.New()
	Register(e, deps)

	return &testEnv{T: t, E: e, Repo: store}
}

func (env *testEnv) doJSON(method, path string, body any, token string) (*httptest.ResponseRecorder, map[string]any) {
	env.T.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)

	var parsed map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

// register creates an account through the API and returns its access token.
func (env *testEnv) register(username string) string {
	env.T.Helper()

	rec, body := env.doJSON(http.MethodPost, "/api/v1/auth/register", transport.RegisterRequest{
		Username: username,
		Password: "password",
	}, "")
	require.Equal(env.T, http.StatusCreated, rec.Code)

	tokens, ok := body["tokens"].(map[string]any)
	require.True(env.T, ok, "expected tokens in register response")
	access, _ := tokens["access"].(string)
	require.NotEmpty(env.T, access)
	return access
}

// promote flips the account's role directly in the store; tokens stay
// valid because the profile is re-read on every request.
func (env *testEnv) promote(username, role string) {
	env.T.Helper()

	err := env.Repo.DB.Model(&models.Profile{}).
		Where("user_id = (?)", env.Repo.DB.Model(&models.User{}).Select("id").Where("username = ?", username)).
		Update("role", role).Error
	require.NoError(env.T, err)
}

func (env *testEnv) createProduct(name string, price float64, quantity int) *models.Product {
	env.T.Helper()

	product := models.Product{Name: name, Price: price, Quantity: quantity}
	require.NoError(env.T, env.Repo.DB.Create(&product).Error)
	return &product
}

func appStatus(t *testing.T, body map[string]any) int {
	t.Helper()

	status, ok := body["Status"].(float64)
	require.True(t, ok, "expected Status in response body")
	return int(status)
}
