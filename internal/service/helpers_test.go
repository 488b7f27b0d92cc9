package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashfiesta/backend/internal/authz"
	"github.com/flashfiesta/backend/internal/models"
	"github.com/flashfiesta/backend/internal/repo"
	"github.com/flashfiesta/backend/pkg/hash"
)

func InitTestDB(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return &repo.GormRepo{DB: db}
}

func createUser(t *testing.T, r *repo.GormRepo, username, role string) *models.User {
	t.Helper()

	pwHash, err := hash.HashPassword("password")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		Username:     username,
		PasswordHash: pwHash,
		Profile:      models.Profile{Role: role},
	}
	if err := r.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

func principalFor(user *models.User) *authz.Principal {
	return &authz.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Profile:  user.Profile,
	}
}

func createProduct(t *testing.T, r *repo.GormRepo, name string, price float64, quantity int) *models.Product {
	t.Helper()

	product := models.Product{Name: name, Price: price, Quantity: quantity}
	if err := r.DB.Create(&product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return &product
}

func stockOf(t *testing.T, r *repo.GormRepo, productID uuid.UUID) int {
	t.Helper()

	var product models.Product
	if err := r.DB.Where("id = ?", productID).First(&product).Error; err != nil {
		t.Fatalf("failed to load product: %v", err)
	}
	return product.Quantity
}

func createOrderAt(t *testing.T, r *repo.GormRepo, userID uuid.UUID, total float64, status string, createdAt time.Time) *models.Order {
	t.Helper()

	order := models.Order{
		UserID:      &userID,
		FullName:    "Test User",
		Address:     "1 Test St",
		City:        "Testville",
		ZipCode:     "00000",
		TotalAmount: total,
		Status:      status,
		CreatedAt:   createdAt,
	}
	if err := r.DB.Create(&order).Error; err != nil {
		t.Fatalf("failed to create order: %v", err)
	}
	return &order
}

func addOrderItem(t *testing.T, r *repo.GormRepo, orderID uuid.UUID, product *models.Product, quantity int) {
	t.Helper()

	productID := product.ID
	item := models.OrderItem{
		OrderID:     orderID,
		ProductID:   &productID,
		ProductName: product.Name,
		Quantity:    quantity,
		Price:       product.Price,
	}
	if err := r.DB.Create(&item).Error; err != nil {
		t.Fatalf("failed to create order item: %v", err)
	}
}
