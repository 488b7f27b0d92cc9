package transport

import "github.com/google/uuid"

type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	ZipCode     string `json:"zip_code"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type UpdateProfileRequest struct {
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	ZipCode     *string `json:"zip_code"`
}

type UpdatePermissionsRequest struct {
	Role                *string `json:"role"`
	CanViewStats        *bool   `json:"can_view_stats"`
	CanManageProducts   *bool   `json:"can_manage_products"`
	CanManageCategories *bool   `json:"can_manage_categories"`
	CanManageOrders     *bool   `json:"can_manage_orders"`
}

type CreateProductRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Quantity    int        `json:"quantity"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Image       string     `json:"image"`
	IsTrending  bool       `json:"is_trending"`
	Gallery     []string   `json:"gallery"`
}

type UpdateProductRequest struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	Price         *float64   `json:"price"`
	Quantity      *int       `json:"quantity"`
	CategoryID    *uuid.UUID `json:"category_id"`
	ClearCategory bool       `json:"clear_category"`
	Image         *string    `json:"image"`
	IsTrending    *bool      `json:"is_trending"`
	Gallery       []string   `json:"gallery"`
}

type CategoryRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type CreateReviewRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
}

type ToggleWishlistRequest struct {
	ProductID uuid.UUID `json:"product_id"`
}

type CartLine struct {
	ID       uuid.UUID `json:"id"`
	Quantity int       `json:"quantity"`
}

type SyncCartRequest struct {
	Items []CartLine `json:"items"`
}

type CartView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
}

type OrderLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type PlaceOrderRequest struct {
	FullName string      `json:"full_name"`
	Address  string      `json:"address"`
	City     string      `json:"city"`
	ZipCode  string      `json:"zip_code"`
	Items    []OrderLine `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type DailySales struct {
	Name    string  `json:"name"`
	Sales   int64   `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type DashboardStats struct {
	TotalOrders   int64        `json:"total_orders"`
	TotalRevenue  float64      `json:"total_revenue"`
	TotalProducts int64        `json:"total_products"`
	RecentSales   []DailySales `json:"recent_sales"`
}
