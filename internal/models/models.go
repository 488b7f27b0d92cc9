package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleOwner    = "OWNER"
	RoleEmployee = "EMPLOYEE"
	RoleCustomer = "CUSTOMER"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusDelivered = "Delivered"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"        json:"id"`
	Username     string    `gorm:"unique;not null"             json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `gorm:"not null"                    json:"-"`
	Profile      Profile   `gorm:"constraint:OnDelete:CASCADE" json:"profile"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Profile carries the role and the per-action capability flags that the
// authorization model evaluates. Every user owns exactly one profile,
// created in the same transaction as the user itself.
type Profile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"           json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	Role string `gorm:"not null;default:CUSTOMER" json:"role"`

	CanViewStats        bool `gorm:"default:false" json:"can_view_stats"`
	CanManageProducts   bool `gorm:"default:false" json:"can_manage_products"`
	CanManageCategories bool `gorm:"default:false" json:"can_manage_categories"`
	CanManageOrders     bool `gorm:"default:false" json:"can_manage_orders"`

	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	ZipCode     string `json:"zip_code"`

	Wishlist []Product `gorm:"many2many:wishlist_items" json:"-"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"               json:"id"`
	Token     string    `gorm:"unique;not null"          json:"token"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	JTI       string    `gorm:"uniqueIndex"              json:"jti"`
	ExpiresAt int64     `gorm:"not null"                 json:"expires_at"`
	Revoked   bool      `gorm:"default:false"            json:"revoked"`
}

type Category struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"not null"             json:"name"`
	Image string    `json:"image"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	LegacyCode  *int       `gorm:"unique"               json:"legacy_code,omitempty"`
	Name        string     `gorm:"not null"             json:"name"`
	Description string     `json:"description"`
	Price       float64    `gorm:"not null"             json:"price"`
	Quantity    int        `gorm:"not null"             json:"quantity"`
	CategoryID  *uuid.UUID `gorm:"type:uuid"            json:"category_id"`
	Category    *Category  `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Image       string     `json:"image"`
	IsTrending  bool       `gorm:"default:false"        json:"is_trending"`

	Gallery []GalleryImage `gorm:"constraint:OnDelete:CASCADE" json:"gallery,omitempty"`
	Reviews []Review       `gorm:"constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type GalleryImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Image     string    `gorm:"not null"                 json:"image"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"       json:"user_id"`
	Rating    int       `gorm:"not null"                 json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"       json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"   json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"         json:"product_id"`
	Quantity  int       `gorm:"default:1;check:quantity>0" json:"quantity"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

// Order keeps its own copy of the shipping fields: editing a profile later
// must not rewrite where past orders were shipped.
type Order struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"      json:"user_id"`
	FullName    string     `gorm:"not null"             json:"full_name"`
	Address     string     `gorm:"not null"             json:"address"`
	City        string     `gorm:"not null"             json:"city"`
	ZipCode     string     `gorm:"not null"             json:"zip_code"`
	TotalAmount float64    `json:"total_amount"`
	CreatedAt   time.Time  `json:"created_at"`
	Status      string     `gorm:"not null;default:Pending" json:"status"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem snapshots the product's name and price at order time. The
// product reference is nullable so deleting a product leaves the line
// item (and the order's history) intact.
type OrderItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"      json:"id"`
	OrderID     uuid.UUID  `gorm:"type:uuid;index;not null"  json:"order_id"`
	ProductID   *uuid.UUID `gorm:"type:uuid"                 json:"product_id"`
	ProductName string     `json:"product_name"`
	Quantity    int        `gorm:"not null;check:quantity>0" json:"quantity"`
	Price       float64    `gorm:"not null"                  json:"price"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&User{}, &Profile{}, &RefreshToken{},
		&Category{}, &Product{}, &GalleryImage{}, &Review{},
		&CartItem{}, &Order{}, &OrderItem{},
	}
}
