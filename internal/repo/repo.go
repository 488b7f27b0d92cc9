package repo

import (
	"gorm.io/gorm"
)

// GormRepo is the single data-access point for the relational store.
// Multi-row invariants (user+profile creation, order placement, cart
// replacement) are owned here so every caller gets the same transaction
// boundaries.
type GormRepo struct {
	DB *gorm.DB
}
