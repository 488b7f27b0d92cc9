// Package authz resolves whether a caller may perform a gated action.
// The rules are deliberately small: OWNER passes everything, everyone
// else passes only the actions their profile flags explicitly grant.
package authz

import (
	"errors"

	"github.com/google/uuid"

	"github.com/flashfiesta/backend/internal/models"
)

type Capability string

const (
	CapViewStats        Capability = "view_stats"
	CapManageProducts   Capability = "manage_products"
	CapManageCategories Capability = "manage_categories"
	CapManageOrders     Capability = "manage_orders"
)

var ErrPermissionDenied = errors.New("access denied")

// Principal is the authenticated caller, threaded explicitly through
// every gated operation instead of living in framework state.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Profile  models.Profile
}

// Allowed is a pure predicate: no side effects, never errors on a deny.
func Allowed(p *models.Profile, cap Capability) bool {
	if p == nil {
		return false
	}
	if p.Role == models.RoleOwner {
		return true
	}
	switch cap {
	case CapViewStats:
		return p.CanViewStats
	case CapManageProducts:
		return p.CanManageProducts
	case CapManageCategories:
		return p.CanManageCategories
	case CapManageOrders:
		return p.CanManageOrders
	}
	return false
}

func Require(p *Principal, cap Capability) error {
	if p == nil {
		return ErrPermissionDenied
	}
	if !Allowed(&p.Profile, cap) {
		return ErrPermissionDenied
	}
	return nil
}
