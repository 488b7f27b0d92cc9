package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashfiesta/backend/internal/models"
	"github.com/flashfiesta/backend/pkg/tokens"
)

var ErrTokenExpiredOrRevoked = errors.New("token expired or revoked")

func (r *GormRepo) AddRefreshToken(ctx context.Context, userID uuid.UUID, rawToken, jti string, expiresAt time.Time) error {
	refresh := models.RefreshToken{
		Token:     tokens.Sha256Hex(rawToken),
		UserID:    userID,
		JTI:       jti,
		ExpiresAt: expiresAt.Unix(),
	}
	return r.DB.WithContext(ctx).Create(&refresh).Error
}

func (r *GormRepo) RevokeRefreshToken(ctx context.Context, rawToken string) error {
	return r.DB.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("token = ?", tokens.Sha256Hex(rawToken)).
		Update("revoked", true).Error
}

func (r *GormRepo) refreshExpiredOrRevoked(db *gorm.DB, jti string) (bool, error) {
	var refresh models.RefreshToken
	if err := db.Where("jti = ?", jti).First(&refresh).Error; err != nil {
		return false, err
	}
	if refresh.ExpiresAt < time.Now().Unix() || refresh.Revoked {
		return true, nil
	}
	return false, nil
}

// RotateRefreshToken revokes the old token and stores the new one as a
// single unit so a crash can never leave both valid.
func (r *GormRepo) RotateRefreshToken(ctx context.Context, oldJTI string, userID uuid.UUID, newRaw, newJTI string, expiresAt time.Time) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expired, err := r.refreshExpiredOrRevoked(tx, oldJTI)
		if err != nil {
			return err
		}
		if expired {
			return ErrTokenExpiredOrRevoked
		}

		if err := tx.Model(&models.RefreshToken{}).
			Where("jti = ?", oldJTI).
			Update("revoked", true).Error; err != nil {
			return err
		}

		refresh := models.RefreshToken{
			Token:     tokens.Sha256Hex(newRaw),
			UserID:    userID,
			JTI:       newJTI,
			ExpiresAt: expiresAt.Unix(),
		}
		return tx.Create(&refresh).Error
	})
}
