package repositories

import (
	"context"

	"paygrid/internal/models"

	"gorm.io/gorm"
)

type merchantAuditRepository struct {
	db *gorm.DB
}

func (r *merchantAuditRepository) Append(ctx context.Context, entry *models.MerchantAuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

type platformAuditRepository struct {
	db *gorm.DB
}

func (r *platformAuditRepository) Append(ctx context.Context, entry *models.PlatformFeeAuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
