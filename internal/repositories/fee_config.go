package repositories

import (
	"context"
	"errors"

	"paygrid/internal/models"

	"gorm.io/gorm"
)

type feeConfigRepository struct {
	db *gorm.DB
}

func (r *feeConfigRepository) GetByMerchantID(ctx context.Context, merchantID string) (*models.MerchantFeeConfig, error) {
	var config models.MerchantFeeConfig
	err := r.db.WithContext(ctx).Where("merchant_id = ?", merchantID).First(&config).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}

func (r *feeConfigRepository) Save(ctx context.Context, config *models.MerchantFeeConfig) error {
	return r.db.WithContext(ctx).Save(config).Error
}

type platformDefaultRepository struct {
	db *gorm.DB
}

func (r *platformDefaultRepository) GetByTier(ctx context.Context, tier models.MerchantTier) (*models.PlatformFeeDefault, error) {
	var def models.PlatformFeeDefault
	err := r.db.WithContext(ctx).Where("tier = ?", tier).First(&def).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &def, nil
}

func (r *platformDefaultRepository) Create(ctx context.Context, def *models.PlatformFeeDefault) error {
	return r.db.WithContext(ctx).Create(def).Error
}

func (r *platformDefaultRepository) Save(ctx context.Context, def *models.PlatformFeeDefault) error {
	return r.db.WithContext(ctx).Save(def).Error
}
