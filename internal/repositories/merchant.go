package repositories

import (
	"context"
	"errors"

	apperrors "paygrid/internal/errors"
	"paygrid/internal/models"

	"gorm.io/gorm"
)

type merchantRepository struct {
	db *gorm.DB
}

func (r *merchantRepository) GetByID(ctx context.Context, id string) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&merchant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.MerchantNotFound(id)
		}
		return nil, err
	}
	return &merchant, nil
}

func (r *merchantRepository) Save(ctx context.Context, merchant *models.Merchant) error {
	return r.db.WithContext(ctx).Save(merchant).Error
}

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.UserNotFound(id)
		}
		return nil, err
	}
	return &user, nil
}
