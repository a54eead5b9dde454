package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MerchantFeeConfig is a merchant's fee override. One row per customized
// merchant, created on first customization and updated in place afterwards.
type MerchantFeeConfig struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	MerchantID string `gorm:"type:uuid;uniqueIndex;not null"`
	FeeShape   `gorm:"embedded"`
	IsCustom   bool    `gorm:"default:false"`
	UpdatedByID *string `gorm:"type:uuid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (c *MerchantFeeConfig) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// PlatformFeeDefault is the platform-wide fee schedule for one merchant tier.
// Rows are created lazily from the built-in schedule the first time a tier is
// resolved; the tier column carries a uniqueness constraint so concurrent
// creators cannot leave duplicates.
type PlatformFeeDefault struct {
	ID       string       `gorm:"type:uuid;primaryKey"`
	Tier     MerchantTier `gorm:"type:varchar(50);uniqueIndex;not null"`
	FeeShape `gorm:"embedded"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d *PlatformFeeDefault) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
