package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Merchant is the aggregate that owns a fee configuration. Settings carries
// free-form per-merchant options, including the "tier" key used for fee
// resolution. FeeStructure is a denormalized snapshot of the effective fee
// shape, refreshed on every fee mutation so list and detail reads never need
// to resolve fees themselves.
type Merchant struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	BusinessName string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Status       string `gorm:"default:'active'"`
	Settings     JSON   `gorm:"type:jsonb"`
	FeeStructure *FeeSnapshot `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (m *Merchant) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Tier reads the merchant's tier from its settings, defaulting to STARTER
// when absent or unrecognized.
func (m *Merchant) Tier() MerchantTier {
	if m.Settings == nil {
		return TierStarter
	}
	raw, ok := m.Settings["tier"].(string)
	if !ok {
		return TierStarter
	}
	return ParseMerchantTier(raw)
}
