package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// MerchantTier classifies a merchant and selects its default fee schedule.
type MerchantTier string

const (
	TierStarter    MerchantTier = "STARTER"
	TierGrowth     MerchantTier = "GROWTH"
	TierEnterprise MerchantTier = "ENTERPRISE"
)

// AllTiers lists every tier in resolution order.
var AllTiers = []MerchantTier{TierStarter, TierGrowth, TierEnterprise}

// ParseMerchantTier returns the tier for s, or TierStarter if s is not a known tier.
func ParseMerchantTier(s string) MerchantTier {
	switch MerchantTier(s) {
	case TierStarter, TierGrowth, TierEnterprise:
		return MerchantTier(s)
	}
	return TierStarter
}

// TieredFee is one volume band of a tiered schedule. MaxVolumeUsd == nil means
// the band is unbounded above.
type TieredFee struct {
	MinVolumeUsd  float64  `json:"minVolumeUsd"`
	MaxVolumeUsd  *float64 `json:"maxVolumeUsd"`
	FeePercentage string   `json:"feePercentage"`
}

// TieredFees is stored as a jsonb column. A nil slice persists as SQL NULL.
type TieredFees []TieredFee

// Value implements the driver.Valuer interface
func (t TieredFees) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements the sql.Scanner interface
func (t *TieredFees) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("tiered fees column is not a byte slice")
	}
	return json.Unmarshal(bytes, t)
}

// FeeShape is the value object shared by merchant overrides, platform defaults
// and audit snapshots. Numeric fields are decimal strings: percentages at up to
// 4 decimal digits, money at 2.
type FeeShape struct {
	TransactionFeePercentage string     `json:"transactionFeePercentage" gorm:"column:transaction_fee_percentage;type:decimal(7,4)"`
	TransactionFeeFlat       string     `json:"transactionFeeFlat" gorm:"column:transaction_fee_flat;type:decimal(10,2)"`
	SettlementFeePercentage  string     `json:"settlementFeePercentage" gorm:"column:settlement_fee_percentage;type:decimal(7,4)"`
	MinimumFee               string     `json:"minimumFee" gorm:"column:minimum_fee;type:decimal(10,2)"`
	MaximumFee               string     `json:"maximumFee" gorm:"column:maximum_fee;type:decimal(10,2)"`
	TieredFees               TieredFees `json:"tieredFees" gorm:"column:tiered_fees;type:jsonb"`
}

// FeeSnapshot is a FeeShape denormalized onto another row as a single jsonb
// column (the merchant read model).
type FeeSnapshot FeeShape

// Value implements the driver.Valuer interface
func (s FeeSnapshot) Value() (driver.Value, error) {
	return json.Marshal(FeeShape(s))
}

// Scan implements the sql.Scanner interface
func (s *FeeSnapshot) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("fee snapshot column is not a byte slice")
	}
	return json.Unmarshal(bytes, (*FeeShape)(s))
}
