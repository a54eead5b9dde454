package fees

import (
	"time"

	"paygrid/internal/models"
)

// Actor identifies who triggered a mutation. Supplied by the caller; the
// engine records it verbatim in the audit trail.
type Actor struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateMerchantFeesInput is a partial fee update. nil pointer fields inherit
// the baseline; a non-nil TieredFees replaces the whole schedule. Reason is
// mandatory on every mutation.
type UpdateMerchantFeesInput struct {
	TransactionFeePercentage *string             `json:"transactionFeePercentage"`
	TransactionFeeFlat       *string             `json:"transactionFeeFlat"`
	SettlementFeePercentage  *string             `json:"settlementFeePercentage"`
	MinimumFee               *string             `json:"minimumFee"`
	MaximumFee               *string             `json:"maximumFee"`
	TieredFees               *[]models.TieredFee `json:"tieredFees"`
	Reason                   string              `json:"reason"`
}

// UpdatePlatformFeesInput is a partial update to one tier's platform
// defaults.
type UpdatePlatformFeesInput struct {
	Tier                     models.MerchantTier `json:"tier"`
	TransactionFeePercentage *string             `json:"transactionFeePercentage"`
	TransactionFeeFlat       *string             `json:"transactionFeeFlat"`
	SettlementFeePercentage  *string             `json:"settlementFeePercentage"`
	MinimumFee               *string             `json:"minimumFee"`
	MaximumFee               *string             `json:"maximumFee"`
	TieredFees               *[]models.TieredFee `json:"tieredFees"`
	Reason                   string              `json:"reason"`
}

// PlatformDefaultSummary carries the tier defaults shown alongside a
// merchant's effective configuration.
type PlatformDefaultSummary struct {
	TransactionFeePercentage string `json:"transactionFeePercentage"`
	TransactionFeeFlat       string `json:"transactionFeeFlat"`
}

// UpdatedBySummary identifies the last editor of a configuration.
type UpdatedBySummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// EffectiveFeeConfig is the resolved fee configuration for one merchant: the
// override if present, otherwise the tier default, normalized, plus the raw
// tier defaults and last-updated metadata for display.
type EffectiveFeeConfig struct {
	MerchantID      string `json:"merchantId"`
	IsCustom        bool   `json:"isCustom"`
	models.FeeShape
	PlatformDefaults PlatformDefaultSummary `json:"platformDefaults"`
	UpdatedBy        *UpdatedBySummary      `json:"updatedBy"`
	UpdatedAt        *time.Time             `json:"updatedAt"`
}
